// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr carries HTTP status codes through error chains and maps
validation failures to the status a handler should answer with.

# Basic Usage

Create or wrap errors with explicit status codes:

	err := httperr.New("resource not found", http.StatusNotFound)
	err = httperr.WithCode(err, http.StatusBadRequest)

Validation rejections map automatically: oversized paths to 414, oversized
headers to 431, everything else to 400:

	_, err := pipe.Validate(&path)
	code := httperr.Code(err) // 400/414/431 for validation failures

# Extracting Status Codes

Code unwraps the chain looking first for a CodedError, then for a
*validation.ValidationError:

	code := httperr.Code(err)
	// 500 if neither is found, 200 if err is nil

# Error Wrapping

CodedError supports the standard wrapping pattern:

	var coded *httperr.CodedError
	if errors.As(err, &coded) {
		log.Printf("HTTP %d: %s", coded.HTTPCode(), coded.Error())
	}

# HTTP Handler Example

	func handleError(w http.ResponseWriter, err error) {
		http.Error(w, err.Error(), httperr.Code(err))
	}
*/
package httperr
