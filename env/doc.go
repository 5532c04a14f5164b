// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("CUI_HTTP_SECURITY_CONFIG")

Lookup distinguishes an unset variable from one set to the empty string:

	if path, ok := reader.Lookup("CUI_HTTP_SECURITY_CONFIG"); ok {
		// explicit override, even if empty
	}

# Testing

The Reader interface allows injecting a mock in tests to avoid relying on
real environment variables. A generated mock is available in the mocks
sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Lookup("CUI_HTTP_SECURITY_CONFIG").Return("/tmp/cfg.yaml", true)

	result := myFunc(mock)

# Design

Production code accepts an env.Reader, while tests substitute the generated
mock. The config package uses a Reader to resolve its configuration file
override.
*/
package env
