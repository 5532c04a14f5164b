// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

/*
Package middleware applies the security pipelines to incoming HTTP requests
and recovers handler panics.

The middleware validates the raw request path, query parameter names and
values (without decoding them; the pipelines own the single decode pass),
header names and values, and cookie names and values. The first rejection
answers the request with the status code mapped by httperr; the offending
input is logged server-side, never echoed to the client.

# Basic Usage

	factory := pipeline.NewFactory(config.Default())

	mux := http.NewServeMux()
	mux.HandleFunc("/", handler)

	wrapped := middleware.Validate(mux, factory,
		middleware.WithLogger(logging.New()))
	http.ListenAndServe(":8080", wrapped)

# Panic Recovery

A panic in the wrapped handler is recovered and answered with 500 Internal
Server Error, preventing a single request from crashing the server.
*/
package middleware
