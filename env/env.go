// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader defines an interface for environment variable access. Production
// code accepts a Reader so tests can substitute the generated mock instead
// of mutating the process environment.
type Reader interface {
	// Getenv returns the value of the environment variable named by the
	// key, or "" when unset.
	Getenv(key string) string

	// Lookup returns the value of the environment variable and whether it
	// is set, distinguishing an unset variable from one set to "".
	Lookup(key string) (string, bool)
}

// OSReader implements Reader using the standard os package.
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key.
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// Lookup returns the value of the environment variable and whether it is
// set.
func (*OSReader) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}
