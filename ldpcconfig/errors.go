// SPDX-License-Identifier: MIT
// Package: ldpcconfig
//
// errors.go — sentinel errors for the ldpcconfig package.

package ldpcconfig

import "errors"

var (
	// ErrReadFailed indicates the YAML file could not be read from disk.
	ErrReadFailed = errors.New("ldpcconfig: failed to read config file")

	// ErrParseFailed indicates the file's contents are not valid YAML, or
	// do not match the expected schema.
	ErrParseFailed = errors.New("ldpcconfig: failed to parse config file")
)
