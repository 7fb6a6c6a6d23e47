// Package errors provides error handling for Bastion.
//
// It re-exports github.com/cockroachdb/errors, giving every error a
// stack trace and proper wrapping semantics, and defines the sentinel
// errors shared across the sync pipeline.
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrNotFound) {
//	    // handle not found
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Mark lets a detailed error be recognized as a sentinel through
// errors.Is without string matching.
var (
	Mark             = crdb.Mark
	AssertionFailedf = crdb.AssertionFailedf
	CombineErrors    = crdb.CombineErrors
	Join             = crdb.Join
)

// Sentinel errors shared across Bastion.
// Use with errors.Is(); wrap or Mark to add context while preserving the type.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = New("not found")

	// ErrUnauthorized indicates the caller lacks a valid admin credential.
	ErrUnauthorized = New("unauthorized")

	// ErrNotUploaded indicates an attachment's content hash has no known
	// upload. Callers may upload the file and retry.
	ErrNotUploaded = New("attachment not uploaded")

	// ErrInvalidRequest indicates the request was malformed or invalid.
	ErrInvalidRequest = New("invalid request")
)
