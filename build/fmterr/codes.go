// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fmterr

import "errors"

// Code identifies a class of binding diagnostics.
type Code int

// Diagnostic codes reported by the binding core.
const (
	CodeUnknown Code = iota
	DuplicateElementName
	UnmatchedElementName
	TupleArityMismatch
	NarrowingTupleConversion
	NameMismatchWarning
	IllegalReferenceCapture
	IllegalLateBoundReferenceAssignment
	DecompositionArityMismatch
)

var codeNames = map[Code]string{
	CodeUnknown:                         "Unknown",
	DuplicateElementName:                "DuplicateElementName",
	UnmatchedElementName:                "UnmatchedElementName",
	TupleArityMismatch:                  "TupleArityMismatch",
	NarrowingTupleConversion:            "NarrowingTupleConversion",
	NameMismatchWarning:                 "NameMismatchWarning",
	IllegalReferenceCapture:             "IllegalReferenceCapture",
	IllegalLateBoundReferenceAssignment: "IllegalLateBoundReferenceAssignment",
	DecompositionArityMismatch:          "DecompositionArityMismatch",
}

// String returns the name of the code.
func (c Code) String() string {
	name, ok := codeNames[c]
	if !ok {
		return "Unknown"
	}
	return name
}

// Diagnostic is an error carrying a diagnostic code and a severity.
type Diagnostic interface {
	error
	Code() Code
	IsWarning() bool
}

type codedError struct {
	code    Code
	warning bool
	err     error
}

var _ Diagnostic = (*codedError)(nil)

// WithCode attaches a code to an error.
func WithCode(code Code, err error) error {
	if err == nil {
		return nil
	}
	return &codedError{code: code, err: err}
}

// Warning attaches a code to an error and marks it as non-fatal.
func Warning(code Code, err error) error {
	if err == nil {
		return nil
	}
	return &codedError{code: code, warning: true, err: err}
}

// Code returns the diagnostic code.
func (err *codedError) Code() Code { return err.code }

// IsWarning returns true for a non-fatal diagnostic.
func (err *codedError) IsWarning() bool { return err.warning }

// Error returns a string description of the diagnostic.
func (err *codedError) Error() string {
	sev := "error"
	if err.warning {
		sev = "warning"
	}
	return err.err.Error() + " [" + sev + " " + err.code.String() + "]"
}

// Unwrap the underlying error.
func (err *codedError) Unwrap() error { return err.err }

// CodeOf returns the code attached to an error, or CodeUnknown.
func CodeOf(err error) Code {
	var diag Diagnostic
	if !errors.As(err, &diag) {
		return CodeUnknown
	}
	return diag.Code()
}

// IsWarning returns true if the error is a non-fatal diagnostic.
func IsWarning(err error) bool {
	var diag Diagnostic
	if !errors.As(err, &diag) {
		return false
	}
	return diag.IsWarning()
}
