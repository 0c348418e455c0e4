package sizer

import "errors"

var (
	// ErrNilValue indicates that a nil Value was handed to the estimator,
	// either as the top-level value or as a child of a composite.
	ErrNilValue = errors.New("sizer: nil value cannot describe itself")

	// ErrUnsupportedType indicates that the reflection bridge met a Go type
	// with no counterpart in the value-shape protocol, such as a channel,
	// func or complex number.
	ErrUnsupportedType = errors.New("sizer: type has no value shape")
)
