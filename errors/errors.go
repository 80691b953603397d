package errors

import (
	"fmt"
)

// Error enriches the built-in error with an HTTP-style code and an
// optional cause. Services create them with New and the enrichers
// defined in code.go, transports read the code back to build the
// response.
type Error interface {
	error

	Code() int
	Message() string
	Cause() error
}

// DefaultCode is used when no enricher sets one. It is 500,
// Internal Server Error.
var DefaultCode = 500

type baseError struct {
	code  int
	msg   string
	cause *baseError
}

func (err *baseError) Error() string {
	if err.cause == nil {
		return err.msg
	}

	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *baseError) Code() int {
	return err.code
}

func (err *baseError) Message() string {
	return err.msg
}

func (err *baseError) Cause() error {
	if err.cause == nil {
		return nil
	}
	return err.cause
}

type ErrorEnricher func(error) error

func WithCode(code int) ErrorEnricher {
	return func(err error) error {
		if err == nil {
			return nil
		}

		if err, ok := err.(*baseError); ok {
			err.code = code
			return err
		}

		return &baseError{
			msg:  err.Error(),
			code: code,
		}
	}
}

func WithCause(cause error) ErrorEnricher {
	var base *baseError
	switch cause := cause.(type) {
	case *baseError:
		base = cause
	default:
		base = &baseError{msg: cause.Error(), code: DefaultCode}
	}

	return func(err error) error {
		if err == nil {
			return nil
		}

		if err, ok := err.(*baseError); ok {
			err.cause = base
			return err
		}

		return &baseError{
			msg:   err.Error(),
			code:  base.code,
			cause: base,
		}
	}
}

func New(msg string, fs ...ErrorEnricher) error {
	var err error
	err = &baseError{
		msg:  msg,
		code: DefaultCode,
	}

	for _, f := range fs {
		err = f(err)
	}

	return err
}

// Code extracts the code carried by err, falling back to DefaultCode
// for plain errors.
func Code(err error) int {
	if err, ok := err.(Error); ok {
		return err.Code()
	}
	return DefaultCode
}
