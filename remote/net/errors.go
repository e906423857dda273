package net

import (
	"errors"
	"fmt"
)

var (
	errTimeout      = errors.New("timeout")
	errConnClosed   = errors.New("connection closed")
	errConnDeactive = errors.New("connection deactive")
	errBadParams    = errors.New("bad params")
	errNotStarted   = errors.New("client not started")
)

// IsTimeoutError timeout error
func IsTimeoutError(err error) bool {
	return err == errTimeout
}

// IsConnError returns true if the connection is closed or broken
func IsConnError(err error) bool {
	return err == errConnClosed || err == errConnDeactive
}

// DialError cannot connect to the address
type DialError struct {
	Addr string
	Err  error
}

func (e *DialError) Error() string {
	return fmt.Sprintf("dial %s error:%s", e.Addr, e.Err)
}

// Unwrap returns the cause
func (e *DialError) Unwrap() error {
	return e.Err
}

// IsDialError returns true if the address cannot be connected
func IsDialError(err error) bool {
	var e *DialError
	return errors.As(err, &e)
}
