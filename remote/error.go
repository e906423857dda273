package remote

import (
	"fmt"

	"github.com/zjykzk/sparkml-client-go/remote/net"
)

// IsTimeoutError returns true if the request is timeout
func IsTimeoutError(err error) bool {
	return net.IsTimeoutError(err)
}

// IsConnError returns true if the connection is broken while waiting for the response
func IsConnError(err error) bool {
	return net.IsConnError(err)
}

// IsDialError returns true if the kernel cannot be connected
func IsDialError(err error) bool {
	return net.IsDialError(err)
}

// RPCError rpc error wraper
type RPCError struct {
	Code    Code
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("code:%d,message:%s", e.Code, e.Message)
}

// KernelError new error which represents error returned by the kernel
func KernelError(cmd *Command) *RPCError {
	return &RPCError{Code: cmd.Code, Message: cmd.Remark}
}

// RequestError new error which represents the request error, such as connect timeout
func RequestError(err error) *RPCError {
	code := RequestFailed
	switch {
	case IsTimeoutError(err):
		code = RequestTimeout
	case IsConnError(err):
		code = ConnClosed
	case IsDialError(err):
		code = ConnError
	}
	return &RPCError{Code: code, Message: err.Error()}
}

// DataError new error which represents the error which cannot process the response data
func DataError(err error) *RPCError {
	return &RPCError{Code: DataFailed, Message: err.Error()}
}
