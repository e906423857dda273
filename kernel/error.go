package kernel

import (
	"errors"
	"fmt"

	"github.com/zjykzk/sparkml-client-go/remote"
)

// RemoteEvaluationError the statement cannot be evaluated by the kernel,
// including the remote exception, the broken session, the timeout and the malformed
// statement, which wraps the TemplateError and is never sent
type RemoteEvaluationError struct {
	Statement string
	Code      remote.Code
	Message   string
	Err       error
}

func (e *RemoteEvaluationError) Error() string {
	if e.Err != nil && e.Message == "" {
		return fmt.Sprintf("evaluate %q failed: %s", e.Statement, e.Err)
	}
	return fmt.Sprintf("evaluate %q failed, code:%d, message:%s", e.Statement, e.Code, e.Message)
}

// Unwrap returns the cause
func (e *RemoteEvaluationError) Unwrap() error {
	return e.Err
}

// IsRemoteEvaluationError returns true if the err is or wraps a RemoteEvaluationError
func IsRemoteEvaluationError(err error) bool {
	var e *RemoteEvaluationError
	return errors.As(err, &e)
}

func evaluationError(statement string, err error) *RemoteEvaluationError {
	if rerr, ok := err.(*remote.RPCError); ok {
		return &RemoteEvaluationError{
			Statement: statement, Code: rerr.Code, Message: rerr.Message, Err: rerr,
		}
	}
	return &RemoteEvaluationError{Statement: statement, Code: remote.UnknowError, Err: err}
}

// the malformed statement is never sent, the template stands for the statement
func badStatementError(stmt Statement, err error) *RemoteEvaluationError {
	return &RemoteEvaluationError{
		Statement: stmt.Template, Code: remote.BadStatement, Message: err.Error(), Err: err,
	}
}

// IsTemplateError returns true if the err is or wraps a TemplateError
func IsTemplateError(err error) bool {
	var e *TemplateError
	return errors.As(err, &e)
}

// TemplateError the statement is malformed, it is never sent to the kernel
type TemplateError struct {
	Template string
	Reason   string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("bad template %q: %s", e.Template, e.Reason)
}
