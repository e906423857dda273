package remote

import (
	"time"
)

// RPC contains the rpc
type RPC struct {
	client Client
}

// NewRPC create the remoting rpc
func NewRPC(c Client) *RPC {
	return &RPC{client: c}
}

type executeHeader string

func (h executeHeader) ToMap() map[string]string {
	if h == "" {
		return nil
	}
	return map[string]string{"refId": string(h)}
}

// Execute runs the statement in the kernel, the refID is the variable assigned by the
// statement, empty if nothing is assigned
func (r *RPC) Execute(addr, refID, statement string, timeout time.Duration) error {
	cmd, err := r.client.RequestSync(
		addr, NewCommandWithBody(ExecuteStatement, executeHeader(refID), []byte(statement)), timeout,
	)
	if err != nil {
		return RequestError(err)
	}

	if cmd.Code != Success {
		return KernelError(cmd)
	}
	return nil
}

// Evaluate evaluates the expression in the kernel, returns the value in json
func (r *RPC) Evaluate(addr, expression string, timeout time.Duration) ([]byte, error) {
	cmd, err := r.client.RequestSync(
		addr, NewCommandWithBody(EvaluateExpression, nil, []byte(expression)), timeout,
	)
	if err != nil {
		return nil, RequestError(err)
	}

	if cmd.Code != Success {
		return nil, KernelError(cmd)
	}
	return cmd.Body, nil
}

// Ping checks the kernel is alive
func (r *RPC) Ping(addr string, timeout time.Duration) error {
	cmd, err := r.client.RequestSync(addr, NewCommand(Ping, nil), timeout)
	if err != nil {
		return RequestError(err)
	}

	if cmd.Code != Success {
		return KernelError(cmd)
	}
	return nil
}
