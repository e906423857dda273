package kernel

import (
	"encoding/json"

	"github.com/zjykzk/sparkml-client-go"
	"github.com/zjykzk/sparkml-client-go/log"
	"github.com/zjykzk/sparkml-client-go/remote"
	"github.com/zjykzk/sparkml-client-go/remote/net"
)

// Session the handle of the kernel, every proxy holds the session which creates it
//
// The configuration never changes after creation, the session is safe for concurrent use.
// Every submission blocks until the kernel replies or the request times out.
type Session struct {
	sparkml.Lifecycle

	conf   Config
	client remote.Client
	rpc    *remote.RPC
	logger log.Logger
}

// NewSession create the session talking to the kernel over tcp
func NewSession(conf Config, logger log.Logger) *Session {
	conf.fillDefaults()
	c := remote.NewClient(remote.ClientConfig{
		Config: net.Config{
			ReadTimeout:  conf.ReadTimeout,
			WriteTimeout: conf.WriteTimeout,
			DialTimeout:  conf.DialTimeout,
		},
		CompressThreshold: conf.CompressThreshold,
	}, logger)
	return newSession(conf, c, logger)
}

// NewSessionWithClient create the session using the client
func NewSessionWithClient(conf Config, c remote.Client, logger log.Logger) *Session {
	conf.fillDefaults()
	return newSession(conf, c, logger)
}

func newSession(conf Config, c remote.Client, logger log.Logger) *Session {
	s := &Session{
		conf:   conf,
		client: c,
		rpc:    remote.NewRPC(c),
		logger: logger,
	}

	shutdowns := &sparkml.ShutdownCollection{}
	shutdowns.AddFuncs(c.Shutdown)
	s.StartFunc, s.Shutdowner = c.Start, shutdowns
	return s
}

// Addr returns the address of the kernel
func (s *Session) Addr() string {
	return s.conf.Addr
}

// Submit generates a fresh reference id, binds it to the {{refId}} placeholder and runs
// the statement, returns the reference id
func (s *Session) Submit(stmt Statement) (RefID, error) {
	ref := s.conf.RefGenerator()
	text, err := stmt.Render(Bindings{RefIDKey: ref})
	if err != nil {
		return "", badStatementError(stmt, err)
	}

	if err := s.execute(string(ref), text); err != nil {
		return "", err
	}
	return ref, nil
}

// Assign runs the statement assigning the expression's value to a fresh reference
func (s *Session) Assign(expr Statement) (RefID, error) {
	return s.Submit(expr.Assign())
}

// Exec runs the expression, the value is dropped
func (s *Session) Exec(expr Statement) error {
	stmt := expr.Terminate()
	text, err := stmt.Render(nil)
	if err != nil {
		return badStatementError(stmt, err)
	}
	return s.execute("", text)
}

// Eval evaluates the expression, returns its value in json
func (s *Session) Eval(expr Statement) ([]byte, error) {
	text, err := expr.Render(nil)
	if err != nil {
		return nil, badStatementError(expr, err)
	}

	if err := s.CheckRunning(); err != nil {
		return nil, &RemoteEvaluationError{Statement: text, Code: remote.ConnClosed, Err: err}
	}

	s.logger.Debugf("evaluate %s", text)
	v, err := s.rpc.Evaluate(s.conf.Addr, text, s.conf.RequestTimeout)
	if err != nil {
		s.logger.Errorf("evaluate %s error:%s", text, err)
		return nil, evaluationError(text, err)
	}
	return v, nil
}

// EvalInto evaluates the expression, decodes its json value into v
func (s *Session) EvalInto(expr Statement, v interface{}) error {
	bs, err := s.Eval(expr)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(bs, v); err != nil {
		text, _ := expr.Render(nil)
		s.logger.Errorf("decode value of %s error:%s", text, err)
		return evaluationError(text, remote.DataError(err))
	}
	return nil
}

// Ping checks the kernel is alive
func (s *Session) Ping() error {
	if err := s.CheckRunning(); err != nil {
		return err
	}
	return s.rpc.Ping(s.conf.Addr, s.conf.RequestTimeout)
}

func (s *Session) execute(ref, text string) error {
	if err := s.CheckRunning(); err != nil {
		return &RemoteEvaluationError{Statement: text, Code: remote.ConnClosed, Err: err}
	}

	s.logger.Debugf("execute [%s] %s", ref, text)
	if err := s.rpc.Execute(s.conf.Addr, ref, text, s.conf.RequestTimeout); err != nil {
		s.logger.Errorf("execute %s error:%s", text, err)
		return evaluationError(text, err)
	}
	return nil
}
