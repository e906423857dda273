package kernel

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zjykzk/sparkml-client-go"
	"github.com/zjykzk/sparkml-client-go/log"
	"github.com/zjykzk/sparkml-client-go/remote"
)

func newTestSession(t *testing.T) (*Session, *remote.MockClient) {
	m := &remote.MockClient{}
	s := NewSessionWithClient(Config{Addr: "kernel:1", RefGenerator: SequentialRefs("ref")}, m, &log.MockLogger{})
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	return s, m
}

func TestConfigDefaults(t *testing.T) {
	c := Config{}
	c.fillDefaults()
	assert.Equal(t, sparkml.DefaultKernelAddr, c.Addr)
	assert.Equal(t, sparkml.DefaultRequestTimeout, c.RequestTimeout)
	assert.Equal(t, sparkml.DefaultCompressThreshold, c.CompressThreshold)
	assert.NotNil(t, c.RefGenerator)

	c = Config{CompressThreshold: -1, RequestTimeout: time.Second}
	c.fillDefaults()
	assert.Equal(t, -1, c.CompressThreshold)
	assert.Equal(t, time.Second, c.RequestTimeout)
}

func TestSubmit(t *testing.T) {
	s, m := newTestSession(t)
	assert.True(t, m.Started)
	assert.Equal(t, "kernel:1", s.Addr())

	ref, err := s.Assign(NewInstance("IsotonicRegression"))
	assert.Nil(t, err)
	assert.Equal(t, RefID("ref1"), ref)
	assert.Equal(t, []string{"ref1 = new IsotonicRegression();"}, m.Bodies())
	assert.Equal(t, remote.ExecuteStatement, m.Requests[0].Code)
	assert.Equal(t, "ref1", m.Requests[0].ExtFields["refId"])

	ref, err = s.Submit(Statement{
		Template: "{{refId}} = {{inRefId}}.setIsotonic({{isotonic}});",
		Bindings: Bindings{"inRefId": ref, "isotonic": false},
	})
	assert.Nil(t, err)
	assert.Equal(t, RefID("ref2"), ref)
	assert.Equal(t, "ref2 = ref1.setIsotonic(false);", m.Bodies()[1])

	// malformed statement is never sent
	_, err = s.Submit(Statement{Template: "{{refId}} = {{missing}};"})
	rerr, ok := err.(*RemoteEvaluationError)
	assert.True(t, ok)
	assert.Equal(t, remote.BadStatement, rerr.Code)
	assert.Equal(t, "{{refId}} = {{missing}};", rerr.Statement)
	assert.True(t, IsTemplateError(err))
	var terr *TemplateError
	assert.True(t, errors.As(err, &terr))
	assert.Equal(t, "missing binding missing", terr.Reason)

	assert.True(t, IsRemoteEvaluationError(s.Exec(Call(RefID("throw"), "stop"))))
	_, err = s.Eval(Call(RefID("sc"), "1bad"))
	assert.True(t, IsRemoteEvaluationError(err))
	assert.True(t, IsTemplateError(err))
	assert.Len(t, m.Requests, 2)

	s.Shutdown()
	assert.True(t, m.Shutdowned)
}

func TestExecAndEval(t *testing.T) {
	s, m := newTestSession(t)

	assert.Nil(t, s.Exec(Call(RefID("sc"), "stop")))
	assert.Equal(t, "sc.stop();", m.Bodies()[0])
	assert.Nil(t, m.Requests[0].ExtFields)

	m.Responder = func(addr string, cmd *remote.Command) (*remote.Command, error) {
		assert.Equal(t, "kernel:1", addr)
		assert.Equal(t, remote.EvaluateExpression, cmd.Code)
		return remote.NewResponse(cmd, remote.Success, "", []byte("[0,1,2]")), nil
	}
	v, err := s.Eval(Call(RefID("m1"), "boundaries"))
	assert.Nil(t, err)
	assert.Equal(t, "[0,1,2]", string(v))
	assert.Equal(t, "m1.boundaries()", m.Bodies()[1])

	m.Responder = nil
	assert.Nil(t, s.Ping())
	assert.Equal(t, remote.Ping, m.Requests[2].Code)
}

func TestRemoteEvaluationError(t *testing.T) {
	s, m := newTestSession(t)
	m.Responder = func(addr string, cmd *remote.Command) (*remote.Command, error) {
		return remote.NewResponse(cmd, remote.EvaluationFailed, "TypeError: r9 is undefined", nil), nil
	}

	ref, err := s.Assign(Call(RefID("r9"), "setIsotonic", true))
	assert.Equal(t, RefID(""), ref)
	rerr, ok := err.(*RemoteEvaluationError)
	assert.True(t, ok)
	assert.Equal(t, "ref1 = r9.setIsotonic(true);", rerr.Statement)
	assert.Equal(t, remote.EvaluationFailed, rerr.Code)
	assert.Equal(t, "TypeError: r9 is undefined", rerr.Message)
	assert.True(t, IsRemoteEvaluationError(err))

	_, err = s.Eval(Call(RefID("r9"), "count"))
	assert.True(t, IsRemoteEvaluationError(err))

	// transport failure
	cause := errors.New("broken pipe")
	m.Responder = func(addr string, cmd *remote.Command) (*remote.Command, error) {
		return nil, cause
	}
	err = s.Exec(Call(RefID("sc"), "stop"))
	rerr, ok = err.(*RemoteEvaluationError)
	assert.True(t, ok)
	assert.Equal(t, remote.RequestFailed, rerr.Code)
	assert.Equal(t, "broken pipe", rerr.Message)

	assert.False(t, IsRemoteEvaluationError(cause))
	assert.False(t, IsRemoteEvaluationError(nil))
}

func TestNotRunning(t *testing.T) {
	m := &remote.MockClient{}
	s := NewSessionWithClient(Config{}, m, &log.MockLogger{})

	_, err := s.Assign(NewInstance("IsotonicRegression"))
	assert.True(t, IsRemoteEvaluationError(err))
	assert.True(t, errors.Is(err, sparkml.ErrNotRunning))

	_, err = s.Eval(Call(RefID("r1"), "count"))
	assert.True(t, errors.Is(err, sparkml.ErrNotRunning))

	assert.True(t, errors.Is(s.Ping(), sparkml.ErrNotRunning))
	assert.Empty(t, m.Requests)
}

func TestEvalInto(t *testing.T) {
	s, m := newTestSession(t)
	m.Responder = func(addr string, cmd *remote.Command) (*remote.Command, error) {
		if string(cmd.Body) == "d1.count()" {
			return remote.NewResponse(cmd, remote.Success, "", []byte("42")), nil
		}
		return remote.NewResponse(cmd, remote.Success, "", []byte("not json")), nil
	}

	var n int64
	assert.Nil(t, s.EvalInto(Call(RefID("d1"), "count"), &n))
	assert.Equal(t, int64(42), n)

	err := s.EvalInto(Call(RefID("d1"), "first"), &n)
	rerr, ok := err.(*RemoteEvaluationError)
	assert.True(t, ok)
	assert.Equal(t, remote.DataFailed, rerr.Code)
	assert.Equal(t, "d1.first()", rerr.Statement)
}
