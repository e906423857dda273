package spark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjykzk/sparkml-client-go/kernel"
	"github.com/zjykzk/sparkml-client-go/log"
	"github.com/zjykzk/sparkml-client-go/remote"
)

func TestContext(t *testing.T) {
	m := &remote.MockClient{}
	s := kernel.NewSessionWithClient(
		kernel.Config{RefGenerator: kernel.SequentialRefs("ref")}, m, &log.MockLogger{},
	)
	require.Nil(t, s.Start())

	sc, err := NewContext(s, "local[*]", "isotonic")
	require.Nil(t, err)
	assert.Equal(t, kernel.RefID("ref1"), sc.RefID())
	assert.Equal(t, s, sc.Session())

	d, err := sc.Parallelize([][]float64{{1, 1, 1}, {2, 2, 1}})
	require.Nil(t, err)
	assert.Equal(t, kernel.RefID("ref2"), d.RefID())
	assert.Equal(t, s, d.Session())

	_, err = sc.TextFile("data/isotonic.txt")
	require.Nil(t, err)

	require.Nil(t, sc.Stop())

	assert.Equal(t, []string{
		`ref1 = new SparkContext("local[*]", "isotonic");`,
		"ref2 = ref1.parallelize([[1,1,1],[2,2,1]]);",
		`ref3 = ref1.textFile("data/isotonic.txt");`,
		"ref1.stop();",
	}, m.Bodies())

	assert.Equal(t, kernel.RefID("sc"), WrapContext(s, "sc").RefID())
	assert.Len(t, m.Requests, 4)
}

func TestContextFailure(t *testing.T) {
	m := &remote.MockClient{}
	s := kernel.NewSessionWithClient(kernel.Config{}, m, &log.MockLogger{})
	require.Nil(t, s.Start())
	m.Responder = func(addr string, cmd *remote.Command) (*remote.Command, error) {
		return remote.NewResponse(cmd, remote.SystemError, "no master", nil), nil
	}

	sc, err := NewContext(s, "spark://nowhere:7077", "isotonic")
	assert.Nil(t, sc)
	assert.True(t, kernel.IsRemoteEvaluationError(err))

	d, err := WrapContext(s, "sc").Parallelize([]float64{1})
	assert.Nil(t, d)
	assert.True(t, kernel.IsRemoteEvaluationError(err))
}
