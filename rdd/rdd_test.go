package rdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjykzk/sparkml-client-go/kernel"
	"github.com/zjykzk/sparkml-client-go/log"
	"github.com/zjykzk/sparkml-client-go/remote"
)

func TestRDD(t *testing.T) {
	m := &remote.MockClient{}
	s := kernel.NewSessionWithClient(
		kernel.Config{RefGenerator: kernel.SequentialRefs("ref")}, m, &log.MockLogger{},
	)
	require.Nil(t, s.Start())
	m.Responder = func(addr string, cmd *remote.Command) (*remote.Command, error) {
		switch string(cmd.Body) {
		case "d1.count()":
			return remote.NewResponse(cmd, remote.Success, "", []byte("3")), nil
		case "d1.collect()":
			return remote.NewResponse(cmd, remote.Success, "", []byte("[[1,1,1],[2,2,1],[3,3,1]]")), nil
		}
		return remote.NewResponse(cmd, remote.Success, "", nil), nil
	}

	d := Wrap(s, "d1")
	assert.Equal(t, kernel.RefID("d1"), d.RefID())
	assert.Equal(t, s, d.Session())
	assert.Empty(t, m.Requests)

	n, err := d.Count()
	require.Nil(t, err)
	assert.Equal(t, int64(3), n)

	var tuples [][3]float64
	require.Nil(t, d.Collect(&tuples))
	assert.Equal(t, [][3]float64{{1, 1, 1}, {2, 2, 1}, {3, 3, 1}}, tuples)

	c, err := d.Cache()
	require.Nil(t, err)
	assert.Equal(t, kernel.RefID("ref1"), c.RefID())
	assert.Equal(t, "ref1 = d1.cache();", m.Bodies()[2])
	assert.Equal(t, kernel.RefID("d1"), d.RefID())
}
