package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sw-vish/cdisgw/internal/config"
)

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)
	return logger.Sugar()
}

func TestBuild_WiresSenderToReceiver(t *testing.T) {
	spec := config.Pipeline{
		Nodes: []config.NodeSpec{
			{Name: "in", Type: "dis_receiver"},
			{Name: "out", Type: "cdis_sender"},
		},
		Links: []config.LinkSpec{
			{From: "in", To: "out"},
		},
	}

	p, err := Build(spec, testLogger(t))
	require.NoError(t, err)
	assert.Len(t, p.nodes, 2)
}

func TestBuild_UnknownNodeType(t *testing.T) {
	spec := config.Pipeline{
		Nodes: []config.NodeSpec{{Name: "bad", Type: "not_a_real_type"}},
	}
	_, err := Build(spec, testLogger(t))
	require.Error(t, err)
}

func TestBuild_LinkToUnknownNode(t *testing.T) {
	spec := config.Pipeline{
		Nodes: []config.NodeSpec{{Name: "in", Type: "dis_receiver"}},
		Links: []config.LinkSpec{{From: "in", To: "nonexistent"}},
	}
	_, err := Build(spec, testLogger(t))
	require.Error(t, err)
}

func TestMergeChannels_ClosesWhenAllSourcesClose(t *testing.T) {
	a := make(chan []byte, 1)
	b := make(chan []byte, 1)
	a <- []byte("from-a")
	close(a)
	close(b)

	merged := mergeChannels([]<-chan []byte{a, b})
	got, ok := <-merged
	require.True(t, ok)
	assert.Equal(t, []byte("from-a"), got)

	_, ok = <-merged
	assert.False(t, ok, "merged channel should close once every source has closed")
}

func TestMergeChannels_NoSourcesClosesImmediately(t *testing.T) {
	merged := mergeChannels(nil)
	_, ok := <-merged
	assert.False(t, ok)
}
