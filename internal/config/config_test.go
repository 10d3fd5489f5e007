package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadPipeline_ValidNodesAndLinks(t *testing.T) {
	path := writeYAML(t, `
nodes:
  - name: in
    type: udp_in
    params:
      addr: 127.0.0.1:3000
  - name: out
    type: dis_receiver
links:
  - from: in
    to: out
`)
	p, err := loadPipeline(path)
	require.NoError(t, err)
	assert.Len(t, p.Nodes, 2)
	assert.Equal(t, "127.0.0.1:3000", p.Nodes[0].Params["addr"])
	assert.Equal(t, "in", p.Links[0].From)
}

func TestLoadPipeline_DuplicateNodeName(t *testing.T) {
	path := writeYAML(t, `
nodes:
  - name: dup
    type: udp_in
  - name: dup
    type: udp_out
`)
	_, err := loadPipeline(path)
	require.Error(t, err)
}

func TestLoadPipeline_LinkReferencesUnknownNode(t *testing.T) {
	path := writeYAML(t, `
nodes:
  - name: in
    type: udp_in
links:
  - from: in
    to: ghost
`)
	_, err := loadPipeline(path)
	require.Error(t, err)
}

func TestLoad_FlagOverrides(t *testing.T) {
	path := writeYAML(t, `
nodes:
  - name: in
    type: udp_in
`)
	cfg, err := Load([]string{"--config", path, "--loglevel", "debug", "--metrics-addr", ":9090"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Len(t, cfg.Pipeline.Nodes, 1)
}

func TestLoad_DefaultsWhenUnspecified(t *testing.T) {
	path := writeYAML(t, `nodes: []`)
	cfg, err := Load([]string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultMetricsAddr, cfg.MetricsAddr)
}
