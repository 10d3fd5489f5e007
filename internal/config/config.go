// Package config loads the gateway's pipeline description: a YAML file
// naming node instances and the channel links between them, plus CLI flag
// overrides for the config path, metrics address and log level.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// NodeSpec names one node instance in the pipeline: its type (dis_receiver,
// dis_sender, cdis_receiver, cdis_sender, udp_in, udp_out) and free-form
// params the node type interprets (e.g. udp_in's "addr").
type NodeSpec struct {
	Name   string            `yaml:"name"`
	Type   string            `yaml:"type"`
	Params map[string]string `yaml:"params"`
}

// LinkSpec wires one node's outgoing channel to another's incoming channel.
type LinkSpec struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Pipeline is the parsed contents of the YAML pipeline file.
type Pipeline struct {
	Nodes []NodeSpec `yaml:"nodes"`
	Links []LinkSpec `yaml:"links"`
}

// Config is the gateway's fully resolved runtime configuration: the parsed
// pipeline plus CLI overrides.
type Config struct {
	Pipeline    Pipeline
	LogLevel    string
	MetricsAddr string // empty disables the /metrics endpoint
}

const (
	DefaultLogLevel    = "info"
	DefaultConfigPath  = "cdisgw.yaml"
	DefaultMetricsAddr = ""
)

// Load parses CLI flags, reads the pipeline file they (or the default path)
// name, and returns the merged configuration.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("cdisgw", pflag.ContinueOnError)
	configPath := fs.StringP("config", "c", DefaultConfigPath, "Path to the pipeline YAML file")
	loglevel := fs.String("loglevel", DefaultLogLevel, "Log level (debug, info, warn, error)")
	metricsAddr := fs.String("metrics-addr", DefaultMetricsAddr, "Address to serve /metrics on (empty disables)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	pipeline, err := loadPipeline(*configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &Config{
		Pipeline:    pipeline,
		LogLevel:    *loglevel,
		MetricsAddr: *metricsAddr,
	}, nil
}

func loadPipeline(path string) (Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pipeline{}, fmt.Errorf("reading pipeline file %q: %w", path, err)
	}

	var p Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Pipeline{}, fmt.Errorf("parsing pipeline file %q: %w", path, err)
	}

	names := make(map[string]bool, len(p.Nodes))
	for _, n := range p.Nodes {
		if names[n.Name] {
			return Pipeline{}, fmt.Errorf("duplicate node name %q", n.Name)
		}
		names[n.Name] = true
	}
	for _, l := range p.Links {
		if !names[l.From] {
			return Pipeline{}, fmt.Errorf("link references unknown node %q", l.From)
		}
		if !names[l.To] {
			return Pipeline{}, fmt.Errorf("link references unknown node %q", l.To)
		}
	}

	return p, nil
}
