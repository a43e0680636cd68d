package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"goa.design/autoreg/codegen"
	"goa.design/autoreg/codegen/discover"
	"goa.design/autoreg/codegen/model"
)

type (
	// Config is the content of the YAML configuration file.
	//
	//	contract:
	//	  registry: Children
	//	  register: AddChild
	//	tags: [integration]
	//	prune: true
	//	cache_size: 1024
	Config struct {
		// Contract overrides members of the default registry contract.
		Contract model.Contract `yaml:"contract"`
		// Tags lists the build tags used when loading packages.
		Tags []string `yaml:"tags"`
		// Prune removes stale generated files.
		Prune bool `yaml:"prune"`
		// CacheSize is the number of rendered files kept in memory by
		// the watch command. Zero disables the cache.
		CacheSize *int `yaml:"cache_size"`
	}

	// settings is the configuration of a run once flags are applied.
	settings struct {
		contract  model.Contract
		tags      []string
		prune     bool
		dryRun    bool
		keepGoing bool
		cacheSize int
	}
)

// loadConfig reads the configuration file at path. An empty path yields the
// zero configuration.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.CacheSize != nil && *cfg.CacheSize < 0 {
		return nil, fmt.Errorf("parse config: cache_size must not be negative, got %d", *cfg.CacheSize)
	}
	return &cfg, nil
}

// settings merges the configuration file with the flags of cmd. Flags set
// on the command line take precedence.
func (o *options) settings(cmd *cobra.Command) (*settings, error) {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	s := &settings{
		contract:  cfg.Contract.WithDefaults(),
		tags:      cfg.Tags,
		prune:     cfg.Prune,
		dryRun:    o.dryRun,
		keepGoing: o.keepGoing,
		cacheSize: codegen.DefaultCacheSize,
	}
	if cfg.CacheSize != nil {
		s.cacheSize = *cfg.CacheSize
	}
	if cmd.Flags().Changed("tags") {
		s.tags = o.tags
	}
	if cmd.Flags().Changed("prune") {
		s.prune = o.prune
	}
	if err := s.contract.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registry contract: %w", err)
	}
	return s, nil
}

// generator returns a generator loading packages from dir.
func (s *settings) generator(dir string) (*codegen.Generator, error) {
	return codegen.New(
		codegen.WithContract(s.contract),
		codegen.WithLoadConfig(discover.Config{Dir: dir, Tags: s.tags}),
		codegen.WithCacheSize(s.cacheSize),
	)
}

func (s *settings) writeOptions() codegen.WriteOptions {
	return codegen.WriteOptions{DryRun: s.dryRun, Prune: s.prune}
}
