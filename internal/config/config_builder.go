package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error

	parseFlags func() (*StructuredConfig, error)
	flagCfg    *StructuredConfig
	flagErr    error
	flagsDone  bool
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:    make([]*StructuredConfig, 0, 4),
		parseFlags: ParseFlags,
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// flags parses the command line at most once; withDotEnv and withFlags
// share the result.
func (b *configBuilder) flags() (*StructuredConfig, error) {
	if !b.flagsDone {
		b.flagCfg, b.flagErr = b.parseFlags()
		b.flagsDone = true
	}
	return b.flagCfg, b.flagErr
}

// withDotEnv loads .env mode files into the process environment so that
// the following withEnv picks them up. A -mode flag selects the mode files
// ahead of APP_BUILD_MODE.
func (b *configBuilder) withDotEnv() *configBuilder {
	dir := os.Getenv("ENV_DIR")
	if dir == "" {
		dir = "."
	}

	mode := os.Getenv("APP_BUILD_MODE")
	if flagCfg, err := b.flags(); err == nil && flagCfg != nil && flagCfg.App.BuildMode != "" {
		mode = flagCfg.App.BuildMode
	}

	if err := loadDotEnv(dir, mode); err != nil {
		b.err = errors.Join(b.err, err)
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := b.flags()
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error parsing flags: %w", err))
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
