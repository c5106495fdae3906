// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Source priorities. Higher values override non-zero fields of lower ones.
const (
	priorityDefaults = iota
	priorityFile
	priorityEnv
	priorityFlags
)

type layer struct {
	priority int
	cfg      *StructuredConfig
}

type configBuilder struct {
	layers []layer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]layer, 0, 4),
	}
}

func (b *configBuilder) add(priority int, cfg *StructuredConfig) {
	b.layers = append(b.layers, layer{priority: priority, cfg: cfg})
}

// merge folds all layers from lowest to highest priority.
func (b *configBuilder) merge() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for p := priorityDefaults; p <= priorityFlags; p++ {
		for _, l := range b.layers {
			if l.priority != p {
				continue
			}
			if err := mergo.Merge(config, l.cfg, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("error merging configs: %w", err)
			}
		}
	}

	return config, nil
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	config, err := b.merge()
	if err != nil {
		return nil, err
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.add(priorityDefaults, Defaults())
	return b
}

// withDotEnv loads ENV_FILE, or ".env" when unset, into the environment.
func (b *configBuilder) withDotEnv() *configBuilder {
	probe := &StructuredConfig{}
	if err := parseEnv(probe); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	path, explicit := probe.EnvFile, true
	if path == "" {
		path, explicit = ".env", false
	}
	if err := loadDotEnv(path, explicit); err != nil {
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

	b.add(priorityEnv, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	// a dotenv file named on the command line is loaded before merging
	if flagsCfg.EnvFile != "" {
		if err := loadDotEnv(flagsCfg.EnvFile, true); err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		envCfg := &StructuredConfig{}
		if err := parseEnv(envCfg); err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.add(priorityEnv, envCfg)
	}

	b.add(priorityFlags, flagsCfg)
	return b
}

// withFile adds the config file named by the highest-priority layer.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	best := -1
	for _, l := range b.layers {
		if l.cfg.FilePath != "" && l.priority > best {
			path, best = l.cfg.FilePath, l.priority
		}
	}
	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.add(priorityFile, fileCfg)
	return b
}
