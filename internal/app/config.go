// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/pkgplan/internal/plan"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// DescriptorPath is a descriptor file or a directory of descriptor files.
	DescriptorPath string
	// Root is the package root. Empty means the descriptor's directory.
	Root string

	Format     plan.Format
	OutputPath string // empty writes to the app's output writer
	Schema     bool   // print the descriptor JSON schema instead of planning
	Watch      bool

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DescriptorPath == "" && !cfg.Schema {
		return nil, errors.New("DescriptorPath is a required configuration field and cannot be empty")
	}

	if cfg.Format == "" {
		cfg.Format = plan.FormatText
	}
	format, err := plan.ParseFormat(string(cfg.Format))
	if err != nil {
		return nil, err
	}
	cfg.Format = format

	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat, err = ParseLogFormat(cfg.LogFormat); err != nil {
		return nil, err
	}

	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("healthcheck port %d is out of range", cfg.HealthcheckPort)
	}
	if cfg.HealthcheckPort > 0 && !cfg.Watch {
		return nil, errors.New("a healthcheck port is only served in watch mode")
	}
	if cfg.Schema && cfg.Watch {
		return nil, errors.New("schema output cannot be combined with watch mode")
	}

	return &cfg, nil
}
