// Package config loads optional settings files into the shared configuration.
package config

import (
	"path/filepath"
	"strings"

	"github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"

	"github.com/Laisky/explain/library/log"
)

// LoadFromFile merges the YAML file at cfgPath into gconfig.Shared.
// An empty path is a no-op, explain runs on flags alone by default.
func LoadFromFile(cfgPath string) error {
	cfgPath = strings.TrimSpace(cfgPath)
	if cfgPath == "" {
		return nil
	}

	gconfig.Shared.Set("cfg_dir", filepath.Dir(cfgPath))
	if err := gconfig.Shared.LoadFromFile(cfgPath); err != nil {
		return errors.Wrapf(err, "load configuration %q", cfgPath)
	}

	log.Logger.Debug("load configuration",
		zap.String("config", cfgPath))
	return nil
}
