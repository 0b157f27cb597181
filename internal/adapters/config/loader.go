// Package config provides the configuration loader for kiln.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path. A missing file is reported as a
// warning and treated as an empty configuration.
func (l *Loader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("no " + path + " found, using an empty configuration")
			return &domain.Config{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	return Parse(data, path)
}

// Parse decodes YAML configuration data. path is only used in error metadata.
func Parse(data []byte, path string) (*domain.Config, error) {
	var kilnfile Kilnfile
	if err := yaml.Unmarshal(data, &kilnfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	cfg := &domain.Config{}

	if b := kilnfile.Build; b != nil {
		cfg.Build = domain.BuildConfig{
			SourceFiles:      b.SourceFiles,
			OutputExecutable: b.OutputExecutable,
			Compiler:         b.Compiler,
			CompilerFlags:    b.CompilerFlags,
			AdditionalFlags:  b.AdditionalFlags,
			Libs:             b.Libs,
			OutputFolder:     b.OutputFolder,
			Commands:         b.Commands,
		}
	}

	if len(kilnfile.Tasks) > 0 {
		cfg.Tasks = make(map[string]domain.Task, len(kilnfile.Tasks))
	}
	for key, dto := range kilnfile.Tasks {
		task := domain.Task{Name: key}
		if dto != nil {
			if dto.Name != "" {
				task.Name = dto.Name
			}
			task.Commands = dto.Commands
		}
		cfg.Tasks[key] = task
	}

	return cfg, nil
}
