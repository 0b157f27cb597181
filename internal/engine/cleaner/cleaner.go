// Package cleaner removes build artifacts.
package cleaner

import (
	"errors"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cleaner removes the built executable and its output folder.
type Cleaner struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a new Cleaner.
func New(fs ports.FileSystem, logger ports.Logger) *Cleaner {
	return &Cleaner{
		fs:     fs,
		logger: logger,
	}
}

// Clean removes the executable described by cfg, then the output folder when
// it is empty or when the executable was not there to begin with. Removing a
// folder that still has content fails silently.
func (c *Cleaner) Clean(cfg domain.BuildConfig) error {
	exePath := cfg.OutputPath()
	folder := cfg.OutputFolder

	exeExists := c.fs.Exists(exePath)
	folderExists := folder != "" && c.fs.Exists(folder)

	if !exeExists && !folderExists {
		err := zerr.With(domain.ErrNothingToClean, "file", exePath)
		return c.report(zerr.With(err, "folder", folder))
	}

	if exeExists {
		if err := c.fs.Remove(exePath); err != nil {
			err = zerr.Wrap(err, domain.ErrRemoveFailed.Error())
			return c.report(zerr.With(err, "file", exePath))
		}
		c.logger.Success("Removed " + exePath)
	}

	if !folderExists {
		return nil
	}

	entries, err := c.fs.ReadDir(folder)
	if err != nil {
		return nil
	}
	if len(entries) == 0 || !exeExists {
		if err := c.fs.Remove(folder); err == nil {
			c.logger.Success("Removed " + folder)
		}
	}

	return nil
}

func (c *Cleaner) report(err error) error {
	c.logger.Error(err)
	return errors.Join(domain.ErrActionFailed, err)
}
