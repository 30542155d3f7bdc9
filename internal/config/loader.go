package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-ini/ini"
)

// FileName is the name of the configuration file looked up by Loader.Load.
const FileName = ".x7z"

// Loader loads .x7z configuration and provides defaults for every missing setting.
//
// Create one with NewLoader and pass it to whoever needs it; there is no package-level instance.
type Loader struct {
	cfg  *ini.File
	path string
}

// NewLoader returns a Loader with no file loaded, so every setting has its default value.
func NewLoader() *Loader {
	return &Loader{cfg: ini.Empty()}
}

// Load loads the named configuration file.
//
// If name is empty, the directory hierarchy is traversed upwards from the working directory to find the first .x7z
// file, falling back to ~/.x7z. A missing file is not an error: the returned path is where RememberOutputDir will
// save to, and every setting keeps its default.
func (l *Loader) Load(ctx context.Context, name string) (string, error) {
	if name == "" {
		var err error
		if name, err = find(ctx); err != nil {
			return "", err
		}
	}

	l.path = name

	if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
		l.cfg = ini.Empty()
		return name, nil
	}

	switch cfg, err := ini.Load(name); {
	case err == nil:
		l.cfg = cfg
	default:
		l.cfg = ini.Empty()
		return name, fmt.Errorf(`load config "%s" error: %w`, name, err)
	}

	return name, nil
}

// Path returns the path of the configuration file, empty if Load has not been called.
func (l *Loader) Path() string {
	return l.path
}

func find(ctx context.Context) (string, error) {
	cur, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		path := filepath.Join(cur, FileName)
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory error: %w", err)
	}

	return filepath.Join(home, FileName), nil
}

// save writes the configuration back to Path.
func (l *Loader) save() error {
	if l.path == "" {
		return fmt.Errorf("no config file loaded")
	}

	if err := l.cfg.SaveTo(l.path); err != nil {
		return fmt.Errorf(`save config "%s" error: %w`, l.path, err)
	}

	return nil
}
