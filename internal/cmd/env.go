package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/nguyengg/x7z/internal"
	"github.com/nguyengg/x7z/internal/config"
	"github.com/nguyengg/x7z/listing"
	"github.com/nguyengg/x7z/sevenzz"
)

type envSetter interface {
	setEnv(loader *config.Loader, path string, locateErr error)
}

// Env is embedded by commands that need the configuration or 7zz.
//
// The parser's command handler fills it in from the global options before calling Execute.
type Env struct {
	loader    *config.Loader
	path      string
	locateErr error
}

func (e *Env) setEnv(loader *config.Loader, path string, locateErr error) {
	e.loader, e.path, e.locateErr = loader, path, locateErr
}

func (e *Env) config() *config.Loader {
	if e.loader == nil {
		e.loader = config.NewLoader()
	}

	return e.loader
}

// client returns a client for the located 7zz that logs with the given logger.
func (e *Env) client(logger *log.Logger) (*sevenzz.Client, error) {
	if e.path == "" && e.locateErr == nil {
		e.path, e.locateErr = sevenzz.Locate(e.config().SevenZZ())
	}
	if e.locateErr != nil {
		return nil, e.locateErr
	}

	return sevenzz.New(e.path, func(c *sevenzz.Client) {
		c.Logger = logger
	}), nil
}

// listArchive lists the archive with 7zz, asking for a password if needed.
//
// If prompt is true, the password is asked for upfront. Otherwise, it is only asked for if 7zz needs one and stdin is a
// terminal. The password that worked is returned so that extraction need not ask again. If 7zz cannot be found, the
// archive is listed natively instead, which does not support encrypted archives.
func (e *Env) listArchive(ctx context.Context, archive string, prompt bool, logger *log.Logger) ([]listing.FileRecord, string, error) {
	client, err := e.client(logger)
	if errors.Is(err, sevenzz.ErrNotFound) {
		logger.Printf("7zz not found, listing natively")

		records, err := listing.FromArchive(ctx, archive)
		return records, "", err
	}
	if err != nil {
		return nil, "", err
	}

	password := ""
	if prompt {
		if password, err = internal.ReadPassword(fmt.Sprintf("Password for %s: ", archive)); err != nil {
			return nil, "", err
		}
	}

	records, err := client.List(ctx, archive, func(opts *sevenzz.ListOptions) {
		opts.Password = password
	})
	if errors.Is(err, sevenzz.ErrPasswordRequired) && !prompt && internal.CanPrompt() {
		if password, err = internal.ReadPassword(fmt.Sprintf("%s is encrypted, password: ", archive)); err != nil {
			return nil, "", err
		}

		records, err = client.List(ctx, archive, func(opts *sevenzz.ListOptions) {
			opts.Password = password
		})
	}

	return records, password, err
}
