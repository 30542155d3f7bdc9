package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jessevdk/go-flags"
	"github.com/nguyengg/x7z/internal"
	"github.com/nguyengg/x7z/listing"
	"github.com/nguyengg/x7z/sevenzz"
)

type Info struct {
	JSON     bool `long:"json" description:"print the properties as JSON"`
	Password bool `short:"p" long:"password" description:"ask for the password upfront instead of only when 7zz needs one"`
	Args     struct {
		Archives []flags.Filename `positional-arg-name:"archive" description:"the archives to describe" required:"yes"`
	} `positional-args:"yes"`

	Env

	logger *log.Logger
}

func (c *Info) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unknown positional arguments: %s", strings.Join(args, " "))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()

	client, err := c.client(log.Default())
	if err != nil {
		return fmt.Errorf("info requires 7zz: %w", err)
	}

	success := 0
	n := len(c.Args.Archives)
	for i, file := range c.Args.Archives {
		archive := string(file)
		c.logger = internal.NewLogger(i, n, archive)
		client.Logger = c.logger

		info, err := c.info(ctx, client, archive)
		if err == nil {
			if err = c.render(os.Stdout, archive, info); err != nil {
				c.logger.Printf("write info error: %v", err)
			}
			success++
			continue
		}

		if errors.Is(err, context.Canceled) {
			break
		}

		c.logger.Print(internal.Fail("info error: %v", err))
	}

	if n > 1 {
		log.Printf("successfully described %d/%d archives", success, n)
	}
	return nil
}

func (c *Info) info(ctx context.Context, client *sevenzz.Client, archive string) (info listing.ArchiveInfo, err error) {
	password := ""
	if c.Password {
		if password, err = internal.ReadPassword(fmt.Sprintf("Password for %s: ", archive)); err != nil {
			return
		}
	}

	info, err = client.Info(ctx, archive, func(opts *sevenzz.ListOptions) {
		opts.Password = password
	})
	if errors.Is(err, sevenzz.ErrPasswordRequired) && password == "" && internal.CanPrompt() {
		if password, err = internal.ReadPassword(fmt.Sprintf("%s is encrypted, password: ", archive)); err != nil {
			return
		}

		info, err = client.Info(ctx, archive, func(opts *sevenzz.ListOptions) {
			opts.Password = password
		})
	}

	return
}

func (c *Info) render(w io.Writer, archive string, info listing.ArchiveInfo) error {
	if c.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	writeInfo(w, archive, info)
	return nil
}

// writeInfo prints the properties of the archive aligned on their keys, with the physical size humanized.
func writeInfo(w io.Writer, archive string, info listing.ArchiveInfo) {
	_, _ = fmt.Fprintln(w, archive)

	width := 0
	for _, p := range info.Properties {
		width = max(width, len(p.Key))
	}

	for _, p := range info.Properties {
		value := p.Value
		if strings.EqualFold(p.Key, "physical size") && info.PhysicalSize > 0 {
			value = fmt.Sprintf("%s (%s)", value, humanize.IBytes(uint64(info.PhysicalSize)))
		}

		_, _ = fmt.Fprintf(w, "  %-*s  %s\n", width, p.Key, value)
	}
}
