package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/nguyengg/x7z/internal"
	"github.com/nguyengg/x7z/sevenzz"
)

type Test struct {
	Password bool `short:"p" long:"password" description:"ask for the password upfront instead of only when 7zz needs one"`
	Args     struct {
		Archives []flags.Filename `positional-arg-name:"archive" description:"the archives to test" required:"yes"`
	} `positional-args:"yes"`

	Env

	logger *log.Logger
}

// Execute tests every archive and fails if any of them is damaged or could not be tested.
func (c *Test) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unknown positional arguments: %s", strings.Join(args, " "))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()

	client, err := c.client(log.Default())
	if err != nil {
		return fmt.Errorf("test requires 7zz: %w", err)
	}

	success := 0
	n := len(c.Args.Archives)
	for i, file := range c.Args.Archives {
		archive := string(file)
		c.logger = internal.NewLogger(i, n, archive)
		client.Logger = c.logger

		c.logger.Printf("start testing")

		if err = c.test(ctx, client, archive); err == nil {
			c.logger.Print(internal.OK("archive is ok"))
			success++
			continue
		}

		if errors.Is(err, context.Canceled) {
			break
		}

		if errors.Is(err, sevenzz.ErrPasswordRequired) {
			c.logger.Print(internal.Fail("archive is encrypted and the password is missing or wrong"))
			continue
		}

		c.logger.Print(internal.Fail("test error: %v", err))
	}

	log.Printf("successfully tested %d/%d archives", success, n)
	if errors.Is(err, context.Canceled) {
		return err
	}
	if success != n {
		return fmt.Errorf("%d/%d archives failed testing", n-success, n)
	}

	return nil
}

func (c *Test) test(ctx context.Context, client *sevenzz.Client, archive string) (err error) {
	password := ""
	if c.Password {
		if password, err = internal.ReadPassword(fmt.Sprintf("Password for %s: ", archive)); err != nil {
			return err
		}
	}

	run := func(password string) error {
		w, done := internal.NewProgressWriter(c.logger, "testing")
		defer done()

		return client.Test(ctx, archive, func(opts *sevenzz.TestOptions) {
			opts.Password = password
			opts.Output = w
		})
	}

	err = run(password)
	if errors.Is(err, sevenzz.ErrPasswordRequired) && password == "" && internal.CanPrompt() {
		if password, err = internal.ReadPassword(fmt.Sprintf("%s is encrypted, password: ", archive)); err != nil {
			return err
		}

		err = run(password)
	}

	return err
}
