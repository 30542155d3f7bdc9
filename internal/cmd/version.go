package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
)

type Version struct {
	Formats bool `long:"formats" description:"also list the archive formats and codecs 7zz supports"`

	Env
}

func (c *Version) Execute(_ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()

	client, err := c.client(log.Default())
	if err != nil {
		return err
	}

	v, err := client.Version(ctx)
	if err != nil {
		return fmt.Errorf("get 7zz version error: %w", err)
	}

	fmt.Printf("%s\n%s\n", client.Path, v)

	if c.Formats {
		formats, err := client.Formats(ctx)
		if err != nil {
			return fmt.Errorf("get 7zz formats error: %w", err)
		}

		fmt.Print(formats)
	}

	return nil
}
