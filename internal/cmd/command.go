package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/nguyengg/x7z/internal"
	"github.com/nguyengg/x7z/internal/config"
	"github.com/nguyengg/x7z/sevenzz"
)

type X7z struct {
	Config  flags.Filename `long:"config" description:"path to the .x7z config file; by default the nearest .x7z up from the working directory, else ~/.x7z" value-name:"FILE"`
	SevenZZ flags.Filename `long:"7zz" description:"path to the 7zz binary; overrides the config and the search of well-known locations" value-name:"PATH"`
	NoColor bool           `long:"no-color" description:"disable colored output"`

	List     List     `command:"list" alias:"l" description:"list the content of archives"`
	Extract  Extract  `command:"extract" alias:"x" description:"extract archives, optionally only some of their files"`
	Compress Compress `command:"compress" alias:"c" alias:"a" description:"compress files and directories into a new archive"`
	Test     Test     `command:"test" alias:"t" description:"test the integrity of archives"`
	Info     Info     `command:"info" alias:"i" description:"show the technical properties of archives"`
	Version  Version  `command:"version" description:"print the version of 7zz"`
}

func NewParser() (*flags.Parser, error) {
	opts := &X7z{}

	p := flags.NewNamedParser("x7z", flags.Default)
	if _, err := p.AddGroup("Global Options", "", opts); err != nil {
		return nil, err
	}

	p.CommandHandler = func(command flags.Commander, args []string) error {
		if command == nil {
			return nil
		}

		if opts.NoColor {
			internal.DisableColor()
		}

		if s, ok := command.(envSetter); ok {
			loader := config.NewLoader()
			if _, err := loader.Load(context.Background(), string(opts.Config)); err != nil {
				return err
			}

			path, err := sevenzz.Locate(string(opts.SevenZZ), loader.SevenZZ())
			if err != nil && !errors.Is(err, sevenzz.ErrNotFound) {
				return fmt.Errorf("locate 7zz error: %w", err)
			}

			s.setEnv(loader, path, err)
		}

		return command.Execute(args)
	}

	return p, nil
}
