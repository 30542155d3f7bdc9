package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/nguyengg/x7z/internal"
	"github.com/nguyengg/x7z/internal/opener"
	"github.com/nguyengg/x7z/sevenzz"
	"github.com/nguyengg/x7z/tree"
	"github.com/nguyengg/x7z/util"
)

// DefaultExtractDir is the name of the directory next to the first archive that receives extracted files if no
// output directory is given.
const DefaultExtractDir = "extracted"

type Extract struct {
	Output    flags.Filename `short:"o" long:"output" description:"the directory to extract to; by default, a directory named extracted next to the first archive" value-name:"DIR"`
	Mode      string         `long:"mode" choice:"separate" choice:"combined" default:"separate" description:"with many archives, extract each to its own sub-directory (separate) or all to the same directory (combined)"`
	Overwrite string         `long:"overwrite" choice:"overwrite" choice:"skip" choice:"rename" default:"overwrite" description:"what to do with files that already exist"`
	Toggles   []string       `short:"t" long:"toggle" description:"archive path to toggle for selective extraction; toggling a directory toggles everything under it. Can be repeated" value-name:"PATH"`
	Pick      string         `long:"pick" description:"numbers from the list command to extract, such as \"1-5 8\", or \"all\"" value-name:"NUMBERS"`
	Open      bool           `long:"open" description:"open the output directory afterwards"`
	Password  bool           `short:"p" long:"password" description:"ask for the password upfront instead of only when 7zz needs one"`
	Args      struct {
		Archives []flags.Filename `positional-arg-name:"archive" description:"the archives to extract" required:"yes"`
	} `positional-args:"yes"`

	Env

	logger *log.Logger
}

func (c *Extract) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unknown positional arguments: %s", strings.Join(args, " "))
	}

	selective := len(c.Toggles) != 0 || c.Pick != ""
	if selective && len(c.Args.Archives) != 1 {
		return fmt.Errorf("--toggle and --pick can only be used with a single archive")
	}

	overwrite, err := sevenzz.ParseOverwrite(c.Overwrite)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()

	client, err := c.client(log.Default())
	if err != nil {
		return fmt.Errorf("extract requires 7zz: %w", err)
	}

	root := c.root()

	success, passwordErrors := 0, 0
	n := len(c.Args.Archives)
	for i, file := range c.Args.Archives {
		archive := string(file)
		c.logger = internal.NewLogger(i, n, archive)
		client.Logger = c.logger

		dir := c.destination(root, archive)
		c.logger.Printf(`start extracting to "%s"`, dir)

		if err = c.extract(ctx, client, archive, dir, selective, overwrite); err == nil {
			c.logger.Print(internal.OK("done extracting"))
			success++
			continue
		}

		if errors.Is(err, context.Canceled) {
			break
		}

		if errors.Is(err, sevenzz.ErrPasswordRequired) {
			passwordErrors++
			c.logger.Print(internal.Fail("archive is encrypted and the password is missing or wrong"))
			continue
		}

		c.logger.Print(internal.Fail("extract error: %v", err))
	}

	log.Printf("successfully extracted %d/%d archives", success, n)
	if passwordErrors != 0 {
		log.Print(internal.Warn("%d archives need a password, try again with -p", passwordErrors))
	}

	if success != 0 && (c.Open || c.config().Extract().AutoOpen) {
		if err = opener.Open(root); err != nil {
			log.Printf("open output directory error: %v", err)
		}
	}

	return nil
}

// root returns the directory that receives every extracted archive.
func (c *Extract) root() string {
	if c.Output != "" {
		return util.ExpandHome(string(c.Output))
	}

	return filepath.Join(filepath.Dir(string(c.Args.Archives[0])), DefaultExtractDir)
}

// destination returns the directory to extract the given archive to.
//
// In separate mode with many archives, each gets its own sub-directory named after the archive's stem.
func (c *Extract) destination(root, archive string) string {
	if c.Mode == "combined" || len(c.Args.Archives) == 1 {
		return root
	}

	stem, _ := util.StemAndExt(filepath.Base(archive))
	return filepath.Join(root, stem)
}

func (c *Extract) extract(ctx context.Context, client *sevenzz.Client, archive, dir string, selective bool, overwrite sevenzz.Overwrite) (err error) {
	var (
		files    []string
		password string
	)

	if selective {
		if files, password, err = c.selection(ctx, archive); err != nil {
			return err
		}

		c.logger.Printf("selected %d entries", len(files))
	} else if c.Password {
		if password, err = internal.ReadPassword(fmt.Sprintf("Password for %s: ", archive)); err != nil {
			return err
		}
	}

	run := func(password string) error {
		w, done := internal.NewProgressWriter(c.logger, "extracting")
		defer done()

		return client.Extract(ctx, archive, dir, func(opts *sevenzz.ExtractOptions) {
			opts.Password = password
			opts.Overwrite = overwrite
			opts.Files = files
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

// selection lists the archive and returns the archive paths chosen by --toggle and --pick, plus the password used to
// list the archive if any.
//
// Toggles are applied in order with tri-state semantics, so toggling "a" then "a/b" extracts everything in "a" except
// "a/b". Picks are then added to the selection.
func (c *Extract) selection(ctx context.Context, archive string) ([]string, string, error) {
	records, password, err := c.listArchive(ctx, archive, c.Password, c.logger)
	if err != nil {
		return nil, "", fmt.Errorf("list error: %w", err)
	}

	f := tree.Build(records)
	sel, err := c.selectRecords(f, len(records))
	if err != nil {
		return nil, "", err
	}

	files := f.ResolveExtract(records, sel)
	if len(files) == 0 {
		return nil, "", fmt.Errorf("nothing selected")
	}

	return files, password, nil
}

func (c *Extract) selectRecords(f *tree.Forest, n int) (tree.Selection, error) {
	sel := tree.NewSelection()

	for _, path := range c.Toggles {
		id, ok := f.Lookup(path)
		if !ok {
			return nil, fmt.Errorf(`path "%s" not found in archive`, path)
		}

		f.Toggle(id, sel)
	}

	if c.Pick != "" {
		picks, err := parsePicks(c.Pick, n)
		if err != nil {
			return nil, err
		}

		for i := range picks {
			sel.Add(i)
		}
	}

	return sel, nil
}
