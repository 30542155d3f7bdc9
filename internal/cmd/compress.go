package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jessevdk/go-flags"
	"github.com/nguyengg/x7z/internal"
	"github.com/nguyengg/x7z/internal/config"
	"github.com/nguyengg/x7z/internal/naming"
	"github.com/nguyengg/x7z/sevenzz"
	"github.com/nguyengg/x7z/util"
)

type Compress struct {
	Output   flags.Filename `short:"o" long:"output" description:"the archive to create; the extension picks the format and defaults to .7z. By default, a name is derived from the files and placed in the configured output directory" value-name:"ARCHIVE"`
	Level    int            `short:"l" long:"level" description:"compression level from 0 (store) to 9 (ultra); overrides --preset" default:"-1" default-mask:"-"`
	Preset   string         `long:"preset" choice:"fast" choice:"balanced" choice:"maximum" description:"compression preset; by default, the one from the config"`
	Volume   string         `short:"v" long:"volume" description:"split the archive into volumes of this size, e.g. 100m or 4g" value-name:"SIZE"`
	Password bool           `short:"p" long:"password" description:"ask for a password to encrypt the archive with"`
	Force    bool           `long:"force" description:"replace the output archive if it exists instead of picking an unused name"`
	Args     struct {
		Files []flags.Filename `positional-arg-name:"file" description:"the files and directories to compress" required:"yes"`
	} `positional-args:"yes"`

	Env

	logger *log.Logger
}

func (c *Compress) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unknown positional arguments: %s", strings.Join(args, " "))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()

	files := make([]string, len(c.Args.Files))
	for i, f := range c.Args.Files {
		if _, err := os.Stat(string(f)); err != nil {
			return fmt.Errorf(`stat file "%s" error: %w`, f, err)
		}
		files[i] = string(f)
	}

	level, err := c.level()
	if err != nil {
		return err
	}

	archive, err := c.archive(files, time.Now())
	if err != nil {
		return err
	}

	password := ""
	if c.Password {
		if password, err = confirmPassword(); err != nil {
			return err
		}
	}

	c.logger = internal.NewLogger(0, 1, archive)

	client, err := c.client(c.logger)
	if err != nil {
		return fmt.Errorf("compress requires 7zz: %w", err)
	}

	split := c.Volume != ""

	// with --force, 7zz would update an existing archive rather than replace it, so the new one is built under an
	// unused name and only moved over the existing one once 7zz succeeds.
	dst := archive
	if c.Force {
		existing, err := archiveFiles(archive, split)
		if err != nil {
			return err
		}
		if len(existing) != 0 {
			if dst, err = naming.Unused(filepath.Dir(archive), filepath.Base(archive)); err != nil {
				return err
			}
		}
	}

	c.logger.Printf("start compressing %d files", len(files))

	w, done := internal.NewProgressWriter(c.logger, "compressing")
	err = client.Add(ctx, dst, files, func(opts *sevenzz.AddOptions) {
		opts.Level = level
		opts.Volume = c.Volume
		opts.Password = password
		opts.Excludes = c.config().Compression().Excludes
		opts.Overwrite = c.Force
		opts.Output = w
	})
	done()

	if err != nil {
		if dst != archive {
			removeArchive(dst, split)
		}

		c.logger.Print(internal.Fail("compress error: %v", err))
		return err
	}

	if dst != archive {
		if err = replaceArchive(dst, archive, split); err != nil {
			c.logger.Print(internal.Fail("replace existing archive error: %v", err))
			return err
		}
	}

	c.logger.Print(internal.OK("done compressing"))
	c.summarise(files, archive, split)

	if c.Output == "" {
		if err = c.config().RememberOutputDir(filepath.Dir(archive)); err != nil {
			c.logger.Printf("remember output directory error: %v", err)
		}
	}

	return nil
}

// summarise logs the size of the sources against that of the archive, and how many files went in.
func (c *Compress) summarise(files []string, archive string, split bool) {
	srcSize, n := sourceStats(files)

	var dstSize int64
	names, _ := archiveFiles(archive, split)
	for _, name := range names {
		if fi, err := os.Stat(name); err == nil {
			dstSize += fi.Size()
		}
	}

	c.logger.Printf("size: %s", compressionSummary(srcSize, dstSize))
	c.logger.Printf("files: %d processed", n)
}

// sourceStats returns the total size and number of regular files among the given files and directories.
//
// Entries that cannot be read are skipped.
func sourceStats(files []string) (size int64, n int) {
	for _, file := range files {
		_ = filepath.WalkDir(file, func(path string, d fs.DirEntry, err error) error {
			if err != nil || !d.Type().IsRegular() {
				return nil
			}

			if fi, err := d.Info(); err == nil {
				size += fi.Size()
				n++
			}
			return nil
		})
	}

	return
}

// compressionSummary formats "1.0 MiB → 512 KiB (50.0% smaller)".
func compressionSummary(srcSize, dstSize int64) string {
	s := humanize.IBytes(uint64(srcSize)) + " → " + humanize.IBytes(uint64(dstSize))
	if srcSize <= 0 {
		return s
	}

	switch ratio := float64(srcSize-dstSize) / float64(srcSize) * 100; {
	case ratio >= 0:
		return s + fmt.Sprintf(" (%.1f%% smaller)", ratio)
	default:
		return s + fmt.Sprintf(" (%.1f%% larger)", -ratio)
	}
}

// archiveFiles returns the files that make up the named archive if they exist: the archive itself, or its numbered
// volumes ("backup.7z.001", "backup.7z.002", etc.) if split.
func archiveFiles(archive string, split bool) ([]string, error) {
	if !split {
		switch _, err := os.Lstat(archive); {
		case err == nil:
			return []string{archive}, nil
		case errors.Is(err, fs.ErrNotExist):
			return nil, nil
		default:
			return nil, fmt.Errorf(`stat "%s" error: %w`, archive, err)
		}
	}

	dir, base := filepath.Dir(archive), filepath.Base(archive)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf(`read directory "%s" error: %w`, dir, err)
	}

	names := make([]string, 0)
	for _, e := range entries {
		if suffix, ok := strings.CutPrefix(e.Name(), base+"."); ok && isVolumeNumber(suffix) {
			names = append(names, filepath.Join(dir, e.Name()))
		}
	}

	return names, nil
}

func isVolumeNumber(s string) bool {
	if len(s) < 3 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// replaceArchive moves the archive built at src over dst, volumes included.
func replaceArchive(src, dst string, split bool) error {
	if !split {
		if err := os.Rename(src, dst); err != nil {
			return fmt.Errorf(`rename "%s" to "%s" error: %w`, src, dst, err)
		}
		return nil
	}

	removeArchive(dst, split)

	names, err := archiveFiles(src, split)
	if err != nil {
		return err
	}
	for _, name := range names {
		to := dst + strings.TrimPrefix(name, src)
		if err = os.Rename(name, to); err != nil {
			return fmt.Errorf(`rename "%s" to "%s" error: %w`, name, to, err)
		}
	}

	return nil
}

// removeArchive removes the archive or its volumes, ignoring errors.
func removeArchive(archive string, split bool) {
	names, _ := archiveFiles(archive, split)
	for _, name := range names {
		_ = os.Remove(name)
	}
}

// level returns the compression level from --level, --preset, or the config in that order.
func (c *Compress) level() (int, error) {
	switch {
	case c.Level >= 0:
		return config.PresetLevel(config.PresetCustom, c.Level)
	case c.Preset != "":
		return config.PresetLevel(c.Preset, 0)
	default:
		return c.config().Compression().EffectiveLevel()
	}
}

// archive returns the path of the archive to create.
//
// Without --force, a "-N" suffix is added if the archive exists. With --force, the path is returned as-is and Execute
// replaces the existing archive only once the new one has been created.
func (c *Compress) archive(files []string, now time.Time) (string, error) {
	var dir, name string
	if c.Output != "" {
		archive := naming.EnsureExt(util.ExpandHome(string(c.Output)))
		dir, name = filepath.Dir(archive), filepath.Base(archive)
	} else {
		dir = c.config().Output().DefaultDir()
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			dir = filepath.Dir(files[0])
		}

		name = naming.Suggest(files, isDir, now)
	}

	if !c.Force {
		return naming.Unused(dir, name)
	}

	return filepath.Join(dir, name), nil
}

func isDir(name string) bool {
	fi, err := os.Stat(name)
	return err == nil && fi.IsDir()
}

func confirmPassword() (string, error) {
	password, err := internal.ReadPassword("Password: ")
	if err != nil {
		return "", err
	}

	confirm, err := internal.ReadPassword("Confirm password: ")
	if err != nil {
		return "", err
	}

	if password != confirm {
		return "", fmt.Errorf("passwords do not match")
	}

	return password, nil
}
