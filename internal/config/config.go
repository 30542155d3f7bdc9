package config

import (
	"fmt"
	"strings"

	"github.com/nguyengg/x7z/util"
)

// Compression presets.
const (
	PresetFast     = "fast"
	PresetBalanced = "balanced"
	PresetMaximum  = "maximum"
	PresetCustom   = "custom"
)

// DefaultExcludes are left out of every archive unless the config says otherwise.
var DefaultExcludes = []string{".DS_Store", ".Thumbs.db", "Thumbs.db"}

// CompressConfig contains compression settings from the [compress] section.
type CompressConfig struct {
	Preset   string
	Level    int
	Excludes []string
}

// PresetLevel returns the compression level of the given preset. The custom preset uses level.
func PresetLevel(preset string, level int) (int, error) {
	switch strings.ToLower(preset) {
	case PresetFast:
		return 1, nil
	case PresetBalanced, "":
		return 5, nil
	case PresetMaximum:
		return 9, nil
	case PresetCustom:
		if level < 0 || level > 9 {
			return 0, fmt.Errorf("invalid compression level: %d", level)
		}
		return level, nil
	default:
		return 0, fmt.Errorf("unknown compression preset: %s", preset)
	}
}

// EffectiveLevel returns the compression level to use.
func (c CompressConfig) EffectiveLevel() (int, error) {
	return PresetLevel(c.Preset, c.Level)
}

// Compression returns the [compress] settings.
func (l *Loader) Compression() (c CompressConfig) {
	sec := l.cfg.Section("compress")

	c.Preset = sec.Key("preset").MustString(PresetBalanced)
	c.Level = sec.Key("level").MustInt(5)

	if sec.HasKey("exclude") {
		c.Excludes = sec.Key("exclude").Strings(",")
	} else {
		c.Excludes = append([]string(nil), DefaultExcludes...)
	}

	return
}

// OutputConfig contains settings from the [output] section.
type OutputConfig struct {
	Dir          string
	RememberLast bool
	Last         string
}

// DefaultDir returns where new archives go by default: the last used directory if remembered, else Dir.
func (c OutputConfig) DefaultDir() string {
	if c.RememberLast && c.Last != "" {
		return c.Last
	}

	return c.Dir
}

// Output returns the [output] settings with "~" expanded.
func (l *Loader) Output() (c OutputConfig) {
	sec := l.cfg.Section("output")

	c.Dir = util.ExpandHome(sec.Key("dir").MustString("~/Desktop"))
	c.RememberLast = sec.Key("remember-last").MustBool(true)
	if v := sec.Key("last").String(); v != "" {
		c.Last = util.ExpandHome(v)
	}

	return
}

// RememberOutputDir saves dir as the last output directory if the config asks for it.
func (l *Loader) RememberOutputDir(dir string) error {
	if !l.Output().RememberLast {
		return nil
	}

	l.cfg.Section("output").Key("last").SetValue(dir)
	return l.save()
}

// ExtractConfig contains settings from the [extract] section.
type ExtractConfig struct {
	AutoOpen bool
}

// Extract returns the [extract] settings.
func (l *Loader) Extract() (c ExtractConfig) {
	c.AutoOpen = l.cfg.Section("extract").Key("auto-open").MustBool(false)
	return
}

// SevenZZ returns the configured path to the 7zz binary, empty if not configured.
func (l *Loader) SevenZZ() string {
	if v := l.cfg.Section("7zz").Key("path").String(); v != "" {
		return util.ExpandHome(v)
	}

	return ""
}
