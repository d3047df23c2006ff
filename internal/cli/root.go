// Package cli implements the bookmark command line.
package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/bookmark"
	"github.com/gogpu/bookmark/internal/config"
	"github.com/gogpu/bookmark/rng"
	"github.com/gogpu/bookmark/text"
)

// version is set at link time; it defaults to the module version.
var version = bookmark.Version

// Global flags.
var (
	configPath string
	fontPath   string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Generate printable code bookmarks as SVG",
	Long: `bookmark lays out seeded fake source code (or organic shapes) on a
48 by 164 mm page, merges the glyphs into one silhouette and writes it as
SVG, ready for a plotter or a laser cutter.

Parameters come from a TOML file (see "bookmark init") and can be
overridden with flags. The same seed and parameters always produce the
same file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		setupLogging(cmd.ErrOrStderr(), verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"parameter file (default ./"+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().StringVar(&fontPath, "font", "", "TTF/OTF font file (default Go Mono)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log render details to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	bookmark.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// resolveConfig returns the parameter file to read, or "" for defaults.
func resolveConfig() string {
	if configPath != "" {
		return configPath
	}
	if _, err := os.Stat(config.DefaultFile); err == nil {
		return config.DefaultFile
	}
	return ""
}

func loadParams() (bookmark.Params, error) {
	return config.Load(resolveConfig())
}

// loadFont opens the --font file or the built-in Go Mono.
func loadFont() (*text.FontSource, error) {
	if fontPath == "" {
		return text.DefaultFontSource()
	}
	return text.NewFontSourceFromFile(fontPath)
}

// ensureSeed fills in a fresh seed when p has none.
func ensureSeed(p *bookmark.Params) error {
	if p.Seed != "" {
		return nil
	}
	seed, err := rng.NewSeed(0)
	if err != nil {
		return err
	}
	p.Seed = seed
	bookmark.Logger().Info("generated seed", "seed", seed)
	return nil
}

// newRenderer loads the font only when the mode needs one.
func newRenderer(mode bookmark.Mode) (*bookmark.Renderer, func(), error) {
	if mode == bookmark.ModeShapes && fontPath == "" {
		return bookmark.NewRenderer(nil), func() {}, nil
	}
	src, err := loadFont()
	if err != nil {
		return nil, nil, err
	}
	return bookmark.NewRenderer(src), func() { _ = src.Close() }, nil
}

var errNoConfig = errors.New("no parameter file: pass --config or run \"bookmark init\"")
