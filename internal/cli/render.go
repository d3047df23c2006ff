package cli

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/bookmark"
	"github.com/gogpu/bookmark/internal/config"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one bookmark",
	Long: `Renders the bookmark described by the parameter file and writes the SVG
to --output, or to stdout when no output is given.

Flags override the matching keys of the parameter file. Without a seed a
new one is drawn and printed in the summary.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

var renderOpts struct {
	output string
	copy   bool
}

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderOpts.output, "output", "o", "", "output file (default stdout)")
	f.BoolVar(&renderOpts.copy, "copy", false, "also copy the SVG to the clipboard")
	addParamFlags(f)
	rootCmd.AddCommand(renderCmd)
}

// addParamFlags registers the flags that override parameter keys.
func addParamFlags(f *pflag.FlagSet) {
	def := bookmark.DefaultParams()
	f.String("seed", "", "seed (default: random)")
	f.String("mode", string(def.Mode), `content mode, "text" or "shapes"`)
	f.Int("lines", def.Lines, "number of generated code lines")
	f.Float64("font-size", def.FontSize, "font size in mm")
	f.Float64("line-factor", def.LineFactor, "line height as a multiple of the font height")
	f.Int("precision", def.Precision, "decimals kept in glyph coordinates")
	f.Bool("header", def.Header, "print the studio header above the code")
	f.String("fill", def.Fill, "outline fill color")
	f.String("background", def.Background, `background color, "none" for transparent`)
	f.Bool("clip", def.ClipToFrame, "clip the outline to the margin frame")
	f.Bool("frame", def.ShowFrame, "draw the margin frame for debugging")
}

// applyParamFlags copies every flag the user set onto p.
func applyParamFlags(f *pflag.FlagSet, p *bookmark.Params) error {
	var err error
	f.Visit(func(fl *pflag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "seed":
			p.Seed, err = f.GetString("seed")
		case "mode":
			var m string
			m, err = f.GetString("mode")
			p.Mode = bookmark.Mode(m)
		case "lines":
			p.Lines, err = f.GetInt("lines")
		case "font-size":
			p.FontSize, err = f.GetFloat64("font-size")
		case "line-factor":
			p.LineFactor, err = f.GetFloat64("line-factor")
		case "precision":
			p.Precision, err = f.GetInt("precision")
		case "header":
			p.Header, err = f.GetBool("header")
		case "fill":
			p.Fill, err = f.GetString("fill")
		case "background":
			p.Background, err = f.GetString("background")
		case "clip":
			p.ClipToFrame, err = f.GetBool("clip")
		case "frame":
			p.ShowFrame, err = f.GetBool("frame")
		}
	})
	if err != nil {
		return err
	}
	return config.Normalize(p)
}

func runRender(cmd *cobra.Command, _ []string) error {
	p, err := loadParams()
	if err != nil {
		return err
	}
	if err := applyParamFlags(cmd.Flags(), &p); err != nil {
		return err
	}
	if err := ensureSeed(&p); err != nil {
		return err
	}

	r, closeFont, err := newRenderer(p.Mode)
	if err != nil {
		return err
	}
	defer closeFont()

	doc, err := r.Render(cmd.Context(), p)
	if err != nil {
		return err
	}
	data, err := doc.SVG()
	if err != nil {
		return err
	}

	dest := renderOpts.output
	if dest == "" || dest == "-" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}
		dest = "stdout"
	} else if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}

	if renderOpts.copy {
		if err := clipboard.WriteAll(string(data)); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}

	writeSummary(cmd.ErrOrStderr(), doc, dest, renderOpts.copy)
	return nil
}
