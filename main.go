package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"

	"termhue/internal/approx"
	"termhue/internal/color"
	"termhue/internal/palette"
	"termhue/internal/render"
	"termhue/internal/resolve"
	"termhue/internal/style"
)

type ResolveCmd struct {
	Color   string `arg:"" help:"Color descriptor: name, #rrggbb or rrggbb."`
	Palette string `short:"p" default:"256" enum:"16,256,named" help:"Target palette."`
}

func (c *ResolveCmd) Run() error {
	target, err := palette.ParseID(c.Palette)
	if err != nil {
		return err
	}

	resolved, err := resolve.Default().String(c.Color, target)
	if err != nil {
		return err
	}

	name := resolved.Name()
	if name == "" {
		name = "-"
	}
	fmt.Printf("%s -> %s (rgb %s, name %s)\n", c.Color, resolved, resolved.RGB(), name)
	return nil
}

type MatchCmd struct {
	Color   string `arg:"" help:"Color descriptor: name, #rrggbb or rrggbb."`
	Palette string `short:"p" default:"256" enum:"16,256,named" help:"Target palette."`
	Count   int    `short:"n" default:"3" help:"Number of candidates to report."`
	Metric  string `short:"m" default:"lab" enum:"lab,rgb,hsv" help:"Distance metric."`
}

func (c *MatchCmd) Run() error {
	target, err := palette.ParseID(c.Palette)
	if err != nil {
		return err
	}
	metric, err := color.ParseMetric(c.Metric)
	if err != nil {
		return err
	}

	rgb, err := parseRGBDescriptor(c.Color)
	if err != nil {
		return err
	}

	matches, err := approx.New(palette.Default()).ClosestN(rgb, target, c.Count, metric)
	if err != nil {
		return err
	}

	fmt.Printf("closest %s entries to %s under %s:\n", target, rgb, metric)
	for i, m := range matches {
		fmt.Printf("  %d. %-28s distance %.4f\n", i+1, m.Color, m.Distance)
	}
	return nil
}

type TableCmd struct {
	Palette string `short:"p" default:"16" enum:"16,256,named" help:"Palette to list."`
}

func (c *TableCmd) Run() error {
	id, err := palette.ParseID(c.Palette)
	if err != nil {
		return err
	}
	entries, err := palette.Default().Entries(id)
	if err != nil {
		return err
	}

	fmt.Printf("%-6s %-9s %s\n", "code", "rgb", "name")
	for _, e := range entries {
		name := e.Name
		if name == "" {
			name = "-"
		}
		fmt.Printf("%-6d %-9s %s\n", e.Code, e.RGB, name)
	}
	return nil
}

type RenderCmd struct {
	Text          string `arg:"" help:"Text to style."`
	Fg            string `help:"Foreground color descriptor."`
	Bg            string `help:"Background color descriptor."`
	Bold          bool   `help:"Bold attribute."`
	Dim           bool   `help:"Dim attribute."`
	Italic        bool   `help:"Italic attribute."`
	Underline     bool   `help:"Underline attribute."`
	Blink         bool   `help:"Blink attribute."`
	Reverse       bool   `help:"Reverse attribute."`
	Strikethrough bool   `help:"Strikethrough attribute."`
	Syntax        string `short:"s" default:"ansi" enum:"ansi,html,tmux,text" help:"Output syntax."`
	Mode          string `default:"256" enum:"16,256,rgb" help:"Color depth for ansi/tmux output."`
}

func (c *RenderCmd) Run() error {
	res := resolve.Default()

	st := style.Style{
		Bold:          c.Bold,
		Dim:           c.Dim,
		Italic:        c.Italic,
		Underline:     c.Underline,
		Blink:         c.Blink,
		Reverse:       c.Reverse,
		Strikethrough: c.Strikethrough,
	}

	// Colors are kept at full precision here; the renderer constrains
	// them to its own mode.
	if c.Fg != "" {
		fg, err := res.String(c.Fg, palette.PaletteNamed)
		if err != nil {
			return fmt.Errorf("foreground: %w", err)
		}
		st.Fg = fg
	}
	if c.Bg != "" {
		bg, err := res.String(c.Bg, palette.PaletteNamed)
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
		st.Bg = bg
	}

	var mode render.Mode
	switch c.Mode {
	case "16":
		mode = render.Mode16
	case "rgb":
		mode = render.ModeRGB
	default:
		mode = render.Mode256
	}

	var renderer render.Renderer
	switch c.Syntax {
	case "html":
		renderer = render.NewHTML()
	case "tmux":
		renderer = render.NewTmux(res, mode)
	case "text":
		renderer = render.NewText()
	default:
		renderer = render.NewANSI(res, mode)
	}

	out, err := renderer.Render([]render.Fragment{{Text: c.Text, Style: st}})
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// parseRGBDescriptor reads a raw RGB value for approximation: a hex
// string or a registry name.
func parseRGBDescriptor(s string) (color.RGB, error) {
	if strings.HasPrefix(s, "#") {
		return color.RGBFromHex(s)
	}
	if named, err := palette.Default().ByName(s); err == nil {
		return named.RGB(), nil
	}
	return color.RGBFromHex(s)
}

var cli struct {
	Resolve ResolveCmd `cmd:"" help:"Resolve a color descriptor into a palette entry."`
	Match   MatchCmd   `cmd:"" help:"Report the closest palette entries to a color."`
	Table   TableCmd   `cmd:"" help:"List the entries of a palette."`
	Render  RenderCmd  `cmd:"" help:"Render styled text to an output syntax."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("termhue"),
		kong.Description("Terminal color approximation and styled text rendering."),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
