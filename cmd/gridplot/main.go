package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gridplot/internal/canvas"
	"github.com/san-kum/gridplot/internal/config"
	"github.com/san-kum/gridplot/internal/geom"
	"github.com/san-kum/gridplot/internal/shape"
	"github.com/san-kum/gridplot/internal/term"
	"github.com/san-kum/gridplot/internal/view"
	"github.com/san-kum/gridplot/internal/viz"
)

var (
	width      int
	height     int
	symbol     string
	theme      string
	configFile string
	preset     string
	graphRows  int
)

func main() {
	log.SetReportTimestamp(false)

	rootCmd := &cobra.Command{
		Use:   "gridplot",
		Short: "draw shapes on a terminal grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSketch()
		},
	}

	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "canvas width (0 = terminal width)")
	rootCmd.PersistentFlags().IntVar(&height, "height", 0, "canvas height (0 = terminal height)")
	rootCmd.PersistentFlags().StringVar(&symbol, "symbol", "", "default draw symbol")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "color theme")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "draw the text placement demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}

	shapesCmd := &cobra.Command{
		Use:   "shapes",
		Short: "draw a shape showcase",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShapes()
		},
	}

	graphCmd := &cobra.Command{
		Use:       "graph [sin|damp|walk]",
		Short:     "print a sample series graph",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"sin", "damp", "walk"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(args[0])
		},
	}
	graphCmd.Flags().IntVar(&graphRows, "rows", 12, "graph height in rows")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(demoCmd, shapesCmd, graphCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// resolveConfig layers the configuration: defaults, then preset, then
// config file, then flags.
func resolveConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (have: %s)",
				preset, strings.Join(config.ListPresets(), ", "))
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if width != 0 {
		cfg.Width = width
	}
	if height != 0 {
		cfg.Height = height
	}
	if symbol != "" {
		cfg.Symbol = symbol
	}
	if theme != "" {
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openCanvas resolves the configured extent against the live terminal
// and anchors a canvas on stdout.
func openCanvas(cfg *config.Config) (*canvas.Canvas, error) {
	surface := term.NewANSI(os.Stdout)
	tw, th, err := surface.Size()
	if err != nil {
		return nil, err
	}
	w, h := cfg.Resolve(tw, th)
	return canvas.New(surface, w, h)
}

func runSketch() error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	w, h := cfg.Width, cfg.Height
	if w == 0 || h == 0 {
		surface := term.NewANSI(os.Stdout)
		tw, th, sizeErr := surface.Size()
		if sizeErr != nil {
			return sizeErr
		}
		// Leave room for the frame and status chrome.
		rw, rh := cfg.Resolve(tw, th)
		if w == 0 {
			w = rw - 4
		}
		if h == 0 {
			h = rh - 6
		}
	}
	if w < 10 {
		w = 10
	}
	if h < 5 {
		h = 5
	}
	m, err := viz.NewSketch(w, h, cfg.SymbolRune(), cfg.Theme)
	if err != nil {
		return err
	}
	return viz.RunSketch(m)
}

func runDemo() error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	c, err := openCanvas(cfg)
	if err != nil {
		return err
	}
	if err := c.Clear(); err != nil {
		return err
	}

	scatter := []struct {
		ch   rune
		x, y int
	}{
		{'b', 11, 5}, {'e', 20, 12}, {'a', 32, 7}, {'n', 45, 20},
		{'s', 69, 22}, {'.', 80, 17}, {'.', 92, 25}, {'.', 110, 29},
	}
	for _, s := range scatter {
		if err := c.Put(s.ch, geom.GridPoint{X: s.x, Y: s.y}); err != nil {
			return err
		}
	}

	if err := c.PutString("ha! I love printing!", geom.GridPoint{X: 1, Y: 1}); err != nil {
		return err
	}
	if err := c.PutString("what if I have...\na newline?", c.OriginBL(3, 4)); err != nil {
		return err
	}
	if err := c.PutString("AAAA\nAAAA\nAAAA\nAAAA", geom.GridPoint{X: 1, Y: 7}); err != nil {
		return err
	}
	if err := c.PutStringTransparent("B  B\nBB  \n  BB\n B B", geom.GridPoint{X: 1, Y: 7}); err != nil {
		return err
	}
	return c.Finish()
}

func runShapes() error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	c, err := openCanvas(cfg)
	if err != nil {
		return err
	}
	if err := c.Clear(); err != nil {
		return err
	}
	sym := cfg.SymbolRune()

	// Border around the full extent.
	border := shape.NewRect(geom.GridPoint{}, geom.GridPoint{X: c.Width - 1, Y: c.Height - 1}, sym)
	if err := border.Draw(c); err != nil {
		return err
	}

	// Crossed diagonals inside a translated viewbox.
	vb := view.NewViewBox(c, geom.GridPoint{X: 2, Y: 2},
		geom.GridPoint{X: c.Width - 3, Y: c.Height - 3})
	span := geom.GridPoint{X: c.Height / 2, Y: c.Height / 2}
	if err := shape.NewLine(geom.GridPoint{}, span, '/').DrawInBox(vb); err != nil {
		return err
	}
	if err := shape.NewLine(geom.GridPoint{X: span.X, Y: 0}, geom.GridPoint{X: 0, Y: span.Y}, '\\').DrawInBox(vb); err != nil {
		return err
	}

	// One sine period plotted through a scaled viewbox.
	svb, err := view.NewScaledViewBox(c,
		geom.GridPoint{X: 2, Y: 2},
		geom.GridPoint{X: c.Width - 5, Y: c.Height - 5},
		0, 2*math.Pi, -1.2, 1.2)
	if err != nil {
		return err
	}
	const samples = 96
	for i := 0; i <= samples; i++ {
		t := 2 * math.Pi * float64(i) / samples
		p := shape.NewPointInSVB(svb, geom.DomainPoint{X: t, Y: math.Sin(t)}, 'o')
		if err := p.Draw(c); err != nil {
			return err
		}
	}

	return c.Finish()
}

func runGraph(kind string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	const n = 72
	series := make([]float64, n)
	for i := range series {
		t := float64(i) / 8
		switch kind {
		case "sin":
			series[i] = math.Sin(t)
		case "damp":
			series[i] = math.Exp(-t/4) * math.Cos(2*t)
		case "walk":
			if i == 0 {
				series[i] = 0
			} else {
				series[i] = series[i-1] + rand.Float64() - 0.5
			}
		default:
			return fmt.Errorf("unknown series %q", kind)
		}
	}

	t := viz.GetTheme(cfg.Theme)
	header := lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	fmt.Println(header.Render("gridplot graph: " + kind))
	fmt.Println(asciigraph.Plot(series, asciigraph.Height(graphRows)))
	return nil
}
