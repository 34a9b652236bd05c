package plot

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/tuneinsight/realpoly/poly"
)

const (
	DefaultTitle   = "realpoly"
	DefaultXMin    = -10.0
	DefaultXMax    = 10.0
	DefaultSamples = 1000
	DefaultWidth   = 1200
	DefaultHeight  = 600
	DefaultFormat  = FormatHTML
)

const (
	// FormatHTML renders an interactive go-echarts page.
	FormatHTML = "html"
	// FormatPNG renders a raster image.
	FormatPNG = "png"
)

// Config is the TOML description of a plot, stored under a [plot] table:
//
//	[plot]
//	title = "roots"
//	x_min = -2.0
//	x_max = 2.0
//	samples = 400
//	y_min = -5.0
//	y_max = 5.0
//	format = "png"
//	mark_roots = true
//	polynomials = ["x^3 - x", "x^2 - 1"]
//
//	[plot.roots]
//	resolution = 1e-3
type Config struct {
	Title   string  `toml:"title"`
	XMin    float64 `toml:"x_min"`
	XMax    float64 `toml:"x_max"`
	Samples int     `toml:"samples"`

	// YMin and YMax optionally clamp the vertical axis.
	YMin *float64 `toml:"y_min"`
	YMax *float64 `toml:"y_max"`

	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Format string `toml:"format"`

	// MarkRoots adds the real roots found in [XMin, XMax] as markers.
	MarkRoots bool                      `toml:"mark_roots"`
	Roots     poly.RootFinderParameters `toml:"roots"`

	// Polynomials are given in the text form accepted by poly.Parse.
	Polynomials []string `toml:"polynomials"`
}

// DefaultConfig returns the default plot configuration.
func DefaultConfig() Config {
	return Config{
		Title:   DefaultTitle,
		XMin:    DefaultXMin,
		XMax:    DefaultXMax,
		Samples: DefaultSamples,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Format:  DefaultFormat,
		Roots:   poly.DefaultRootFinderParameters(),
	}
}

// ParseConfig decodes a TOML document over the default configuration.
func ParseConfig(data string) (*Config, error) {
	var doc struct {
		Plot Config `toml:"plot"`
	}
	doc.Plot = DefaultConfig()
	if _, err := toml.Decode(data, &doc); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := doc.Plot.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	return &doc.Plot, nil
}

// LoadConfig reads and decodes the TOML file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	cfg, err := ParseConfig(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot LoadConfig %s", path)
	}
	return cfg, nil
}

// Validate checks the consistency of the configuration.
func (cfg Config) Validate() error {
	switch {
	case cfg.Samples < 2:
		return fmt.Errorf("%w: requested %d samples, at least 2 are needed", ErrInvalidConfig, cfg.Samples)
	case !(cfg.XMin < cfg.XMax):
		return fmt.Errorf("%w: x range [%v, %v] is empty", ErrInvalidConfig, cfg.XMin, cfg.XMax)
	case cfg.YMin != nil && cfg.YMax != nil && !(*cfg.YMin < *cfg.YMax):
		return fmt.Errorf("%w: y range [%v, %v] is empty", ErrInvalidConfig, *cfg.YMin, *cfg.YMax)
	case cfg.Width <= 0 || cfg.Height <= 0:
		return fmt.Errorf("%w: invalid size %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}

	if _, err := cfg.Renderer(); err != nil {
		return err
	}

	if cfg.MarkRoots {
		if err := cfg.Roots.Validate(); err != nil {
			return fmt.Errorf("%w: roots: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}

// Renderer returns the renderer selected by Format.
func (cfg Config) Renderer() (Renderer, error) {
	switch cfg.Format {
	case FormatHTML:
		return &HTMLRenderer{Width: cfg.Width, Height: cfg.Height}, nil
	case FormatPNG:
		return &PNGRenderer{Width: cfg.Width, Height: cfg.Height}, nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, cfg.Format)
	}
}

// Figure parses the configured polynomials, appends ps and returns the
// corresponding figure. Every polynomial is labelled by its String form.
func (cfg Config) Figure(ps ...poly.Polynomial) (*Figure, error) {

	sampler, err := poly.NewSampler(cfg.XMin, cfg.XMax, cfg.Samples)
	if err != nil {
		return nil, fmt.Errorf("cannot Figure: %w", err)
	}

	all := make([]poly.Polynomial, 0, len(cfg.Polynomials)+len(ps))
	for _, s := range cfg.Polynomials {
		p, err := poly.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("cannot Figure: %w", err)
		}
		all = append(all, p)
	}
	all = append(all, ps...)

	fig := NewFigure(cfg.Title, *sampler)
	fig.YMin, fig.YMax = cfg.YMin, cfg.YMax

	var rf *poly.RootFinder
	if cfg.MarkRoots {
		if rf, err = poly.NewRootFinder(cfg.Roots); err != nil {
			return nil, fmt.Errorf("cannot Figure: %w", err)
		}
	}

	for _, p := range all {
		label := p.String()
		fig.AddPolynomial(label, p)
		if rf != nil {
			if err = fig.AddRoots(label, p, rf); err != nil {
				return nil, fmt.Errorf("cannot Figure: %w", err)
			}
		}
	}

	return fig, nil
}
