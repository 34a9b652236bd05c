// Package plot renders sampled polynomials, as HTML line charts with
// go-echarts or as PNG images with gogpu/gg.
package plot

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/tuneinsight/realpoly/poly"
	"github.com/tuneinsight/realpoly/utils"
)

// Save renders fig with r into the file at path, which is created or truncated.
func Save(path string, fig *Figure, r Renderer) (err error) {

	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WithStack(cerr)
		}
	}()

	if err = r.Render(f, fig); err != nil {
		return errors.Wrapf(err, "cannot Save %s", path)
	}

	utils.Logger().Info("plot saved", "path", path, "series", len(fig.Series))

	return nil
}

// Polynomials plots ps over [min, max] with the given number of samples into
// the HTML file name.html. Each polynomial is labelled by its String form.
// Nothing is written if fewer than two samples are requested.
func Polynomials(name string, min, max float64, samples int, ps ...poly.Polynomial) (path string, err error) {

	sampler, err := poly.NewSampler(min, max, samples)
	if err != nil {
		return "", fmt.Errorf("cannot Polynomials: %w", err)
	}

	fig := NewFigure(name, *sampler)
	for _, p := range ps {
		fig.AddPolynomial(p.String(), p)
	}

	r := &HTMLRenderer{Width: DefaultWidth, Height: DefaultHeight}

	path = name + "." + r.Extension()
	if err = Save(path, fig, r); err != nil {
		return "", err
	}

	return path, nil
}

// SaveConfig builds the figure described by cfg over the extra polynomials ps
// and saves it to name with the extension of the configured format.
func SaveConfig(name string, cfg Config, ps ...poly.Polynomial) (path string, err error) {

	if err = cfg.Validate(); err != nil {
		return "", fmt.Errorf("cannot SaveConfig: %w", err)
	}

	fig, err := cfg.Figure(ps...)
	if err != nil {
		return "", fmt.Errorf("cannot SaveConfig: %w", err)
	}

	r, err := cfg.Renderer()
	if err != nil {
		return "", fmt.Errorf("cannot SaveConfig: %w", err)
	}

	path = name + "." + r.Extension()
	if err = Save(path, fig, r); err != nil {
		return "", err
	}

	return path, nil
}
