// Package catalogue holds runnable demonstrations of the query operators, one per operator,
// each printing the results of a small query over fixture data.
package catalogue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrUnknownDemo is returned when a demo is requested by a name the catalogue does not know.
var ErrUnknownDemo = errors.New("unknown demo")

// Format is an output format for demo results.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Demo demonstrates one query operator.
type Demo struct {
	Name        string
	Description string
	Run         func(ctx context.Context, data *Fixture, out *Output) error
}

// Output collects the lines printed by a demo.
type Output struct {
	lines []string
}

// Result is the output of a single demo.
type Result struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

// Catalogue runs demos against a fixture.
type Catalogue struct {
	demos  []Demo
	data   *Fixture
	logger *slog.Logger
}

// New returns a catalogue of all demos, in the order they are run by default.
// If logger is nil, nothing is logged.
func New(data *Fixture, logger *slog.Logger) *Catalogue {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Catalogue{
		demos:  demos(),
		data:   data,
		logger: logger,
	}
}

// Demos returns all demos, in order.
func (c *Catalogue) Demos() []Demo {
	return append([]Demo(nil), c.demos...)
}

// Lookup returns the demo with the given name.
func (c *Catalogue) Lookup(name string) (Demo, bool) {
	for _, demo := range c.demos {
		if demo.Name == name {
			return demo, true
		}
	}

	return Demo{}, false
}

// Run runs the named demos in the given order, or all demos if no names are given.
// All names are resolved before any demo is run. The first failing demo stops the run;
// the results of the demos run before it are returned along with the error.
func (c *Catalogue) Run(ctx context.Context, names ...string) ([]Result, error) {
	selected := c.demos

	if len(names) > 0 {
		selected = make([]Demo, 0, len(names))

		for _, name := range names {
			demo, ok := c.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownDemo, name)
			}

			selected = append(selected, demo)
		}
	}

	results := make([]Result, 0, len(selected))

	for _, demo := range selected {
		c.logger.Debug("running demo", "name", demo.Name)

		out := &Output{}

		if err := demo.Run(ctx, c.data, out); err != nil {
			c.logger.Error("demo failed", "name", demo.Name, "error", err)
			return results, fmt.Errorf("demo %s: %w", demo.Name, err)
		}

		c.logger.Debug("demo finished", "name", demo.Name, "lines", len(out.lines))

		results = append(results, Result{
			Name:  demo.Name,
			Lines: out.Lines(),
		})
	}

	return results, nil
}

// Write writes results to w in the given format.
// Text output is a header line per demo followed by its lines, demos separated by blank lines.
// JSON output is one object per demo, each on its own line.
func Write(w io.Writer, format Format, results []Result) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)

		for _, result := range results {
			if err := enc.Encode(result); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
		}

		return nil

	case FormatText:
		for i, result := range results {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}

			if _, err := fmt.Fprintf(w, "# %s\n", result.Name); err != nil {
				return err
			}

			for _, line := range result.Lines {
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
			}
		}

		return nil

	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Printf adds a formatted line.
func (o *Output) Printf(format string, args ...any) {
	o.lines = append(o.lines, fmt.Sprintf(format, args...))
}

// Println adds a line made of the default formats of args, separated by spaces.
func (o *Output) Println(args ...any) {
	line := fmt.Sprintln(args...)
	o.lines = append(o.lines, line[:len(line)-1])
}

// Lines returns a copy of the lines added so far.
func (o *Output) Lines() []string {
	return append([]string{}, o.lines...)
}
