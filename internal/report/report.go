// SPDX-License-Identifier: MIT

// Package report renders comparison outcomes for the terminal or for machines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/distcmp/compare"
)

// Output formats accepted by Write.
const (
	FormatPretty = "pretty"
	FormatPlain  = "plain"
	FormatJSON   = "json"
)

// ErrUnknownFormat is returned by Write for an unsupported format name.
var ErrUnknownFormat = errors.New("report: unknown format")

const (
	lineMean     = "Mean pairwise distance: %.4f\n"
	lineRelative = "Relative Frobenius norm: %.2f%%\n"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	derivedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Outcome is the result of one comparison job.
type Outcome struct {
	Name        string
	Result      compare.Result
	Err         error
	NormDerived bool // the norm was computed by the driver, not supplied
}

// Write renders outcomes to w in the given format.
func Write(w io.Writer, format string, outcomes []Outcome) error {
	switch format {
	case FormatPlain:
		return writePlain(w, outcomes)
	case FormatPretty:
		return writePretty(w, outcomes)
	case FormatJSON:
		return writeJSON(w, outcomes)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// writePlain prints exactly two lines per successful job and one per failure.
func writePlain(w io.Writer, outcomes []Outcome) error {
	for _, o := range outcomes {
		if o.Err != nil {
			if _, err := fmt.Fprintf(w, "%s: error: %v\n", o.Name, o.Err); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, lineMean, o.Result.OverallMean); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, lineRelative, o.Result.RelativePercent); err != nil {
			return err
		}
	}
	return nil
}

func writePretty(w io.Writer, outcomes []Outcome) error {
	for i, o := range outcomes {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		header := headerStyle.Render(o.Name)
		if o.NormDerived {
			header += " " + derivedStyle.Render("(norm derived)")
		}
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
		if o.Err != nil {
			if _, err := fmt.Fprintln(w, failStyle.Render("error: "+o.Err.Error())); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "  mean A: %.4f  mean B: %.4f\n", o.Result.MeanA, o.Result.MeanB); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  "+lineMean, o.Result.OverallMean); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  "+lineRelative, o.Result.RelativePercent); err != nil {
			return err
		}
	}
	return nil
}

type jsonOutcome struct {
	Name            string      `json:"name"`
	MeanA           *jsonNumber `json:"mean_a,omitempty"`
	MeanB           *jsonNumber `json:"mean_b,omitempty"`
	OverallMean     *jsonNumber `json:"overall_mean,omitempty"`
	RelativePercent *jsonNumber `json:"relative_percent,omitempty"`
	NormDerived     bool        `json:"norm_derived"`
	Error           string      `json:"error,omitempty"`
}

// jsonNumber encodes finite values as JSON numbers and ±Inf/NaN as the
// strings "+Inf", "-Inf" and "NaN", which encoding/json would otherwise reject.
type jsonNumber float64

func (n jsonNumber) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.AppendQuote(nil, strconv.FormatFloat(f, 'g', -1, 64)), nil
	}

	return json.Marshal(f)
}

func number(f float64) *jsonNumber {
	n := jsonNumber(f)
	return &n
}

func writeJSON(w io.Writer, outcomes []Outcome) error {
	out := make([]jsonOutcome, 0, len(outcomes))
	for _, o := range outcomes {
		j := jsonOutcome{Name: o.Name, NormDerived: o.NormDerived}
		if o.Err != nil {
			j.Error = o.Err.Error()
		} else {
			r := o.Result
			j.MeanA, j.MeanB = number(r.MeanA), number(r.MeanB)
			j.OverallMean, j.RelativePercent = number(r.OverallMean), number(r.RelativePercent)
		}
		out = append(out, j)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
