// Package input supplies the three oscillator parameters to the pipeline.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/paramosc/internal/oscillator"
)

// ErrParse indicates an input line that is not a real number.
var ErrParse = errors.New("input: not a real number")

// ParseError records which field failed and what was typed.
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s := %q: %v", ErrParse.Error(), e.Field, e.Input, e.Err)
	}
	return fmt.Sprintf("%s: %s := %q", ErrParse.Error(), e.Field, e.Input)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// Provider returns the parameters of a run.
type Provider interface {
	Params() (oscillator.Params, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() (oscillator.Params, error)

func (f ProviderFunc) Params() (oscillator.Params, error) { return f() }

// Fixed always returns p.
func Fixed(p oscillator.Params) Provider {
	return ProviderFunc(func() (oscillator.Params, error) { return p, nil })
}

const banner = "Please, type in the values of w0, w and h respectively."

// Prompt asks for w0, w and h in that order, one line each.
type Prompt struct {
	In  io.Reader
	Out io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{In: in, Out: out}
}

// Params reads exactly three lines and nothing beyond them, so the rest of
// In stays available to whoever reads it next.
func (p *Prompt) Params() (oscillator.Params, error) {
	if _, err := fmt.Fprintln(p.Out, banner); err != nil {
		return oscillator.Params{}, err
	}

	var vals [3]float64
	for i, field := range []string{"w0", "w", "h"} {
		if _, err := fmt.Fprintf(p.Out, "%s := ", field); err != nil {
			return oscillator.Params{}, err
		}
		v, err := readFloat(p.In, field)
		if err != nil {
			return oscillator.Params{}, err
		}
		vals[i] = v
	}
	return oscillator.Params{W0: vals[0], W: vals[1], H: vals[2]}, nil
}

func readFloat(r io.Reader, field string) (float64, error) {
	line, err := readLine(r)
	if err != nil {
		return 0, &ParseError{Field: field, Err: err}
	}
	return ParseFloat(field, line)
}

// readLine reads byte by byte up to and including '\n'. A final line
// without a newline is returned as is; EOF before any byte is
// io.ErrUnexpectedEOF.
func readLine(r io.Reader) (string, error) {
	var (
		line bytes.Buffer
		b    [1]byte
	)
	for {
		n, err := r.Read(b[:])
		if n == 1 {
			if b[0] == '\n' {
				return line.String(), nil
			}
			line.WriteByte(b[0])
			continue
		}
		if err == io.EOF {
			if line.Len() == 0 {
				return "", io.ErrUnexpectedEOF
			}
			return line.String(), nil
		}
		if err != nil {
			return "", err
		}
	}
}

// ParseFloat parses one field. NaN and infinities are rejected.
func ParseFloat(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ParseError{Field: field, Input: s, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Field: field, Input: s}
	}
	return v, nil
}
