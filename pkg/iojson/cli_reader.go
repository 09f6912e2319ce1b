package iojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// Input decodes one JSON document of type T from the file named by its
// --file flag. An unset flag or "-" reads stdin instead. Unknown fields are
// rejected so typos in hand-written files surface as errors.
type Input[T any] struct {
	path string

	// Stdin overrides os.Stdin.
	Stdin io.Reader
}

// Flag returns the --file flag bound to in.
func (in *Input[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "read JSON from this file (- or unset reads stdin)",
		Destination: &in.path,
	}
}

// Path returns the value of the --file flag.
func (in *Input[T]) Path() string {
	return in.path
}

// Available reports whether input can be read without prompting: a file was
// named, or stdin is redirected.
func (in *Input[T]) Available() bool {
	if in.path != "" || in.Stdin != nil {
		return true
	}
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

// Read decodes the input.
func (in *Input[T]) Read() (T, error) {
	var zero T

	r, closeFn, err := in.open()
	if err != nil {
		return zero, err
	}
	defer closeFn()

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var v T
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, fmt.Errorf("decode JSON: empty input")
		}
		return zero, fmt.Errorf("decode JSON: %w", err)
	}
	if dec.More() {
		return zero, fmt.Errorf("decode JSON: expected a single document")
	}
	return v, nil
}

func (in *Input[T]) open() (io.Reader, func(), error) {
	if in.path != "" && in.path != "-" {
		f, err := os.Open(in.path)
		if err != nil {
			return nil, nil, fmt.Errorf("open file: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}

	if in.Stdin != nil {
		return in.Stdin, func() {}, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, nil, fmt.Errorf("no input provided (stdin is a terminal); use -f or pipe JSON")
	}
	return os.Stdin, func() {}, nil
}
