package tu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
)

// Field identifies one of the sibling text files of a TU dataset.
type Field int

const (
	FieldEdges Field = iota
	FieldGraphIndicator
	FieldNodeLabels
	FieldEdgeLabels
	FieldNodeAttributes
	FieldGraphLabels
)

var fieldSuffixes = [...]string{
	FieldEdges:          "A",
	FieldGraphIndicator: "graph_indicator",
	FieldNodeLabels:     "node_labels",
	FieldEdgeLabels:     "edge_labels",
	FieldNodeAttributes: "node_attributes",
	FieldGraphLabels:    "graph_labels",
}

// Suffix returns the file suffix of the field, e.g. "graph_indicator".
func (f Field) Suffix() string {
	return fieldSuffixes[f]
}

// FileName returns the name of the field's file for the given dataset, e.g.
// "MUTAG_graph_indicator.txt".
func (f Field) FileName(dataset string) string {
	return fmt.Sprintf("%s_%s.txt", dataset, f.Suffix())
}

func (f Field) String() string {
	return f.Suffix()
}

// Array is a dense row-major matrix read from a text file. A file whose lines
// hold a single token is an array of width 1.
type Array[T any] struct {
	Rows  int
	Width int
	Data  []T
}

// Row returns the i-th row of the array.
//
// Important: the slice is a view on the array's internal storage and should
// only be used in read-only operations.
func (a *Array[T]) Row(i int) []T {
	return a.Data[i*a.Width : (i+1)*a.Width]
}

// At returns the first value of the i-th row. It is meant for arrays of width 1.
func (a *Array[T]) At(i int) T {
	return a.Data[i*a.Width]
}

// ParseInt parses a base-10 integer token.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParseFloat32 parses a floating point token.
func ParseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}

// ParseArray reads one row per non-empty line of r. Each line is split on
// commas and every token is converted with parse. All rows must have the same
// number of tokens as the first one.
//
// Errors are returned as *FormatError with an empty File; callers that know
// the file's name should fill it in.
func ParseArray[T any](r io.Reader, parse func(string) (T, error)) (*Array[T], error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	a := &Array[T]{}
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		tokens := strings.Split(text, ",")
		if a.Rows == 0 {
			a.Width = len(tokens)
		} else if len(tokens) != a.Width {
			return nil, &FormatError{
				Line: line,
				Msg:  fmt.Sprintf("expected %d values, got %d", a.Width, len(tokens)),
			}
		}

		for _, tok := range tokens {
			tok = strings.TrimSpace(tok)
			v, err := parse(tok)
			if err != nil {
				return nil, &FormatError{
					Line: line,
					Msg:  fmt.Sprintf("invalid value %q", tok),
					Err:  err,
				}
			}
			a.Data = append(a.Data, v)
		}
		a.Rows++
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

// ReadArray reads the file of field f for the given dataset from fsys. It
// returns a nil array and a nil error if the file does not exist.
func ReadArray[T any](fsys fs.FS, dataset string, f Field, parse func(string) (T, error)) (*Array[T], error) {
	name := f.FileName(dataset)
	file, err := fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", name, err)
	}
	defer file.Close()

	a, err := ParseArray(file, parse)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.File = name
			return nil, fe
		}
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}
	return a, nil
}
