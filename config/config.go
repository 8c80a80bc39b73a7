// Package config loads the YAML document that drives the cachesolve command:
// logging level, how often each matrix is resolved, verification settings
// and the sequence of matrices to feed through one CachedMatrix.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kepler123/cachematrix/matrix"
)

// Defaults applied by Parse when a field is absent.
const (
	DefaultRepeat    = 2
	DefaultTolerance = 1e-9
	DefaultLogLevel  = "info"
)

var (
	// ErrNoMatrices is returned when the document lists no matrices.
	ErrNoMatrices = errors.New("config: no matrices defined")

	// ErrBadMatrix is returned when an entry's rows cannot form a matrix.
	ErrBadMatrix = errors.New("config: invalid matrix")

	// ErrBadValue is returned for out-of-range scalar settings.
	ErrBadValue = errors.New("config: invalid value")
)

// Document is the top-level YAML layout.
type Document struct {
	Source string `yaml:"-"`

	LogLevel  string  `yaml:"log_level"`
	Repeat    int     `yaml:"repeat"`
	Verify    bool    `yaml:"verify"`
	Tolerance float64 `yaml:"tolerance"`
	Matrices  []Entry `yaml:"matrices"`
}

// Entry is one named matrix given as a list of rows.
type Entry struct {
	Name string      `yaml:"name"`
	Rows [][]float64 `yaml:"rows"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Source = path

	return doc, nil
}

// Parse decodes a document, applies defaults and validates it.
// Only the row structure of each matrix is checked; squareness and
// singularity are left to inversion time.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	if doc.LogLevel == "" {
		doc.LogLevel = DefaultLogLevel
	}
	doc.LogLevel = strings.ToLower(doc.LogLevel)
	if doc.Repeat == 0 {
		doc.Repeat = DefaultRepeat
	}
	if doc.Repeat < 0 {
		return nil, fmt.Errorf("repeat %d: %w", doc.Repeat, ErrBadValue)
	}
	if doc.Tolerance == 0 {
		doc.Tolerance = DefaultTolerance
	}
	if doc.Tolerance < 0 {
		return nil, fmt.Errorf("tolerance %g: %w", doc.Tolerance, ErrBadValue)
	}

	if len(doc.Matrices) == 0 {
		return nil, ErrNoMatrices
	}
	for i := range doc.Matrices {
		e := &doc.Matrices[i]
		if e.Name == "" {
			e.Name = fmt.Sprintf("matrix-%d", i+1)
		}
		if _, err := e.Dense(); err != nil {
			return nil, err
		}
	}

	return &doc, nil
}

// Dense converts the entry rows into a matrix.
func (e Entry) Dense() (*matrix.Dense, error) {
	m, err := matrix.NewDenseFromRows(e.Rows)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadMatrix, e.Name, err)
	}

	return m, nil
}
