package catalogue

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/deadlyengineer/seqquery"
)

//go:embed fixture.yaml
var defaultFixture []byte

// ErrMissingData is returned when a demo needs a data set the fixture does not define.
var ErrMissingData = errors.New("missing fixture data")

// Student is a student, optionally enrolled in a standard.
type Student struct {
	ID         int    `yaml:"id"`
	Name       string `yaml:"name"`
	Age        int    `yaml:"age"`
	StandardID int    `yaml:"standard_id,omitempty"`
}

// Standard is a school standard students are enrolled in.
type Standard struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// ItemKind tells apart the kinds of values an Item can hold.
type ItemKind string

const (
	KindInt     ItemKind = "int"
	KindString  ItemKind = "string"
	KindStudent ItemKind = "student"
)

// Item is an element of a list that mixes values of several kinds.
type Item struct {
	Kind    ItemKind `yaml:"kind"`
	Int     int      `yaml:"int,omitempty"`
	String  string   `yaml:"string,omitempty"`
	Student *Student `yaml:"student,omitempty"`
}

// Fixture is the data the demos query.
type Fixture struct {
	Names     []string             `yaml:"names"`
	Rosters   map[string][]Student `yaml:"rosters"`
	Standards []Standard           `yaml:"standards"`
	Mixed     []Item               `yaml:"mixed"`
	Numbers   map[string][]int     `yaml:"numbers"`
	Words     map[string][]string  `yaml:"words"`
	Sparse    map[string][]*string `yaml:"sparse"`
}

// Discriminant implements seqquery.Variant.
func (i Item) Discriminant() ItemKind {
	return i.Kind
}

var _ seqquery.Variant[ItemKind] = Item{}

// DefaultFixture returns the fixture the demos were written for.
func DefaultFixture() (*Fixture, error) {
	return LoadFixture(bytes.NewReader(defaultFixture))
}

// LoadFixtureFile loads a fixture from the YAML file at path.
func LoadFixtureFile(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	return LoadFixture(f)
}

// LoadFixture decodes a fixture from YAML. Unknown fields are rejected.
func LoadFixture(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	fixture := &Fixture{}
	if err := dec.Decode(fixture); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	return fixture, nil
}

// Roster returns the students of the named roster.
func (f *Fixture) Roster(name string) (seqquery.ProducerFunc[Student], error) {
	return lookup(f.Rosters, "roster", name)
}

// NumberList returns the named list of numbers.
func (f *Fixture) NumberList(name string) (seqquery.ProducerFunc[int], error) {
	return lookup(f.Numbers, "numbers", name)
}

// WordList returns the named list of words.
func (f *Fixture) WordList(name string) (seqquery.ProducerFunc[string], error) {
	return lookup(f.Words, "words", name)
}

// SparseList returns the named list of words that may contain nulls.
func (f *Fixture) SparseList(name string) (seqquery.ProducerFunc[*string], error) {
	return lookup(f.Sparse, "sparse", name)
}

func lookup[T any](sets map[string][]T, kind string, name string) (seqquery.ProducerFunc[T], error) {
	set, ok := sets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrMissingData, kind, name)
	}

	return seqquery.Produce(set), nil
}
