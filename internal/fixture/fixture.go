// Package fixture turns a YAML description of a scan into a report directory.
// It backs the CLI write command and provides realistic reports for tests.
package fixture

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

// ErrInvalidFixture is returned when a fixture does not match the schema.
var ErrInvalidFixture = errors.New("invalid fixture")

// Fixture is the root of a fixture document.
type Fixture struct {
	AnalysisDate time.Time `yaml:"analysis_date"`
	Project      string    `yaml:"project"`
	Branch       string    `yaml:"branch"`
	Root         Node      `yaml:"root"`
	Deleted      []Deleted `yaml:"deleted"`
}

// Node describes one component and its subtree.
type Node struct {
	Measures map[string]any `yaml:"measures"`
	Name     string         `yaml:"name"`
	Type     string         `yaml:"type"`
	Language string         `yaml:"language"`
	Source   string         `yaml:"source"`
	Issues   []Issue        `yaml:"issues"`
	Coverage []Coverage     `yaml:"coverage"`
	Children []Node         `yaml:"children"`
	Test     bool           `yaml:"test"`
}

// Issue describes one rule violation.
type Issue struct {
	Debt       *int64   `yaml:"debt"`
	Rule       string   `yaml:"rule"`
	Message    string   `yaml:"message"`
	Severity   string   `yaml:"severity"`
	Resolution string   `yaml:"resolution"`
	Status     string   `yaml:"status"`
	Tags       []string `yaml:"tags"`
	Line       int32    `yaml:"line"`
}

// Coverage describes coverage of one line.
type Coverage struct {
	Line              int32 `yaml:"line"`
	Conditions        int32 `yaml:"conditions"`
	CoveredConditions int32 `yaml:"covered_conditions"`
	Hits              bool  `yaml:"hits"`
}

// Deleted lists issues of a component removed since the previous analysis.
type Deleted struct {
	Key    string  `yaml:"key"`
	Issues []Issue `yaml:"issues"`
}

// Parse validates data against the fixture schema and decodes it.
func Parse(data []byte) (*Fixture, error) {
	var doc any

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}

	err = validate(doc)
	if err != nil {
		return nil, err
	}

	var fx Fixture

	err = yaml.Unmarshal(data, &fx)
	if err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	return &fx, nil
}

// Load reads and parses the fixture at path.
func Load(filePath string) (*Fixture, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	return Parse(data)
}

func validate(doc any) error {
	if doc == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidFixture)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validate fixture: %w", err)
	}

	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		problems = append(problems, verr.Field()+": "+verr.Description())
	}

	sort.Strings(problems)

	return fmt.Errorf("%w: %s", ErrInvalidFixture, strings.Join(problems, "; "))
}

func childPath(parent, name string) string {
	if parent == "" {
		return name
	}

	return path.Join(parent, name)
}
