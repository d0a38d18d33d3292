// Package rules resolves the rule an issue was raised by.
package rules

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/scanreport/pkg/report"
)

// Sentinel errors.
var (
	ErrInvalidRule   = errors.New("invalid rule")
	ErrDuplicateRule = errors.New("duplicate rule key")
)

// Key identifies a rule as "repository:key".
type Key string

// NewKey joins a repository and a rule key.
func NewKey(repository, key string) Key {
	if repository == "" {
		return Key(key)
	}

	return Key(repository + ":" + key)
}

// Repository returns the repository part of the key.
func (k Key) Repository() string {
	repo, _, found := strings.Cut(string(k), ":")
	if !found {
		return ""
	}

	return repo
}

// Rule describes a coding rule.
type Rule struct {
	Key      Key             `yaml:"key"`
	Name     string          `yaml:"name"`
	Language string          `yaml:"language,omitempty"`
	Type     string          `yaml:"type,omitempty"`
	Severity report.Severity `yaml:"-"`
	ID       int             `yaml:"-"`
}

// Repository looks rules up by key.
type Repository interface {
	Rule(key Key) (Rule, bool)
}

// KeyOf returns the rule key of an issue.
func KeyOf(issue report.Issue) Key {
	return NewKey(issue.RuleRepository, issue.RuleKey)
}

// Index is an in-memory Repository.
type Index struct {
	byKey map[Key]Rule
}

// NewIndex builds an index from rules. IDs are assigned in order, starting
// at 1. Empty or duplicate keys are rejected.
func NewIndex(rules []Rule) (*Index, error) {
	idx := &Index{byKey: make(map[Key]Rule, len(rules))}

	for i, r := range rules {
		if r.Key == "" {
			return nil, fmt.Errorf("%w: rule %d has no key", ErrInvalidRule, i)
		}

		if _, dup := idx.byKey[r.Key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRule, r.Key)
		}

		r.ID = i + 1
		idx.byKey[r.Key] = r
	}

	return idx, nil
}

// Rule implements Repository.
func (idx *Index) Rule(key Key) (Rule, bool) {
	r, ok := idx.byKey[key]

	return r, ok
}

// Len returns the number of rules.
func (idx *Index) Len() int {
	return len(idx.byKey)
}

// Rules returns every rule sorted by key.
func (idx *Index) Rules() []Rule {
	out := make([]Rule, 0, len(idx.byKey))
	for _, r := range idx.byKey {
		out = append(out, r)
	}

	slices.SortFunc(out, func(a, b Rule) int {
		return strings.Compare(string(a.Key), string(b.Key))
	})

	return out
}

// Implicit resolves every non-empty key to a rule with that key. It is used
// when no rule catalogue is available.
type Implicit struct{}

// Rule implements Repository.
func (Implicit) Rule(key Key) (Rule, bool) {
	if key == "" {
		return Rule{}, false
	}

	return Rule{Key: key, Name: string(key)}, true
}

type yamlRule struct {
	Rule     `yaml:",inline"`
	Severity string `yaml:"severity,omitempty"`
}

type yamlFile struct {
	Rules []yamlRule `yaml:"rules"`
}

// ParseYAML builds an index from a YAML document of the form
//
//	rules:
//	  - key: go:S100
//	    name: Function names should comply with a naming convention
//	    severity: MINOR
func ParseYAML(data []byte) (*Index, error) {
	var doc yamlFile

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}

	rules := make([]Rule, 0, len(doc.Rules))

	for _, yr := range doc.Rules {
		r := yr.Rule

		if yr.Severity != "" {
			r.Severity = report.ParseSeverity(strings.ToUpper(yr.Severity))
			if r.Severity == report.SeverityUnset {
				return nil, fmt.Errorf("%w: %s: unknown severity %q", ErrInvalidRule, r.Key, yr.Severity)
			}
		}

		rules = append(rules, r)
	}

	return NewIndex(rules)
}

// LoadYAML reads a rule catalogue from path.
func LoadYAML(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}

	return ParseYAML(data)
}
