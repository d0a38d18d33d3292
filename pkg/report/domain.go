package report

import "fmt"

// Domain names a category of per-component analysis output. Each domain is
// stored as one file per component ref.
type Domain int

// Report domains.
const (
	DomainIssues Domain = iota + 1
	DomainDeletedIssues
	DomainMeasures
	DomainCoverage
	DomainDuplications
	DomainSCM
	DomainSymbols
	DomainSyntaxHighlighting
	DomainSource
)

type domainInfo struct {
	name   string
	prefix string
}

// domainTable maps each domain to its canonical name and file prefix.
// No prefix followed by a digit can be confused with another prefix.
var domainTable = map[Domain]domainInfo{
	DomainIssues:             {name: "ISSUES", prefix: "issues-"},
	DomainDeletedIssues:      {name: "DELETED_ISSUES", prefix: "issues-deleted-"},
	DomainMeasures:           {name: "MEASURES", prefix: "measures-"},
	DomainCoverage:           {name: "COVERAGE", prefix: "coverage-"},
	DomainDuplications:       {name: "DUPLICATIONS", prefix: "duplications-"},
	DomainSCM:                {name: "SCM", prefix: "scm-"},
	DomainSymbols:            {name: "SYMBOLS", prefix: "symbols-"},
	DomainSyntaxHighlighting: {name: "SYNTAX_HIGHLIGHTING", prefix: "syntax-highlighting-"},
	DomainSource:             {name: "SOURCE", prefix: "source-"},
}

// Domains returns every domain in declaration order.
func Domains() []Domain {
	return []Domain{
		DomainIssues,
		DomainDeletedIssues,
		DomainMeasures,
		DomainCoverage,
		DomainDuplications,
		DomainSCM,
		DomainSymbols,
		DomainSyntaxHighlighting,
		DomainSource,
	}
}

// String returns the canonical upper-case domain name.
func (d Domain) String() string {
	info, ok := domainTable[d]
	if !ok {
		return fmt.Sprintf("Domain(%d)", int(d))
	}

	return info.name
}

// Valid reports whether d is a known domain.
func (d Domain) Valid() bool {
	_, ok := domainTable[d]

	return ok
}

// filePrefix returns the file-name prefix for the domain.
func (d Domain) filePrefix() string {
	return domainTable[d].prefix
}
