package report

import "time"

// FormatVersion is the report format written by this package.
const FormatVersion = 1

// ComponentType classifies a node of the analyzed hierarchy.
type ComponentType int32

// Component types.
const (
	ComponentTypeUnset ComponentType = iota
	ComponentTypeProject
	ComponentTypeModule
	ComponentTypeDirectory
	ComponentTypeFile
)

var componentTypeNames = map[ComponentType]string{
	ComponentTypeUnset:     "UNSET",
	ComponentTypeProject:   "PROJECT",
	ComponentTypeModule:    "MODULE",
	ComponentTypeDirectory: "DIRECTORY",
	ComponentTypeFile:      "FILE",
}

// String returns the upper-case type name.
func (t ComponentType) String() string {
	name, ok := componentTypeNames[t]
	if !ok {
		return "UNKNOWN"
	}

	return name
}

// ParseComponentType converts an upper-case type name into a ComponentType.
// Unknown names map to ComponentTypeUnset.
func ParseComponentType(name string) ComponentType {
	for t, n := range componentTypeNames {
		if n == name {
			return t
		}
	}

	return ComponentTypeUnset
}

// Metadata describes a whole report. It is written exactly once.
type Metadata struct {
	AnalysisDate     time.Time
	ProjectKey       string
	Branch           string
	RootComponentRef int32
	FormatVersion    int32
}

// Component is a node of the analyzed hierarchy.
type Component struct {
	Ref       int32
	UUID      string
	Type      ComponentType
	Key       string
	Name      string
	Path      string
	Language  string
	IsTest    bool
	ChildRefs []int32
}

// ComponentKey identifies the component a domain file belongs to. Live
// components are keyed by ref; components deleted since a previous analysis
// have no ref and are keyed by uuid.
type ComponentKey struct {
	uuid   string
	ref    int32
	byUUID bool
}

// ByRef returns a key for a live component.
func ByRef(ref int32) ComponentKey {
	return ComponentKey{ref: ref}
}

// ByUUID returns a key for a deleted component.
func ByUUID(uuid string) ComponentKey {
	return ComponentKey{uuid: uuid, byUUID: true}
}

// Ref returns the component ref and true when the key is ref-based.
func (k ComponentKey) Ref() (int32, bool) {
	return k.ref, !k.byUUID
}

// UUID returns the component uuid and true when the key is uuid-based.
func (k ComponentKey) UUID() (string, bool) {
	return k.uuid, k.byUUID
}

// IsZero reports whether the key identifies nothing.
func (k ComponentKey) IsZero() bool {
	if k.byUUID {
		return k.uuid == ""
	}

	return k.ref == 0
}

// Severity of an issue.
type Severity int32

// Issue severities, ordered by increasing impact.
const (
	SeverityUnset Severity = iota
	SeverityInfo
	SeverityMinor
	SeverityMajor
	SeverityCritical
	SeverityBlocker
)

var severityNames = map[Severity]string{
	SeverityUnset:    "UNSET",
	SeverityInfo:     "INFO",
	SeverityMinor:    "MINOR",
	SeverityMajor:    "MAJOR",
	SeverityCritical: "CRITICAL",
	SeverityBlocker:  "BLOCKER",
}

// Severities returns all set severities in increasing order.
func Severities() []Severity {
	return []Severity{SeverityInfo, SeverityMinor, SeverityMajor, SeverityCritical, SeverityBlocker}
}

// String returns the upper-case severity name.
func (s Severity) String() string {
	name, ok := severityNames[s]
	if !ok {
		return "UNKNOWN"
	}

	return name
}

// ParseSeverity converts an upper-case severity name. Unknown names map to
// SeverityUnset.
func ParseSeverity(name string) Severity {
	for s, n := range severityNames {
		if n == name {
			return s
		}
	}

	return SeverityUnset
}

// Issue is a single rule violation raised on a component. A nil
// DebtMinutes means no remediation cost was computed, which differs from an
// explicit zero. Tags are stored as a plain list: an empty slice reads back
// as nil.
type Issue struct {
	UUID           string
	RuleRepository string
	RuleKey        string
	Message        string
	Resolution     string
	Status         string
	Checksum       string
	Tags           []string
	DebtMinutes    *int64
	Line           int32
	Severity       Severity
}

// Debt returns the remediation cost in minutes, or zero when unset.
func (i Issue) Debt() int64 {
	if i.DebtMinutes == nil {
		return 0
	}

	return *i.DebtMinutes
}

// Unresolved reports whether the issue is still open.
func (i Issue) Unresolved() bool {
	return i.Resolution == ""
}

// MeasureKind tags which value of a Measure is meaningful.
type MeasureKind int32

// Measure kinds.
const (
	MeasureKindUnset MeasureKind = iota
	MeasureKindInt
	MeasureKindDouble
	MeasureKindString
	MeasureKindBool
)

// Measure is a raw metric value computed by the scanner for one component.
type Measure struct {
	MetricKey   string
	StringValue string
	IntValue    int64
	DoubleValue float64
	Kind        MeasureKind
	BoolValue   bool
}

// IntMeasure builds an integer measure.
func IntMeasure(metric string, value int64) Measure {
	return Measure{MetricKey: metric, Kind: MeasureKindInt, IntValue: value}
}

// LineCoverage holds coverage data for one source line.
type LineCoverage struct {
	Line                     int32
	Conditions               int32
	UTCoveredConditions      int32
	ITCoveredConditions      int32
	OverallCoveredConditions int32
	UTHits                   bool
	ITHits                   bool
}

// TextRange locates a span of source text.
type TextRange struct {
	StartLine   int32
	EndLine     int32
	StartOffset int32
	EndOffset   int32
}

// Duplicate is one copy of a duplicated block.
type Duplicate struct {
	Range TextRange
	// OtherFileRef is zero when the copy is in the same file.
	OtherFileRef int32
}

// Duplication groups an original block with its copies.
type Duplication struct {
	Duplicates []Duplicate
	Origin     TextRange
}

// Changeset attributes one source line to a revision. A zero Date is not
// stored; every other instant, the Unix epoch included, reads back unchanged.
type Changeset struct {
	Date     time.Time
	Revision string
	Author   string
	Line     int32
}

// Symbol is a declaration and its references within one file.
type Symbol struct {
	References  []TextRange
	Declaration TextRange
}

// HighlightingType classifies a highlighted span.
type HighlightingType int32

// Highlighting types.
const (
	HighlightingUnset HighlightingType = iota
	HighlightingAnnotation
	HighlightingConstant
	HighlightingComment
	HighlightingCPPDoc
	HighlightingStructuredComment
	HighlightingKeyword
	HighlightingString
	HighlightingKeywordLight
	HighlightingPreprocessDirective
)

// SyntaxHighlighting assigns a type to a span of source text.
type SyntaxHighlighting struct {
	Range TextRange
	Type  HighlightingType
}

// SourceLine is one line of the analyzed source file.
type SourceLine struct {
	Text string
	Line int32
}
