package report

import (
	"errors"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/Sumatoshi-tech/scanreport/pkg/report/reportpb"
)

// errNoEnvelopeKey is returned for an envelope carrying neither ref nor uuid.
var errNoEnvelopeKey = errors.New("envelope has no component key")

// codec converts one record type to and from its stored message.
type codec[T any, M proto.Message] struct {
	newMessage func() M
	toProto    func(*T) M
	fromProto  func(M) T
}

var (
	issueCodec = codec[Issue, *reportpb.Issue]{
		newMessage: func() *reportpb.Issue { return new(reportpb.Issue) },
		toProto:    (*Issue).toProto,
		fromProto:  issueFromProto,
	}
	measureCodec = codec[Measure, *reportpb.Measure]{
		newMessage: func() *reportpb.Measure { return new(reportpb.Measure) },
		toProto:    (*Measure).toProto,
		fromProto:  measureFromProto,
	}
	coverageCodec = codec[LineCoverage, *reportpb.LineCoverage]{
		newMessage: func() *reportpb.LineCoverage { return new(reportpb.LineCoverage) },
		toProto:    (*LineCoverage).toProto,
		fromProto:  coverageFromProto,
	}
	duplicationCodec = codec[Duplication, *reportpb.Duplication]{
		newMessage: func() *reportpb.Duplication { return new(reportpb.Duplication) },
		toProto:    (*Duplication).toProto,
		fromProto:  duplicationFromProto,
	}
	changesetCodec = codec[Changeset, *reportpb.Changeset]{
		newMessage: func() *reportpb.Changeset { return new(reportpb.Changeset) },
		toProto:    (*Changeset).toProto,
		fromProto:  changesetFromProto,
	}
	symbolCodec = codec[Symbol, *reportpb.Symbol]{
		newMessage: func() *reportpb.Symbol { return new(reportpb.Symbol) },
		toProto:    (*Symbol).toProto,
		fromProto:  symbolFromProto,
	}
	highlightingCodec = codec[SyntaxHighlighting, *reportpb.SyntaxHighlighting]{
		newMessage: func() *reportpb.SyntaxHighlighting { return new(reportpb.SyntaxHighlighting) },
		toProto:    (*SyntaxHighlighting).toProto,
		fromProto:  highlightingFromProto,
	}
	sourceCodec = codec[SourceLine, *reportpb.SourceLine]{
		newMessage: func() *reportpb.SourceLine { return new(reportpb.SourceLine) },
		toProto:    (*SourceLine).toProto,
		fromProto:  sourceFromProto,
	}
)

// timeToProto stores every non-zero instant, the Unix epoch included.
func timeToProto(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}

	return timestamppb.New(t)
}

func timeFromProto(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}

	return ts.AsTime()
}

func envelopeToProto(key ComponentKey) *reportpb.Envelope {
	if uuid, ok := key.UUID(); ok {
		return &reportpb.Envelope{Key: &reportpb.Envelope_Uuid{Uuid: uuid}}
	}

	ref, _ := key.Ref()

	return &reportpb.Envelope{Key: &reportpb.Envelope_Ref{Ref: ref}}
}

func envelopeFromProto(m *reportpb.Envelope) (ComponentKey, error) {
	switch k := m.GetKey().(type) {
	case *reportpb.Envelope_Ref:
		return ByRef(k.Ref), nil
	case *reportpb.Envelope_Uuid:
		return ByUUID(k.Uuid), nil
	default:
		return ComponentKey{}, errNoEnvelopeKey
	}
}

func (m *Metadata) toProto() *reportpb.Metadata {
	return &reportpb.Metadata{
		AnalysisDate:     timeToProto(m.AnalysisDate),
		ProjectKey:       m.ProjectKey,
		RootComponentRef: m.RootComponentRef,
		FormatVersion:    m.FormatVersion,
		Branch:           m.Branch,
	}
}

func metadataFromProto(m *reportpb.Metadata) Metadata {
	return Metadata{
		AnalysisDate:     timeFromProto(m.GetAnalysisDate()),
		ProjectKey:       m.GetProjectKey(),
		RootComponentRef: m.GetRootComponentRef(),
		FormatVersion:    m.GetFormatVersion(),
		Branch:           m.GetBranch(),
	}
}

func (m *Component) toProto() *reportpb.Component {
	return &reportpb.Component{
		Ref:       m.Ref,
		Uuid:      m.UUID,
		Type:      int32(m.Type),
		Key:       m.Key,
		Name:      m.Name,
		Path:      m.Path,
		Language:  m.Language,
		IsTest:    m.IsTest,
		ChildRefs: m.ChildRefs,
	}
}

func componentFromProto(m *reportpb.Component) Component {
	return Component{
		Ref:       m.GetRef(),
		UUID:      m.GetUuid(),
		Type:      ComponentType(m.GetType()),
		Key:       m.GetKey(),
		Name:      m.GetName(),
		Path:      m.GetPath(),
		Language:  m.GetLanguage(),
		IsTest:    m.GetIsTest(),
		ChildRefs: m.GetChildRefs(),
	}
}

func (m *Issue) toProto() *reportpb.Issue {
	return &reportpb.Issue{
		Uuid:           m.UUID,
		RuleRepository: m.RuleRepository,
		RuleKey:        m.RuleKey,
		Line:           m.Line,
		Message:        m.Message,
		Severity:       int32(m.Severity),
		DebtMinutes:    m.DebtMinutes,
		Resolution:     m.Resolution,
		Status:         m.Status,
		Checksum:       m.Checksum,
		Tags:           m.Tags,
	}
}

func issueFromProto(m *reportpb.Issue) Issue {
	return Issue{
		UUID:           m.GetUuid(),
		RuleRepository: m.GetRuleRepository(),
		RuleKey:        m.GetRuleKey(),
		Line:           m.GetLine(),
		Message:        m.GetMessage(),
		Severity:       Severity(m.GetSeverity()),
		DebtMinutes:    m.DebtMinutes,
		Resolution:     m.GetResolution(),
		Status:         m.GetStatus(),
		Checksum:       m.GetChecksum(),
		Tags:           m.GetTags(),
	}
}

func (m *Measure) toProto() *reportpb.Measure {
	return &reportpb.Measure{
		MetricKey:   m.MetricKey,
		Kind:        int32(m.Kind),
		IntValue:    m.IntValue,
		DoubleValue: m.DoubleValue,
		StringValue: m.StringValue,
		BoolValue:   m.BoolValue,
	}
}

func measureFromProto(m *reportpb.Measure) Measure {
	return Measure{
		MetricKey:   m.GetMetricKey(),
		Kind:        MeasureKind(m.GetKind()),
		IntValue:    m.GetIntValue(),
		DoubleValue: m.GetDoubleValue(),
		StringValue: m.GetStringValue(),
		BoolValue:   m.GetBoolValue(),
	}
}

func (m *LineCoverage) toProto() *reportpb.LineCoverage {
	return &reportpb.LineCoverage{
		Line:                     m.Line,
		UtHits:                   m.UTHits,
		ItHits:                   m.ITHits,
		Conditions:               m.Conditions,
		UtCoveredConditions:      m.UTCoveredConditions,
		ItCoveredConditions:      m.ITCoveredConditions,
		OverallCoveredConditions: m.OverallCoveredConditions,
	}
}

func coverageFromProto(m *reportpb.LineCoverage) LineCoverage {
	return LineCoverage{
		Line:                     m.GetLine(),
		UTHits:                   m.GetUtHits(),
		ITHits:                   m.GetItHits(),
		Conditions:               m.GetConditions(),
		UTCoveredConditions:      m.GetUtCoveredConditions(),
		ITCoveredConditions:      m.GetItCoveredConditions(),
		OverallCoveredConditions: m.GetOverallCoveredConditions(),
	}
}

func (m *TextRange) toProto() *reportpb.TextRange {
	return &reportpb.TextRange{
		StartLine:   m.StartLine,
		EndLine:     m.EndLine,
		StartOffset: m.StartOffset,
		EndOffset:   m.EndOffset,
	}
}

func rangeFromProto(m *reportpb.TextRange) TextRange {
	return TextRange{
		StartLine:   m.GetStartLine(),
		EndLine:     m.GetEndLine(),
		StartOffset: m.GetStartOffset(),
		EndOffset:   m.GetEndOffset(),
	}
}

func (m *Duplication) toProto() *reportpb.Duplication {
	out := &reportpb.Duplication{Origin: m.Origin.toProto()}

	for i := range m.Duplicates {
		out.Duplicates = append(out.Duplicates, &reportpb.Duplicate{
			OtherFileRef: m.Duplicates[i].OtherFileRef,
			Range:        m.Duplicates[i].Range.toProto(),
		})
	}

	return out
}

func duplicationFromProto(m *reportpb.Duplication) Duplication {
	out := Duplication{Origin: rangeFromProto(m.GetOrigin())}

	for _, d := range m.GetDuplicates() {
		out.Duplicates = append(out.Duplicates, Duplicate{
			OtherFileRef: d.GetOtherFileRef(),
			Range:        rangeFromProto(d.GetRange()),
		})
	}

	return out
}

func (m *Changeset) toProto() *reportpb.Changeset {
	return &reportpb.Changeset{
		Line:     m.Line,
		Revision: m.Revision,
		Author:   m.Author,
		Date:     timeToProto(m.Date),
	}
}

func changesetFromProto(m *reportpb.Changeset) Changeset {
	return Changeset{
		Line:     m.GetLine(),
		Revision: m.GetRevision(),
		Author:   m.GetAuthor(),
		Date:     timeFromProto(m.GetDate()),
	}
}

func (m *Symbol) toProto() *reportpb.Symbol {
	out := &reportpb.Symbol{Declaration: m.Declaration.toProto()}

	for i := range m.References {
		out.References = append(out.References, m.References[i].toProto())
	}

	return out
}

func symbolFromProto(m *reportpb.Symbol) Symbol {
	out := Symbol{Declaration: rangeFromProto(m.GetDeclaration())}

	for _, r := range m.GetReferences() {
		out.References = append(out.References, rangeFromProto(r))
	}

	return out
}

func (m *SyntaxHighlighting) toProto() *reportpb.SyntaxHighlighting {
	return &reportpb.SyntaxHighlighting{
		Range: m.Range.toProto(),
		Type:  int32(m.Type),
	}
}

func highlightingFromProto(m *reportpb.SyntaxHighlighting) SyntaxHighlighting {
	return SyntaxHighlighting{
		Range: rangeFromProto(m.GetRange()),
		Type:  HighlightingType(m.GetType()),
	}
}

func (m *SourceLine) toProto() *reportpb.SourceLine {
	return &reportpb.SourceLine{Line: m.Line, Text: m.Text}
}

func sourceFromProto(m *reportpb.SourceLine) SourceLine {
	return SourceLine{Line: m.GetLine(), Text: m.GetText()}
}
