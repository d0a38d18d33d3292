package fixture

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/src-d/enry/v2"

	"github.com/Sumatoshi-tech/scanreport/pkg/report"
	"github.com/Sumatoshi-tech/scanreport/pkg/safeconv"
)

// rootRef is the ref given to the fixture root; others follow in pre-order.
const rootRef int32 = 1

var (
	componentNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/Sumatoshi-tech/scanreport/component"))
	issueNamespace     = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/Sumatoshi-tech/scanreport/issue"))
)

// Summary counts what Build wrote.
type Summary struct {
	Components int
	Issues     int
	Measures   int
	Deleted    int
}

type builder struct {
	w       *report.Writer
	project string
	summary Summary
	nextRef int32
}

// Build writes fx into w. Refs are assigned in pre-order starting at 1;
// component and issue uuids derive from keys, so rebuilding a fixture yields
// an identical report.
func Build(fx *Fixture, w *report.Writer) (Summary, error) {
	b := &builder{w: w, project: fx.Project, nextRef: rootRef}

	err := w.WriteMetadata(report.Metadata{
		AnalysisDate:     fx.AnalysisDate,
		ProjectKey:       fx.Project,
		Branch:           fx.Branch,
		RootComponentRef: rootRef,
		FormatVersion:    report.FormatVersion,
	})
	if err != nil {
		return Summary{}, fmt.Errorf("build fixture: %w", err)
	}

	_, err = b.node(&fx.Root, "")
	if err != nil {
		return Summary{}, fmt.Errorf("build fixture: %w", err)
	}

	for _, del := range fx.Deleted {
		err = b.deleted(del)
		if err != nil {
			return Summary{}, fmt.Errorf("build fixture: %w", err)
		}
	}

	return b.summary, nil
}

// ComponentUUID returns the uuid Build assigns to the component with key.
func ComponentUUID(key string) string {
	return uuid.NewSHA1(componentNamespace, []byte(key)).String()
}

func (b *builder) allocRef() int32 {
	ref := b.nextRef
	b.nextRef++

	return ref
}

func (b *builder) componentKey(compPath string) string {
	if compPath == "" {
		return b.project
	}

	return b.project + ":" + compPath
}

func (b *builder) node(n *Node, parentPath string) (int32, error) {
	ref := b.allocRef()

	compPath := ""
	if ref != rootRef {
		compPath = childPath(parentPath, n.Name)
	}

	key := b.componentKey(compPath)
	typ := report.ParseComponentType(n.Type)

	childRefs := make([]int32, 0, len(n.Children))

	for i := range n.Children {
		childRef, err := b.node(&n.Children[i], compPath)
		if err != nil {
			return 0, err
		}

		childRefs = append(childRefs, childRef)
	}

	lang := n.Language
	if lang == "" && typ == report.ComponentTypeFile {
		lang = enry.GetLanguage(n.Name, []byte(n.Source))
	}

	err := b.w.WriteComponent(report.Component{
		Ref:       ref,
		UUID:      ComponentUUID(key),
		Type:      typ,
		Key:       key,
		Name:      n.Name,
		Path:      compPath,
		Language:  lang,
		IsTest:    n.Test,
		ChildRefs: childRefs,
	})
	if err != nil {
		return 0, err
	}

	b.summary.Components++

	err = b.payload(ref, key, n)
	if err != nil {
		return 0, err
	}

	return ref, nil
}

func (b *builder) payload(ref int32, key string, n *Node) error {
	if len(n.Issues) > 0 {
		err := b.w.WriteIssues(ref, issues(key, n.Issues))
		if err != nil {
			return err
		}

		b.summary.Issues += len(n.Issues)
	}

	if len(n.Measures) > 0 {
		ms, err := measures(n.Measures)
		if err != nil {
			return fmt.Errorf("component %s: %w", key, err)
		}

		err = b.w.WriteMeasures(ref, ms)
		if err != nil {
			return err
		}

		b.summary.Measures += len(ms)
	}

	if len(n.Coverage) > 0 {
		err := b.w.WriteCoverage(ref, coverage(n.Coverage))
		if err != nil {
			return err
		}
	}

	if n.Source != "" {
		err := b.w.WriteSource(ref, sourceLines(n.Source))
		if err != nil {
			return err
		}
	}

	return nil
}

func (b *builder) deleted(del Deleted) error {
	key := b.componentKey(del.Key)

	err := b.w.WriteDeletedComponentIssues(b.allocRef(), ComponentUUID(key), issues(key, del.Issues))
	if err != nil {
		return err
	}

	b.summary.Deleted++
	b.summary.Issues += len(del.Issues)

	return nil
}

func issues(componentKey string, in []Issue) []report.Issue {
	out := make([]report.Issue, 0, len(in))

	for i, is := range in {
		repo, rule, _ := strings.Cut(is.Rule, ":")
		seed := componentKey + "|" + is.Rule + "|" + strconv.Itoa(int(is.Line)) + "|" + strconv.Itoa(i)

		out = append(out, report.Issue{
			UUID:           uuid.NewSHA1(issueNamespace, []byte(seed)).String(),
			RuleRepository: repo,
			RuleKey:        rule,
			Message:        is.Message,
			Resolution:     is.Resolution,
			Status:         is.Status,
			Tags:           is.Tags,
			DebtMinutes:    is.Debt,
			Line:           is.Line,
			Severity:       report.ParseSeverity(is.Severity),
		})
	}

	return out
}

func measures(in map[string]any) ([]report.Measure, error) {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	out := make([]report.Measure, 0, len(keys))

	for _, k := range keys {
		m := report.Measure{MetricKey: k}

		switch v := in[k].(type) {
		case int:
			m.Kind, m.IntValue = report.MeasureKindInt, int64(v)
		case int64:
			m.Kind, m.IntValue = report.MeasureKindInt, v
		case uint64:
			iv, ok := safeconv.Uint64ToInt64(v)
			if !ok {
				return nil, fmt.Errorf("%w: measure %q overflows int64", ErrInvalidFixture, k)
			}

			m.Kind, m.IntValue = report.MeasureKindInt, iv
		case float64:
			m.Kind, m.DoubleValue = report.MeasureKindDouble, v
		case string:
			m.Kind, m.StringValue = report.MeasureKindString, v
		case bool:
			m.Kind, m.BoolValue = report.MeasureKindBool, v
		default:
			return nil, fmt.Errorf("%w: measure %q has unsupported value %T", ErrInvalidFixture, k, v)
		}

		out = append(out, m)
	}

	return out, nil
}

func coverage(in []Coverage) []report.LineCoverage {
	out := make([]report.LineCoverage, 0, len(in))

	for _, c := range in {
		out = append(out, report.LineCoverage{
			Line:                     c.Line,
			Conditions:               c.Conditions,
			OverallCoveredConditions: c.CoveredConditions,
			UTHits:                   c.Hits,
		})
	}

	return out
}

func sourceLines(src string) []report.SourceLine {
	lines := strings.Split(strings.TrimSuffix(src, "\n"), "\n")
	out := make([]report.SourceLine, 0, len(lines))

	for i, text := range lines {
		out = append(out, report.SourceLine{Line: safeconv.MustIntToInt32(i + 1), Text: text})
	}

	return out
}
