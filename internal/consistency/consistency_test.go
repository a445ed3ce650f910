package consistency

import (
	"math"
	"strings"
	"testing"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/lexicon"
)

func sectionsFrom(contents ...string) []document.Section {
	var sections []document.Section
	for i, c := range contents {
		sections = append(sections, document.Section{
			ID:      "sec-" + string(rune('1'+i)),
			Title:   "Section " + string(rune('A'+i)),
			Content: c,
			Level:   1,
		})
	}
	return sections
}

func TestRunAll_FixedOrder(t *testing.T) {
	checks := RunAll(sectionsFrom("Plain content without conflicts."), lexicon.Default())
	want := []CheckType{
		CheckTerminology, CheckFormatting, CheckStyle,
		CheckFactual, CheckTemporal, CheckNumerical,
	}
	if len(checks) != len(want) {
		t.Fatalf("expected %d checks, got %d", len(want), len(checks))
	}
	for i, c := range checks {
		if c.Type != want[i] {
			t.Errorf("check %d: expected type %q, got %q", i, want[i], c.Type)
		}
	}
}

func TestRunAll_CleanDocumentIsConsistent(t *testing.T) {
	checks := RunAll(sectionsFrom("The committee reviewed the agenda."), lexicon.Default())
	for _, c := range checks {
		if c.Result != ResultConsistent {
			t.Errorf("check %q: expected consistent, got %q with %v",
				c.Type, c.Result, c.Inconsistencies)
		}
		if c.Impact != ImpactLow {
			t.Errorf("check %q: expected low impact when clean, got %q", c.Type, c.Impact)
		}
	}
}

func TestTerminology_VariantsShareBase(t *testing.T) {
	c := CheckTerminologyConsistency(sectionsFrom(
		"The report covers progress. Each weekly reports summary repeats the report format."))
	if c.Result != ResultInconsistent {
		t.Fatalf("expected inconsistent, got %q", c.Result)
	}
	if len(c.Inconsistencies) != 1 {
		t.Fatalf("expected 1 finding, got %d: %v", len(c.Inconsistencies), c.Inconsistencies)
	}
	inc := c.Inconsistencies[0]
	if inc.FirstOccurrence != "report" || inc.SecondOccurrence != "reports" {
		t.Errorf("unexpected pair: %q vs %q", inc.FirstOccurrence, inc.SecondOccurrence)
	}
	// "report" appears twice, "reports" once: the frequent form wins.
	if !strings.Contains(inc.SuggestedCorrection, `"report"`) {
		t.Errorf("expected suggestion to prefer %q, got %q", "report", inc.SuggestedCorrection)
	}
	if c.Impact != ImpactMedium {
		t.Errorf("expected medium impact for few findings, got %q", c.Impact)
	}
}

func TestFormatting_MixedHeadingStyles(t *testing.T) {
	sections := []document.Section{
		{ID: "sec-1", Title: "Quarterly Report", Content: "Body."},
		{ID: "sec-2", Title: "Next steps here", Content: "Body."},
	}
	c := CheckFormattingConsistency(sections)
	if c.Result != ResultInconsistent {
		t.Fatalf("expected inconsistent, got %q", c.Result)
	}
	if len(c.Inconsistencies) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(c.Inconsistencies))
	}
	if c.Impact != ImpactLow {
		t.Errorf("expected low impact, got %q", c.Impact)
	}
}

func TestFormatting_MixedListStyles(t *testing.T) {
	sections := []document.Section{
		{ID: "sec-1", Title: "Plan", Content: "- first item\n- second item"},
		{ID: "sec-2", Title: "Tasks", Content: "1. numbered item\n2. another item"},
	}
	c := CheckFormattingConsistency(sections)
	found := false
	for _, inc := range c.Inconsistencies {
		if inc.SuggestedCorrection == "use a single list style throughout" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected mixed-list finding, got %v", c.Inconsistencies)
	}
}

func TestStyle_MixedRegisters(t *testing.T) {
	c := CheckStyleConsistency(sectionsFrom(
		"Therefore the committee shall proceed accordingly.",
		"Yeah, the stuff was basically pretty cool."), lexicon.Default())
	if c.Result != ResultMixed {
		t.Fatalf("expected mixed verdict, got %q", c.Result)
	}
	if len(c.Inconsistencies) != 1 {
		t.Fatalf("expected single register finding, got %d", len(c.Inconsistencies))
	}
}

func TestStyle_SingleRegisterClean(t *testing.T) {
	c := CheckStyleConsistency(sectionsFrom(
		"Therefore the committee shall proceed accordingly."), lexicon.Default())
	if c.Result != ResultConsistent {
		t.Errorf("expected consistent, got %q", c.Result)
	}
}

func TestFactual_NegationContradiction(t *testing.T) {
	c := CheckFactualConsistency(sectionsFrom(
		"The service is available in every region. The service is not available in every region."),
		lexicon.Default())
	if c.Result != ResultInconsistent {
		t.Fatalf("expected inconsistent, got %q", c.Result)
	}
	if c.Impact != ImpactHigh {
		t.Errorf("expected high impact, got %q", c.Impact)
	}
}

func TestFactual_OpposingAbsolutes(t *testing.T) {
	c := CheckFactualConsistency(sectionsFrom(
		"The backup system always runs at night. The backup system never runs at night."),
		lexicon.Default())
	if len(c.Inconsistencies) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(c.Inconsistencies))
	}
}

func TestFactual_UnrelatedStatementsClean(t *testing.T) {
	c := CheckFactualConsistency(sectionsFrom(
		"Revenue is growing steadily. The office was painted in spring."),
		lexicon.Default())
	if c.Result != ResultConsistent {
		t.Errorf("expected consistent, got %q with %v", c.Result, c.Inconsistencies)
	}
}

func TestTemporal_SameEventDifferentYears(t *testing.T) {
	c := CheckTemporalConsistency(sectionsFrom(
		"The merger closed in 2019 after regulatory review. The merger closed in 2022 after regulatory review."))
	if c.Result != ResultInconsistent {
		t.Fatalf("expected inconsistent, got %q", c.Result)
	}
	if c.Impact != ImpactMedium {
		t.Errorf("expected medium impact, got %q", c.Impact)
	}
}

func TestTemporal_SameYearClean(t *testing.T) {
	c := CheckTemporalConsistency(sectionsFrom(
		"The merger closed in 2021 after review. The merger closed in 2021 after final review."))
	if c.Result != ResultConsistent {
		t.Errorf("expected consistent, got %q", c.Result)
	}
}

func TestNumerical_ConflictingFigures(t *testing.T) {
	c := CheckNumericalConsistency(sectionsFrom(
		"The project served 10 million users last year. The project served 25 million users last year."))
	if c.Result != ResultInconsistent {
		t.Fatalf("expected inconsistent, got %q", c.Result)
	}
	if len(c.Inconsistencies) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(c.Inconsistencies))
	}
	got := c.Inconsistencies[0].PercentDiff
	if math.Abs(got-71.42857142857143) > 0.001 {
		t.Errorf("expected percent diff about 71.4, got %f", got)
	}
	if c.Impact != ImpactHigh {
		t.Errorf("expected high impact, got %q", c.Impact)
	}
}

func TestNumerical_SmallDifferenceNotFlagged(t *testing.T) {
	c := CheckNumericalConsistency(sectionsFrom(
		"The project served 100 million users last year. The project served 105 million users last year."))
	if c.Result != ResultConsistent {
		t.Errorf("expected consistent for a 5%% gap, got %q", c.Result)
	}
}

func TestNumerical_DifferentUnitsNotPaired(t *testing.T) {
	c := CheckNumericalConsistency(sectionsFrom(
		"The trip covered 40 km through the hills. The trip lasted 9 hours through the hills."))
	if c.Result != ResultConsistent {
		t.Errorf("expected consistent across units, got %q", c.Result)
	}
}

func TestRunAll_Deterministic(t *testing.T) {
	sections := sectionsFrom(
		"The report covers reports and reporting. The system is always on. It served 10 million users in 2020.",
		"The system is never on. It served 25 million users in 2023.")
	first := RunAll(sections, lexicon.Default())
	for i := 0; i < 5; i++ {
		again := RunAll(sections, lexicon.Default())
		for i := range first {
			if len(again[i].Inconsistencies) != len(first[i].Inconsistencies) {
				t.Fatalf("check %q: finding count differs between runs", first[i].Type)
			}
			for j := range first[i].Inconsistencies {
				if again[i].Inconsistencies[j] != first[i].Inconsistencies[j] {
					t.Fatalf("check %q finding %d differs between runs", first[i].Type, j)
				}
			}
		}
	}
}
