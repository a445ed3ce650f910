package consistency

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dgallion1/doclens/internal/document"
)

// headingStyle classifies a heading's casing.
type headingStyle string

const (
	styleAllCaps  headingStyle = "ALL_CAPS"
	styleTitle    headingStyle = "Title_Case"
	styleSentence headingStyle = "sentence_case"
	styleMixedCap headingStyle = "mixed"
)

func classifyHeading(title string) headingStyle {
	words := strings.Fields(title)
	if len(words) == 0 {
		return styleSentence
	}

	allCaps := true
	for _, r := range title {
		if unicode.IsLower(r) {
			allCaps = false
			break
		}
	}
	if allCaps {
		return styleAllCaps
	}

	capitalized := 0
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsUpper(r) || !unicode.IsLetter(r) {
			capitalized++
		}
	}
	switch {
	case capitalized == len(words):
		return styleTitle
	case capitalized == 1 && unicode.IsUpper([]rune(words[0])[0]):
		return styleSentence
	case capitalized <= 1:
		return styleSentence
	default:
		return styleMixedCap
	}
}

// CheckFormattingConsistency flags documents mixing heading casing styles,
// or mixing bulleted and numbered lists.
func CheckFormattingConsistency(sections []document.Section) Check {
	// First heading seen per style, in document order.
	type styleHit struct {
		style headingStyle
		title string
	}
	var styles []styleHit
	seen := make(map[headingStyle]bool)
	for _, sec := range sections {
		if strings.TrimSpace(sec.Title) == "" {
			continue
		}
		st := classifyHeading(sec.Title)
		if !seen[st] {
			seen[st] = true
			styles = append(styles, styleHit{st, sec.Title})
		}
	}

	var found []Inconsistency
	for i := 0; i < len(styles); i++ {
		for j := i + 1; j < len(styles); j++ {
			found = append(found, Inconsistency{
				FirstOccurrence:  fmt.Sprintf("%s (%s)", styles[i].title, styles[i].style),
				SecondOccurrence: fmt.Sprintf("%s (%s)", styles[j].title, styles[j].style),
				SuggestedCorrection: fmt.Sprintf(
					"use %s headings throughout", styles[0].style),
			})
		}
	}

	if first, second, mixed := mixedListStyles(sections); mixed {
		found = append(found, Inconsistency{
			FirstOccurrence:     first,
			SecondOccurrence:    second,
			SuggestedCorrection: "use a single list style throughout",
		})
	}

	return finish(CheckFormatting, found)
}

// mixedListStyles reports the first bulleted and first numbered list lines
// when both styles appear in the document.
func mixedListStyles(sections []document.Section) (string, string, bool) {
	var bullet, numbered string
	for _, sec := range sections {
		for _, line := range strings.Split(sec.Content, "\n") {
			t := strings.TrimSpace(line)
			if t == "" {
				continue
			}
			if bullet == "" && (strings.HasPrefix(t, "- ") ||
				strings.HasPrefix(t, "* ") || strings.HasPrefix(t, "• ")) {
				bullet = t
			}
			if numbered == "" && isNumberedItem(t) {
				numbered = t
			}
		}
	}
	return bullet, numbered, bullet != "" && numbered != ""
}

func isNumberedItem(line string) bool {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(line) {
		return false
	}
	return (line[i] == '.' || line[i] == ')') && i+1 < len(line) && line[i+1] == ' '
}
