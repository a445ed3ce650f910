// Package extractor turns raw document text into an ordered section list and
// a parent/child hierarchy. It never fails: headingless text yields a single
// section spanning the whole document.
package extractor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/textutil"
)

// maxTopics is the number of key topics cached per section.
const maxTopics = 5

// Extract scans the text line by line and returns the section list plus the
// hierarchy built over it. Section spans are inclusive [StartIndex, EndIndex]
// and partition the input with no gaps or overlaps.
func Extract(text string) ([]document.Section, document.Hierarchy) {
	sections := scanSections(text)
	hierarchy := buildHierarchy(sections)
	return sections, hierarchy
}

// scanSections produces the flat, ordered section list.
func scanSections(text string) []document.Section {
	type openSection struct {
		title string
		level int
		start int
		body  strings.Builder
	}

	var sections []document.Section
	var current *openSection
	pendingStart := -1 // earliest blank-line offset before any open section

	closeCurrent := func(end int) {
		if current == nil {
			return
		}
		content := strings.TrimSpace(current.body.String())
		sections = append(sections, document.Section{
			ID:         fmt.Sprintf("sec-%d", len(sections)+1),
			Title:      current.title,
			Content:    content,
			StartIndex: current.start,
			EndIndex:   end,
			Level:      current.level,
			KeyTopics:  textutil.TopTerms(content, maxTopics),
		})
		current = nil
	}

	offset := 0
	for offset <= len(text) {
		lineEnd := strings.IndexByte(text[offset:], '\n')
		var line string
		next := len(text) + 1
		if lineEnd >= 0 {
			line = text[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		} else {
			line = text[offset:]
		}

		if title, level, ok := headingLine(line); ok {
			start := offset
			if current == nil && pendingStart >= 0 {
				// Leading blank lines fold into the first section's span.
				start = pendingStart
				pendingStart = -1
			}
			closeCurrent(start - 1)
			current = &openSection{title: title, level: level, start: start}
		} else if current == nil && strings.TrimSpace(line) == "" {
			if pendingStart < 0 {
				pendingStart = offset
			}
		} else {
			if current == nil {
				// Text before the first heading opens an implicit section.
				start := offset
				if pendingStart >= 0 {
					start = pendingStart
					pendingStart = -1
				}
				current = &openSection{title: "Document", level: 1, start: start}
			}
			if current.body.Len() > 0 {
				current.body.WriteByte('\n')
			}
			current.body.WriteString(line)
		}

		if lineEnd < 0 {
			break
		}
		offset = next
	}

	closeCurrent(len(text) - 1)

	// Empty input degrades to one empty section rather than failing.
	if len(sections) == 0 {
		sections = append(sections, document.Section{
			ID:         "sec-1",
			Title:      "Document",
			Level:      1,
			StartIndex: 0,
			EndIndex:   len(text) - 1,
		})
	}
	return sections
}

// headingLine reports whether a line is a heading, returning its title and
// level. A heading is either a leading-# marker line or short all-caps text.
func headingLine(line string) (string, int, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", 0, false
	}

	if strings.HasPrefix(trimmed, "#") {
		level := 0
		for level < len(trimmed) && trimmed[level] == '#' {
			level++
		}
		title := strings.TrimSpace(trimmed[level:])
		if title == "" {
			title = "Untitled"
		}
		if level > 6 {
			level = 6
		}
		return title, level, true
	}

	if isShortAllCaps(trimmed) {
		return trimmed, 1, true
	}
	return "", 0, false
}

// isShortAllCaps matches lines like "EXECUTIVE SUMMARY": short, at least one
// letter, and no lowercase letters.
func isShortAllCaps(s string) bool {
	if len(s) > 60 || len(strings.Fields(s)) > 8 {
		return false
	}
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// buildHierarchy links sections into a parent/child tree and computes the
// balance and skipped-level diagnostics. It mutates the ParentID/ChildIDs of
// the freshly created sections in place.
func buildHierarchy(sections []document.Section) document.Hierarchy {
	h := document.Hierarchy{}

	for i := range sections {
		if sections[i].Level == 1 {
			h.RootSectionIDs = append(h.RootSectionIDs, sections[i].ID)
		}
		if sections[i].Level > h.MaxDepth {
			h.MaxDepth = sections[i].Level
		}
		// A child is any later section one level deeper, encountered before
		// any section at the same or a shallower level.
		for j := i + 1; j < len(sections); j++ {
			if sections[j].Level <= sections[i].Level {
				break
			}
			if sections[j].Level == sections[i].Level+1 {
				sections[i].ChildIDs = append(sections[i].ChildIDs, sections[j].ID)
				sections[j].ParentID = sections[i].ID
			}
		}
	}

	h.IsBalanced = checkBalance(sections)

	for i := 1; i < len(sections); i++ {
		jump := sections[i].Level - sections[i-1].Level
		if jump > 1 {
			h.Issues = append(h.Issues, fmt.Sprintf(
				"section %q skips from level %d to level %d",
				sections[i].Title, sections[i-1].Level, sections[i].Level))
		}
	}
	return h
}

// checkBalance reports whether no level holds more than 3x the per-level
// average section count.
func checkBalance(sections []document.Section) bool {
	if len(sections) == 0 {
		return true
	}
	counts := make(map[int]int)
	for _, s := range sections {
		counts[s.Level]++
	}
	avg := float64(len(sections)) / float64(len(counts))
	for _, c := range counts {
		if float64(c) > 3*avg {
			return false
		}
	}
	return true
}
