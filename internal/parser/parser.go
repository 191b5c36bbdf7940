// Package parser recovers the two-perspective structured answer from raw,
// inconsistently formatted model output. Parse is total: it always returns
// two strings and never fails, falling back to placeholders when a section
// cannot be recovered.
package parser

import (
	"strings"

	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/models"
)

// markupTokens are presentational markers the model is instructed not to
// emit but frequently does anyway.
var markupTokens = []string{"**", "*", "###", "##", "#"}

// Clean strips markup tokens, trims every line and collapses blank lines.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	cleaned := text
	for _, token := range markupTokens {
		cleaned = strings.ReplaceAll(cleaned, token, "")
	}
	var lines []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// Parse extracts the offender and victim perspectives from raw model
// output. It first tries a structural split on the perspective marker,
// then a line-scanning fallback for whichever section stayed empty, and
// finally substitutes a placeholder for anything still missing.
func Parse(raw string) (offender, victim string) {
	cleaned := Clean(raw)

	offender, victim = structuralSplit(cleaned)

	// The structural split assumes the marker prefixes each section; the
	// line scan recovers partially labeled or reordered output.
	if offender == "" || victim == "" {
		scanOffender, scanVictim := lineScan(cleaned)
		if offender == "" {
			offender = scanOffender
		}
		if victim == "" {
			victim = scanVictim
		}
	}

	offender = Clean(offender)
	victim = Clean(victim)

	if strings.TrimSpace(offender) == "" {
		offender = models.OffenderPlaceholder
	}
	if strings.TrimSpace(victim) == "" {
		victim = models.VictimPlaceholder
	}
	return offender, victim
}

// structuralSplit cuts the text on the perspective marker and locates the
// segment carrying each label. The offender section is bounded by the
// victim marker when present, otherwise by the end of its segment.
func structuralSplit(cleaned string) (offender, victim string) {
	parts := strings.Split(cleaned, models.PerspectiveMarker)
	for _, part := range parts {
		switch {
		case strings.Contains(part, models.OffenderLabel):
			start := strings.Index(part, models.OffenderLabel)
			text := part[start:]
			if end := strings.Index(text, models.VictimHeading); end != -1 {
				text = text[:end]
			}
			offender = models.PerspectiveMarker + " " + strings.TrimSpace(text)
		case strings.Contains(part, models.VictimLabel):
			start := strings.Index(part, models.VictimLabel)
			victim = models.PerspectiveMarker + " " + strings.TrimSpace(part[start:])
		}
	}
	return offender, victim
}

// scanSection is the current-section state of the fallback line scan.
type scanSection int

const (
	sectionNone scanSection = iota
	sectionOffender
	sectionVictim
)

// lineScan walks the cleaned text line by line, toggling the active section
// whenever either label appears and appending every other line to whichever
// section is active.
func lineScan(cleaned string) (offender, victim string) {
	var (
		state         = sectionNone
		offenderLines []string
		victimLines   []string
	)
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.Contains(line, models.OffenderHeading) || strings.Contains(line, models.OffenderLabel):
			state = sectionOffender
			offenderLines = append(offenderLines, line)
		case strings.Contains(line, models.VictimHeading) || strings.Contains(line, models.VictimLabel):
			state = sectionVictim
			victimLines = append(victimLines, line)
		case line == "":
		case state == sectionOffender:
			offenderLines = append(offenderLines, line)
		case state == sectionVictim:
			victimLines = append(victimLines, line)
		}
	}
	return strings.Join(offenderLines, "\n"), strings.Join(victimLines, "\n")
}
