package bom

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// LevelPolicy decides whether a trimmed level-code cell marks a reportable
// row. Historical revisions of the form logic disagree on the exact rule
// (equality with "B" versus a "B" prefix), so the predicate is swappable and
// the chosen rule is pinned by the caller, not inferred here.
type LevelPolicy func(level string) bool

// LevelPrefixB accepts any level code beginning with "B" (B, B9, B10, ...).
// This is the default policy.
func LevelPrefixB(level string) bool {
	return strings.HasPrefix(level, "B")
}

// LevelExactB accepts only a bare "B" level code.
func LevelExactB(level string) bool {
	return level == "B"
}

const (
	// maxDescriptionLen caps descriptions at extraction time. Rendering
	// applies its own tighter limit.
	maxDescriptionLen = 100

	// minDescriptionLen rejects degenerate single-character remnants left
	// over after cleanup.
	minDescriptionLen = 2
)

var (
	nsnPattern      = regexp.MustCompile(`\b(\d{9})\b`)
	digitRunPattern = regexp.MustCompile(`\d+`)
	spaceRunPattern = regexp.MustCompile(`\s+`)

	// trailingCodePattern strips a unit-of-issue or catalog code when it is
	// the final whitespace-delimited token of a description.
	trailingCodePattern = regexp.MustCompile(`(?i)\s+(WTY|ARC|CIIC|UI|SCMC|EA|AY|9K|9G)$`)
)

// normalizer turns raw table rows into Items, applying the row filter and
// per-field cleanup rules.
type normalizer struct {
	levelPolicy LevelPolicy
}

// itemFromRow validates one data row against its table's role map and
// returns the populated item, or ok=false if the row is not reportable.
// Rejection is per row; field-level problems (missing NSN, bad quantity)
// only degrade the affected field.
func (n *normalizer) itemFromRow(row []string, roles roleMap, line int) (Item, bool) {
	if rowIsEmpty(row) {
		return Item{}, false
	}

	level := strings.TrimSpace(cell(row, roles[roleLevel]))
	if level == "" || !n.levelPolicy(level) {
		return Item{}, false
	}

	desc := cleanDescription(cell(row, roles[roleDescription]))
	if utf8.RuneCountInString(desc) < minDescriptionLen {
		return Item{}, false
	}

	item := Item{
		Line:        line,
		Description: truncate(desc, maxDescriptionLen),
		Qty:         1,
	}

	if matIdx, ok := roles[roleMaterial]; ok {
		if m := nsnPattern.FindStringSubmatch(cell(row, matIdx)); m != nil {
			item.NSN = m[1]
		}
	}

	if qtyIdx, ok := roles.quantityColumn(); ok {
		if qty, ok := parseQuantity(cell(row, qtyIdx)); ok {
			item.Qty = qty
		}
	}

	return item, true
}

// cleanDescription normalizes a raw description cell into a nomenclature
// string. Cells often carry two newline-separated lines where the first
// repeats a code from the source form; the second line is the payload.
func cleanDescription(raw string) string {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	desc := lines[0]
	if len(lines) >= 2 {
		desc = lines[1]
	}

	// Drop parenthetical remainders and trailing catalog codes.
	if idx := strings.Index(desc, "("); idx >= 0 {
		desc = desc[:idx]
	}
	desc = trailingCodePattern.ReplaceAllString(strings.TrimSpace(desc), "")
	desc = spaceRunPattern.ReplaceAllString(desc, " ")
	return strings.TrimSpace(desc)
}

// parseQuantity extracts the first run of digits from a quantity cell.
func parseQuantity(raw string) (int, bool) {
	digits := digitRunPattern.FindString(raw)
	if digits == "" {
		return 0, false
	}
	qty, err := strconv.Atoi(digits)
	if err != nil || qty <= 0 {
		return 0, false
	}
	return qty, true
}

// truncate limits s to max runes without splitting a multi-byte character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
