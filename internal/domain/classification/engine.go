// Package classification routes complaints to departments and assigns an
// initial priority from keyword analysis of the description.
package classification

import (
	"strings"

	"golang.org/x/text/cases"

	vo "jannivaran/internal/domain/complaint/valueobjects"
)

// Result is the outcome of classifying a complaint.
type Result struct {
	Category   vo.Category
	Department string
	SLAHours   float64
	Priority   vo.Priority
}

// priorityKeywords lists the tiers scanned over the description, most urgent
// first. The first tier with any match wins.
var priorityKeywords = []struct {
	priority vo.Priority
	words    []string
}{
	{vo.PriorityCritical, []string{"emergency", "urgent", "danger", "hazard", "accident", "injury", "fire", "flood"}},
	{vo.PriorityHigh, []string{"broken", "severe", "major", "serious", "critical", "immediate"}},
	{vo.PriorityMedium, []string{"problem", "issue", "concern", "need", "require"}},
}

var folder = cases.Fold()

// Classify resolves the department, departmental SLA hours, and priority for
// a complaint. Unknown categories fall back to Other.
func Classify(description, category string) Result {
	entry := Lookup(category)

	return Result{
		Category:   vo.CategoryOrOther(entry.Name),
		Department: entry.Department,
		SLAHours:   entry.SLAHours,
		Priority:   PriorityFor(description),
	}
}

// PriorityFor scans the description against the keyword tiers. Matching is a
// case-folded substring search, so "accidentally" matches "accident". Tiers
// are checked in urgency order and the first hit wins; with no hit the
// priority defaults to low.
func PriorityFor(description string) vo.Priority {
	folded := folder.String(description)

	for _, tier := range priorityKeywords {
		for _, word := range tier.words {
			if strings.Contains(folded, folder.String(word)) {
				return tier.priority
			}
		}
	}
	return vo.PriorityLow
}

// SuggestCategory proposes a category from the description using the table's
// category keywords. Returns Other when nothing matches.
func SuggestCategory(description string) vo.Category {
	folded := folder.String(description)

	for _, entry := range entries {
		for _, word := range entry.Keywords {
			if strings.Contains(folded, folder.String(word)) {
				return vo.CategoryOrOther(entry.Name)
			}
		}
	}
	return vo.CategoryOther
}
