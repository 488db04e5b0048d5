package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-pathfinder/internal/types"
)

const (
	maxTransferClauses = 2
	maxGenericSkills   = 3
	maxGapSkills       = 3
)

// generateExplanation assembles the fixed-order explanation for one scored career.
// Each clause is included only when its data exists.
func generateExplanation(c types.Career, matched, missing, matchedInterests []string, labels LabelSource) string {
	var parts []string

	if clause := skillClause(c, matched, labels); clause != "" {
		parts = append(parts, clause)
	}

	if len(matchedInterests) > 0 {
		names := make([]string, len(matchedInterests))
		for i, id := range matchedInterests {
			names[i] = labels.InterestLabel(id)
		}
		parts = append(parts, fmt.Sprintf("It aligns with your interest in %s.", joinWords(names)))
	}

	if why := strings.TrimSpace(c.WhyNonObvious); why != "" {
		parts = append(parts, why)
	}

	if len(c.EntryPaths) > 0 {
		parts = append(parts, fmt.Sprintf("To get started: %s.", strings.TrimSuffix(c.EntryPaths[0], ".")))
	}

	if len(missing) >= 1 && len(missing) <= maxGapSkills {
		names := make([]string, len(missing))
		for i, id := range missing {
			names[i] = labels.SkillLabel(id)
		}
		parts = append(parts, fmt.Sprintf("To strengthen your candidacy, consider developing: %s.", strings.Join(names, ", ")))
	}

	return strings.Join(parts, " ")
}

// skillClause prefers the career's own transfer notes for matched skills and falls back to a
// generic sentence naming the matched skills.
func skillClause(c types.Career, matched []string, labels LabelSource) string {
	if len(matched) == 0 {
		return ""
	}

	var transfers []string
	for _, id := range matched {
		if note, ok := c.SkillTransfers[id]; ok && note != "" {
			transfers = append(transfers, strings.TrimSuffix(strings.TrimSpace(note), "."))
			if len(transfers) == maxTransferClauses {
				break
			}
		}
	}
	if len(transfers) > 0 {
		return strings.Join(transfers, ". ") + "."
	}

	names := make([]string, 0, maxGenericSkills)
	for _, id := range matched {
		if len(names) == maxGenericSkills {
			break
		}
		names = append(names, labels.SkillLabel(id))
	}
	return fmt.Sprintf("Your skills in %s directly apply to this role.", strings.Join(names, ", "))
}

// joinWords renders ["a"] as "a", ["a","b"] as "a and b" and longer lists as "a, b and c".
func joinWords(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	}
	return strings.Join(words[:len(words)-1], ", ") + " and " + words[len(words)-1]
}
