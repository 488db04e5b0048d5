// Package skills maps free-text skill strings onto canonical catalog skill ids.
package skills

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/career-pathfinder/internal/types"
)

// fuzzyThreshold is the minimum fuzzy score a label needs to count as a match.
const fuzzyThreshold = 50

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Normalizer resolves skill terms against immutable lookup tables built from the skill catalog.
// It is safe for concurrent use.
type Normalizer struct {
	ids       map[string]struct{}
	labels    map[string]string // lowercased label or id -> id
	labelKeys []string          // sorted keys of labels, for deterministic fuzzy ordering
	synonyms  map[string][]string
}

// NewNormalizer builds a Normalizer. Every skill's id and display label both map to the id.
func NewNormalizer(catalogSkills []types.Skill, synonyms map[string][]string) *Normalizer {
	n := &Normalizer{
		ids:      make(map[string]struct{}, len(catalogSkills)),
		labels:   make(map[string]string, len(catalogSkills)*2),
		synonyms: make(map[string][]string, len(synonyms)),
	}

	for _, s := range catalogSkills {
		id := strings.ToLower(strings.TrimSpace(s.ID))
		if id == "" {
			continue
		}
		n.ids[id] = struct{}{}
		n.labels[id] = id
		if label := strings.ToLower(strings.TrimSpace(s.Label)); label != "" {
			n.labels[label] = id
		}
	}
	for term, ids := range synonyms {
		n.synonyms[strings.ToLower(strings.TrimSpace(term))] = append([]string(nil), ids...)
	}

	n.labelKeys = make([]string, 0, len(n.labels))
	for k := range n.labels {
		n.labelKeys = append(n.labelKeys, k)
	}
	sort.Strings(n.labelKeys)

	return n
}

// Normalize maps a term to one or more canonical skill ids. Rules apply in order and the first
// match wins: exact id, exact label, synonym, fuzzy label match, slug fallback.
// A term that is empty or whitespace-only is blank and yields nil, so NormalizeAll drops it.
// Any term with a non-space character yields at least one id.
func (n *Normalizer) Normalize(term string) []string {
	q := strings.ToLower(strings.TrimSpace(term))
	if q == "" {
		return nil
	}

	if _, ok := n.ids[q]; ok {
		return []string{q}
	}
	if id, ok := n.labels[q]; ok {
		return []string{id}
	}
	if ids, ok := n.synonyms[q]; ok && len(ids) > 0 {
		return append([]string(nil), ids...)
	}
	if ids := n.fuzzy(q); len(ids) > 0 {
		return ids
	}

	if slug := Slugify(q); slug != "" {
		return []string{slug}
	}
	return []string{q}
}

// NormalizeAll normalizes every term and flattens the result, dropping duplicates
// while keeping first-seen order.
func (n *Normalizer) NormalizeAll(terms []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, term := range terms {
		for _, id := range n.Normalize(term) {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}

type scoredLabel struct {
	id    string
	score int
}

func (n *Normalizer) fuzzy(q string) []string {
	var hits []scoredLabel
	for _, label := range n.labelKeys {
		if s := FuzzyScore(q, label); s > fuzzyThreshold {
			hits = append(hits, scoredLabel{id: n.labels[label], score: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	seen := make(map[string]bool, len(hits))
	var ids []string
	for _, h := range hits {
		if !seen[h.id] {
			seen[h.id] = true
			ids = append(ids, h.id)
		}
	}
	return ids
}

// FuzzyScore rates how well query matches target on a 0-100 scale.
// Prefix and substring matches always outrank token overlap, which outranks length similarity.
func FuzzyScore(query, target string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(strings.TrimSpace(target))

	switch {
	case q == t:
		return 100
	case strings.HasPrefix(t, q):
		return 80
	case strings.Contains(t, q):
		return 60
	}

	targetTokens := make(map[string]bool)
	for _, tok := range tokens(t) {
		targetTokens[tok] = true
	}
	overlap := 0
	for _, tok := range tokens(q) {
		if targetTokens[tok] {
			overlap++
		}
	}
	if overlap > 0 {
		return 50 + overlap*5
	}

	diff := len(q) - len(t)
	if diff < 0 {
		diff = -diff
	}
	return max(0, 30-diff)
}

func tokens(s string) []string {
	return strings.Fields(nonAlnum.ReplaceAllString(s, " "))
}

// Slugify lowercases s and collapses every run of characters outside [a-z0-9] into a single hyphen.
func Slugify(s string) string {
	return strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
