package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-pathfinder/internal/types"
)

func fixtureNormalizer() *Normalizer {
	return NewNormalizer(
		[]types.Skill{
			{ID: "programming", Label: "Programming"},
			{ID: "data-analysis", Label: "Data Analysis"},
			{ID: "machine-learning", Label: "Machine Learning"},
			{ID: "sql", Label: "SQL"},
			{ID: "data-visualization", Label: "Data Visualization"},
			{ID: "ui-design", Label: "UI Design"},
			{ID: "design-thinking", Label: "Design Thinking"},
		},
		map[string][]string{
			"python": {"programming", "data-analysis", "machine-learning"},
			"Excel":  {"data-analysis"},
		},
	)
}

func TestNormalize(t *testing.T) {
	n := fixtureNormalizer()

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "exact id", term: "machine-learning", want: []string{"machine-learning"}},
		{name: "id is case and space insensitive", term: "  SQL ", want: []string{"sql"}},
		{name: "exact label", term: "Data Analysis", want: []string{"data-analysis"}},
		{name: "synonym expands to several ids", term: "Python", want: []string{"programming", "data-analysis", "machine-learning"}},
		{name: "synonym keys are lowercased", term: "excel", want: []string{"data-analysis"}},
		{name: "fuzzy prefix", term: "data", want: []string{"data-analysis", "data-visualization"}},
		{name: "fuzzy substring", term: "learning", want: []string{"machine-learning"}},
		{name: "prefix outranks substring", term: "design", want: []string{"design-thinking", "ui-design"}},
		{name: "token overlap", term: "machine vision", want: []string{"machine-learning"}},
		{name: "slug fallback", term: "Underwater Welding!", want: []string{"underwater-welding"}},
		{name: "punctuation only keeps the term", term: "!!!", want: []string{"!!!"}},
		{name: "blank", term: "   ", want: nil},
		{name: "whitespace only is blank", term: "\t\n ", want: nil},
		{name: "empty", term: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.term))
		})
	}
}

func TestNormalize_NeverEmpty(t *testing.T) {
	n := fixtureNormalizer()
	for _, term := range []string{"x", "Go", "C++", "k8s", "project management", "42", "über", "---a---", " ! ", "\tgo\n"} {
		assert.NotEmpty(t, n.Normalize(term), "term %q", term)
	}
}

func TestNormalize_ReturnsCopyOfSynonyms(t *testing.T) {
	n := fixtureNormalizer()
	got := n.Normalize("python")
	got[0] = "mutated"
	assert.Equal(t, "programming", n.Normalize("python")[0])
}

func TestNormalizeAll(t *testing.T) {
	n := fixtureNormalizer()
	got := n.NormalizeAll([]string{"Python", "SQL", "python", " ", "data analysis"})
	assert.Equal(t, []string{"programming", "data-analysis", "machine-learning", "sql"}, got)
	assert.Nil(t, n.NormalizeAll(nil))
}

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		query, target string
		want          int
	}{
		{"sql", "SQL", 100},
		{"data", "data analysis", 80},
		{"analysis", "data analysis", 60},
		{"machine vision", "machine learning", 55},
		{"cloud data warehousing", "data warehousing", 60},
		{"big data warehousing", "data warehousing lake", 60},
		{"abc", "abd", 30},
		{"xyz", "a very long skill label with nothing in common", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FuzzyScore(tt.query, tt.target), "%q vs %q", tt.query, tt.target)
	}
}

func TestFuzzyScore_Priority(t *testing.T) {
	prefix := FuzzyScore("data", "data analysis")
	substring := FuzzyScore("analysis", "data analysis")
	overlap := FuzzyScore("analysis tools", "data analysis")
	assert.Greater(t, prefix, substring)
	assert.Greater(t, substring, overlap)
	assert.Greater(t, overlap, FuzzyScore("abc", "abd"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "node-js", Slugify("Node.js"))
	assert.Equal(t, "c", Slugify("C++"))
	assert.Equal(t, "project-management", Slugify("  Project   Management "))
	assert.Equal(t, "", Slugify("!!!"))
}
