package ranking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-pathfinder/internal/catalog"
	"github.com/jonathan/career-pathfinder/internal/types"
)

func TestPositionalWeight(t *testing.T) {
	assert.InDelta(t, 2.2, positionalWeight(0, 5), 1e-9)
	assert.InDelta(t, 1.0, positionalWeight(4, 5), 1e-9)
	assert.InDelta(t, 1.0, positionalWeight(0, 1), 1e-9)
}

func TestComputeSkillScore(t *testing.T) {
	b := computeSkillScore([]string{"a", "b", "c"}, map[string]bool{"a": true, "c": true})
	assert.Equal(t, []string{"a", "c"}, b.matched)
	assert.Equal(t, []string{"b"}, b.missing)
	// weights 1.6, 1.3, 1.0
	assert.InDelta(t, 2.6/3.9, b.score, 1e-9)

	empty := computeSkillScore(nil, map[string]bool{"a": true})
	assert.Zero(t, empty.score)
	assert.Empty(t, empty.matched)
}

func TestComputeInterestScore(t *testing.T) {
	matched, score := computeInterestScore([]string{"data", "science"}, map[string]bool{"science": true, "art": true})
	assert.Equal(t, []string{"science"}, matched)
	assert.InDelta(t, 0.5, score, 1e-9)

	_, score = computeInterestScore(nil, map[string]bool{"science": true})
	assert.Zero(t, score)
}

func TestBonuses(t *testing.T) {
	assert.InDelta(t, 0.09, coverageBonus(3, 5), 1e-9)
	assert.Zero(t, coverageBonus(0, 0))
	assert.InDelta(t, 0.21, absoluteSkillBonus(3), 1e-9)
	assert.InDelta(t, 0.35, absoluteSkillBonus(9), 1e-9)
}

func TestIndustryBonus(t *testing.T) {
	dataCareer := types.Career{Category: "Data", RelatedInterests: []string{"data", "technology", "science"}}
	healthCareer := types.Career{Category: "Healthcare", RelatedInterests: []string{"healthcare", "science", "data", "social-impact"}}

	tests := []struct {
		name   string
		field  string
		career types.Career
		want   float64
	}{
		{name: "two tags", field: "software", career: dataCareer, want: 0.06},
		{name: "field is normalized", field: "  SOFTWARE ", career: dataCareer, want: 0.06},
		{name: "capped", field: "healthcare", career: healthCareer, want: 0.08},
		{name: "category counts", field: "design", career: types.Career{Category: "Design"}, want: 0.03},
		{name: "interest tags are case-insensitive", field: "software", career: types.Career{Category: "Other", RelatedInterests: []string{"Technology", "DATA"}}, want: 0.06},
		{name: "student", field: "student", career: dataCareer, want: 0},
		{name: "none", field: "none", career: dataCareer, want: 0},
		{name: "unknown field", field: "astronaut", career: dataCareer, want: 0},
		{name: "empty field", field: "", career: dataCareer, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, industryBonus(tt.field, tt.career), 1e-9)
		})
	}
}

func TestFieldAffinityShape(t *testing.T) {
	for field, tags := range fieldAffinity {
		assert.Len(t, tags, 4, field)
	}
}

func TestMoreSkillsBeatOneFoundationalSkill(t *testing.T) {
	c := types.Career{RequiredSkills: []string{"a", "b", "c", "d", "e"}}
	one, _, _ := scoreCareer(c, map[string]bool{"a": true}, nil, "")
	two, _, _ := scoreCareer(c, map[string]bool{"d": true, "e": true}, nil, "")
	assert.Greater(t, two, one)

	first, _, _ := scoreCareer(c, map[string]bool{"a": true}, nil, "")
	last, _, _ := scoreCareer(c, map[string]bool{"e": true}, nil, "")
	assert.Greater(t, first, last)
}

func TestCoverageMonotonicity(t *testing.T) {
	cat, err := catalog.Load(context.Background())
	require.NoError(t, err)

	interests := map[string]bool{"data": true}
	for _, c := range cat.Careers() {
		userSkills := map[string]bool{}
		prev, _, _ := scoreCareer(c, userSkills, interests, "software")
		// add required skills back to front so late additions are the heavier ones
		for i := len(c.RequiredSkills) - 1; i >= 0; i-- {
			userSkills[c.RequiredSkills[i]] = true
			next, _, _ := scoreCareer(c, userSkills, interests, "software")
			assert.GreaterOrEqual(t, next, prev, "career %s after adding %s", c.ID, c.RequiredSkills[i])
			prev = next
		}
		assert.LessOrEqual(t, prev, 1.0)
	}
}

func TestJoinWords(t *testing.T) {
	assert.Equal(t, "", joinWords(nil))
	assert.Equal(t, "Data", joinWords([]string{"Data"}))
	assert.Equal(t, "Data and Design", joinWords([]string{"Data", "Design"}))
	assert.Equal(t, "A, B and C", joinWords([]string{"A", "B", "C"}))
}
