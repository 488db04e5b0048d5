// Package catalog holds the static career, skill, interest and learning-resource datasets.
// A Catalog is immutable once built and safe for concurrent use.
package catalog

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-pathfinder/internal/types"
)

// Data is the raw decoded content of the four datasets.
type Data struct {
	Careers   []types.Career
	Skills    []types.Skill
	Synonyms  map[string][]string
	Interests []types.Interest
	Resources types.ResourceCatalog
}

// Catalog is the read-only, process-wide view of the datasets.
type Catalog struct {
	careers     []types.Career
	careerIndex map[string]int
	skills      []types.Skill
	skillIndex  map[string]int
	synonyms    map[string][]string
	interests   []types.Interest
	interestIdx map[string]int
	resources   map[string]types.SkillResources
	defaults    types.SkillResources
}

// New checks the integrity of d and builds a Catalog from it.
func New(d Data) (*Catalog, error) {
	c := &Catalog{
		careerIndex: make(map[string]int, len(d.Careers)),
		skillIndex:  make(map[string]int, len(d.Skills)),
		synonyms:    make(map[string][]string, len(d.Synonyms)),
		interestIdx: make(map[string]int, len(d.Interests)),
		resources:   make(map[string]types.SkillResources, len(d.Resources.Skills)),
		defaults:    d.Resources.DefaultResources,
	}

	for _, s := range d.Skills {
		if s.ID == "" {
			return nil, &IntegrityError{Dataset: "skills", Message: "skill with empty id"}
		}
		if _, dup := c.skillIndex[s.ID]; dup {
			return nil, &IntegrityError{Dataset: "skills", Message: fmt.Sprintf("duplicate skill id %q", s.ID)}
		}
		c.skillIndex[s.ID] = len(c.skills)
		c.skills = append(c.skills, s)
	}

	for term, ids := range d.Synonyms {
		key := strings.ToLower(strings.TrimSpace(term))
		for _, id := range ids {
			if _, ok := c.skillIndex[id]; !ok {
				return nil, &IntegrityError{
					Dataset: "skills",
					Message: fmt.Sprintf("synonym %q references unknown skill %q", term, id),
				}
			}
		}
		c.synonyms[key] = append([]string(nil), ids...)
	}

	for _, in := range d.Interests {
		if _, dup := c.interestIdx[in.ID]; dup {
			return nil, &IntegrityError{Dataset: "interests", Message: fmt.Sprintf("duplicate interest id %q", in.ID)}
		}
		c.interestIdx[in.ID] = len(c.interests)
		c.interests = append(c.interests, in)
	}

	for _, career := range d.Careers {
		if career.ID == "" || career.Title == "" {
			return nil, &IntegrityError{Dataset: "careers", Message: "career with empty id or title"}
		}
		if _, dup := c.careerIndex[career.ID]; dup {
			return nil, &IntegrityError{Dataset: "careers", Message: fmt.Sprintf("duplicate career id %q", career.ID)}
		}
		c.careerIndex[career.ID] = len(c.careers)
		c.careers = append(c.careers, career)
	}

	for id, bundle := range d.Resources.Skills {
		c.resources[id] = bundle
	}

	return c, nil
}

// Careers returns every career in catalog order.
func (c *Catalog) Careers() []types.Career {
	return c.careers
}

// Career looks up a career by id.
func (c *Catalog) Career(id string) (types.Career, bool) {
	i, ok := c.careerIndex[id]
	if !ok {
		return types.Career{}, false
	}
	return c.careers[i], true
}

// Skills returns every skill in catalog order.
func (c *Catalog) Skills() []types.Skill {
	return c.skills
}

// Synonyms returns the synonym table keyed by lowercased term.
func (c *Catalog) Synonyms() map[string][]string {
	return c.synonyms
}

// Interests returns every interest in catalog order.
func (c *Catalog) Interests() []types.Interest {
	return c.interests
}

// Resources returns the learning bundle for a skill.
func (c *Catalog) Resources(skillID string) (types.SkillResources, bool) {
	r, ok := c.resources[skillID]
	return r, ok
}

// DefaultResources returns the bundle used for skills with no entry of their own.
func (c *Catalog) DefaultResources() types.SkillResources {
	return c.defaults
}

// SkillLabel returns the display label for a skill id. The resource bundle label wins over the
// skill catalog label; unknown ids are title-cased.
func (c *Catalog) SkillLabel(id string) string {
	if r, ok := c.resources[id]; ok && r.Label != "" {
		return r.Label
	}
	if i, ok := c.skillIndex[id]; ok && c.skills[i].Label != "" {
		return c.skills[i].Label
	}
	return TitleCase(id)
}

// InterestLabel returns the display label for an interest id.
func (c *Catalog) InterestLabel(id string) string {
	if i, ok := c.interestIdx[id]; ok && c.interests[i].Label != "" {
		return c.interests[i].Label
	}
	return TitleCase(id)
}

// TitleCase turns a hyphenated id into words: "machine-learning" -> "Machine Learning".
func TitleCase(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
