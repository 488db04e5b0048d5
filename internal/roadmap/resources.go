package roadmap

import (
	"net/url"
	"strings"

	"github.com/jonathan/career-pathfinder/internal/types"
)

const maxTopResources = 12

const searchURL = "https://www.google.com/search?q="

// EnsureURL returns a copy of r with a search link filled in when the catalog has no URL for it.
func EnsureURL(r types.Resource, skillLabel string) types.Resource {
	if strings.TrimSpace(r.URL) != "" {
		return r
	}
	query := strings.TrimSpace(r.Title + " " + skillLabel)
	r.URL = searchURL + url.QueryEscape(query)
	return r
}

// bundleFor returns the skill's resource bundle or the catalog default.
func (s *Synthesizer) bundleFor(skillID string) types.SkillResources {
	if b, ok := s.catalog.Resources(skillID); ok {
		return b
	}
	return s.catalog.DefaultResources()
}

// topResources collects beginner then intermediate resources per skill in plan order,
// deduplicated by URL and capped.
func (s *Synthesizer) topResources(ordered []string) []types.TopResource {
	seen := make(map[string]bool)
	out := make([]types.TopResource, 0, maxTopResources)

	for _, id := range ordered {
		bundle := s.bundleFor(id)
		label := s.catalog.SkillLabel(id)
		pool := append(append([]types.Resource(nil), bundle.BeginnerResources...), bundle.IntermediateResources...)

		for _, r := range pool {
			r = EnsureURL(r, label)
			if seen[r.URL] {
				continue
			}
			seen[r.URL] = true
			out = append(out, types.TopResource{
				Resource:   r,
				Skill:      id,
				SkillLabel: label,
				IsFree:     r.IsFree(),
			})
			if len(out) == maxTopResources {
				return out
			}
		}
	}
	return out
}
