package roadmap

import "github.com/jonathan/career-pathfinder/internal/types"

// Every pool has four slots, selected by week-in-month.
var (
	foundationMissingTips = [4]string{
		"This skill is new to you. Aim for understanding over speed and take notes in your own words.",
		"Revisit last week's notes before starting. Spaced repetition makes new concepts stick.",
		"Try explaining today's topic to a friend. Gaps in the explanation show what to review.",
		"Don't worry about mastery yet. Finishing the fundamentals is the goal this month.",
	}
	foundationKnownTips = [4]string{
		"You already know the basics here. Skim familiar material and slow down on what's new.",
		"Look for the vocabulary professionals in this field use for what you already do.",
		"Write down one example from your past experience that used this skill.",
		"Use this week to fill gaps rather than relearn. A quick self-quiz helps you find them.",
	}
	practiceTips = [4]string{
		"Practice beats reading. Spend most of this week's hours doing the exercises.",
		"Time-box each exercise and move on if you get stuck. Come back to it at the end of the week.",
		"Share one piece of work in a community or forum and ask for specific feedback.",
		"Keep a log of mistakes. Patterns in it tell you what to practice next.",
	}
	projectTips = [4]string{
		"Scope the project small enough to finish. A finished small project beats an abandoned big one.",
		"Document decisions as you go. The write-up is part of the portfolio piece.",
		"Show your work to someone in the field and ask what they would change.",
		"Polish the README and publish it. Recruiters read project pages, not code.",
	}
)

// selectTip picks the tip for a week from the pool for its phase.
func selectTip(phase types.Phase, isMissing bool, weekInMonth int) string {
	var pool [4]string
	switch phase {
	case types.PhaseFoundation:
		if isMissing {
			pool = foundationMissingTips
		} else {
			pool = foundationKnownTips
		}
	case types.PhasePractice:
		pool = practiceTips
	default:
		pool = projectTips
	}
	return pool[weekInMonth%len(pool)]
}
