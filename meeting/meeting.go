// Package meeting owns the closed set of meeting categories, the keyword
// classifier that maps free-text titles onto them, and the per-category
// profile table. Scoring code consumes this package; it never reaches back.
package meeting

import (
	"strings"
	"time"
)

// Type is a meeting category.
type Type string

const (
	Standup    Type = "standup"
	Planning   Type = "planning"
	Review     Type = "review"
	Brainstorm Type = "brainstorm"
	OneOnOne   Type = "one-on-one"
	AllHands   Type = "all-hands"
	Workshop   Type = "workshop"
	Social     Type = "social"
	General    Type = "general"
)

// Types lists every category in table order, General last.
func Types() []Type {
	return []Type{Standup, Planning, Review, Brainstorm, OneOnOne, AllHands, Workshop, Social, General}
}

// classifierRule binds a category to the title keywords that select it.
type classifierRule struct {
	category Type
	keywords []string
}

// Rules are evaluated in order; the first category with a matching keyword
// wins. Keep the more specific categories above the generic ones.
var classifierRules = []classifierRule{
	{Standup, []string{"standup", "stand-up", "daily sync", "scrum"}},
	{OneOnOne, []string{"1:1", "1-1", "one-on-one", "one on one", "check-in"}},
	{AllHands, []string{"all hands", "all-hands", "town hall", "company meeting"}},
	{Workshop, []string{"workshop", "training", "deep dive", "hands-on"}},
	{Brainstorm, []string{"brainstorm", "ideation", "braindump"}},
	{Planning, []string{"planning", "roadmap", "sprint plan", "quarterly plan"}},
	{Review, []string{"review", "retro", "retrospective", "demo", "postmortem"}},
	{Social, []string{"lunch", "coffee", "social", "party", "happy hour", "birthday", "team event"}},
}

// Classify maps a title onto a category, case-insensitively. Unmatched titles
// fall into General.
func Classify(title string) Type {
	lowered := strings.ToLower(title)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.category
			}
		}
	}
	return General
}

// Profile captures the static expectations for one category.
type Profile struct {
	OptimalDuration  time.Duration
	IdealStartTimes  []string // "HH:MM", 24-hour clock
	NeedsPreparation bool
	PreparationLead  time.Duration
	PreparationTasks []string
	NeedsFollowUp    bool
	FollowUpLead     time.Duration
	FollowUpTasks    []string
}

var profiles = map[Type]Profile{
	Standup: {
		OptimalDuration: 15 * time.Minute,
		IdealStartTimes: []string{"09:00", "09:30"},
	},
	Planning: {
		OptimalDuration:  60 * time.Minute,
		IdealStartTimes:  []string{"10:00", "14:00"},
		NeedsPreparation: true,
		PreparationLead:  30 * time.Minute,
		PreparationTasks: []string{"Collect open items from the backlog", "Share the agenda with attendees"},
		NeedsFollowUp:    true,
		FollowUpLead:     15 * time.Minute,
		FollowUpTasks:    []string{"Publish the agreed plan", "File action items"},
	},
	Review: {
		OptimalDuration:  45 * time.Minute,
		IdealStartTimes:  []string{"11:00", "15:00"},
		NeedsPreparation: true,
		PreparationLead:  15 * time.Minute,
		PreparationTasks: []string{"Gather material to review"},
		NeedsFollowUp:    true,
		FollowUpLead:     15 * time.Minute,
		FollowUpTasks:    []string{"Send review notes to attendees"},
	},
	Brainstorm: {
		OptimalDuration:  60 * time.Minute,
		IdealStartTimes:  []string{"10:00", "15:00"},
		NeedsFollowUp:    true,
		FollowUpLead:     30 * time.Minute,
		FollowUpTasks:    []string{"Write up the ideas that survived"},
	},
	OneOnOne: {
		OptimalDuration: 30 * time.Minute,
		IdealStartTimes: []string{"11:00", "16:00"},
	},
	AllHands: {
		OptimalDuration:  60 * time.Minute,
		IdealStartTimes:  []string{"13:00", "16:00"},
		NeedsPreparation: true,
		PreparationLead:  60 * time.Minute,
		PreparationTasks: []string{"Finalize slides", "Collect submitted questions"},
		NeedsFollowUp:    true,
		FollowUpLead:     30 * time.Minute,
		FollowUpTasks:    []string{"Share the recording and Q&A summary"},
	},
	Workshop: {
		OptimalDuration:  120 * time.Minute,
		IdealStartTimes:  []string{"09:00", "13:00"},
		NeedsPreparation: true,
		PreparationLead:  60 * time.Minute,
		PreparationTasks: []string{"Prepare exercises and materials", "Book a room with a whiteboard"},
		NeedsFollowUp:    true,
		FollowUpLead:     30 * time.Minute,
		FollowUpTasks:    []string{"Distribute workshop outputs"},
	},
	Social: {
		OptimalDuration: 60 * time.Minute,
		IdealStartTimes: []string{"12:00", "17:00"},
	},
	General: {
		OptimalDuration: 30 * time.Minute,
	},
}

// ProfileFor returns the profile for a category, General for anything unknown.
func ProfileFor(t Type) Profile {
	if p, ok := profiles[t]; ok {
		return p
	}
	return profiles[General]
}
