package entities

import (
	"fmt"
	"strconv"
	"strings"

	"portfolio/domain/core/valueobjects"
	pkgerrors "portfolio/pkg/errors"
)

// Document is the whole presentation content tree. It is treated as an
// immutable value: every editing method returns a new Document and leaves the
// receiver untouched, so a document handed to one component can never be
// changed behind its back by another.
type Document struct {
	Hero            Hero             `json:"hero"`
	Strategy        Strategy         `json:"strategy"`
	Timeline        []Milestone      `json:"timeline"`
	CareerPathSteps *CareerPathSteps `json:"careerPathSteps,omitempty"`
	Skills          []SkillBadge     `json:"skills"`
	Projects        []ProjectCard    `json:"projects"`
	Lessons         []LessonLearned  `json:"lessons"`
	FutureGoals     FutureGoals      `json:"futureGoals"`
}

// Hero is the opening banner.
type Hero struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	Tagline         string `json:"tagline"`
	CTAText         string `json:"ctaText"`
	LinkedInURL     string `json:"linkedInUrl,omitempty"`
	LinkedInCTAText string `json:"linkedInCtaText,omitempty"`
}

// Strategy holds the draggable strategy cards. PointPositions is only honoured
// when it has exactly one entry per point.
type Strategy struct {
	Headline       string                  `json:"headline"`
	Description    string                  `json:"description"`
	Points         []string                `json:"points"`
	PointPositions []valueobjects.Position `json:"pointPositions,omitempty"`
}

// HasPointPositions reports whether stored card positions line up with the points.
func (s Strategy) HasPointPositions() bool {
	return len(s.PointPositions) > 0 && len(s.PointPositions) == len(s.Points)
}

// CareerPathSteps is the optional numbered steps section.
type CareerPathSteps struct {
	Headline    string           `json:"headline"`
	Description string           `json:"description"`
	Steps       []CareerPathStep `json:"steps"`
}

// CareerPathStep is one numbered step.
type CareerPathStep struct {
	ID          string `json:"id"`
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SkillCategory groups skill badges.
type SkillCategory string

const (
	SkillLanguage  SkillCategory = "language"
	SkillFramework SkillCategory = "framework"
	SkillTool      SkillCategory = "tool"
	SkillOther     SkillCategory = "other"
)

// SkillBadge is a single skill.
type SkillBadge struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
}

// ProjectCard is a showcased project.
type ProjectCard struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Outcomes    []string `json:"outcomes"`
	TechStack   []string `json:"techStack,omitempty"`
}

// LessonLearned is a numbered lesson.
type LessonLearned struct {
	ID        string `json:"id"`
	Number    int    `json:"number"`
	Headline  string `json:"headline"`
	Paragraph string `json:"paragraph"`
	Icon      string `json:"icon"`
}

// FutureGoal is one forward-looking goal.
type FutureGoal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FutureGoals is the closing section.
type FutureGoals struct {
	Headline    string       `json:"headline"`
	Vision      string       `json:"vision"`
	Goals       []FutureGoal `json:"goals"`
	CTAText     string       `json:"ctaText"`
	LinkedInURL string       `json:"linkedInUrl,omitempty"`
}

// CoerceNumber reads a numeric form field the forgiving way: an optional sign
// and the leading digits count, the rest is ignored. Input with no leading
// digits, or that reads as zero, becomes 1.
func CoerceNumber(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 1
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n == 0 {
		return 1
	}
	return n
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	c := d
	c.Strategy.Points = cloneStrings(d.Strategy.Points)
	if d.Strategy.PointPositions != nil {
		c.Strategy.PointPositions = append([]valueobjects.Position(nil), d.Strategy.PointPositions...)
	}
	c.Timeline = CloneMilestones(d.Timeline)
	if d.CareerPathSteps != nil {
		steps := *d.CareerPathSteps
		steps.Steps = append([]CareerPathStep(nil), d.CareerPathSteps.Steps...)
		c.CareerPathSteps = &steps
	}
	if d.Skills != nil {
		c.Skills = append([]SkillBadge(nil), d.Skills...)
	}
	if d.Projects != nil {
		c.Projects = make([]ProjectCard, len(d.Projects))
		for i, p := range d.Projects {
			p.Outcomes = cloneStrings(p.Outcomes)
			p.TechStack = cloneStrings(p.TechStack)
			c.Projects[i] = p
		}
	}
	if d.Lessons != nil {
		c.Lessons = append([]LessonLearned(nil), d.Lessons...)
	}
	if d.FutureGoals.Goals != nil {
		c.FutureGoals.Goals = append([]FutureGoal(nil), d.FutureGoals.Goals...)
	}
	return c
}

// FindMilestone looks up a timeline milestone, or a child of one, by id.
func (d Document) FindMilestone(id string) (Milestone, bool) {
	return FindMilestone(d.Timeline, id)
}

// WithTimeline replaces the whole timeline.
func (d Document) WithTimeline(timeline []Milestone) Document {
	c := d.Clone()
	c.Timeline = CloneMilestones(timeline)
	return c
}

// UpdateMilestone applies fn to the milestone with the given id, searching
// top-level milestones and their children.
func (d Document) UpdateMilestone(id string, fn func(Milestone) Milestone) (Document, error) {
	c := d.Clone()
	for i := range c.Timeline {
		if c.Timeline[i].ID == id {
			c.Timeline[i] = fn(c.Timeline[i])
			return c, nil
		}
		for j := range c.Timeline[i].Children {
			if c.Timeline[i].Children[j].ID == id {
				c.Timeline[i].Children[j] = fn(c.Timeline[i].Children[j])
				return c, nil
			}
		}
	}
	return d, pkgerrors.NewNotFoundError(fmt.Sprintf("milestone %q", id))
}

// AddMilestone appends a milestone to the timeline.
func (d Document) AddMilestone(m Milestone) Document {
	c := d.Clone()
	c.Timeline = append(c.Timeline, m.Clone())
	return c
}

// RemoveMilestone drops a top-level milestone or a child milestone.
func (d Document) RemoveMilestone(id string) (Document, error) {
	c := d.Clone()
	for i, m := range c.Timeline {
		if m.ID == id {
			c.Timeline = append(c.Timeline[:i], c.Timeline[i+1:]...)
			return c, nil
		}
		for j, child := range m.Children {
			if child.ID == id {
				c.Timeline[i].Children = append(m.Children[:j], m.Children[j+1:]...)
				return c, nil
			}
		}
	}
	return d, pkgerrors.NewNotFoundError(fmt.Sprintf("milestone %q", id))
}

// AddChild nests child under the top-level milestone parentID. Children of
// the child are discarded since nesting is one level deep.
func (d Document) AddChild(parentID string, child Milestone) (Document, error) {
	c := d.Clone()
	for i := range c.Timeline {
		if c.Timeline[i].ID == parentID {
			nested := child.Clone()
			nested.Children = nil
			nested.Position = nil
			c.Timeline[i].Children = append(c.Timeline[i].Children, nested)
			return c, nil
		}
	}
	return d, pkgerrors.NewNotFoundError(fmt.Sprintf("milestone %q", parentID))
}

// SetMilestoneLogo stores an uploaded image URL on a milestone.
func (d Document) SetMilestoneLogo(id, url string) (Document, error) {
	return d.UpdateMilestone(id, func(m Milestone) Milestone {
		m.LogoURL = url
		return m
	})
}

// ApplyTimelinePositions writes manual positions onto top-level milestones by
// id. Unknown ids are ignored; milestones without an entry keep their
// current position (or lack of one).
func (d Document) ApplyTimelinePositions(positions map[string]valueobjects.Position) Document {
	c := d.Clone()
	for i := range c.Timeline {
		if p, ok := positions[c.Timeline[i].ID]; ok {
			p := p
			c.Timeline[i].Position = &p
		}
	}
	return c
}

// WithStrategyPositions stores one card position per strategy point.
func (d Document) WithStrategyPositions(positions []valueobjects.Position) (Document, error) {
	if len(positions) != len(d.Strategy.Points) {
		return d, pkgerrors.NewValidationError(fmt.Sprintf(
			"expected %d strategy positions, got %d", len(d.Strategy.Points), len(positions)))
	}
	c := d.Clone()
	c.Strategy.PointPositions = append([]valueobjects.Position(nil), positions...)
	return c, nil
}

// AddStrategyPoint appends a card. Stored positions no longer line up with
// the points afterwards, so they are dropped and the default layout applies.
func (d Document) AddStrategyPoint(text string) Document {
	c := d.Clone()
	c.Strategy.Points = append(c.Strategy.Points, text)
	c.Strategy.PointPositions = nil
	return c
}

// UpdateStrategyPoint replaces the text of card i.
func (d Document) UpdateStrategyPoint(i int, text string) (Document, error) {
	if i < 0 || i >= len(d.Strategy.Points) {
		return d, pkgerrors.NewNotFoundError(fmt.Sprintf("strategy point %d", i))
	}
	c := d.Clone()
	c.Strategy.Points[i] = text
	return c, nil
}

// RemoveStrategyPoint drops card i together with its stored position.
func (d Document) RemoveStrategyPoint(i int) (Document, error) {
	if i < 0 || i >= len(d.Strategy.Points) {
		return d, pkgerrors.NewNotFoundError(fmt.Sprintf("strategy point %d", i))
	}
	c := d.Clone()
	c.Strategy.Points = append(c.Strategy.Points[:i], c.Strategy.Points[i+1:]...)
	if d.Strategy.HasPointPositions() {
		c.Strategy.PointPositions = append(c.Strategy.PointPositions[:i], c.Strategy.PointPositions[i+1:]...)
	} else {
		c.Strategy.PointPositions = nil
	}
	return c, nil
}

// SetCareerStepNumber sets a step number from raw form input.
func (d Document) SetCareerStepNumber(id, raw string) (Document, error) {
	if d.CareerPathSteps != nil {
		for i, s := range d.CareerPathSteps.Steps {
			if s.ID == id {
				c := d.Clone()
				c.CareerPathSteps.Steps[i].Number = CoerceNumber(raw)
				return c, nil
			}
		}
	}
	return d, pkgerrors.NewNotFoundError(fmt.Sprintf("career step %q", id))
}

// SetLessonNumber sets a lesson number from raw form input.
func (d Document) SetLessonNumber(id, raw string) (Document, error) {
	for i, l := range d.Lessons {
		if l.ID == id {
			c := d.Clone()
			c.Lessons[i].Number = CoerceNumber(raw)
			return c, nil
		}
	}
	return d, pkgerrors.NewNotFoundError(fmt.Sprintf("lesson %q", id))
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
