package events

import (
	"time"

	"portfolio/domain/core/valueobjects"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// Event types
const (
	TypeContentSaved       = "content.saved"
	TypeTimelineRearranged = "timeline.rearranged"
	TypeStrategyRearranged = "strategy.rearranged"
	TypeImageUploaded      = "image.uploaded"
)

func newBase(key, eventType string, timestamp time.Time) BaseEvent {
	return BaseEvent{
		AggregateID: key,
		EventType:   eventType,
		Timestamp:   timestamp,
		Version:     1,
	}
}

// ContentSaved is raised when the whole document is overwritten
type ContentSaved struct {
	BaseEvent
	Milestones     int `json:"milestones"`
	StrategyPoints int `json:"strategy_points"`
}

// NewContentSaved creates a ContentSaved event
func NewContentSaved(key string, milestones, points int, timestamp time.Time) ContentSaved {
	return ContentSaved{
		BaseEvent:      newBase(key, TypeContentSaved, timestamp),
		Milestones:     milestones,
		StrategyPoints: points,
	}
}

// TimelineRearranged is raised when dragged milestone positions are persisted
type TimelineRearranged struct {
	BaseEvent
	Positions map[string]valueobjects.Position `json:"positions"`
}

// NewTimelineRearranged creates a TimelineRearranged event
func NewTimelineRearranged(key string, positions map[string]valueobjects.Position, timestamp time.Time) TimelineRearranged {
	return TimelineRearranged{
		BaseEvent: newBase(key, TypeTimelineRearranged, timestamp),
		Positions: positions,
	}
}

// StrategyRearranged is raised when strategy card positions are persisted
type StrategyRearranged struct {
	BaseEvent
	Positions []valueobjects.Position `json:"positions"`
}

// NewStrategyRearranged creates a StrategyRearranged event
func NewStrategyRearranged(key string, positions []valueobjects.Position, timestamp time.Time) StrategyRearranged {
	return StrategyRearranged{
		BaseEvent: newBase(key, TypeStrategyRearranged, timestamp),
		Positions: positions,
	}
}

// ImageUploaded is raised when an image is stored
type ImageUploaded struct {
	BaseEvent
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// NewImageUploaded creates an ImageUploaded event
func NewImageUploaded(url string, size int64, timestamp time.Time) ImageUploaded {
	return ImageUploaded{
		BaseEvent: newBase(url, TypeImageUploaded, timestamp),
		URL:       url,
		Size:      size,
	}
}
