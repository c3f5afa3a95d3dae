package queries

// GetContentQuery fetches the whole presentation document
type GetContentQuery struct{}

// Validate validates the query
func (q GetContentQuery) Validate() error {
	return nil
}

// GetTimelineLayoutQuery resolves the timeline canvas layout of the stored document
type GetTimelineLayoutQuery struct{}

// Validate validates the query
func (q GetTimelineLayoutQuery) Validate() error {
	return nil
}

// GetStrategyLayoutQuery resolves the strategy card layout of the stored document
type GetStrategyLayoutQuery struct{}

// Validate validates the query
func (q GetStrategyLayoutQuery) Validate() error {
	return nil
}
