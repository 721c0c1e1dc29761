package domain

import "time"

// UsageSession records one interval of a tool being used by a person on a
// project. ToolID is a weak reference; the session survives deletion of
// the tool it points at.
type UsageSession struct {
	ID        string     `json:"id"`
	ToolID    string     `json:"tool_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	UsedBy    string     `json:"used_by"`
	Project   string     `json:"project"`
	Notes     string     `json:"notes,omitempty"`
	Hours     float64    `json:"hours"`
}

// Open reports whether the session has not been closed yet.
func (s *UsageSession) Open() bool {
	return s.EndTime == nil
}
