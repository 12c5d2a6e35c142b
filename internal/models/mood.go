package models

type MoodSample struct {
	Date Date   `json:"date" db:"sample_date" validate:"required"`
	Mood int    `json:"mood" db:"mood" validate:"min=1,max=10"`
	Note string `json:"note" db:"note"`
}

// MoodStats summarises a window of mood samples. Min and Max are nil when
// Count is zero.
type MoodStats struct {
	Average float64 `json:"average"`
	Min     *int    `json:"min,omitempty"`
	Max     *int    `json:"max,omitempty"`
	Count   int     `json:"count"`
}
