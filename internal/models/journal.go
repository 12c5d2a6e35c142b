package models

import (
	"time"
)

type JournalEntry struct {
	ID        int        `json:"id" db:"id" validate:"gt=0"`
	Date      Date       `json:"date" db:"entry_date" validate:"required"`
	Content   string     `json:"content" db:"content"`
	Mood      *int       `json:"mood" db:"mood" validate:"omitempty,min=1,max=10"`
	Topics    []TopicTag `json:"topics" db:"topics"`
	WordCount int        `json:"word_count" db:"word_count" validate:"gte=0"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
