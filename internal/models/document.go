package models

// Document is the persisted diary state. The Insights array is reserved and
// carried through load/save untouched.
type Document struct {
	Entries     []JournalEntry  `json:"entries" validate:"dive"`
	Events      []CalendarEvent `json:"events" validate:"dive"`
	MoodHistory []MoodSample    `json:"mood_history" validate:"dive"`
	Insights    []string        `json:"insights"`
}

func NewDocument() *Document {
	return &Document{
		Entries:     []JournalEntry{},
		Events:      []CalendarEvent{},
		MoodHistory: []MoodSample{},
		Insights:    []string{},
	}
}

// Normalize replaces missing arrays with empty ones.
func (d *Document) Normalize() {
	if d.Entries == nil {
		d.Entries = []JournalEntry{}
	}
	if d.Events == nil {
		d.Events = []CalendarEvent{}
	}
	if d.MoodHistory == nil {
		d.MoodHistory = []MoodSample{}
	}
	if d.Insights == nil {
		d.Insights = []string{}
	}
}

// Clone returns a deep copy so callers cannot mutate the owner's state.
func (d *Document) Clone() *Document {
	out := &Document{
		Entries:     make([]JournalEntry, len(d.Entries)),
		Events:      append([]CalendarEvent{}, d.Events...),
		MoodHistory: append([]MoodSample{}, d.MoodHistory...),
		Insights:    append([]string{}, d.Insights...),
	}
	for i, e := range d.Entries {
		out.Entries[i] = e.Clone()
	}
	return out
}

func (e JournalEntry) Clone() JournalEntry {
	out := e
	if e.Mood != nil {
		mood := *e.Mood
		out.Mood = &mood
	}
	out.Topics = append([]TopicTag{}, e.Topics...)
	return out
}
