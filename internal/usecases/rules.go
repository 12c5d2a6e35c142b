package usecases

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"student_diary/internal/models"
)

// RuleSet holds the word tables the classifier runs on. Replacing a table
// changes behaviour without touching the classification code.
type RuleSet struct {
	PositiveWords []string
	NegativeWords []string
	// Topics maps each tag to the keywords that select it.
	Topics map[models.TopicTag][]string

	// HighStressMood is the highest mood value still counted as high stress.
	HighStressMood int
	// MediumStressNegatives is the negative-word count that must be exceeded
	// for medium stress.
	MediumStressNegatives int

	NegativeInsight string
	TopicInsights   map[models.TopicTag]string
}

func DefaultRuleSet() RuleSet {
	return RuleSet{
		PositiveWords: []string{"happy", "excited", "great", "amazing", "wonderful", "proud", "success", "love", "enjoy", "fun", "good", "nice"},
		NegativeWords: []string{"sad", "angry", "frustrated", "worried", "scared", "lonely", "tired", "stress", "fail", "hate", "bad", "terrible"},
		Topics: map[models.TopicTag][]string{
			models.TopicAcademic: {"test", "exam", "homework", "study", "class", "teacher", "school", "grade", "assignment", "project", "math", "physics", "chemistry"},
			models.TopicSocial:   {"friend", "group", "party", "invite", "lunch", "play", "talk", "share", "help", "support"},
			models.TopicFamily:   {"mom", "dad", "parent", "family", "home", "house", "sister", "brother"},
			models.TopicCultural: {"diwali", "holi", "rakhi", "ganesh", "festival", "celebration", "tradition", "culture"},
		},
		HighStressMood:        3,
		MediumStressNegatives: 2,
		NegativeInsight:       "It's okay to have difficult days. Remember that your feelings are valid and temporary.",
		TopicInsights: map[models.TopicTag]string{
			models.TopicAcademic: "You're showing dedication to your studies. Consider breaking large tasks into smaller steps.",
			models.TopicSocial:   "Human connections are important. Remember that you have people who care about you.",
			models.TopicCultural: "Your cultural heritage is a beautiful part of who you are. Celebrate it with joy!",
		},
	}
}

// ReflectionTemplates are the complete message bundles the reflection
// composer chooses between.
type ReflectionTemplates struct {
	Default  models.Reflection
	Negative models.Reflection
	Positive models.Reflection
	Neutral  models.Reflection
}

func DefaultReflectionTemplates() ReflectionTemplates {
	return ReflectionTemplates{
		Default: models.Reflection{
			Greeting:      "Good morning!",
			Message:       "A new day begins with endless possibilities.",
			Encouragement: "Your thoughts and feelings matter.",
			Action:        "Today's focus: Write about what's on your mind.",
		},
		Negative: models.Reflection{
			Greeting:      "Good morning!",
			Message:       "Yesterday's challenges show your strength in facing difficulties.",
			Encouragement: "Remember, every challenge you face makes you stronger.",
			Action:        "Today's focus: Take one step at a time.",
		},
		Positive: models.Reflection{
			Greeting:      "Good morning!",
			Message:       "Yesterday's positive energy is still with you today!",
			Encouragement: "Keep that momentum going - you're doing great!",
			Action:        "Today's focus: Build on yesterday's success.",
		},
		Neutral: models.Reflection{
			Greeting:      "Good morning!",
			Message:       "A new day brings new opportunities.",
			Encouragement: "You have the power to make today amazing.",
			Action:        "Today's focus: What would make you proud?",
		},
	}
}

type EventKeyword struct {
	Word     string
	Category models.EventCategory
	Priority models.EventPriority
}

// DatePattern is a date expression and the offset, in days from today, it
// resolves to.
type DatePattern struct {
	Name       string
	Expr       *regexp.Regexp
	OffsetDays int
}

type EventRules struct {
	Keywords []EventKeyword
	// DatePatterns are tried in order; the first one found anywhere in the
	// text decides the event date.
	DatePatterns []DatePattern
	// ExcerptLength caps how much of the entry is quoted in descriptions.
	ExcerptLength int
}

func DefaultEventRules() EventRules {
	academic := func(word string, priority models.EventPriority) EventKeyword {
		return EventKeyword{Word: word, Category: models.CategoryAcademic, Priority: priority}
	}
	personal := func(word string) EventKeyword {
		return EventKeyword{Word: word, Category: models.CategoryPersonal, Priority: models.PriorityMedium}
	}

	patterns := []DatePattern{
		{Name: "tomorrow", Expr: regexp.MustCompile(`tomorrow`), OffsetDays: 1},
		{Name: "next week", Expr: regexp.MustCompile(`next week`), OffsetDays: 7},
		// Everything below falls back to a week out; only "tomorrow" and
		// "next week" resolve precisely.
		{Name: "next month", Expr: regexp.MustCompile(`next month`), OffsetDays: 7},
		{Name: "in n days", Expr: regexp.MustCompile(`in \d+ days?`), OffsetDays: 7},
	}
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		patterns = append(patterns, DatePattern{
			Name:       name + " day",
			Expr:       regexp.MustCompile(fmt.Sprintf(`%s \d+`, name)),
			OffsetDays: 7,
		})
	}

	return EventRules{
		Keywords: []EventKeyword{
			academic("test", models.PriorityHigh),
			academic("exam", models.PriorityHigh),
			academic("quiz", models.PriorityHigh),
			academic("assignment", models.PriorityMedium),
			academic("project", models.PriorityMedium),
			personal("birthday"),
			personal("party"),
			personal("celebration"),
			personal("festival"),
			personal("meeting"),
			personal("appointment"),
		},
		DatePatterns:  patterns,
		ExcerptLength: 100,
	}
}
