package usecases

import "student_diary/internal/models"

type ReflectionComposer struct {
	classifier *Classifier
	templates  ReflectionTemplates
}

func NewReflectionComposer(classifier *Classifier, templates ReflectionTemplates) *ReflectionComposer {
	return &ReflectionComposer{classifier: classifier, templates: templates}
}

// Compose picks the morning reflection for the previous entry. With no
// previous entry the default bundle is returned without classifying
// anything.
func (rc *ReflectionComposer) Compose(prev *models.JournalEntry) models.Reflection {
	if prev == nil {
		return rc.templates.Default
	}

	analysis := rc.classifier.Classify(prev.Content, prev.Mood)

	switch analysis.Sentiment {
	case models.SentimentNegative:
		return rc.templates.Negative
	case models.SentimentPositive:
		return rc.templates.Positive
	default:
		return rc.templates.Neutral
	}
}
