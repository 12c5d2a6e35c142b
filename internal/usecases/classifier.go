package usecases

import (
	"strings"

	"student_diary/internal/models"
)

// Classifier derives sentiment, topics and stress from entry text using the
// substring tables of a RuleSet. Matching is deliberately naive: "sadly"
// counts as "sad".
type Classifier struct {
	rules RuleSet
}

func NewClassifier(rules RuleSet) *Classifier {
	return &Classifier{rules: rules}
}

// Classify is a pure function of text and mood. A nil mood means none was
// given.
func (c *Classifier) Classify(text string, mood *int) models.Classification {
	lower := strings.ToLower(text)

	positives := countMatches(lower, c.rules.PositiveWords)
	negatives := countMatches(lower, c.rules.NegativeWords)

	result := models.Classification{
		Sentiment:   sentimentOf(positives, negatives),
		Topics:      c.topics(lower),
		StressLevel: c.stress(mood, negatives),
	}
	result.Insights = buildInsights(result, c.rules)

	return result
}

// countMatches counts how many words of the list occur in text, each at most
// once.
func countMatches(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}

func sentimentOf(positives, negatives int) models.Sentiment {
	switch {
	case positives > negatives:
		return models.SentimentPositive
	case negatives > positives:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

func (c *Classifier) topics(lower string) []models.TopicTag {
	topics := []models.TopicTag{}
	for _, tag := range models.TopicTags {
		if countMatches(lower, c.rules.Topics[tag]) > 0 {
			topics = append(topics, tag)
		}
	}
	return topics
}

func (c *Classifier) stress(mood *int, negatives int) models.StressLevel {
	switch {
	case mood != nil && *mood <= c.rules.HighStressMood:
		return models.StressHigh
	case negatives > c.rules.MediumStressNegatives:
		return models.StressMedium
	default:
		return models.StressLow
	}
}
