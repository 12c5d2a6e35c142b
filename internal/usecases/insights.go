package usecases

import "student_diary/internal/models"

// buildInsights appends one message per satisfied condition: negative
// sentiment first, then topics in enumeration order.
func buildInsights(c models.Classification, rules RuleSet) []string {
	insights := []string{}

	if c.Sentiment == models.SentimentNegative && rules.NegativeInsight != "" {
		insights = append(insights, rules.NegativeInsight)
	}

	for _, tag := range models.TopicTags {
		msg, ok := rules.TopicInsights[tag]
		if ok && c.HasTopic(tag) {
			insights = append(insights, msg)
		}
	}

	return insights
}

// Insights exposes the advisory messages of a classification in the order
// they were generated.
// TODO: suppress insights already shown on the previous day once the
// document's reserved insights array records what was displayed.
func Insights(c models.Classification) []string {
	return append([]string{}, c.Insights...)
}
