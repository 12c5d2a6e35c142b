package models

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

type TopicTag string

const (
	TopicAcademic TopicTag = "academic"
	TopicSocial   TopicTag = "social"
	TopicFamily   TopicTag = "family"
	TopicCultural TopicTag = "cultural"
)

// TopicTags lists every topic in enumeration order. Classifier output
// follows this order.
var TopicTags = []TopicTag{TopicAcademic, TopicSocial, TopicFamily, TopicCultural}

type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

type Classification struct {
	Sentiment   Sentiment   `json:"sentiment"`
	Topics      []TopicTag  `json:"topics"`
	StressLevel StressLevel `json:"stress_level"`
	Insights    []string    `json:"insights"`
}

// HasTopic reports whether tag was detected.
func (c Classification) HasTopic(tag TopicTag) bool {
	for _, t := range c.Topics {
		if t == tag {
			return true
		}
	}
	return false
}

type Reflection struct {
	Greeting      string `json:"greeting"`
	Message       string `json:"message"`
	Encouragement string `json:"encouragement"`
	Action        string `json:"action"`
}
