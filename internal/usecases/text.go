package usecases

import "strings"

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// moodNote is the short note stored with a mood sample.
func moodNote(text string) string {
	if len([]rune(text)) > 50 {
		return truncate(text, 50) + "..."
	}
	return text
}
