package usecases

import "student_diary/internal/models"

// AggregateMood summarises the last window samples of history in input
// order. A window of zero or less covers the whole history. An empty window
// averages to 0.
func AggregateMood(history []models.MoodSample, window int) models.MoodStats {
	samples := history
	if window > 0 && window < len(history) {
		samples = history[len(history)-window:]
	}

	stats := models.MoodStats{Count: len(samples)}
	if stats.Count == 0 {
		return stats
	}

	lo, hi, sum := samples[0].Mood, samples[0].Mood, 0
	for _, s := range samples {
		sum += s.Mood
		lo = min(lo, s.Mood)
		hi = max(hi, s.Mood)
	}

	stats.Average = float64(sum) / float64(stats.Count)
	stats.Min = &lo
	stats.Max = &hi

	return stats
}
