// Package score holds the two trust scorers. Both are pure functions
// over already-extracted signals and both clamp their result to [0, 100]
// so a report never carries an out-of-range score.
package score

// Risk thresholds for bucketing a trust score when presenting it.
const (
	ThresholdLow  = 40
	ThresholdHigh = 80
)

// Trust is the primary scorer. Starting from 100 it subtracts 5 per
// detected risk keyword, 10 for a domain younger than a year, and either
// 10 for a domain with no archive snapshots or 5 for one whose content
// changed over a span shorter than 30 days.
func Trust(keywordCount, domainAgeYears, snapshotsFound, changePeriodDays int) int {
	s := 100 - 5*keywordCount

	if domainAgeYears < 1 {
		s -= 10
	}

	if snapshotsFound == 0 {
		s -= 10
	} else if changePeriodDays < 30 {
		s -= 5
	}

	return clamp(s)
}

// Evaluate is the standalone alternate scorer over image and keyword
// counts only. Sparse pages and keyword-heavy pages both pull the score
// down, each capped at a 50-point contribution.
func Evaluate(imageCount, keywordCount int) int {
	imageFactor := 100 - min(imageCount*5, 50)
	keywordFactor := min(keywordCount*4, 50)

	return clamp(100 - (keywordFactor+(100-imageFactor))/2)
}

func clamp(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
