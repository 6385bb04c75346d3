package usecase

import (
	"sort"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
)

// Score weights: price and rating dominate, experience breaks near-ties.
const (
	priceWeight      = 0.4
	ratingWeight     = 0.4
	experienceWeight = 0.2
	nearbyPenalty    = 0.9
)

// scoreMatches fills MatchScore for every candidate in place.
func scoreMatches(matches []models.DriverMatch) {
	if len(matches) == 0 {
		return
	}

	var sum float64
	for _, m := range matches {
		sum += float64(m.Price)
	}
	avg := sum / float64(len(matches))

	for i := range matches {
		m := &matches[i]

		priceScore := 50.0
		if avg > 0 {
			priceScore = 100 - 100*float64(m.Price)/avg
			if priceScore < 0 {
				priceScore = 0
			}
		}

		ratingScore := m.Driver.AverageRating / 5.0 * 100
		experienceScore := float64(m.Driver.TotalRides)
		if experienceScore > 100 {
			experienceScore = 100
		}

		score := priceWeight*priceScore + ratingWeight*ratingScore + experienceWeight*experienceScore
		if m.MatchType == models.MatchTypeNearby {
			score *= nearbyPenalty
		}
		m.MatchScore = score
	}
}

// sortByScore orders candidates best-first, preserving input order on ties.
func sortByScore(matches []models.DriverMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
}

// pickRecommendations fills the three recommendation slots: best value is
// the top score, lowest price keeps the first-seen driver on ties, best
// rated breaks rating ties by lower price.
func pickRecommendations(result *models.MatchResult) {
	if len(result.Matches) == 0 {
		return
	}

	best := result.Matches[0]
	result.BestValue = &best

	lowest := result.Matches[0]
	for _, m := range result.Matches[1:] {
		if m.Price < lowest.Price {
			lowest = m
		}
	}
	result.LowestPrice = &lowest

	rated := result.Matches[0]
	for _, m := range result.Matches[1:] {
		if m.Driver.AverageRating > rated.Driver.AverageRating ||
			(m.Driver.AverageRating == rated.Driver.AverageRating && m.Price < rated.Price) {
			rated = m
		}
	}
	result.BestRated = &rated
}
