package views

import (
	"math"

	"github.com/nkhandel/bharat-terminal/internal/models"
)

// Sentiment label constants
const (
	SentimentBullish = "BULLISH"
	SentimentNeutral = "NEUTRAL"
	SentimentBearish = "BEARISH"
)

// Label thresholds: score >= 65 bullish, >= 45 neutral, else bearish.
const (
	bullishThreshold = 65
	neutralThreshold = 45
)

// SentimentView scores the current news set.
type SentimentView struct {
	Score    int    `json:"score"`
	Label    string `json:"label"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
	Neutral  int    `json:"neutral"`
}

// Sentiment computes 100 * positive articles / total articles, rounded. An
// empty article set scores 0 and reads bearish.
func Sentiment(articles []models.NewsArticle) SentimentView {
	var v SentimentView
	for _, a := range articles {
		switch a.Impact {
		case models.ImpactPositive:
			v.Positive++
		case models.ImpactNegative:
			v.Negative++
		default:
			v.Neutral++
		}
	}
	if len(articles) > 0 {
		v.Score = int(math.Round(float64(v.Positive) / float64(len(articles)) * 100))
	}
	switch {
	case v.Score >= bullishThreshold:
		v.Label = SentimentBullish
	case v.Score >= neutralThreshold:
		v.Label = SentimentNeutral
	default:
		v.Label = SentimentBearish
	}
	return v
}
