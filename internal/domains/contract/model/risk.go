package model

import (
	"fmt"
	"strings"
)

const (
	RiskLevelHigh   = "High"
	RiskLevelMedium = "Medium"
	RiskLevelLow    = "Low"

	riskLevelHighThreshold   = 70
	riskLevelMediumThreshold = 31
)

const (
	CategoryFinancialTerms     = "financial_terms"
	CategoryOperationalControl = "operational_control"
	CategoryLegalProtection    = "legal_protection"
	CategoryFlexibilityExit    = "flexibility_exit"
)

type RiskFactor struct {
	Key      string
	Category string
	Weight   int
	Keywords []string
}

// riskFactors is the fixed assessment table. Weights sum to 100 so a
// contract matching every factor scores exactly 100.
var riskFactors = []RiskFactor{
	{
		Key:      "unfavorable_rent",
		Category: CategoryFinancialTerms,
		Weight:   10,
		Keywords: []string{"minimum rent", "rent escalation", "base rent increase"},
	},
	{
		Key:      "payment_obligation",
		Category: CategoryFinancialTerms,
		Weight:   8,
		Keywords: []string{"payment in advance", "non-refundable", "upfront payment"},
	},
	{
		Key:      "penalty_exposure",
		Category: CategoryFinancialTerms,
		Weight:   9,
		Keywords: []string{"penalty", "liquidated damages", "late fee"},
	},
	{
		Key:      "exclusive_control",
		Category: CategoryOperationalControl,
		Weight:   9,
		Keywords: []string{"sole discretion", "exclusive right", "unilateral"},
	},
	{
		Key:      "operational_restrictions",
		Category: CategoryOperationalControl,
		Weight:   7,
		Keywords: []string{"must not", "prohibited from", "restriction on use"},
	},
	{
		Key:      "audit_burden",
		Category: CategoryOperationalControl,
		Weight:   6,
		Keywords: []string{"audit", "inspection at any time"},
	},
	{
		Key:      "unlimited_liability",
		Category: CategoryLegalProtection,
		Weight:   12,
		Keywords: []string{"unlimited liability", "indemnify", "hold harmless"},
	},
	{
		Key:      "no_warranty",
		Category: CategoryLegalProtection,
		Weight:   8,
		Keywords: []string{"as is", "no warranty", "without warranty"},
	},
	{
		Key:      "jurisdiction_risk",
		Category: CategoryLegalProtection,
		Weight:   6,
		Keywords: []string{"foreign jurisdiction", "exclusive venue"},
	},
	{
		Key:      "long_term_lease",
		Category: CategoryFlexibilityExit,
		Weight:   15,
		Keywords: []string{"10 years", "ten years", "long-term lease"},
	},
	{
		Key:      "no_termination",
		Category: CategoryFlexibilityExit,
		Weight:   10,
		Keywords: []string{"no termination", "may not terminate", "irrevocable"},
	},
}

var recommendationsByLevel = map[string][]string{
	RiskLevelHigh: {
		"Escalate to legal counsel before signing",
		"Negotiate caps on liability and penalty clauses",
		"Request shorter initial term with renewal options",
	},
	RiskLevelMedium: {
		"Review flagged clauses with the counterparty",
		"Document accepted risks and mitigation owners",
	},
	RiskLevelLow: {
		"Proceed with standard review",
	},
}

type DetectedFactor struct {
	Key      string `json:"key"`
	Category string `json:"category"`
	Weight   int    `json:"weight"`
}

type RiskAssessment struct {
	Score           int              `json:"score"`
	Level           string           `json:"level"`
	DetectedFactors []DetectedFactor `json:"detected_factors"`
	Recommendations []string         `json:"recommendations"`
	Summary         string           `json:"summary"`
}

// AssessRisk scores the contract text against the factor table. A factor is
// detected when any of its keywords appears in the lowercased text. The
// function is deterministic and never fails.
func AssessRisk(name, description string) RiskAssessment {
	text := strings.ToLower(name + " " + description)

	detected := make([]DetectedFactor, 0, len(riskFactors))

	totalWeight := 0
	detectedWeight := 0

	for _, factor := range riskFactors {
		totalWeight += factor.Weight

		if matchesAny(text, factor.Keywords) {
			detectedWeight += factor.Weight
			detected = append(detected, DetectedFactor{
				Key:      factor.Key,
				Category: factor.Category,
				Weight:   factor.Weight,
			})
		}
	}

	score := scoreFromWeights(detectedWeight, totalWeight)
	level := LevelFromScore(score)

	return RiskAssessment{
		Score:           score,
		Level:           level,
		DetectedFactors: detected,
		Recommendations: recommendationsByLevel[level],
		Summary:         fmt.Sprintf("%d of %d risk factors detected", len(detected), len(riskFactors)),
	}
}

// Factors exposes a copy of the assessment table for the random fallback.
func Factors() []RiskFactor {
	factors := make([]RiskFactor, len(riskFactors))
	copy(factors, riskFactors)

	return factors
}

// BuildAssessment assembles an assessment from an externally decided factor
// set. Used when the random fallback augments the deterministic detection.
func BuildAssessment(detected []DetectedFactor) RiskAssessment {
	totalWeight := 0
	for _, factor := range riskFactors {
		totalWeight += factor.Weight
	}

	detectedWeight := 0
	for _, factor := range detected {
		detectedWeight += factor.Weight
	}

	score := scoreFromWeights(detectedWeight, totalWeight)
	level := LevelFromScore(score)

	return RiskAssessment{
		Score:           score,
		Level:           level,
		DetectedFactors: detected,
		Recommendations: recommendationsByLevel[level],
		Summary:         fmt.Sprintf("%d of %d risk factors detected", len(detected), len(riskFactors)),
	}
}

func LevelFromScore(score int) string {
	switch {
	case score >= riskLevelHighThreshold:
		return RiskLevelHigh
	case score >= riskLevelMediumThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

func scoreFromWeights(detectedWeight, totalWeight int) int {
	if totalWeight == 0 {
		return 0
	}

	score := (detectedWeight*100 + totalWeight/2) / totalWeight

	if score < 0 {
		score = 0
	}

	if score > 100 {
		score = 100
	}

	return score
}

func matchesAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}

	return false
}
