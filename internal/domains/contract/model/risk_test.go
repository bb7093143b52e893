package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backoffice/internal/domains/contract/model"
)

func TestAssessRisk(t *testing.T) {
	t.Run("lease clauses are detected deterministically", func(t *testing.T) {
		assessment := model.AssessRisk(
			"Venue Lease Agreement",
			"The term of this lease is 10 years with a minimum rent reviewed annually.",
		)

		assert.Equal(t, 25, assessment.Score)
		assert.Equal(t, model.RiskLevelLow, assessment.Level)
		assert.Len(t, assessment.DetectedFactors, 2)

		keys := make([]string, 0, len(assessment.DetectedFactors))
		for _, factor := range assessment.DetectedFactors {
			keys = append(keys, factor.Key)
		}

		assert.Contains(t, keys, "unfavorable_rent")
		assert.Contains(t, keys, "long_term_lease")
	})

	t.Run("clean contract scores zero", func(t *testing.T) {
		assessment := model.AssessRisk("Catering Agreement", "Supplier delivers weekly.")

		assert.Equal(t, 0, assessment.Score)
		assert.Equal(t, model.RiskLevelLow, assessment.Level)
		assert.Empty(t, assessment.DetectedFactors)
	})

	t.Run("matching every factor scores one hundred", func(t *testing.T) {
		description := "minimum rent, payment in advance, penalty, sole discretion, " +
			"must not sublet, audit, unlimited liability, as is, foreign jurisdiction, " +
			"10 years, no termination"

		assessment := model.AssessRisk("Worst Case Lease", description)

		assert.Equal(t, 100, assessment.Score)
		assert.Equal(t, model.RiskLevelHigh, assessment.Level)
		assert.Len(t, assessment.DetectedFactors, len(model.Factors()))
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		assessment := model.AssessRisk("Lease", "MINIMUM RENT applies from year one.")

		assert.Len(t, assessment.DetectedFactors, 1)
	})
}

func TestLevelFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, model.RiskLevelLow},
		{30, model.RiskLevelLow},
		{31, model.RiskLevelMedium},
		{69, model.RiskLevelMedium},
		{70, model.RiskLevelHigh},
		{100, model.RiskLevelHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, model.LevelFromScore(tt.score), "score %d", tt.score)
	}
}

func TestBuildAssessment(t *testing.T) {
	factors := model.Factors()

	assessment := model.BuildAssessment([]model.DetectedFactor{
		{Key: factors[0].Key, Category: factors[0].Category, Weight: factors[0].Weight},
	})

	assert.Equal(t, factors[0].Weight, assessment.Score)
	assert.NotEmpty(t, assessment.Recommendations)
	assert.NotEmpty(t, assessment.Summary)
}
