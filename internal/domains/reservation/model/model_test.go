package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"backoffice/internal/domains/reservation/model"
)

func clock(h, m int) time.Time {
	return time.Date(0, time.January, 1, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{
			name:   "partial overlap",
			aStart: clock(14, 0), aEnd: clock(16, 0),
			bStart: clock(15, 0), bEnd: clock(17, 0),
			want: true,
		},
		{
			name:   "contained interval",
			aStart: clock(14, 0), aEnd: clock(18, 0),
			bStart: clock(15, 0), bEnd: clock(16, 0),
			want: true,
		},
		{
			name:   "identical interval",
			aStart: clock(14, 0), aEnd: clock(16, 0),
			bStart: clock(14, 0), bEnd: clock(16, 0),
			want: true,
		},
		{
			name:   "back to back slots do not overlap",
			aStart: clock(14, 0), aEnd: clock(16, 0),
			bStart: clock(16, 0), bEnd: clock(18, 0),
			want: false,
		},
		{
			name:   "disjoint intervals",
			aStart: clock(9, 0), aEnd: clock(10, 0),
			bStart: clock(14, 0), bEnd: clock(16, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, model.Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestBilledHours(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int64
	}{
		{name: "exact hours", start: clock(14, 0), end: clock(16, 0), want: 2},
		{name: "partial hour rounds up", start: clock(14, 0), end: clock(15, 30), want: 2},
		{name: "sub hour bills one hour", start: clock(14, 0), end: clock(14, 15), want: 1},
		{name: "single hour", start: clock(9, 0), end: clock(10, 0), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.BilledHours(tt.start, tt.end))
		})
	}
}

func TestCalculateTotal(t *testing.T) {
	rate := decimal.NewFromInt(5000)

	total := model.CalculateTotal(clock(16, 0), clock(18, 0), rate)
	assert.True(t, decimal.NewFromInt(10000).Equal(total))

	total = model.CalculateTotal(clock(14, 0), clock(16, 30), rate)
	assert.True(t, decimal.NewFromInt(15000).Equal(total))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{model.StatusPending, model.StatusConfirmed, true},
		{model.StatusPending, model.StatusCancelled, true},
		{model.StatusPending, model.StatusCompleted, false},
		{model.StatusConfirmed, model.StatusCompleted, true},
		{model.StatusConfirmed, model.StatusCancelled, true},
		{model.StatusConfirmed, model.StatusPending, false},
		{model.StatusCompleted, model.StatusCancelled, false},
		{model.StatusCancelled, model.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+" to "+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}
