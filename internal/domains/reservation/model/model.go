package model

import (
	"time"

	"backoffice/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID                  = "id"
	FieldFacilityID          = "facility_id"
	FieldCustomerName        = "customer_name"
	FieldCustomerEmail       = "customer_email"
	FieldCustomerPhone       = "customer_phone"
	FieldEventType           = "event_type"
	FieldEventDate           = "event_date"
	FieldStartTime           = "start_time"
	FieldEndTime             = "end_time"
	FieldGuestsCount         = "guests_count"
	FieldSpecialRequirements = "special_requirements"
	FieldTotalAmount         = "total_amount"
	FieldStatus              = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// transitions is the only legal status graph. Terminal states have no
// outgoing edges.
var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// BlockingStatuses are the statuses that occupy a time slot for conflict
// detection. Cancelled and completed reservations never block.
var BlockingStatuses = []string{StatusPending, StatusConfirmed}

type Reservation struct {
	ID                  string          `db:"id"`
	FacilityID          string          `db:"facility_id"`
	CustomerName        string          `db:"customer_name"`
	CustomerEmail       string          `db:"customer_email"`
	CustomerPhone       string          `db:"customer_phone"`
	EventType           string          `db:"event_type"`
	EventDate           time.Time       `db:"event_date"`
	StartTime           time.Time       `db:"start_time"`
	EndTime             time.Time       `db:"end_time"`
	GuestsCount         int             `db:"guests_count"`
	SpecialRequirements string          `db:"special_requirements"`
	TotalAmount         decimal.Decimal `db:"total_amount"`
	Status              string          `db:"status"`
	model.Metadata
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back slots sharing an endpoint do not.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// BilledHours rounds the duration up to whole hours and bills at least one
// hour. Callers must guarantee end is after start.
func BilledHours(start, end time.Time) int64 {
	duration := end.Sub(start)

	hours := int64(duration / time.Hour)
	if duration%time.Hour > 0 {
		hours++
	}

	if hours < 1 {
		hours = 1
	}

	return hours
}

// CalculateTotal prices a slot at the facility's hourly rate.
func CalculateTotal(start, end time.Time, hourlyRate decimal.Decimal) decimal.Decimal {
	return hourlyRate.Mul(decimal.NewFromInt(BilledHours(start, end)))
}
