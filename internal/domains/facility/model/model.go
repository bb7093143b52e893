package model

import (
	"backoffice/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "facilities"
	EntityName = "facility"

	FieldID          = "id"
	FieldName        = "name"
	FieldType        = "type"
	FieldCapacity    = "capacity"
	FieldLocation    = "location"
	FieldDescription = "description"
	FieldHourlyRate  = "hourly_rate"
	FieldAmenities   = "amenities"
	FieldStatus      = "status"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

const (
	TypeBanquet    = "banquet"
	TypeMeeting    = "meeting"
	TypeConference = "conference"
	TypeOutdoor    = "outdoor"
	TypeDining     = "dining"
	TypeLounge     = "lounge"
)

type Facility struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Type        string          `db:"type"`
	Capacity    int             `db:"capacity"`
	Location    string          `db:"location"`
	Description string          `db:"description"`
	HourlyRate  decimal.Decimal `db:"hourly_rate"`
	Amenities   string          `db:"amenities"`
	Status      string          `db:"status"`
	model.Metadata
}
