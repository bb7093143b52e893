package model

import (
	"time"

	"backoffice/shared/model"
)

const (
	TableName  = "visitor_logs"
	EntityName = "visitor_log"

	FieldID           = "id"
	FieldVisitorName  = "visitor_name"
	FieldVisitorType  = "visitor_type"
	FieldPurpose      = "purpose"
	FieldCheckedInAt  = "checked_in_at"
	FieldCheckedOutAt = "checked_out_at"
	FieldStatus       = "status"
)

const (
	TypeGuest  = "guest"
	TypePatron = "patron"

	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
)

type VisitorLog struct {
	ID           string     `db:"id"`
	VisitorName  string     `db:"visitor_name"`
	VisitorType  string     `db:"visitor_type"`
	Purpose      string     `db:"purpose"`
	CheckedInAt  time.Time  `db:"checked_in_at"`
	CheckedOutAt *time.Time `db:"checked_out_at"`
	Status       string     `db:"status"`
	model.Metadata
}

type DailySummary struct {
	TotalVisitors      int `db:"total_visitors"`
	GuestCount         int `db:"guest_count"`
	PatronCount        int `db:"patron_count"`
	CurrentlyCheckedIn int `db:"currently_checked_in"`
}
