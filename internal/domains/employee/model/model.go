package model

import "backoffice/shared/model"

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID         = "id"
	FieldFullName   = "full_name"
	FieldEmail      = "email"
	FieldPosition   = "position"
	FieldDepartment = "department"
	FieldStatus     = "status"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID         string `db:"id"`
	FullName   string `db:"full_name"`
	Email      string `db:"email"`
	Position   string `db:"position"`
	Department string `db:"department"`
	Status     string `db:"status"`
	model.Metadata
}
