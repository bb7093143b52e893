package model

import (
	"time"

	"backoffice/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "invoices"
	EntityName = "invoice"

	FieldID            = "id"
	FieldInvoiceNumber = "invoice_number"
	FieldEmployeeID    = "employee_id"
	FieldPartyName     = "party_name"
	FieldAmount        = "amount"
	FieldDueDate       = "due_date"
	FieldStatus        = "status"
	FieldPaidAt        = "paid_at"
)

const (
	StatusUnpaid  = "unpaid"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

type Invoice struct {
	ID            string          `db:"id"`
	InvoiceNumber string          `db:"invoice_number"`
	EmployeeID    string          `db:"employee_id"`
	PartyName     string          `db:"party_name"`
	Amount        decimal.Decimal `db:"amount"`
	DueDate       time.Time       `db:"due_date"`
	Status        string          `db:"status"`
	PaidAt        *time.Time      `db:"paid_at"`
	model.Metadata
}
