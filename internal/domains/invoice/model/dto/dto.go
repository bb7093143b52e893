package dto

import (
	"time"

	"backoffice/internal/domains/invoice/model"
	"backoffice/shared"
	"backoffice/shared/constant"
	gDto "backoffice/shared/dto"
	gModel "backoffice/shared/model"
	"backoffice/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateInvoiceRequest struct {
	InvoiceNumber string          `json:"invoice_number" validate:"required,max=50"`
	EmployeeID    string          `json:"employee_id"    validate:"omitempty"`
	PartyName     string          `json:"party_name"     validate:"required,max=150"`
	Amount        decimal.Decimal `json:"amount"         validate:"required"`
	DueDate       string          `json:"due_date"       validate:"required"`
}

func (c *CreateInvoiceRequest) ParseDueDate() (time.Time, error) {
	return time.Parse(constant.DateOnlyFormat, c.DueDate)
}

func (c *CreateInvoiceRequest) ToModel(user string, dueDate time.Time) model.Invoice {
	return model.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: c.InvoiceNumber,
		EmployeeID:    c.EmployeeID,
		PartyName:     c.PartyName,
		Amount:        c.Amount,
		DueDate:       dueDate,
		Status:        model.StatusUnpaid,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateInvoiceRequest struct {
	PartyName string `db:"party_name" json:"party_name" validate:"omitempty,max=150"`
	Status    string `db:"status"     json:"status"     validate:"omitempty,oneof=unpaid overdue"`
}

type InvoiceResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	EmployeeID    string          `json:"employee_id,omitempty"`
	PartyName     string          `json:"party_name"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       string          `json:"due_date"`
	Status        string          `json:"status"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	gDto.Metadata
}

func (r *InvoiceResponse) FromModel(model model.Invoice) {
	r.ID = model.ID
	r.InvoiceNumber = model.InvoiceNumber
	r.EmployeeID = model.EmployeeID
	r.PartyName = model.PartyName
	r.Amount = model.Amount
	r.DueDate = model.DueDate.Format(constant.DateOnlyFormat)
	r.Status = model.Status
	r.PaidAt = model.PaidAt
	r.Metadata.FromModel(model.Metadata)
}

type GetInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInvoicesResponse) FromModels(models []model.Invoice, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Invoices = make([]InvoiceResponse, len(models))
	for i, mod := range models {
		r.Invoices[i].FromModel(mod)
	}
}
