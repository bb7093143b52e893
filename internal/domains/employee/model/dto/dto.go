package dto

import (
	"backoffice/internal/domains/employee/model"
	"backoffice/shared"
	gDto "backoffice/shared/dto"
	gModel "backoffice/shared/model"
	"backoffice/shared/timezone"

	"github.com/google/uuid"
)

type CreateEmployeeRequest struct {
	FullName   string `json:"full_name"  validate:"required,min=3,max=100"`
	Email      string `json:"email"      validate:"required,email,max=100"`
	Position   string `json:"position"   validate:"omitempty,max=100"`
	Department string `json:"department" validate:"omitempty,max=100"`
}

func (c *CreateEmployeeRequest) ToModel(user string) model.Employee {
	return model.Employee{
		ID:         uuid.NewString(),
		FullName:   c.FullName,
		Email:      c.Email,
		Position:   c.Position,
		Department: c.Department,
		Status:     model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEmployeeRequest struct {
	FullName   string `db:"full_name"  json:"full_name"  validate:"omitempty,min=3,max=100"`
	Email      string `db:"email"      json:"email"      validate:"omitempty,email,max=100"`
	Position   string `db:"position"   json:"position"   validate:"omitempty,max=100"`
	Department string `db:"department" json:"department" validate:"omitempty,max=100"`
	Status     string `db:"status"     json:"status"     validate:"omitempty,oneof=active inactive"`
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Position = model.Position
	r.Department = model.Department
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetEmployeesResponse) FromModels(models []model.Employee, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Employees = make([]EmployeeResponse, len(models))
	for i, mod := range models {
		r.Employees[i].FromModel(mod)
	}
}
