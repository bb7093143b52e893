package dto

import (
	"time"

	"backoffice/internal/domains/contract/model"
	"backoffice/shared"
	"backoffice/shared/constant"
	gDto "backoffice/shared/dto"
	gModel "backoffice/shared/model"
	"backoffice/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateContractRequest struct {
	ContractName string          `json:"contract_name" validate:"required,min=3,max=150"`
	PartyName    string          `json:"party_name"    validate:"required,max=150"`
	ContractType string          `json:"contract_type" validate:"omitempty,max=100"`
	Description  string          `json:"description"   validate:"omitempty"`
	StartDate    string          `json:"start_date"    validate:"required"`
	EndDate      string          `json:"end_date"      validate:"required"`
	Value        decimal.Decimal `json:"value"         validate:"omitempty"`
	Status       string          `json:"status"        validate:"omitempty,oneof=draft active expired terminated"`
}

// ParseDates decodes the wire date strings.
func (c *CreateContractRequest) ParseDates() (startDate, endDate time.Time, err error) {
	startDate, err = time.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return startDate, endDate, err
	}

	endDate, err = time.Parse(constant.DateOnlyFormat, c.EndDate)
	if err != nil {
		return startDate, endDate, err
	}

	return startDate, endDate, nil
}

func (c *CreateContractRequest) ToModel(user string, startDate, endDate time.Time, assessment model.RiskAssessment) model.Contract {
	status := c.Status
	if status == "" {
		status = model.StatusDraft
	}

	return model.Contract{
		ID:           uuid.NewString(),
		ContractName: c.ContractName,
		PartyName:    c.PartyName,
		ContractType: c.ContractType,
		Description:  c.Description,
		StartDate:    startDate,
		EndDate:      endDate,
		Value:        c.Value,
		Status:       status,
		RiskScore:    assessment.Score,
		RiskLevel:    assessment.Level,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateContractRequest struct {
	ContractName string `db:"contract_name" json:"contract_name" validate:"omitempty,min=3,max=150"`
	PartyName    string `db:"party_name"    json:"party_name"    validate:"omitempty,max=150"`
	ContractType string `db:"contract_type" json:"contract_type" validate:"omitempty,max=100"`
	Description  string `db:"description"   json:"description"   validate:"omitempty"`
	Status       string `db:"status"        json:"status"        validate:"omitempty,oneof=draft active expired terminated"`
}

type AssessContractRequest struct {
	ContractName string `json:"contract_name" validate:"required,min=3,max=150"`
	Description  string `json:"description"   validate:"omitempty"`
}

type ContractResponse struct {
	ID           string          `json:"id"`
	ContractName string          `json:"contract_name"`
	PartyName    string          `json:"party_name"`
	ContractType string          `json:"contract_type"`
	Description  string          `json:"description"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	Value        decimal.Decimal `json:"value"`
	Status       string          `json:"status"`
	RiskScore    int             `json:"risk_score"`
	RiskLevel    string          `json:"risk_level"`
	gDto.Metadata
}

func (r *ContractResponse) FromModel(model model.Contract) {
	r.ID = model.ID
	r.ContractName = model.ContractName
	r.PartyName = model.PartyName
	r.ContractType = model.ContractType
	r.Description = model.Description
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.Value = model.Value
	r.Status = model.Status
	r.RiskScore = model.RiskScore
	r.RiskLevel = model.RiskLevel
	r.Metadata.FromModel(model.Metadata)
}

type GetContractsResponse struct {
	Contracts []ContractResponse `json:"contracts"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetContractsResponse) FromModels(models []model.Contract, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Contracts = make([]ContractResponse, len(models))
	for i, mod := range models {
		r.Contracts[i].FromModel(mod)
	}
}
