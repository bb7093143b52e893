package model

import (
	"time"

	"backoffice/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "contracts"
	EntityName = "contract"

	FieldID           = "id"
	FieldContractName = "contract_name"
	FieldPartyName    = "party_name"
	FieldContractType = "contract_type"
	FieldDescription  = "description"
	FieldStartDate    = "start_date"
	FieldEndDate      = "end_date"
	FieldValue        = "value"
	FieldStatus       = "status"
	FieldRiskScore    = "risk_score"
	FieldRiskLevel    = "risk_level"
)

const (
	StatusDraft      = "draft"
	StatusActive     = "active"
	StatusExpired    = "expired"
	StatusTerminated = "terminated"
)

type Contract struct {
	ID           string          `db:"id"`
	ContractName string          `db:"contract_name"`
	PartyName    string          `db:"party_name"`
	ContractType string          `db:"contract_type"`
	Description  string          `db:"description"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	Value        decimal.Decimal `db:"value"`
	Status       string          `db:"status"`
	RiskScore    int             `db:"risk_score"`
	RiskLevel    string          `db:"risk_level"`
	model.Metadata
}
