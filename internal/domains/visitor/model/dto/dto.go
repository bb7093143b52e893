package dto

import (
	"time"

	"backoffice/internal/domains/visitor/model"
	gDto "backoffice/shared/dto"
	gModel "backoffice/shared/model"
	"backoffice/shared/timezone"

	"github.com/google/uuid"
)

type CheckInRequest struct {
	VisitorName string `json:"visitor_name" validate:"required,min=2,max=100"`
	VisitorType string `json:"visitor_type" validate:"required,oneof=guest patron"`
	Purpose     string `json:"purpose"      validate:"omitempty,max=200"`
}

func (c *CheckInRequest) ToModel(user string) model.VisitorLog {
	now := timezone.Now()

	return model.VisitorLog{
		ID:          uuid.NewString(),
		VisitorName: c.VisitorName,
		VisitorType: c.VisitorType,
		Purpose:     c.Purpose,
		CheckedInAt: now,
		Status:      model.StatusCheckedIn,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type VisitorLogResponse struct {
	ID           string     `json:"id"`
	VisitorName  string     `json:"visitor_name"`
	VisitorType  string     `json:"visitor_type"`
	Purpose      string     `json:"purpose"`
	CheckedInAt  time.Time  `json:"checked_in_at"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
	Status       string     `json:"status"`
	gDto.Metadata
}

func (r *VisitorLogResponse) FromModel(model model.VisitorLog) {
	r.ID = model.ID
	r.VisitorName = model.VisitorName
	r.VisitorType = model.VisitorType
	r.Purpose = model.Purpose
	r.CheckedInAt = model.CheckedInAt
	r.CheckedOutAt = model.CheckedOutAt
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetVisitorLogsResponse struct {
	Visitors []VisitorLogResponse `json:"visitors"`
}

func (r *GetVisitorLogsResponse) FromModels(models []model.VisitorLog) {
	r.Visitors = make([]VisitorLogResponse, len(models))
	for i, mod := range models {
		r.Visitors[i].FromModel(mod)
	}
}

type DailySummaryResponse struct {
	Date               string `json:"date"`
	TotalVisitors      int    `json:"total_visitors"`
	GuestCount         int    `json:"guest_count"`
	PatronCount        int    `json:"patron_count"`
	CurrentlyCheckedIn int    `json:"currently_checked_in"`
}
