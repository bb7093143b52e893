package dto

import (
	"time"

	"backoffice/internal/domains/reservation/model"
	"backoffice/shared"
	"backoffice/shared/constant"
	gDto "backoffice/shared/dto"
	gModel "backoffice/shared/model"
	"backoffice/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateReservationRequest struct {
	FacilityID          string `json:"facility_id"          validate:"required"`
	CustomerName        string `json:"customer_name"        validate:"required,max=100"`
	CustomerEmail       string `json:"customer_email"       validate:"omitempty,email,max=100"`
	CustomerPhone       string `json:"customer_phone"       validate:"omitempty,max=20"`
	EventType           string `json:"event_type"           validate:"omitempty,max=100"`
	EventDate           string `json:"event_date"           validate:"required"`
	StartTime           string `json:"start_time"           validate:"required"`
	EndTime             string `json:"end_time"             validate:"required"`
	GuestsCount         int    `json:"guests_count"         validate:"required,gt=0"`
	SpecialRequirements string `json:"special_requirements" validate:"omitempty"`
}

// ParseSchedule decodes the wire date/time strings. The returned times carry
// only the clock component; the date lives in eventDate.
func (c *CreateReservationRequest) ParseSchedule() (eventDate, startTime, endTime time.Time, err error) {
	eventDate, err = time.Parse(constant.DateOnlyFormat, c.EventDate)
	if err != nil {
		return eventDate, startTime, endTime, err
	}

	startTime, err = time.Parse(constant.TimeOnlyFormat, c.StartTime)
	if err != nil {
		return eventDate, startTime, endTime, err
	}

	endTime, err = time.Parse(constant.TimeOnlyFormat, c.EndTime)
	if err != nil {
		return eventDate, startTime, endTime, err
	}

	return eventDate, startTime, endTime, nil
}

func (c *CreateReservationRequest) ToModel(user string, eventDate, startTime, endTime time.Time, totalAmount decimal.Decimal) model.Reservation {
	return model.Reservation{
		ID:                  uuid.NewString(),
		FacilityID:          c.FacilityID,
		CustomerName:        c.CustomerName,
		CustomerEmail:       c.CustomerEmail,
		CustomerPhone:       c.CustomerPhone,
		EventType:           c.EventType,
		EventDate:           eventDate,
		StartTime:           startTime,
		EndTime:             endTime,
		GuestsCount:         c.GuestsCount,
		SpecialRequirements: c.SpecialRequirements,
		TotalAmount:         totalAmount,
		Status:              model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateReservationRequest struct {
	CustomerName        string `db:"customer_name"        json:"customer_name"        validate:"omitempty,max=100"`
	CustomerEmail       string `db:"customer_email"       json:"customer_email"       validate:"omitempty,email,max=100"`
	CustomerPhone       string `db:"customer_phone"       json:"customer_phone"       validate:"omitempty,max=20"`
	EventType           string `db:"event_type"           json:"event_type"           validate:"omitempty,max=100"`
	SpecialRequirements string `db:"special_requirements" json:"special_requirements" validate:"omitempty"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type CheckAvailabilityRequest struct {
	FacilityID string `json:"facility_id" validate:"required"`
	EventDate  string `json:"event_date"  validate:"required"`
	StartTime  string `json:"start_time"  validate:"required"`
	EndTime    string `json:"end_time"    validate:"required"`
}

type CheckAvailabilityResponse struct {
	Available bool `json:"available"`
}

type ReservationResponse struct {
	ID                  string          `json:"id"`
	FacilityID          string          `json:"facility_id"`
	CustomerName        string          `json:"customer_name"`
	CustomerEmail       string          `json:"customer_email"`
	CustomerPhone       string          `json:"customer_phone"`
	EventType           string          `json:"event_type"`
	EventDate           string          `json:"event_date"`
	StartTime           string          `json:"start_time"`
	EndTime             string          `json:"end_time"`
	GuestsCount         int             `json:"guests_count"`
	SpecialRequirements string          `json:"special_requirements"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	Status              string          `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.FacilityID = model.FacilityID
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.CustomerPhone = model.CustomerPhone
	r.EventType = model.EventType
	r.EventDate = model.EventDate.Format(constant.DateOnlyFormat)
	r.StartTime = model.StartTime.Format(constant.TimeOnlyFormat)
	r.EndTime = model.EndTime.Format(constant.TimeOnlyFormat)
	r.GuestsCount = model.GuestsCount
	r.SpecialRequirements = model.SpecialRequirements
	r.TotalAmount = model.TotalAmount
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

type ReservationEvent struct {
	Type          string `json:"type"`
	ReservationID string `json:"reservation_id"`
	FacilityID    string `json:"facility_id"`
	Status        string `json:"status"`
	OccurredAt    string `json:"occurred_at"`
}
