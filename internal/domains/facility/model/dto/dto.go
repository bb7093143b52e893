package dto

import (
	"backoffice/internal/domains/facility/model"
	"backoffice/shared"
	gDto "backoffice/shared/dto"
	gModel "backoffice/shared/model"
	"backoffice/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateFacilityRequest struct {
	Name        string          `json:"name"        validate:"required,max=100"`
	Type        string          `json:"type"        validate:"required,oneof=banquet meeting conference outdoor dining lounge"`
	Capacity    int             `json:"capacity"    validate:"required,gt=0"`
	Location    string          `json:"location"    validate:"omitempty,max=200"`
	Description string          `json:"description" validate:"omitempty"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Amenities   string          `json:"amenities"   validate:"omitempty"`
	Status      string          `json:"status"      validate:"omitempty,oneof=active inactive"`
}

func (c *CreateFacilityRequest) ToModel(user string) model.Facility {
	status := model.StatusActive
	if c.Status != "" {
		status = c.Status
	}

	return model.Facility{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Type:        c.Type,
		Capacity:    c.Capacity,
		Location:    c.Location,
		Description: c.Description,
		HourlyRate:  c.HourlyRate,
		Amenities:   c.Amenities,
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateFacilityRequest struct {
	Name        string          `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Type        string          `db:"type"        json:"type"        validate:"omitempty,oneof=banquet meeting conference outdoor dining lounge"`
	Capacity    int             `db:"capacity"    json:"capacity"    validate:"omitempty,gt=0"`
	Location    string          `db:"location"    json:"location"    validate:"omitempty,max=200"`
	Description string          `db:"description" json:"description" validate:"omitempty"`
	HourlyRate  decimal.Decimal `db:"hourly_rate" json:"hourly_rate"`
	Amenities   string          `db:"amenities"   json:"amenities"   validate:"omitempty"`
	Status      string          `db:"status"      json:"status"      validate:"omitempty,oneof=active inactive"`
}

type FacilityResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Capacity    int             `json:"capacity"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Amenities   string          `json:"amenities"`
	Status      string          `json:"status"`
	gDto.Metadata
}

func (r *FacilityResponse) FromModel(model model.Facility) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = model.Type
	r.Capacity = model.Capacity
	r.Location = model.Location
	r.Description = model.Description
	r.HourlyRate = model.HourlyRate
	r.Amenities = model.Amenities
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetFacilitiesResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetFacilitiesResponse) FromModels(models []model.Facility, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Facilities = make([]FacilityResponse, len(models))
	for i, mod := range models {
		r.Facilities[i].FromModel(mod)
	}
}
