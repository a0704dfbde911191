package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type HealthAuthorityEntry struct {
	Name         string `json:"name" validate:"required"`
	ShortName    string `json:"shortName" validate:"omitempty"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	Status       string `json:"status" validate:"omitempty"`
	Country      string `json:"country" validate:"omitempty"`
	State        string `json:"state" validate:"omitempty"`
	City         string `json:"city" validate:"omitempty"`
}

type CreateHealthAuthoritiesRequest struct {
	HealthAuthorities []HealthAuthorityEntry `json:"health_authorities" validate:"required,min=1,dive"`
}

// UpdateSettingsRequest replaces an authority's three list bindings. Empty or
// omitted ids clear the binding; callers must resend the current value to
// keep it.
type UpdateSettingsRequest struct {
	DiagnosisListID string `json:"diagnosis_list_id" validate:"omitempty,uuid"`
	DrugListID      string `json:"drug_list_id" validate:"omitempty,uuid"`
	ClinicianListID string `json:"clinician_list_id" validate:"omitempty,uuid"`
}

// Response DTOs

type HealthAuthorityResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ShortName    string    `json:"shortName,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Status       string    `json:"status"`
	Country      string    `json:"country,omitempty"`
	State        string    `json:"state,omitempty"`
	City         string    `json:"city,omitempty"`

	// Bound list names, resolved for display (the raw ids travel alongside).
	DiagnosisList string `json:"diagnosisList,omitempty"`
	DrugList      string `json:"drugList,omitempty"`
	ClinicianList string `json:"clinicianList,omitempty"`

	DiagnosisListID *uuid.UUID `json:"diagnosis_list_id,omitempty"`
	DrugListID      *uuid.UUID `json:"drug_list_id,omitempty"`
	ClinicianListID *uuid.UUID `json:"clinician_list_id,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

type HealthAuthorityListResponse struct {
	Authorities []HealthAuthorityResponse `json:"authorities"`
	Total       int                       `json:"total"`
}
