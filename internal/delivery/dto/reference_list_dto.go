package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// ListEntry is one list definition inside a batch create payload.
type ListEntry struct {
	Name   string `json:"name" validate:"required"`
	Code   string `json:"code" validate:"required"`
	Status string `json:"status" validate:"omitempty"`
}

// The dashboard posts batch arrays keyed per category.

type CreateDiagnosisListsRequest struct {
	DiagnosisList []ListEntry `json:"diagnosisList" validate:"required,min=1,dive"`
}

type CreateDrugListsRequest struct {
	DrugList []ListEntry `json:"drugList" validate:"required,min=1,dive"`
}

type CreateClinicianListsRequest struct {
	ClinicianList []ListEntry `json:"clinicianList" validate:"required,min=1,dive"`
}

type UpdateListRequest struct {
	Name   string `json:"name" validate:"required"`
	Code   string `json:"code" validate:"required"`
	Status string `json:"status" validate:"omitempty"`
}

// Response DTOs

type ReferenceListResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReferenceListListResponse struct {
	Lists []ReferenceListResponse `json:"lists"`
	Total int                     `json:"total"`
}

type DiagnosisListDetailResponse struct {
	ReferenceListResponse
	Diagnoses []DiagnosisResponse `json:"diagnoses"`
}

type DrugListDetailResponse struct {
	ReferenceListResponse
	Drugs []DrugResponse `json:"drugs"`
}

type ClinicianListDetailResponse struct {
	ReferenceListResponse
	Clinicians []ClinicianResponse `json:"clinicians"`
}
