package dto

import "github.com/google/uuid"

// Request DTOs

type AddDiagnosisRequest struct {
	ICDCode       string    `json:"icd_code" validate:"required"`
	DiagnosisCode string    `json:"diagnosis_code" validate:"omitempty"`
	Description   string    `json:"description" validate:"omitempty"`
	IsPrimary     bool      `json:"is_primary"`
	ListID        uuid.UUID `json:"list_id" validate:"required"`
}

type AddDrugRequest struct {
	NDCDrugCode string    `json:"ndc_drug_code" validate:"required"`
	ListID      uuid.UUID `json:"list_id" validate:"required"`
}

type AddClinicianRequest struct {
	ClinicianListID uuid.UUID `json:"clinician_list_id" validate:"required"`
	Name            string    `json:"name" validate:"required"`
	LicenseNumber   string    `json:"license_number" validate:"omitempty"`
	Specialty       string    `json:"specialty" validate:"omitempty"`
	Email           string    `json:"email" validate:"omitempty,email"`
	Phone           string    `json:"phone" validate:"omitempty"`
}

// Response DTOs

type DiagnosisResponse struct {
	ID            uuid.UUID `json:"id"`
	ICDCode       string    `json:"icd_code"`
	DiagnosisCode string    `json:"diagnosis_code"`
	Description   string    `json:"description,omitempty"`
	IsPrimary     bool      `json:"is_primary"`
	ListID        uuid.UUID `json:"list_id"`
}

type DiagnosisItemListResponse struct {
	Diagnoses []DiagnosisResponse `json:"diagnoses"`
	Total     int                 `json:"total"`
}

type DrugResponse struct {
	ID          uuid.UUID `json:"id"`
	NDCDrugCode string    `json:"ndc_drug_code"`
	ListID      uuid.UUID `json:"list_id"`
}

type DrugItemListResponse struct {
	Drugs []DrugResponse `json:"drugs"`
	Total int            `json:"total"`
}

type ClinicianResponse struct {
	ID              uuid.UUID `json:"id"`
	ClinicianListID uuid.UUID `json:"clinician_list_id"`
	Name            string    `json:"name"`
	LicenseNumber   string    `json:"license_number,omitempty"`
	Specialty       string    `json:"specialty,omitempty"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
}

type ClinicianItemListResponse struct {
	Clinicians []ClinicianResponse `json:"clinicians"`
	Total      int                 `json:"total"`
}

type ImportResultResponse struct {
	InsertedCount int `json:"insertedCount"`
}
