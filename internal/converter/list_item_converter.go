package converter

import (
	"health-admin-backoffice/internal/delivery/dto"
	"health-admin-backoffice/internal/domain/entity"
)

func DiagnosisToResponse(diagnosis *entity.Diagnosis) *dto.DiagnosisResponse {
	if diagnosis == nil {
		return nil
	}
	return &dto.DiagnosisResponse{
		ID:            diagnosis.ID,
		ICDCode:       diagnosis.ICDCode,
		DiagnosisCode: diagnosis.DiagnosisCode,
		Description:   diagnosis.Description,
		IsPrimary:     diagnosis.IsPrimary,
		ListID:        diagnosis.ListID,
	}
}

func DiagnosesToResponses(diagnoses []entity.Diagnosis) []dto.DiagnosisResponse {
	responses := make([]dto.DiagnosisResponse, len(diagnoses))
	for i := range diagnoses {
		responses[i] = *DiagnosisToResponse(&diagnoses[i])
	}
	return responses
}

func DrugToResponse(drug *entity.Drug) *dto.DrugResponse {
	if drug == nil {
		return nil
	}
	return &dto.DrugResponse{
		ID:          drug.ID,
		NDCDrugCode: drug.NDCDrugCode,
		ListID:      drug.ListID,
	}
}

func DrugsToResponses(drugs []entity.Drug) []dto.DrugResponse {
	responses := make([]dto.DrugResponse, len(drugs))
	for i := range drugs {
		responses[i] = *DrugToResponse(&drugs[i])
	}
	return responses
}

func ClinicianToResponse(clinician *entity.Clinician) *dto.ClinicianResponse {
	if clinician == nil {
		return nil
	}
	return &dto.ClinicianResponse{
		ID:              clinician.ID,
		ClinicianListID: clinician.ClinicianListID,
		Name:            clinician.Name,
		LicenseNumber:   clinician.LicenseNumber,
		Specialty:       clinician.Specialty,
		Email:           clinician.Email,
		Phone:           clinician.Phone,
	}
}

func CliniciansToResponses(clinicians []entity.Clinician) []dto.ClinicianResponse {
	responses := make([]dto.ClinicianResponse, len(clinicians))
	for i := range clinicians {
		responses[i] = *ClinicianToResponse(&clinicians[i])
	}
	return responses
}
