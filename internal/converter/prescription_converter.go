package converter

import (
	"health-admin-backoffice/internal/delivery/dto"
	"health-admin-backoffice/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PrescriptionToResponse converts the aggregate root plus whatever child
// collections were loaded.
func PrescriptionToResponse(detail *entity.PrescriptionDetail) *dto.PrescriptionResponse {
	if detail == nil {
		return nil
	}

	resp := &dto.PrescriptionResponse{
		ID:                     detail.ID,
		InsuredMember:          detail.InsuredMember,
		ValidatedBy:            detail.ValidatedBy,
		MemberID:               detail.MemberID,
		PayerTpa:               detail.PayerTpa,
		EmiratesID:             detail.EmiratesID,
		ReasonOfUnavailability: detail.ReasonOfUnavailability,
		Name:                   detail.Name,
		Gender:                 detail.Gender,
		DateOfBirth:            detail.DateOfBirth.Format(dateLayout),
		Weight:                 detail.Weight.InexactFloat64(),
		Physician:              detail.Physician,
		Mobile:                 detail.Mobile,
		Email:                  detail.Email,
		CreatedAt:              detail.CreatedAt,
		UpdatedAt:              detail.UpdatedAt,
	}

	if detail.FillDate != nil {
		resp.FillDate = detail.FillDate.Format(dateLayout)
	}

	if len(detail.Drugs) > 0 {
		resp.Drugs = PrescriptionDrugsToResponses(detail.Drugs)
	}
	if len(detail.Diagnoses) > 0 {
		resp.Diagnoses = PrescriptionDiagnosesToResponses(detail.Diagnoses)
	}

	return resp
}

func PrescriptionDrugToResponse(line *entity.PrescriptionDrug) *dto.PrescriptionDrugResponse {
	if line == nil {
		return nil
	}
	return &dto.PrescriptionDrugResponse{
		ID:                line.ID,
		PrescriptionID:    line.PrescriptionID,
		NDCDrugCode:       line.NDCDrugCode,
		DispensedQuantity: line.DispensedQuantity,
		DaysOfSupply:      line.DaysOfSupply,
		Instructions:      line.Instructions,
	}
}

func PrescriptionDrugsToResponses(lines []entity.PrescriptionDrug) []dto.PrescriptionDrugResponse {
	responses := make([]dto.PrescriptionDrugResponse, len(lines))
	for i := range lines {
		responses[i] = *PrescriptionDrugToResponse(&lines[i])
	}
	return responses
}

func PrescriptionDiagnosisToResponse(line *entity.PrescriptionDiagnosis) *dto.PrescriptionDiagnosisResponse {
	if line == nil {
		return nil
	}
	return &dto.PrescriptionDiagnosisResponse{
		ID:             line.ID,
		PrescriptionID: line.PrescriptionID,
		ICDCode:        line.ICDCode,
		DiagnosisCode:  line.DiagnosisCode,
		Description:    line.Description,
		IsPrimary:      line.IsPrimary,
	}
}

func PrescriptionDiagnosesToResponses(lines []entity.PrescriptionDiagnosis) []dto.PrescriptionDiagnosisResponse {
	responses := make([]dto.PrescriptionDiagnosisResponse, len(lines))
	for i := range lines {
		responses[i] = *PrescriptionDiagnosisToResponse(&lines[i])
	}
	return responses
}
