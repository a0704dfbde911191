package converter

import (
	"health-admin-backoffice/internal/delivery/dto"
	"health-admin-backoffice/internal/domain/entity"
)

func DiagnosisListToResponse(list *entity.DiagnosisList) *dto.ReferenceListResponse {
	if list == nil {
		return nil
	}
	return &dto.ReferenceListResponse{
		ID:        list.ID,
		Name:      list.Name,
		Code:      list.Code,
		Status:    string(list.Status),
		CreatedAt: list.CreatedAt,
	}
}

func DiagnosisListsToResponses(lists []entity.DiagnosisList) []dto.ReferenceListResponse {
	responses := make([]dto.ReferenceListResponse, len(lists))
	for i := range lists {
		responses[i] = *DiagnosisListToResponse(&lists[i])
	}
	return responses
}

func DiagnosisListToDetailResponse(list *entity.DiagnosisList) *dto.DiagnosisListDetailResponse {
	if list == nil {
		return nil
	}
	return &dto.DiagnosisListDetailResponse{
		ReferenceListResponse: *DiagnosisListToResponse(list),
		Diagnoses:             DiagnosesToResponses(list.Diagnoses),
	}
}

func DrugListToResponse(list *entity.DrugList) *dto.ReferenceListResponse {
	if list == nil {
		return nil
	}
	return &dto.ReferenceListResponse{
		ID:        list.ID,
		Name:      list.Name,
		Code:      list.Code,
		Status:    string(list.Status),
		CreatedAt: list.CreatedAt,
	}
}

func DrugListsToResponses(lists []entity.DrugList) []dto.ReferenceListResponse {
	responses := make([]dto.ReferenceListResponse, len(lists))
	for i := range lists {
		responses[i] = *DrugListToResponse(&lists[i])
	}
	return responses
}

func DrugListToDetailResponse(list *entity.DrugList) *dto.DrugListDetailResponse {
	if list == nil {
		return nil
	}
	return &dto.DrugListDetailResponse{
		ReferenceListResponse: *DrugListToResponse(list),
		Drugs:                 DrugsToResponses(list.Drugs),
	}
}

func ClinicianListToResponse(list *entity.ClinicianList) *dto.ReferenceListResponse {
	if list == nil {
		return nil
	}
	return &dto.ReferenceListResponse{
		ID:        list.ID,
		Name:      list.Name,
		Code:      list.Code,
		Status:    string(list.Status),
		CreatedAt: list.CreatedAt,
	}
}

func ClinicianListsToResponses(lists []entity.ClinicianList) []dto.ReferenceListResponse {
	responses := make([]dto.ReferenceListResponse, len(lists))
	for i := range lists {
		responses[i] = *ClinicianListToResponse(&lists[i])
	}
	return responses
}

func ClinicianListToDetailResponse(list *entity.ClinicianList) *dto.ClinicianListDetailResponse {
	if list == nil {
		return nil
	}
	return &dto.ClinicianListDetailResponse{
		ReferenceListResponse: *ClinicianListToResponse(list),
		Clinicians:            CliniciansToResponses(list.Clinicians),
	}
}
