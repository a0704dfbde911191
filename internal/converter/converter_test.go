package converter

import (
	"testing"
	"time"

	"health-admin-backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestPrescriptionToResponseDates(t *testing.T) {
	dob := time.Date(1985, 3, 20, 0, 0, 0, 0, time.UTC)
	fill := time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)

	detail := &entity.PrescriptionDetail{
		ID:          7,
		MemberID:    "MBR-1",
		EmiratesID:  "784-1985-1234567-1",
		Name:        "Sara Ali",
		Gender:      entity.GenderFemale,
		DateOfBirth: dob,
		Weight:      decimal.NewFromFloat(62.5),
		Physician:   "Dr. Farid",
		Mobile:      "0501234567",
		FillDate:    &fill,
	}

	resp := PrescriptionToResponse(detail)
	if resp.DateOfBirth != "1985-03-20" {
		t.Errorf("DateOfBirth = %q, want 1985-03-20", resp.DateOfBirth)
	}
	if resp.FillDate != "2025-11-02" {
		t.Errorf("FillDate = %q, want 2025-11-02", resp.FillDate)
	}
	if resp.Weight != 62.5 {
		t.Errorf("Weight = %v, want 62.5", resp.Weight)
	}
}

func TestPrescriptionToResponseOmitsFillDate(t *testing.T) {
	detail := &entity.PrescriptionDetail{ID: 1, DateOfBirth: time.Now()}

	resp := PrescriptionToResponse(detail)
	if resp.FillDate != "" {
		t.Errorf("FillDate = %q, want empty", resp.FillDate)
	}
	if resp.Drugs != nil || resp.Diagnoses != nil {
		t.Error("expected nil line collections when none loaded")
	}
}

func TestPrescriptionToResponseIncludesLines(t *testing.T) {
	detail := &entity.PrescriptionDetail{
		ID:          3,
		DateOfBirth: time.Now(),
		Drugs: []entity.PrescriptionDrug{
			{ID: 10, PrescriptionID: 3, NDCDrugCode: "0002-1433-80", DispensedQuantity: 30, DaysOfSupply: 30},
		},
		Diagnoses: []entity.PrescriptionDiagnosis{
			{ID: 20, PrescriptionID: 3, ICDCode: "E11.9", IsPrimary: true},
		},
	}

	resp := PrescriptionToResponse(detail)
	if len(resp.Drugs) != 1 || resp.Drugs[0].NDCDrugCode != "0002-1433-80" {
		t.Errorf("unexpected drugs: %+v", resp.Drugs)
	}
	if len(resp.Diagnoses) != 1 || !resp.Diagnoses[0].IsPrimary {
		t.Errorf("unexpected diagnoses: %+v", resp.Diagnoses)
	}
}

func TestHealthAuthorityToResponseResolvesListNames(t *testing.T) {
	diagListID := uuid.New()
	authority := &entity.HealthAuthority{
		ID:              uuid.New(),
		Name:            "Dubai Health Authority",
		Status:          entity.StatusActive,
		DiagnosisListID: &diagListID,
		DiagnosisList:   &entity.DiagnosisList{ID: diagListID, Name: "DHA ICD-10"},
	}

	resp := HealthAuthorityToResponse(authority)
	if resp.DiagnosisList != "DHA ICD-10" {
		t.Errorf("DiagnosisList = %q, want DHA ICD-10", resp.DiagnosisList)
	}
	if resp.DiagnosisListID == nil || *resp.DiagnosisListID != diagListID {
		t.Error("raw diagnosis list id not carried")
	}
	if resp.DrugList != "" || resp.ClinicianList != "" {
		t.Error("unbound categories should resolve to empty names")
	}
}

func TestHealthAuthorityToResponseNil(t *testing.T) {
	if HealthAuthorityToResponse(nil) != nil {
		t.Error("nil entity should convert to nil response")
	}
}
