package usecase

import (
	"context"
	"errors"

	"health-admin-backoffice/internal/converter"
	"health-admin-backoffice/internal/delivery/dto"
	"health-admin-backoffice/internal/domain/entity"
	"health-admin-backoffice/internal/domain/repository"
	"health-admin-backoffice/internal/observability/metrics"
	"health-admin-backoffice/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDiagnosisNotFound = errors.New("diagnosis not found")
	ErrDrugNotFound      = errors.New("drug not found")
	ErrClinicianNotFound = errors.New("clinician not found")
)

type ListItemUsecase interface {
	AddDiagnosis(ctx context.Context, req *dto.AddDiagnosisRequest) (*dto.DiagnosisResponse, error)
	GetDiagnoses(ctx context.Context, listID *uuid.UUID) (*dto.DiagnosisItemListResponse, error)
	DeleteDiagnosis(ctx context.Context, id uuid.UUID) error

	AddDrug(ctx context.Context, req *dto.AddDrugRequest) (*dto.DrugResponse, error)
	GetDrugs(ctx context.Context, listID *uuid.UUID) (*dto.DrugItemListResponse, error)
	DeleteDrug(ctx context.Context, id uuid.UUID) error

	AddClinician(ctx context.Context, req *dto.AddClinicianRequest) (*dto.ClinicianResponse, error)
	GetClinicians(ctx context.Context, listID uuid.UUID) (*dto.ClinicianItemListResponse, error)
	DeleteClinician(ctx context.Context, id uuid.UUID) error
	ImportClinicians(ctx context.Context, listID uuid.UUID, fileBytes []byte, password string) (*dto.ImportResultResponse, error)
}

type listItemUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	diagnosisRepo     repository.DiagnosisRepository
	drugRepo          repository.DrugRepository
	clinicianRepo     repository.ClinicianRepository
	diagnosisListRepo repository.DiagnosisListRepository
	drugListRepo      repository.DrugListRepository
	clinicianListRepo repository.ClinicianListRepository
	importService     service.ClinicianImportService
	auditService      service.AuditService
	metrics           *metrics.Metrics
}

func NewListItemUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	diagnosisRepo repository.DiagnosisRepository,
	drugRepo repository.DrugRepository,
	clinicianRepo repository.ClinicianRepository,
	diagnosisListRepo repository.DiagnosisListRepository,
	drugListRepo repository.DrugListRepository,
	clinicianListRepo repository.ClinicianListRepository,
	importService service.ClinicianImportService,
	auditService service.AuditService,
	metrics *metrics.Metrics,
) ListItemUsecase {
	return &listItemUsecase{
		db:                db,
		log:               log,
		diagnosisRepo:     diagnosisRepo,
		drugRepo:          drugRepo,
		clinicianRepo:     clinicianRepo,
		diagnosisListRepo: diagnosisListRepo,
		drugListRepo:      drugListRepo,
		clinicianListRepo: clinicianListRepo,
		importService:     importService,
		auditService:      auditService,
		metrics:           metrics,
	}
}

// Diagnoses

func (u *listItemUsecase) AddDiagnosis(ctx context.Context, req *dto.AddDiagnosisRequest) (*dto.DiagnosisResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Inserts are rejected up front when the parent list is gone, instead of
	// surfacing a raw FK violation.
	list, err := u.diagnosisListRepo.FindByID(tx, req.ListID)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis list: %+v", err)
		return nil, err
	}
	if list == nil {
		return nil, ErrDiagnosisListNotFound
	}

	diagnosis := &entity.Diagnosis{
		ICDCode:       req.ICDCode,
		DiagnosisCode: req.DiagnosisCode,
		Description:   req.Description,
		IsPrimary:     req.IsPrimary,
		ListID:        req.ListID,
	}

	if err := u.diagnosisRepo.Create(tx, diagnosis); err != nil {
		u.log.Warnf("Failed to create diagnosis: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionItemCreate, "diagnosis", diagnosis.ID.String(), converter.DiagnosisToResponse(diagnosis)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DiagnosisToResponse(diagnosis), nil
}

func (u *listItemUsecase) GetDiagnoses(ctx context.Context, listID *uuid.UUID) (*dto.DiagnosisItemListResponse, error) {
	db := u.db.WithContext(ctx)

	var (
		diagnoses []entity.Diagnosis
		err       error
	)
	if listID != nil {
		diagnoses, err = u.diagnosisRepo.FindByListID(db, *listID)
	} else {
		diagnoses, err = u.diagnosisRepo.FindAll(db)
	}
	if err != nil {
		u.log.Warnf("Failed to find diagnoses: %+v", err)
		return nil, err
	}

	responses := converter.DiagnosesToResponses(diagnoses)
	return &dto.DiagnosisItemListResponse{Diagnoses: responses, Total: len(responses)}, nil
}

func (u *listItemUsecase) DeleteDiagnosis(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.diagnosisRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete diagnosis: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDiagnosisNotFound
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actorID, entity.AuditActionItemDelete, "diagnosis", id.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tx.Commit().Error
}

// Drugs

func (u *listItemUsecase) AddDrug(ctx context.Context, req *dto.AddDrugRequest) (*dto.DrugResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	list, err := u.drugListRepo.FindByID(tx, req.ListID)
	if err != nil {
		u.log.Warnf("Failed to find drug list: %+v", err)
		return nil, err
	}
	if list == nil {
		return nil, ErrDrugListNotFound
	}

	drug := &entity.Drug{
		NDCDrugCode: req.NDCDrugCode,
		ListID:      req.ListID,
	}

	if err := u.drugRepo.Create(tx, drug); err != nil {
		u.log.Warnf("Failed to create drug: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionItemCreate, "drug", drug.ID.String(), converter.DrugToResponse(drug)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DrugToResponse(drug), nil
}

func (u *listItemUsecase) GetDrugs(ctx context.Context, listID *uuid.UUID) (*dto.DrugItemListResponse, error) {
	db := u.db.WithContext(ctx)

	var (
		drugs []entity.Drug
		err   error
	)
	if listID != nil {
		drugs, err = u.drugRepo.FindByListID(db, *listID)
	} else {
		drugs, err = u.drugRepo.FindAll(db)
	}
	if err != nil {
		u.log.Warnf("Failed to find drugs: %+v", err)
		return nil, err
	}

	responses := converter.DrugsToResponses(drugs)
	return &dto.DrugItemListResponse{Drugs: responses, Total: len(responses)}, nil
}

func (u *listItemUsecase) DeleteDrug(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.drugRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete drug: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDrugNotFound
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actorID, entity.AuditActionItemDelete, "drug", id.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tx.Commit().Error
}

// Clinicians

func (u *listItemUsecase) AddClinician(ctx context.Context, req *dto.AddClinicianRequest) (*dto.ClinicianResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	list, err := u.clinicianListRepo.FindByID(tx, req.ClinicianListID)
	if err != nil {
		u.log.Warnf("Failed to find clinician list: %+v", err)
		return nil, err
	}
	if list == nil {
		return nil, ErrClinicianListNotFound
	}

	clinician := &entity.Clinician{
		ClinicianListID: req.ClinicianListID,
		Name:            req.Name,
		LicenseNumber:   req.LicenseNumber,
		Specialty:       req.Specialty,
		Email:           req.Email,
		Phone:           req.Phone,
	}

	if err := u.clinicianRepo.Create(tx, clinician); err != nil {
		u.log.Warnf("Failed to create clinician: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionItemCreate, "clinician", clinician.ID.String(), converter.ClinicianToResponse(clinician)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ClinicianToResponse(clinician), nil
}

func (u *listItemUsecase) GetClinicians(ctx context.Context, listID uuid.UUID) (*dto.ClinicianItemListResponse, error) {
	clinicians, err := u.clinicianRepo.FindByListID(u.db.WithContext(ctx), listID)
	if err != nil {
		u.log.Warnf("Failed to find clinicians: %+v", err)
		return nil, err
	}

	responses := converter.CliniciansToResponses(clinicians)
	return &dto.ClinicianItemListResponse{Clinicians: responses, Total: len(responses)}, nil
}

func (u *listItemUsecase) DeleteClinician(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.clinicianRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete clinician: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrClinicianNotFound
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actorID, entity.AuditActionItemDelete, "clinician", id.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tx.Commit().Error
}

func (u *listItemUsecase) ImportClinicians(ctx context.Context, listID uuid.UUID, fileBytes []byte, password string) (*dto.ImportResultResponse, error) {
	rows, err := u.importService.Decode(fileBytes, password)
	if err != nil {
		u.log.Warnf("Failed to decode clinician import file: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	list, err := u.clinicianListRepo.FindByID(tx, listID)
	if err != nil {
		u.log.Warnf("Failed to find clinician list: %+v", err)
		return nil, err
	}
	if list == nil {
		return nil, ErrClinicianListNotFound
	}

	clinicians := make([]entity.Clinician, len(rows))
	for i, row := range rows {
		clinicians[i] = entity.Clinician{
			ClinicianListID: listID,
			Name:            row.Name,
			LicenseNumber:   row.LicenseNumber,
			Specialty:       row.Specialty,
			Email:           row.Email,
			Phone:           row.Phone,
		}
	}

	if err := u.clinicianRepo.CreateBatch(tx, clinicians); err != nil {
		u.log.Warnf("Failed to import clinicians: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionItemImport, "clinician_list", listID.String(), map[string]interface{}{"insertedCount": len(clinicians)}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if u.metrics != nil {
		u.metrics.CliniciansImported.Add(float64(len(clinicians)))
	}

	return &dto.ImportResultResponse{InsertedCount: len(clinicians)}, nil
}
