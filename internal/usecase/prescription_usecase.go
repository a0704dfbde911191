package usecase

import (
	"context"
	"errors"
	"time"

	"health-admin-backoffice/internal/converter"
	"health-admin-backoffice/internal/delivery/dto"
	"health-admin-backoffice/internal/domain/entity"
	"health-admin-backoffice/internal/domain/repository"
	"health-admin-backoffice/internal/observability/metrics"
	"health-admin-backoffice/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPrescriptionNotFound  = errors.New("prescription not found")
	ErrMemberIDExists        = errors.New("a prescription with this member id already exists")
	ErrEmiratesIDExists      = errors.New("a prescription with this emirates id already exists")
	ErrDrugLineNotFound      = errors.New("prescription drug line not found")
	ErrDiagnosisLineNotFound = errors.New("prescription diagnosis line not found")
)

const dateLayout = "2006-01-02"

type PrescriptionUsecase interface {
	Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	Fetch(ctx context.Context, req *dto.FetchPrescriptionRequest) (*dto.PrescriptionResponse, error)
	Update(ctx context.Context, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	Delete(ctx context.Context, id uint) error

	AddDrugLine(ctx context.Context, req *dto.AddPrescriptionDrugRequest) (*dto.PrescriptionDrugResponse, error)
	DeleteDrugLine(ctx context.Context, id uint) error
	AddDiagnosisLine(ctx context.Context, req *dto.AddPrescriptionDiagnosisRequest) (*dto.PrescriptionDiagnosisResponse, error)
	DeleteDiagnosisLine(ctx context.Context, id uint) error
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	auditService     service.AuditService
	metrics          *metrics.Metrics
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	auditService service.AuditService,
	metrics *metrics.Metrics,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		auditService:     auditService,
		metrics:          metrics,
	}
}

func (u *prescriptionUsecase) Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	dateOfBirth, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	detail := &entity.PrescriptionDetail{
		InsuredMember:          req.InsuredMember,
		ValidatedBy:            req.ValidatedBy,
		MemberID:               req.MemberID,
		PayerTpa:               req.PayerTpa,
		EmiratesID:             req.EmiratesID,
		ReasonOfUnavailability: req.ReasonOfUnavailability,
		Name:                   req.Name,
		Gender:                 req.Gender,
		DateOfBirth:            dateOfBirth,
		Physician:              req.Physician,
		Mobile:                 req.Mobile,
		Email:                  req.Email,
	}
	if req.Weight != nil {
		detail.Weight = decimal.NewFromFloat(*req.Weight)
	}
	if req.FillDate != "" {
		fillDate, err := time.Parse(dateLayout, req.FillDate)
		if err != nil {
			return nil, err
		}
		detail.FillDate = &fillDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.prescriptionRepo.Create(tx, detail); err != nil {
		if isDuplicateKeyError(err, "member_id") {
			return nil, ErrMemberIDExists
		}
		if isDuplicateKeyError(err, "emirates_id") {
			return nil, ErrEmiratesIDExists
		}
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionPrescriptionCreate, "prescription", detail.MemberID, converter.PrescriptionToResponse(detail)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if u.metrics != nil {
		u.metrics.PrescriptionsCreated.Inc()
	}

	return converter.PrescriptionToResponse(detail), nil
}

func (u *prescriptionUsecase) Fetch(ctx context.Context, req *dto.FetchPrescriptionRequest) (*dto.PrescriptionResponse, error) {
	// Line items ride along unless the caller opts out.
	includeDrugs := req.IncludeDrugs == nil || *req.IncludeDrugs
	includeDiagnoses := req.IncludeDiagnoses == nil || *req.IncludeDiagnoses

	detail, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), req.ID, includeDrugs, includeDiagnoses)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if detail == nil {
		return nil, ErrPrescriptionNotFound
	}
	return converter.PrescriptionToResponse(detail), nil
}

func (u *prescriptionUsecase) Update(ctx context.Context, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	detail, err := u.prescriptionRepo.FindByID(tx, req.ID, false, false)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if detail == nil {
		return nil, ErrPrescriptionNotFound
	}

	oldValue := converter.PrescriptionToResponse(detail)

	if req.InsuredMember != "" {
		detail.InsuredMember = req.InsuredMember
	}
	if req.ValidatedBy != "" {
		detail.ValidatedBy = req.ValidatedBy
	}
	if req.MemberID != "" {
		detail.MemberID = req.MemberID
	}
	if req.PayerTpa != "" {
		detail.PayerTpa = req.PayerTpa
	}
	if req.EmiratesID != "" {
		detail.EmiratesID = req.EmiratesID
	}
	if req.ReasonOfUnavailability != "" {
		detail.ReasonOfUnavailability = req.ReasonOfUnavailability
	}
	if req.Name != "" {
		detail.Name = req.Name
	}
	if req.Gender != "" {
		detail.Gender = req.Gender
	}
	if req.DateOfBirth != "" {
		dateOfBirth, err := time.Parse(dateLayout, req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		detail.DateOfBirth = dateOfBirth
	}
	if req.Weight != nil {
		detail.Weight = decimal.NewFromFloat(*req.Weight)
	}
	if req.Physician != "" {
		detail.Physician = req.Physician
	}
	if req.Mobile != "" {
		detail.Mobile = req.Mobile
	}
	if req.Email != "" {
		detail.Email = req.Email
	}
	if req.FillDate != "" {
		fillDate, err := time.Parse(dateLayout, req.FillDate)
		if err != nil {
			return nil, err
		}
		detail.FillDate = &fillDate
	}

	if err := u.prescriptionRepo.Update(tx, detail); err != nil {
		if isDuplicateKeyError(err, "member_id") {
			return nil, ErrMemberIDExists
		}
		if isDuplicateKeyError(err, "emirates_id") {
			return nil, ErrEmiratesIDExists
		}
		u.log.Warnf("Failed to update prescription: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionPrescriptionUpdate, "prescription", detail.MemberID, oldValue, converter.PrescriptionToResponse(detail)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(detail), nil
}

// Delete removes the prescription and all of its line items in one
// transaction.
func (u *prescriptionUsecase) Delete(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.prescriptionRepo.DeleteDrugLinesByPrescription(tx, id); err != nil {
		u.log.Warnf("Failed to delete prescription drug lines: %+v", err)
		return err
	}
	if err := u.prescriptionRepo.DeleteDiagnosisLinesByPrescription(tx, id); err != nil {
		u.log.Warnf("Failed to delete prescription diagnosis lines: %+v", err)
		return err
	}

	affected, err := u.prescriptionRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete prescription: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPrescriptionNotFound
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actorID, entity.AuditActionPrescriptionDelete, "prescription", "", map[string]interface{}{"id": id}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tx.Commit().Error
}

func (u *prescriptionUsecase) AddDrugLine(ctx context.Context, req *dto.AddPrescriptionDrugRequest) (*dto.PrescriptionDrugResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	detail, err := u.prescriptionRepo.FindByID(tx, req.PrescriptionID, false, false)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if detail == nil {
		return nil, ErrPrescriptionNotFound
	}

	line := &entity.PrescriptionDrug{
		PrescriptionID:    req.PrescriptionID,
		NDCDrugCode:       req.NDCDrugCode,
		DispensedQuantity: *req.DispensedQuantity,
		DaysOfSupply:      *req.DaysOfSupply,
		Instructions:      req.Instructions,
	}

	if err := u.prescriptionRepo.CreateDrugLine(tx, line); err != nil {
		u.log.Warnf("Failed to create prescription drug line: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionDrugToResponse(line), nil
}

func (u *prescriptionUsecase) DeleteDrugLine(ctx context.Context, id uint) error {
	affected, err := u.prescriptionRepo.DeleteDrugLine(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete prescription drug line: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDrugLineNotFound
	}
	return nil
}

// AddDiagnosisLine appends a diagnosis line. A new primary line demotes any
// existing primary within the same transaction so the single-primary rule
// holds regardless of caller behavior.
func (u *prescriptionUsecase) AddDiagnosisLine(ctx context.Context, req *dto.AddPrescriptionDiagnosisRequest) (*dto.PrescriptionDiagnosisResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	detail, err := u.prescriptionRepo.FindByID(tx, req.PrescriptionID, false, false)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if detail == nil {
		return nil, ErrPrescriptionNotFound
	}

	if req.IsPrimary {
		if err := u.prescriptionRepo.ClearPrimaryDiagnosis(tx, req.PrescriptionID); err != nil {
			u.log.Warnf("Failed to clear primary diagnosis: %+v", err)
			return nil, err
		}
	}

	line := &entity.PrescriptionDiagnosis{
		PrescriptionID: req.PrescriptionID,
		ICDCode:        req.ICDCode,
		DiagnosisCode:  req.DiagnosisCode,
		Description:    req.Description,
		IsPrimary:      req.IsPrimary,
	}

	if err := u.prescriptionRepo.CreateDiagnosisLine(tx, line); err != nil {
		u.log.Warnf("Failed to create prescription diagnosis line: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionDiagnosisToResponse(line), nil
}

func (u *prescriptionUsecase) DeleteDiagnosisLine(ctx context.Context, id uint) error {
	affected, err := u.prescriptionRepo.DeleteDiagnosisLine(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete prescription diagnosis line: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDiagnosisLineNotFound
	}
	return nil
}
