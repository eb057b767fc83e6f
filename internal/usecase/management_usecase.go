package usecase

import (
	"context"

	"healthhub/internal/converter"
	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/repository"
	"healthhub/internal/service"
	"healthhub/pkg/password"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ManagementUsecase covers the admin directory views plus the direct-add and
// delete paths that bypass the approval queue.
type ManagementUsecase interface {
	ApprovedDoctors(ctx context.Context) ([]entity.DoctorProfile, error)
	ApprovedStaff(ctx context.Context) ([]entity.StaffProfile, error)
	ApprovedAdmins(ctx context.Context) ([]entity.AdminProfile, error)
	AllPatients(ctx context.Context) ([]dto.PatientProfileResponse, error)
	AddAdmin(ctx context.Context, actorID uuid.UUID, req *dto.AddAdminRequest) (*dto.SubmitProfileResponse, error)
	AddPatient(ctx context.Context, actorID uuid.UUID, req *dto.AddPatientRequest) (*dto.AccountResponse, error)
	DeleteByCode(ctx context.Context, actorID uuid.UUID, role string, code string) error
}

type managementUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	accountRepo  repository.AccountRepository
	doctorRepo   repository.DoctorProfileRepository
	staffRepo    repository.StaffProfileRepository
	adminRepo    repository.AdminProfileRepository
	patientRepo  repository.PatientProfileRepository
	sequenceRepo repository.SequenceRepository
	hasher       *password.Hasher
	audit        *service.AuditService
}

func NewManagementUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	doctorRepo repository.DoctorProfileRepository,
	staffRepo repository.StaffProfileRepository,
	adminRepo repository.AdminProfileRepository,
	patientRepo repository.PatientProfileRepository,
	sequenceRepo repository.SequenceRepository,
	hasher *password.Hasher,
	audit *service.AuditService,
) ManagementUsecase {
	return &managementUsecase{
		db:           db,
		log:          log,
		accountRepo:  accountRepo,
		doctorRepo:   doctorRepo,
		staffRepo:    staffRepo,
		adminRepo:    adminRepo,
		patientRepo:  patientRepo,
		sequenceRepo: sequenceRepo,
		hasher:       hasher,
		audit:        audit,
	}
}

func (u *managementUsecase) ApprovedDoctors(ctx context.Context) ([]entity.DoctorProfile, error) {
	profiles, err := u.doctorRepo.FindByStatus(u.db.WithContext(ctx), entity.StatusApproved)
	if err != nil {
		u.log.Warnf("Failed to find approved doctors: %+v", err)
		return nil, err
	}
	return profiles, nil
}

func (u *managementUsecase) ApprovedStaff(ctx context.Context) ([]entity.StaffProfile, error) {
	profiles, err := u.staffRepo.FindByStatus(u.db.WithContext(ctx), entity.StatusApproved)
	if err != nil {
		u.log.Warnf("Failed to find approved staff: %+v", err)
		return nil, err
	}
	return profiles, nil
}

func (u *managementUsecase) ApprovedAdmins(ctx context.Context) ([]entity.AdminProfile, error) {
	profiles, err := u.adminRepo.FindByStatus(u.db.WithContext(ctx), entity.StatusApproved)
	if err != nil {
		u.log.Warnf("Failed to find approved admins: %+v", err)
		return nil, err
	}
	return profiles, nil
}

func (u *managementUsecase) AllPatients(ctx context.Context) ([]dto.PatientProfileResponse, error) {
	profiles, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}
	return converter.PatientProfilesToResponses(profiles), nil
}

// AddAdmin creates an already approved admin account and profile in one
// transaction, skipping the review queue.
func (u *managementUsecase) AddAdmin(ctx context.Context, actorID uuid.UUID, req *dto.AddAdminRequest) (*dto.SubmitProfileResponse, error) {
	dob, age, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	joining, _, err := parseOptionalDate(req.JoiningDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	account := &entity.Account{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     entity.RoleAdmin,
		Status:   entity.StatusApproved,
	}

	if err := u.accountRepo.Create(tx, account); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create admin account: %+v", err)
		return nil, err
	}

	next, err := u.sequenceRepo.Next(tx, entity.RoleAdmin)
	if err != nil {
		u.log.Warnf("Failed to advance admin sequence: %+v", err)
		return nil, err
	}

	profile := &entity.AdminProfile{
		AdminCode:          entity.FormatCode(entity.RoleAdmin, next),
		FullName:           req.FullName,
		Email:              req.Email,
		DateOfBirth:        dob,
		Age:                age,
		Contact:            req.Contact,
		Address:            req.Address,
		BloodGroup:         req.BloodGroup,
		EmergencyContact:   req.EmergencyContact,
		Designation:        req.Designation,
		Department:         req.Department,
		JoiningDate:        joining,
		Qualification:      req.Qualification,
		Experience:         req.Experience,
		PreviousExperience: req.PreviousExperience,
		AvailableDays:      entity.StringList(req.AvailableDays),
		AvailableTime:      req.AvailableTime,
		Status:             entity.StatusApproved,
	}

	if err := u.adminRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create admin profile: %+v", err)
		return nil, err
	}

	if err := u.audit.Record(tx, &actorID, entity.AuditActionProfileApprove, entity.JSON{
		"role":   entity.RoleAdmin,
		"code":   profile.AdminCode,
		"direct": true,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.SubmitProfileResponse{
		Code:   profile.AdminCode,
		Status: profile.Status,
	}, nil
}

// AddPatient creates an auto-approved patient account without a profile; the
// patient fills in the rest on first login.
func (u *managementUsecase) AddPatient(ctx context.Context, actorID uuid.UUID, req *dto.AddPatientRequest) (*dto.AccountResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	account := &entity.Account{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     entity.RolePatient,
		Status:   entity.StatusApproved,
	}

	if err := u.accountRepo.Create(tx, account); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create patient account: %+v", err)
		return nil, err
	}

	if err := u.audit.Record(tx, &actorID, entity.AuditActionPatientRegister, entity.JSON{
		"email": account.Email,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AccountToResponse(account), nil
}

// DeleteByCode removes a member's profile and account by their human-readable
// code (DOC-001, STF-002, ...).
func (u *managementUsecase) DeleteByCode(ctx context.Context, actorID uuid.UUID, role string, code string) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	var email string
	switch role {
	case entity.RoleDoctor:
		profile, err := u.doctorRepo.FindByCode(tx, code)
		if err != nil {
			u.log.Warnf("Failed to find doctor by code: %+v", err)
			return err
		}
		if profile == nil {
			return ErrProfileNotFound
		}
		if err := u.doctorRepo.Delete(tx, profile); err != nil {
			u.log.Warnf("Failed to delete doctor profile: %+v", err)
			return err
		}
		email = profile.Email
	case entity.RoleStaff:
		profile, err := u.staffRepo.FindByCode(tx, code)
		if err != nil {
			u.log.Warnf("Failed to find staff by code: %+v", err)
			return err
		}
		if profile == nil {
			return ErrProfileNotFound
		}
		if err := u.staffRepo.Delete(tx, profile); err != nil {
			u.log.Warnf("Failed to delete staff profile: %+v", err)
			return err
		}
		email = profile.Email
	case entity.RoleAdmin:
		profile, err := u.adminRepo.FindByCode(tx, code)
		if err != nil {
			u.log.Warnf("Failed to find admin by code: %+v", err)
			return err
		}
		if profile == nil {
			return ErrProfileNotFound
		}
		if err := u.adminRepo.Delete(tx, profile); err != nil {
			u.log.Warnf("Failed to delete admin profile: %+v", err)
			return err
		}
		email = profile.Email
	case entity.RolePatient:
		profile, err := u.patientRepo.FindByCode(tx, code)
		if err != nil {
			u.log.Warnf("Failed to find patient by code: %+v", err)
			return err
		}
		if profile == nil {
			return ErrProfileNotFound
		}
		if err := u.patientRepo.Delete(tx, profile); err != nil {
			u.log.Warnf("Failed to delete patient profile: %+v", err)
			return err
		}
		email = profile.Email
	default:
		return ErrInvalidRole
	}

	if err := u.accountRepo.DeleteByEmail(tx, email); err != nil {
		u.log.Warnf("Failed to delete account: %+v", err)
		return err
	}

	if err := u.audit.Record(tx, &actorID, entity.AuditActionProfileDelete, entity.JSON{
		"role": role,
		"code": code,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
