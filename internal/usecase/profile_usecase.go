package usecase

import (
	"context"
	"errors"
	"time"

	"healthhub/internal/converter"
	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/repository"
	"healthhub/internal/service"
	"healthhub/pkg/password"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPasswordMismatch     = errors.New("password does not match the account")
	ErrProfileAlreadyExists = errors.New("profile already submitted")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
)

type ProfileUsecase interface {
	SubmitDoctorProfile(ctx context.Context, req *dto.SubmitDoctorProfileRequest) (*dto.SubmitProfileResponse, error)
	SubmitStaffProfile(ctx context.Context, req *dto.SubmitStaffProfileRequest) (*dto.SubmitProfileResponse, error)
	SubmitAdminProfile(ctx context.Context, req *dto.SubmitAdminProfileRequest) (*dto.SubmitProfileResponse, error)
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientProfileResponse, error)
	GetPatientProfile(ctx context.Context, email string) (*dto.PatientProfileResponse, error)
}

type profileUsecase struct {
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

func NewProfileUsecase(
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
) ProfileUsecase {
	return &profileUsecase{
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

// authenticate re-verifies the signup password before a profile submission is
// accepted, so a stolen session alone cannot fill in someone else's profile.
func (u *profileUsecase) authenticate(tx *gorm.DB, email, plainPassword string) (*entity.Account, error) {
	account, err := u.accountRepo.FindByEmail(tx, email)
	if err != nil {
		u.log.Warnf("Failed to find account by email: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if !u.hasher.Check(plainPassword, account.Password) {
		return nil, ErrPasswordMismatch
	}
	return account, nil
}

func (u *profileUsecase) SubmitDoctorProfile(ctx context.Context, req *dto.SubmitDoctorProfileRequest) (*dto.SubmitProfileResponse, error) {
	dob, age, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	account, err := u.authenticate(tx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	existing, err := u.doctorRepo.FindByEmail(tx, account.Email)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileAlreadyExists
	}

	next, err := u.sequenceRepo.Next(tx, entity.RoleDoctor)
	if err != nil {
		u.log.Warnf("Failed to advance doctor sequence: %+v", err)
		return nil, err
	}

	profile := &entity.DoctorProfile{
		DoctorCode:      entity.FormatCode(entity.RoleDoctor, next),
		FullName:        req.FullName,
		Email:           account.Email,
		DateOfBirth:     dob,
		Age:             age,
		Gender:          req.Gender,
		Qualification:   req.Qualification,
		Specialization:  req.Specialization,
		Experience:      req.Experience,
		Phone:           req.Phone,
		AvailableDays:   entity.StringList(req.AvailableDays),
		AvailableTime:   req.AvailableTime,
		Address:         req.Address,
		ConsultationFee: req.ConsultationFee,
		Status:          entity.StatusPending,
	}

	if err := u.doctorRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrProfileAlreadyExists
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	if err := u.audit.Record(tx, &account.ID, entity.AuditActionProfileSubmit, entity.JSON{
		"role": entity.RoleDoctor,
		"code": profile.DoctorCode,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.SubmitProfileResponse{
		Code:   profile.DoctorCode,
		Status: profile.Status,
	}, nil
}

func (u *profileUsecase) SubmitStaffProfile(ctx context.Context, req *dto.SubmitStaffProfileRequest) (*dto.SubmitProfileResponse, error) {
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

	account, err := u.authenticate(tx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	existing, err := u.staffRepo.FindByEmail(tx, account.Email)
	if err != nil {
		u.log.Warnf("Failed to find staff profile: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileAlreadyExists
	}

	next, err := u.sequenceRepo.Next(tx, entity.RoleStaff)
	if err != nil {
		u.log.Warnf("Failed to advance staff sequence: %+v", err)
		return nil, err
	}

	profile := &entity.StaffProfile{
		StaffCode:        entity.FormatCode(entity.RoleStaff, next),
		FullName:         req.FullName,
		Email:            account.Email,
		DateOfBirth:      dob,
		Age:              age,
		Gender:           req.Gender,
		ContactNumber:    req.ContactNumber,
		Designation:      req.Designation,
		Department:       req.Department,
		Qualification:    req.Qualification,
		Experience:       req.Experience,
		JoiningDate:      joining,
		AvailableDays:    entity.StringList(req.AvailableDays),
		AvailableTime:    req.AvailableTime,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		BloodGroup:       req.BloodGroup,
		Status:           entity.StatusPending,
	}

	if err := u.staffRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrProfileAlreadyExists
		}
		u.log.Warnf("Failed to create staff profile: %+v", err)
		return nil, err
	}

	if err := u.audit.Record(tx, &account.ID, entity.AuditActionProfileSubmit, entity.JSON{
		"role": entity.RoleStaff,
		"code": profile.StaffCode,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.SubmitProfileResponse{
		Code:   profile.StaffCode,
		Status: profile.Status,
	}, nil
}

func (u *profileUsecase) SubmitAdminProfile(ctx context.Context, req *dto.SubmitAdminProfileRequest) (*dto.SubmitProfileResponse, error) {
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

	account, err := u.authenticate(tx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	existing, err := u.adminRepo.FindByEmail(tx, account.Email)
	if err != nil {
		u.log.Warnf("Failed to find admin profile: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileAlreadyExists
	}

	next, err := u.sequenceRepo.Next(tx, entity.RoleAdmin)
	if err != nil {
		u.log.Warnf("Failed to advance admin sequence: %+v", err)
		return nil, err
	}

	profile := &entity.AdminProfile{
		AdminCode:          entity.FormatCode(entity.RoleAdmin, next),
		FullName:           req.FullName,
		Email:              account.Email,
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
		Status:             entity.StatusPending,
	}

	if err := u.adminRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrProfileAlreadyExists
		}
		u.log.Warnf("Failed to create admin profile: %+v", err)
		return nil, err
	}

	if err := u.audit.Record(tx, &account.ID, entity.AuditActionProfileSubmit, entity.JSON{
		"role": entity.RoleAdmin,
		"code": profile.AdminCode,
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

func (u *profileUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientProfileResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
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

	next, err := u.sequenceRepo.Next(tx, entity.RolePatient)
	if err != nil {
		u.log.Warnf("Failed to advance patient sequence: %+v", err)
		return nil, err
	}

	profile := &entity.PatientProfile{
		PatientCode:    entity.FormatCode(entity.RolePatient, next),
		FullName:       req.FullName,
		Email:          req.Email,
		Address:        req.Address,
		MedicalProblem: req.MedicalProblem,
		DateOfBirth:    dob,
		Age:            ageFromDate(dob),
		Gender:         req.Gender,
		Contact:        req.Contact,
		BloodGroup:     req.BloodGroup,
	}

	if err := u.patientRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create patient profile: %+v", err)
		return nil, err
	}

	if err := u.audit.Record(tx, &account.ID, entity.AuditActionPatientRegister, entity.JSON{
		"code": profile.PatientCode,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientProfileToResponse(profile), nil
}

func (u *profileUsecase) GetPatientProfile(ctx context.Context, email string) (*dto.PatientProfileResponse, error) {
	profile, err := u.patientRepo.FindByEmail(u.db.WithContext(ctx), email)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return converter.PatientProfileToResponse(profile), nil
}

// parseOptionalDate parses an optional YYYY-MM-DD field. The derived age is a
// whole-year difference; it is informational only.
func parseOptionalDate(value string) (*time.Time, int, error) {
	if value == "" {
		return nil, 0, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, 0, err
	}
	return &parsed, ageFromDate(parsed), nil
}

func ageFromDate(dob time.Time) int {
	age := time.Now().Year() - dob.Year()
	if age < 0 {
		return 0
	}
	return age
}
