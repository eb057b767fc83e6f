package usecase

import (
	"context"
	"errors"

	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/repository"
	"healthhub/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

// ApprovalUsecase handles the admin review queue for doctor, staff and admin
// profile submissions. Approve and reject both touch the profile and the
// account in one transaction so the two can never disagree.
type ApprovalUsecase interface {
	PendingDoctors(ctx context.Context) ([]entity.DoctorProfile, error)
	PendingStaff(ctx context.Context) ([]entity.StaffProfile, error)
	PendingAdmins(ctx context.Context) ([]entity.AdminProfile, error)
	Approve(ctx context.Context, reviewerID uuid.UUID, role string, profileID uuid.UUID) error
	Reject(ctx context.Context, reviewerID uuid.UUID, role string, profileID uuid.UUID) error
}

type approvalUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	accountRepo repository.AccountRepository
	doctorRepo  repository.DoctorProfileRepository
	staffRepo   repository.StaffProfileRepository
	adminRepo   repository.AdminProfileRepository
	audit       *service.AuditService
}

func NewApprovalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	doctorRepo repository.DoctorProfileRepository,
	staffRepo repository.StaffProfileRepository,
	adminRepo repository.AdminProfileRepository,
	audit *service.AuditService,
) ApprovalUsecase {
	return &approvalUsecase{
		db:          db,
		log:         log,
		accountRepo: accountRepo,
		doctorRepo:  doctorRepo,
		staffRepo:   staffRepo,
		adminRepo:   adminRepo,
		audit:       audit,
	}
}

func (u *approvalUsecase) PendingDoctors(ctx context.Context) ([]entity.DoctorProfile, error) {
	profiles, err := u.doctorRepo.FindByStatus(u.db.WithContext(ctx), entity.StatusPending)
	if err != nil {
		u.log.Warnf("Failed to find pending doctors: %+v", err)
		return nil, err
	}
	return profiles, nil
}

func (u *approvalUsecase) PendingStaff(ctx context.Context) ([]entity.StaffProfile, error) {
	profiles, err := u.staffRepo.FindByStatus(u.db.WithContext(ctx), entity.StatusPending)
	if err != nil {
		u.log.Warnf("Failed to find pending staff: %+v", err)
		return nil, err
	}
	return profiles, nil
}

func (u *approvalUsecase) PendingAdmins(ctx context.Context) ([]entity.AdminProfile, error) {
	profiles, err := u.adminRepo.FindByStatus(u.db.WithContext(ctx), entity.StatusPending)
	if err != nil {
		u.log.Warnf("Failed to find pending admins: %+v", err)
		return nil, err
	}
	return profiles, nil
}

func (u *approvalUsecase) Approve(ctx context.Context, reviewerID uuid.UUID, role string, profileID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	email, code, err := u.approveProfile(tx, role, profileID)
	if err != nil {
		return err
	}

	if err := u.accountRepo.UpdateStatusByEmail(tx, email, entity.StatusApproved); err != nil {
		u.log.Warnf("Failed to approve account: %+v", err)
		return err
	}

	if err := u.audit.Record(tx, &reviewerID, entity.AuditActionProfileApprove, entity.JSON{
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

func (u *approvalUsecase) approveProfile(tx *gorm.DB, role string, profileID uuid.UUID) (email, code string, err error) {
	switch role {
	case entity.RoleDoctor:
		profile, err := u.doctorRepo.FindByID(tx, profileID)
		if err != nil {
			u.log.Warnf("Failed to find doctor profile: %+v", err)
			return "", "", err
		}
		if profile == nil {
			return "", "", ErrProfileNotFound
		}
		profile.Status = entity.StatusApproved
		if err := u.doctorRepo.Update(tx, profile); err != nil {
			u.log.Warnf("Failed to update doctor profile: %+v", err)
			return "", "", err
		}
		return profile.Email, profile.DoctorCode, nil
	case entity.RoleStaff:
		profile, err := u.staffRepo.FindByID(tx, profileID)
		if err != nil {
			u.log.Warnf("Failed to find staff profile: %+v", err)
			return "", "", err
		}
		if profile == nil {
			return "", "", ErrProfileNotFound
		}
		profile.Status = entity.StatusApproved
		if err := u.staffRepo.Update(tx, profile); err != nil {
			u.log.Warnf("Failed to update staff profile: %+v", err)
			return "", "", err
		}
		return profile.Email, profile.StaffCode, nil
	case entity.RoleAdmin:
		profile, err := u.adminRepo.FindByID(tx, profileID)
		if err != nil {
			u.log.Warnf("Failed to find admin profile: %+v", err)
			return "", "", err
		}
		if profile == nil {
			return "", "", ErrProfileNotFound
		}
		profile.Status = entity.StatusApproved
		if err := u.adminRepo.Update(tx, profile); err != nil {
			u.log.Warnf("Failed to update admin profile: %+v", err)
			return "", "", err
		}
		return profile.Email, profile.AdminCode, nil
	}
	return "", "", ErrInvalidRole
}

// Reject removes the submitted profile together with its account. The person
// can sign up again from scratch afterwards.
func (u *approvalUsecase) Reject(ctx context.Context, reviewerID uuid.UUID, role string, profileID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	email, code, err := u.rejectProfile(tx, role, profileID)
	if err != nil {
		return err
	}

	if err := u.accountRepo.DeleteByEmail(tx, email); err != nil {
		u.log.Warnf("Failed to delete rejected account: %+v", err)
		return err
	}

	if err := u.audit.Record(tx, &reviewerID, entity.AuditActionProfileReject, entity.JSON{
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

func (u *approvalUsecase) rejectProfile(tx *gorm.DB, role string, profileID uuid.UUID) (email, code string, err error) {
	switch role {
	case entity.RoleDoctor:
		profile, err := u.doctorRepo.FindByID(tx, profileID)
		if err != nil {
			u.log.Warnf("Failed to find doctor profile: %+v", err)
			return "", "", err
		}
		if profile == nil {
			return "", "", ErrProfileNotFound
		}
		if err := u.doctorRepo.Delete(tx, profile); err != nil {
			u.log.Warnf("Failed to delete doctor profile: %+v", err)
			return "", "", err
		}
		return profile.Email, profile.DoctorCode, nil
	case entity.RoleStaff:
		profile, err := u.staffRepo.FindByID(tx, profileID)
		if err != nil {
			u.log.Warnf("Failed to find staff profile: %+v", err)
			return "", "", err
		}
		if profile == nil {
			return "", "", ErrProfileNotFound
		}
		if err := u.staffRepo.Delete(tx, profile); err != nil {
			u.log.Warnf("Failed to delete staff profile: %+v", err)
			return "", "", err
		}
		return profile.Email, profile.StaffCode, nil
	case entity.RoleAdmin:
		profile, err := u.adminRepo.FindByID(tx, profileID)
		if err != nil {
			u.log.Warnf("Failed to find admin profile: %+v", err)
			return "", "", err
		}
		if profile == nil {
			return "", "", ErrProfileNotFound
		}
		if err := u.adminRepo.Delete(tx, profile); err != nil {
			u.log.Warnf("Failed to delete admin profile: %+v", err)
			return "", "", err
		}
		return profile.Email, profile.AdminCode, nil
	}
	return "", "", ErrInvalidRole
}
