package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"healthhub/internal/converter"
	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/repository"
	"healthhub/internal/service"
	"healthhub/pkg/jwt"
	"healthhub/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPendingApproval    = errors.New("account is pending admin approval")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidRole        = errors.New("unknown role")
)

type AuthUsecase interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AccountResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, accountID uuid.UUID, tokenID string) error
	GetCurrentUser(ctx context.Context, accountID uuid.UUID) (*dto.AccountResponse, error)
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	accountRepo repository.AccountRepository
	doctorRepo  repository.DoctorProfileRepository
	patientRepo repository.PatientProfileRepository
	jwtService  *jwt.JWTService
	hasher      *password.Hasher
	redisClient *redis.Client
	audit       *service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	jwtService *jwt.JWTService,
	hasher *password.Hasher,
	redisClient *redis.Client,
	audit *service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		accountRepo: accountRepo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
		jwtService:  jwtService,
		hasher:      hasher,
		redisClient: redisClient,
		audit:       audit,
	}
}

func (u *authUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AccountResponse, error) {
	if !entity.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	// Patients are usable immediately; every other role waits for an admin.
	status := entity.StatusPending
	if req.Role == entity.RolePatient {
		status = entity.StatusApproved
	}

	account := &entity.Account{
		FullName: req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     req.Role,
		Status:   status,
	}

	if err := u.accountRepo.Create(tx, account); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create account: %+v", err)
		return nil, err
	}

	if err := u.audit.Record(tx, &account.ID, entity.AuditActionSignup, entity.JSON{
		"email": account.Email,
		"role":  account.Role,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AccountToResponse(account), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := u.accountRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find account by email: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if !u.hasher.Check(req.Password, account.Password) {
		return nil, ErrInvalidCredentials
	}

	if !account.IsApproved() {
		return nil, ErrPendingApproval
	}

	token, tokenID, err := u.jwtService.GenerateSessionToken(account.ID, account.Role, account.Email)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	sessionKey := fmt.Sprintf("session:%s:%s", account.ID.String(), tokenID)
	if err := u.redisClient.Set(ctx, sessionKey, "valid", u.jwtService.GetSessionExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store session in Redis: %+v", err)
		return nil, err
	}

	user := converter.AccountToResponse(account)

	// Doctors and patients get their role profile attached so the client does
	// not need a second round trip after login.
	switch account.Role {
	case entity.RoleDoctor:
		profile, err := u.doctorRepo.FindByEmail(u.db.WithContext(ctx), account.Email)
		if err != nil {
			u.log.Warnf("Failed to find doctor profile: %+v", err)
			return nil, err
		}
		if profile != nil {
			user.Doctor = converter.DoctorProfileToResponse(profile)
		}
	case entity.RolePatient:
		profile, err := u.patientRepo.FindByEmail(u.db.WithContext(ctx), account.Email)
		if err != nil {
			u.log.Warnf("Failed to find patient profile: %+v", err)
			return nil, err
		}
		if profile != nil {
			user.Patient = converter.PatientProfileToResponse(profile)
		}
	}

	_ = u.audit.Record(u.db.WithContext(ctx), &account.ID, entity.AuditActionLogin, entity.JSON{
		"email": account.Email,
	})

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(u.jwtService.GetSessionExpiry().Seconds()),
		User:      user,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, accountID uuid.UUID, tokenID string) error {
	sessionKey := fmt.Sprintf("session:%s:%s", accountID.String(), tokenID)
	if err := u.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		u.log.Warnf("Failed to delete session from Redis: %+v", err)
		return err
	}

	_ = u.audit.Record(u.db.WithContext(ctx), &accountID, entity.AuditActionLogout, nil)

	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, accountID uuid.UUID) (*dto.AccountResponse, error) {
	account, err := u.accountRepo.FindByID(u.db.WithContext(ctx), accountID)
	if err != nil {
		u.log.Warnf("Failed to find account by ID: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	return converter.AccountToResponse(account), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
