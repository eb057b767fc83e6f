package usecase

import (
	"context"
	"testing"

	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
	"healthhub/internal/service"
	"healthhub/pkg/password"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileFixture struct {
	usecase     ProfileUsecase
	dbMock      sqlmock.Sqlmock
	accountRepo *MockAccountRepository
	doctorRepo  *MockDoctorProfileRepository
	seqRepo     *MockSequenceRepository
	auditRepo   *MockAuditLogRepository
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()

	db, dbMock := newMockDB(t)
	log := newTestLogger()
	f := &profileFixture{
		dbMock:      dbMock,
		accountRepo: new(MockAccountRepository),
		doctorRepo:  new(MockDoctorProfileRepository),
		seqRepo:     new(MockSequenceRepository),
		auditRepo:   new(MockAuditLogRepository),
	}

	f.usecase = NewProfileUsecase(
		db,
		log,
		f.accountRepo,
		f.doctorRepo,
		new(MockStaffProfileRepository),
		new(MockAdminProfileRepository),
		new(MockPatientProfileRepository),
		f.seqRepo,
		password.NewHasher(),
		service.NewAuditService(log, f.auditRepo),
	)

	return f
}

func hashOf(t *testing.T, plain string) string {
	t.Helper()
	hash, err := password.NewHasher().Hash(plain)
	require.NoError(t, err)
	return hash
}

func doctorSubmission() *dto.SubmitDoctorProfileRequest {
	return &dto.SubmitDoctorProfileRequest{
		Email:           "doc@example.com",
		Password:        "secret123",
		FullName:        "Dr. Smith",
		Specialization:  "Cardiology",
		AvailableDays:   []string{"Monday", "Thursday"},
		ConsultationFee: decimal.NewFromInt(150),
	}
}

func TestSubmitDoctorProfileAccountNotFound(t *testing.T) {
	f := newProfileFixture(t)

	f.dbMock.ExpectBegin()
	f.dbMock.ExpectRollback()

	f.accountRepo.On("FindByEmail", mock.Anything, "doc@example.com").Return(nil, nil)

	_, err := f.usecase.SubmitDoctorProfile(context.Background(), doctorSubmission())

	assert.ErrorIs(t, err, ErrAccountNotFound)
	f.doctorRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	require.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestSubmitDoctorProfilePasswordMismatch(t *testing.T) {
	f := newProfileFixture(t)

	f.dbMock.ExpectBegin()
	f.dbMock.ExpectRollback()

	f.accountRepo.On("FindByEmail", mock.Anything, "doc@example.com").Return(&entity.Account{
		Email:    "doc@example.com",
		Password: hashOf(t, "a-different-password"),
		Role:     entity.RoleDoctor,
		Status:   entity.StatusPending,
	}, nil)

	_, err := f.usecase.SubmitDoctorProfile(context.Background(), doctorSubmission())

	assert.ErrorIs(t, err, ErrPasswordMismatch)
	f.seqRepo.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
	f.doctorRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	require.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestSubmitDoctorProfileAssignsSequentialCode(t *testing.T) {
	f := newProfileFixture(t)

	f.dbMock.ExpectBegin()
	f.dbMock.ExpectCommit()

	f.accountRepo.On("FindByEmail", mock.Anything, "doc@example.com").Return(&entity.Account{
		Email:    "doc@example.com",
		Password: hashOf(t, "secret123"),
		Role:     entity.RoleDoctor,
		Status:   entity.StatusPending,
	}, nil)
	f.doctorRepo.On("FindByEmail", mock.Anything, "doc@example.com").Return(nil, nil)
	f.seqRepo.On("Next", mock.Anything, entity.RoleDoctor).Return(1, nil)

	var created *entity.DoctorProfile
	f.doctorRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.DoctorProfile")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*entity.DoctorProfile) }).
		Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	resp, err := f.usecase.SubmitDoctorProfile(context.Background(), doctorSubmission())

	require.NoError(t, err)
	assert.Equal(t, "DOC-001", resp.Code)
	assert.Equal(t, entity.StatusPending, resp.Status)
	assert.Equal(t, "DOC-001", created.DoctorCode)
	assert.Equal(t, entity.StatusPending, created.Status)
	assert.Equal(t, entity.StringList{"Monday", "Thursday"}, created.AvailableDays)
	require.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestSubmitDoctorProfileAlreadySubmitted(t *testing.T) {
	f := newProfileFixture(t)

	f.dbMock.ExpectBegin()
	f.dbMock.ExpectRollback()

	f.accountRepo.On("FindByEmail", mock.Anything, "doc@example.com").Return(&entity.Account{
		Email:    "doc@example.com",
		Password: hashOf(t, "secret123"),
		Role:     entity.RoleDoctor,
		Status:   entity.StatusPending,
	}, nil)
	f.doctorRepo.On("FindByEmail", mock.Anything, "doc@example.com").Return(&entity.DoctorProfile{
		DoctorCode: "DOC-001",
		Email:      "doc@example.com",
		Status:     entity.StatusPending,
	}, nil)

	_, err := f.usecase.SubmitDoctorProfile(context.Background(), doctorSubmission())

	assert.ErrorIs(t, err, ErrProfileAlreadyExists)
	f.seqRepo.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
	require.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestSubmitDoctorProfileBadDate(t *testing.T) {
	f := newProfileFixture(t)

	req := doctorSubmission()
	req.DateOfBirth = "03/15/1980"

	_, err := f.usecase.SubmitDoctorProfile(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDateFormat)
	f.accountRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}
