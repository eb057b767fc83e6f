package usecase

import (
	"context"
	"testing"

	"healthhub/internal/domain/entity"
	"healthhub/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type approvalFixture struct {
	usecase     ApprovalUsecase
	dbMock      sqlmock.Sqlmock
	accountRepo *MockAccountRepository
	doctorRepo  *MockDoctorProfileRepository
	staffRepo   *MockStaffProfileRepository
	auditRepo   *MockAuditLogRepository
}

func newApprovalFixture(t *testing.T) *approvalFixture {
	t.Helper()

	db, dbMock := newMockDB(t)
	log := newTestLogger()
	f := &approvalFixture{
		dbMock:      dbMock,
		accountRepo: new(MockAccountRepository),
		doctorRepo:  new(MockDoctorProfileRepository),
		staffRepo:   new(MockStaffProfileRepository),
		auditRepo:   new(MockAuditLogRepository),
	}

	f.usecase = NewApprovalUsecase(
		db,
		log,
		f.accountRepo,
		f.doctorRepo,
		f.staffRepo,
		new(MockAdminProfileRepository),
		service.NewAuditService(log, f.auditRepo),
	)

	return f
}

func TestApproveDoctorUpdatesProfileAndAccount(t *testing.T) {
	f := newApprovalFixture(t)

	f.dbMock.ExpectBegin()
	f.dbMock.ExpectCommit()

	profileID := uuid.New()
	f.doctorRepo.On("FindByID", mock.Anything, profileID).Return(&entity.DoctorProfile{
		ID:         profileID,
		DoctorCode: "DOC-001",
		Email:      "doc@example.com",
		Status:     entity.StatusPending,
	}, nil)
	f.doctorRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.DoctorProfile) bool {
		return p.ID == profileID && p.Status == entity.StatusApproved
	})).Return(nil)
	f.accountRepo.On("UpdateStatusByEmail", mock.Anything, "doc@example.com", entity.StatusApproved).Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *entity.AuditLog) bool {
		return l.Action == entity.AuditActionProfileApprove
	})).Return(nil)

	err := f.usecase.Approve(context.Background(), uuid.New(), entity.RoleDoctor, profileID)

	require.NoError(t, err)
	f.doctorRepo.AssertExpectations(t)
	f.accountRepo.AssertExpectations(t)
	require.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestApproveMissingProfileRollsBack(t *testing.T) {
	f := newApprovalFixture(t)

	f.dbMock.ExpectBegin()
	f.dbMock.ExpectRollback()

	profileID := uuid.New()
	f.doctorRepo.On("FindByID", mock.Anything, profileID).Return(nil, nil)

	err := f.usecase.Approve(context.Background(), uuid.New(), entity.RoleDoctor, profileID)

	assert.ErrorIs(t, err, ErrProfileNotFound)
	f.accountRepo.AssertNotCalled(t, "UpdateStatusByEmail", mock.Anything, mock.Anything, mock.Anything)
	require.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestRejectStaffDeletesProfileAndAccount(t *testing.T) {
	f := newApprovalFixture(t)

	f.dbMock.ExpectBegin()
	f.dbMock.ExpectCommit()

	profileID := uuid.New()
	f.staffRepo.On("FindByID", mock.Anything, profileID).Return(&entity.StaffProfile{
		ID:        profileID,
		StaffCode: "STF-003",
		Email:     "staff@example.com",
		Status:    entity.StatusPending,
	}, nil)
	f.staffRepo.On("Delete", mock.Anything, mock.MatchedBy(func(p *entity.StaffProfile) bool {
		return p.ID == profileID
	})).Return(nil)
	f.accountRepo.On("DeleteByEmail", mock.Anything, "staff@example.com").Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *entity.AuditLog) bool {
		return l.Action == entity.AuditActionProfileReject
	})).Return(nil)

	err := f.usecase.Reject(context.Background(), uuid.New(), entity.RoleStaff, profileID)

	require.NoError(t, err)
	f.staffRepo.AssertExpectations(t)
	f.accountRepo.AssertExpectations(t)
	require.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestApproveUnknownRole(t *testing.T) {
	f := newApprovalFixture(t)

	f.dbMock.ExpectBegin()
	f.dbMock.ExpectRollback()

	err := f.usecase.Approve(context.Background(), uuid.New(), entity.RolePatient, uuid.New())

	assert.ErrorIs(t, err, ErrInvalidRole)
	require.NoError(t, f.dbMock.ExpectationsWereMet())
}
