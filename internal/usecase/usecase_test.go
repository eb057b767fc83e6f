package usecase

import (
	"io"
	"testing"

	"healthhub/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newMockDB returns a gorm DB backed by sqlmock. The repositories are mocked
// separately, so only transaction boundaries (Begin/Commit/Rollback) reach the
// driver.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, dbMock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// MockAccountRepository is a mock implementation of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(db *gorm.DB, account *entity.Account) error {
	args := m.Called(db, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByEmail(db *gorm.DB, email string) (*entity.Account, error) {
	args := m.Called(db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateStatusByEmail(db *gorm.DB, email string, status string) error {
	args := m.Called(db, email, status)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteByEmail(db *gorm.DB, email string) error {
	args := m.Called(db, email)
	return args.Error(0)
}

// MockDoctorProfileRepository is a mock implementation of repository.DoctorProfileRepository.
type MockDoctorProfileRepository struct {
	mock.Mock
}

func (m *MockDoctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

func (m *MockDoctorProfileRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.DoctorProfile, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DoctorProfile), args.Error(1)
}

func (m *MockDoctorProfileRepository) FindByEmail(db *gorm.DB, email string) (*entity.DoctorProfile, error) {
	args := m.Called(db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DoctorProfile), args.Error(1)
}

func (m *MockDoctorProfileRepository) FindByCode(db *gorm.DB, code string) (*entity.DoctorProfile, error) {
	args := m.Called(db, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DoctorProfile), args.Error(1)
}

func (m *MockDoctorProfileRepository) FindByStatus(db *gorm.DB, status string) ([]entity.DoctorProfile, error) {
	args := m.Called(db, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DoctorProfile), args.Error(1)
}

func (m *MockDoctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

func (m *MockDoctorProfileRepository) Delete(db *gorm.DB, profile *entity.DoctorProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

// MockStaffProfileRepository is a mock implementation of repository.StaffProfileRepository.
type MockStaffProfileRepository struct {
	mock.Mock
}

func (m *MockStaffProfileRepository) Create(db *gorm.DB, profile *entity.StaffProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

func (m *MockStaffProfileRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.StaffProfile, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StaffProfile), args.Error(1)
}

func (m *MockStaffProfileRepository) FindByEmail(db *gorm.DB, email string) (*entity.StaffProfile, error) {
	args := m.Called(db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StaffProfile), args.Error(1)
}

func (m *MockStaffProfileRepository) FindByCode(db *gorm.DB, code string) (*entity.StaffProfile, error) {
	args := m.Called(db, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StaffProfile), args.Error(1)
}

func (m *MockStaffProfileRepository) FindByStatus(db *gorm.DB, status string) ([]entity.StaffProfile, error) {
	args := m.Called(db, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StaffProfile), args.Error(1)
}

func (m *MockStaffProfileRepository) Update(db *gorm.DB, profile *entity.StaffProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

func (m *MockStaffProfileRepository) Delete(db *gorm.DB, profile *entity.StaffProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

// MockAdminProfileRepository is a mock implementation of repository.AdminProfileRepository.
type MockAdminProfileRepository struct {
	mock.Mock
}

func (m *MockAdminProfileRepository) Create(db *gorm.DB, profile *entity.AdminProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

func (m *MockAdminProfileRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.AdminProfile, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminProfile), args.Error(1)
}

func (m *MockAdminProfileRepository) FindByEmail(db *gorm.DB, email string) (*entity.AdminProfile, error) {
	args := m.Called(db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminProfile), args.Error(1)
}

func (m *MockAdminProfileRepository) FindByCode(db *gorm.DB, code string) (*entity.AdminProfile, error) {
	args := m.Called(db, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminProfile), args.Error(1)
}

func (m *MockAdminProfileRepository) FindByStatus(db *gorm.DB, status string) ([]entity.AdminProfile, error) {
	args := m.Called(db, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AdminProfile), args.Error(1)
}

func (m *MockAdminProfileRepository) Update(db *gorm.DB, profile *entity.AdminProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

func (m *MockAdminProfileRepository) Delete(db *gorm.DB, profile *entity.AdminProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

// MockPatientProfileRepository is a mock implementation of repository.PatientProfileRepository.
type MockPatientProfileRepository struct {
	mock.Mock
}

func (m *MockPatientProfileRepository) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

func (m *MockPatientProfileRepository) FindByEmail(db *gorm.DB, email string) (*entity.PatientProfile, error) {
	args := m.Called(db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PatientProfile), args.Error(1)
}

func (m *MockPatientProfileRepository) FindByCode(db *gorm.DB, code string) (*entity.PatientProfile, error) {
	args := m.Called(db, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PatientProfile), args.Error(1)
}

func (m *MockPatientProfileRepository) FindAll(db *gorm.DB) ([]entity.PatientProfile, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PatientProfile), args.Error(1)
}

func (m *MockPatientProfileRepository) Delete(db *gorm.DB, profile *entity.PatientProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

// MockSequenceRepository is a mock implementation of repository.SequenceRepository.
type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) Next(db *gorm.DB, role string) (int, error) {
	args := m.Called(db, role)
	return args.Int(0), args.Error(1)
}

// MockAuditLogRepository is a mock implementation of repository.AuditLogRepository.
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	args := m.Called(db, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindAll(db *gorm.DB) ([]entity.AuditLog, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AuditLog), args.Error(1)
}
