package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"healthhub/config"
	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/repository"
	"healthhub/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNoActiveAppointment = errors.New("no active appointment to attach the document to")
	ErrDocumentNotFound    = errors.New("document not found")
)

type DocumentUsecase interface {
	Upload(ctx context.Context, patientEmail string, file io.Reader, fileName, fileType, description string) (*entity.Document, error)
	MyDocuments(ctx context.Context, patientEmail string) ([]entity.Document, error)
	Delete(ctx context.Context, patientEmail string, documentID uuid.UUID) error
	PatientDocuments(ctx context.Context, doctorEmail, patientCode string) ([]entity.Document, error)
}

type documentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	uploadCfg       config.UploadConfig
	patientRepo     repository.PatientProfileRepository
	doctorRepo      repository.DoctorProfileRepository
	appointmentRepo repository.AppointmentRepository
	documentRepo    repository.DocumentRepository
	audit           *service.AuditService
}

func NewDocumentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	uploadCfg config.UploadConfig,
	patientRepo repository.PatientProfileRepository,
	doctorRepo repository.DoctorProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	documentRepo repository.DocumentRepository,
	audit *service.AuditService,
) DocumentUsecase {
	return &documentUsecase{
		db:              db,
		log:             log,
		uploadCfg:       uploadCfg,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		documentRepo:    documentRepo,
		audit:           audit,
	}
}

// Upload stores the file on disk and links the metadata to the doctor of the
// patient's most recent active appointment, so the right doctor sees it.
func (u *documentUsecase) Upload(ctx context.Context, patientEmail string, file io.Reader, fileName, fileType, description string) (*entity.Document, error) {
	patient, err := u.patientRepo.FindByEmail(u.db.WithContext(ctx), patientEmail)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientProfileNotFound
	}

	appointment, err := u.appointmentRepo.LatestBookedByPatientCode(u.db.WithContext(ctx), patient.PatientCode)
	if err != nil {
		u.log.Warnf("Failed to find latest appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrNoActiveAppointment
	}

	storedName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(fileName))
	storedPath := filepath.Join(u.uploadCfg.Dir, storedName)

	dst, err := os.Create(storedPath)
	if err != nil {
		u.log.Warnf("Failed to create upload file: %+v", err)
		return nil, err
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(storedPath)
		u.log.Warnf("Failed to write upload file: %+v", err)
		return nil, err
	}
	if err := dst.Close(); err != nil {
		os.Remove(storedPath)
		return nil, err
	}

	document := &entity.Document{
		PatientCode: patient.PatientCode,
		PatientName: patient.FullName,
		DoctorID:    appointment.DoctorID,
		DoctorName:  appointment.DoctorName,
		FileName:    fileName,
		FilePath:    "/" + filepath.ToSlash(storedPath),
		FileType:    fileType,
		Description: description,
	}

	if err := u.documentRepo.Create(u.db.WithContext(ctx), document); err != nil {
		// The row is the source of truth; drop the orphaned file.
		os.Remove(storedPath)
		u.log.Warnf("Failed to create document: %+v", err)
		return nil, err
	}

	_ = u.audit.Record(u.db.WithContext(ctx), nil, entity.AuditActionDocumentUpload, entity.JSON{
		"patient_code": patient.PatientCode,
		"file_name":    fileName,
	})

	return document, nil
}

func (u *documentUsecase) MyDocuments(ctx context.Context, patientEmail string) ([]entity.Document, error) {
	patient, err := u.patientRepo.FindByEmail(u.db.WithContext(ctx), patientEmail)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientProfileNotFound
	}

	documents, err := u.documentRepo.FindByPatientCode(u.db.WithContext(ctx), patient.PatientCode)
	if err != nil {
		u.log.Warnf("Failed to find documents: %+v", err)
		return nil, err
	}
	return documents, nil
}

func (u *documentUsecase) Delete(ctx context.Context, patientEmail string, documentID uuid.UUID) error {
	patient, err := u.patientRepo.FindByEmail(u.db.WithContext(ctx), patientEmail)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientProfileNotFound
	}

	document, err := u.documentRepo.FindByID(u.db.WithContext(ctx), documentID)
	if err != nil {
		u.log.Warnf("Failed to find document: %+v", err)
		return err
	}
	if document == nil || document.PatientCode != patient.PatientCode {
		return ErrDocumentNotFound
	}

	if err := u.documentRepo.Delete(u.db.WithContext(ctx), document); err != nil {
		u.log.Warnf("Failed to delete document: %+v", err)
		return err
	}

	// Best effort; a missing file on disk is not an error.
	if err := os.Remove("." + document.FilePath); err != nil && !os.IsNotExist(err) {
		u.log.Warnf("Failed to remove document file: %+v", err)
	}

	return nil
}

// PatientDocuments is the doctor-side view, scoped to documents that were
// addressed to this doctor.
func (u *documentUsecase) PatientDocuments(ctx context.Context, doctorEmail, patientCode string) ([]entity.Document, error) {
	doctor, err := u.doctorRepo.FindByEmail(u.db.WithContext(ctx), doctorEmail)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	documents, err := u.documentRepo.FindByPatientAndDoctor(u.db.WithContext(ctx), patientCode, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find documents: %+v", err)
		return nil, err
	}
	return documents, nil
}
