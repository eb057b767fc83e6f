package usecase

import (
	"context"
	"errors"
	"time"

	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/repository"
	"healthhub/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrAppointmentNotOwned  = errors.New("appointment does not belong to this doctor")
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, doctorEmail string, req *dto.CreatePrescriptionRequest) (*entity.Prescription, error)
	MyPrescriptions(ctx context.Context, patientEmail string) ([]entity.Prescription, error)
	CheckForAppointment(ctx context.Context, doctorEmail, patientCode string, appointmentID uuid.UUID) (*dto.PrescriptionExistsResponse, error)
	Acknowledge(ctx context.Context, patientEmail string, prescriptionID uuid.UUID) (*entity.Prescription, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	doctorRepo       repository.DoctorProfileRepository
	patientRepo      repository.PatientProfileRepository
	appointmentRepo  repository.AppointmentRepository
	prescriptionRepo repository.PrescriptionRepository
	audit            *service.AuditService
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	prescriptionRepo repository.PrescriptionRepository,
	audit *service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		doctorRepo:       doctorRepo,
		patientRepo:      patientRepo,
		appointmentRepo:  appointmentRepo,
		prescriptionRepo: prescriptionRepo,
		audit:            audit,
	}
}

func (u *prescriptionUsecase) Create(ctx context.Context, doctorEmail string, req *dto.CreatePrescriptionRequest) (*entity.Prescription, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByEmail(tx, doctorEmail)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.DoctorID != doctor.ID {
		return nil, ErrAppointmentNotOwned
	}

	medicines := make(entity.MedicineList, 0, len(req.Medicines))
	for _, m := range req.Medicines {
		medicines = append(medicines, entity.Medicine{
			Name:         m.Name,
			Dosage:       m.Dosage,
			Frequency:    m.Frequency,
			Duration:     m.Duration,
			Instructions: m.Instructions,
		})
	}

	prescription := &entity.Prescription{
		AppointmentID: appointment.ID,
		PatientCode:   appointment.PatientCode,
		PatientName:   appointment.PatientName,
		DoctorID:      doctor.ID,
		DoctorName:    doctor.FullName,
		Medicines:     medicines,
		Notes:         req.Notes,
		Status:        entity.PrescriptionStatusActive,
		IssuedAt:      time.Now(),
	}

	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	if err := u.audit.Record(tx, nil, entity.AuditActionPrescriptionCreate, entity.JSON{
		"patient_code":   appointment.PatientCode,
		"doctor_code":    doctor.DoctorCode,
		"appointment_id": appointment.ID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return prescription, nil
}

func (u *prescriptionUsecase) MyPrescriptions(ctx context.Context, patientEmail string) ([]entity.Prescription, error) {
	patient, err := u.patientRepo.FindByEmail(u.db.WithContext(ctx), patientEmail)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientProfileNotFound
	}

	prescriptions, err := u.prescriptionRepo.FindByPatientCode(u.db.WithContext(ctx), patient.PatientCode)
	if err != nil {
		u.log.Warnf("Failed to find prescriptions: %+v", err)
		return nil, err
	}
	return prescriptions, nil
}

// CheckForAppointment lets a doctor see whether they already issued a
// prescription for one of their appointments.
func (u *prescriptionUsecase) CheckForAppointment(ctx context.Context, doctorEmail, patientCode string, appointmentID uuid.UUID) (*dto.PrescriptionExistsResponse, error) {
	doctor, err := u.doctorRepo.FindByEmail(u.db.WithContext(ctx), doctorEmail)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	prescription, err := u.prescriptionRepo.FindForDoctor(u.db.WithContext(ctx), patientCode, appointmentID, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}

	return &dto.PrescriptionExistsResponse{
		Exists:       prescription != nil,
		Prescription: prescription,
	}, nil
}

// Acknowledge marks the prescription as seen by the patient. The timestamp is
// stored server-side so the state survives across devices. Acknowledging
// twice is a no-op.
func (u *prescriptionUsecase) Acknowledge(ctx context.Context, patientEmail string, prescriptionID uuid.UUID) (*entity.Prescription, error) {
	patient, err := u.patientRepo.FindByEmail(u.db.WithContext(ctx), patientEmail)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientProfileNotFound
	}

	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil || prescription.PatientCode != patient.PatientCode {
		return nil, ErrPrescriptionNotFound
	}

	if prescription.AcknowledgedAt == nil {
		now := time.Now()
		prescription.AcknowledgedAt = &now
		if err := u.prescriptionRepo.Update(u.db.WithContext(ctx), prescription); err != nil {
			u.log.Warnf("Failed to acknowledge prescription: %+v", err)
			return nil, err
		}
	}

	return prescription, nil
}
