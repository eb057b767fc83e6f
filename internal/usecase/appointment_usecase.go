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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrPatientProfileNotFound = errors.New("patient profile not found")
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrAlreadyBooked          = errors.New("appointment already booked with this doctor on that date")
	ErrDoctorUnavailable      = errors.New("doctor is not available on that day")
	ErrPastDate               = errors.New("appointment date cannot be in the past")
)

type AppointmentUsecase interface {
	ListDoctors(ctx context.Context) ([]dto.DoctorProfileResponse, error)
	Book(ctx context.Context, patientEmail string, req *dto.BookAppointmentRequest) (*entity.Appointment, error)
	MyAppointments(ctx context.Context, patientEmail string) ([]entity.Appointment, error)
	Cancel(ctx context.Context, patientEmail string, appointmentID uuid.UUID) error
	DoctorAppointments(ctx context.Context, doctorEmail string) ([]entity.Appointment, error)
	Complete(ctx context.Context, doctorEmail string, appointmentID uuid.UUID) (*entity.PatientHistory, error)
	History(ctx context.Context, patientEmail string) ([]entity.PatientHistory, error)
	PatientHistory(ctx context.Context, patientCode string) ([]entity.PatientHistory, error)
}

type appointmentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	doctorRepo       repository.DoctorProfileRepository
	patientRepo      repository.PatientProfileRepository
	appointmentRepo  repository.AppointmentRepository
	prescriptionRepo repository.PrescriptionRepository
	billingRepo      repository.BillingRepository
	historyRepo      repository.PatientHistoryRepository
	audit            *service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	prescriptionRepo repository.PrescriptionRepository,
	billingRepo repository.BillingRepository,
	historyRepo repository.PatientHistoryRepository,
	audit *service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:               db,
		log:              log,
		doctorRepo:       doctorRepo,
		patientRepo:      patientRepo,
		appointmentRepo:  appointmentRepo,
		prescriptionRepo: prescriptionRepo,
		billingRepo:      billingRepo,
		historyRepo:      historyRepo,
		audit:            audit,
	}
}

// ListDoctors returns the public directory of approved doctors.
func (u *appointmentUsecase) ListDoctors(ctx context.Context) ([]dto.DoctorProfileResponse, error) {
	doctors, err := u.doctorRepo.FindByStatus(u.db.WithContext(ctx), entity.StatusApproved)
	if err != nil {
		u.log.Warnf("Failed to find approved doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorProfilesToResponses(doctors), nil
}

func (u *appointmentUsecase) Book(ctx context.Context, patientEmail string, req *dto.BookAppointmentRequest) (*entity.Appointment, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	today := time.Now().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, ErrPastDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByEmail(tx, patientEmail)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientProfileNotFound
	}

	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil || doctor.Status != entity.StatusApproved {
		return nil, ErrDoctorNotFound
	}

	if len(doctor.AvailableDays) > 0 && !doctor.AvailableOn(date.Weekday()) {
		return nil, ErrDoctorUnavailable
	}

	duplicate, err := u.appointmentRepo.FindBooked(tx, patient.PatientCode, doctor.ID, date)
	if err != nil {
		u.log.Warnf("Failed to check for duplicate booking: %+v", err)
		return nil, err
	}
	if duplicate != nil {
		return nil, ErrAlreadyBooked
	}

	appointment := &entity.Appointment{
		PatientCode:          patient.PatientCode,
		PatientName:          patient.FullName,
		DoctorID:             doctor.ID,
		DoctorName:           doctor.FullName,
		DoctorSpecialization: doctor.Specialization,
		Date:                 date,
		Status:               entity.AppointmentStatusBooked,
		ConsultationFee:      doctor.ConsultationFee,
		Problem:              req.Problem,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.audit.Record(tx, nil, entity.AuditActionAppointmentBook, entity.JSON{
		"patient_code": patient.PatientCode,
		"doctor_code":  doctor.DoctorCode,
		"date":         req.Date,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return appointment, nil
}

func (u *appointmentUsecase) MyAppointments(ctx context.Context, patientEmail string) ([]entity.Appointment, error) {
	patient, err := u.patientRepo.FindByEmail(u.db.WithContext(ctx), patientEmail)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientProfileNotFound
	}

	appointments, err := u.appointmentRepo.FindByPatientCode(u.db.WithContext(ctx), patient.PatientCode)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	return appointments, nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, patientEmail string, appointmentID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByEmail(tx, patientEmail)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientProfileNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	// Ownership check doubles as not-found so the response does not leak
	// other patients' appointment IDs.
	if appointment == nil || appointment.PatientCode != patient.PatientCode {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.Delete(tx, appointment); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	if err := u.audit.Record(tx, nil, entity.AuditActionAppointmentCancel, entity.JSON{
		"patient_code":   patient.PatientCode,
		"appointment_id": appointmentID.String(),
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *appointmentUsecase) DoctorAppointments(ctx context.Context, doctorEmail string) ([]entity.Appointment, error) {
	doctor, err := u.doctorRepo.FindByEmail(u.db.WithContext(ctx), doctorEmail)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointments, err := u.appointmentRepo.FindBookedByDoctorID(u.db.WithContext(ctx), doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor appointments: %+v", err)
		return nil, err
	}
	return appointments, nil
}

// Complete closes out an appointment: the visit is snapshotted into the
// patient's history with the payment and prescription state at that moment,
// and the active appointment row is removed.
func (u *appointmentUsecase) Complete(ctx context.Context, doctorEmail string, appointmentID uuid.UUID) (*entity.PatientHistory, error) {
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

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil || appointment.DoctorID != doctor.ID {
		return nil, ErrAppointmentNotFound
	}

	prescription, err := u.prescriptionRepo.FindByAppointmentID(tx, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}

	billing, err := u.billingRepo.FindByAppointmentID(tx, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to find billing: %+v", err)
		return nil, err
	}

	paymentStatus := string(entity.BillingStatusPending)
	if billing != nil {
		paymentStatus = string(billing.Status)
	}

	history := &entity.PatientHistory{
		PatientCode:        appointment.PatientCode,
		PatientName:        appointment.PatientName,
		DoctorID:           appointment.DoctorID,
		DoctorName:         appointment.DoctorName,
		Date:               appointment.Date,
		MedicalProblem:     appointment.Problem,
		ConsultationFee:    appointment.ConsultationFee,
		PaymentStatus:      paymentStatus,
		PrescriptionIssued: prescription != nil,
	}

	if err := u.historyRepo.Create(tx, history); err != nil {
		u.log.Warnf("Failed to create patient history: %+v", err)
		return nil, err
	}

	if err := u.appointmentRepo.Delete(tx, appointment); err != nil {
		u.log.Warnf("Failed to delete completed appointment: %+v", err)
		return nil, err
	}

	if err := u.audit.Record(tx, nil, entity.AuditActionAppointmentComplete, entity.JSON{
		"patient_code":   appointment.PatientCode,
		"doctor_code":    doctor.DoctorCode,
		"appointment_id": appointmentID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return history, nil
}

func (u *appointmentUsecase) History(ctx context.Context, patientEmail string) ([]entity.PatientHistory, error) {
	patient, err := u.patientRepo.FindByEmail(u.db.WithContext(ctx), patientEmail)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientProfileNotFound
	}

	return u.PatientHistory(ctx, patient.PatientCode)
}

// PatientHistory is the doctor/admin view of a patient's completed visits.
func (u *appointmentUsecase) PatientHistory(ctx context.Context, patientCode string) ([]entity.PatientHistory, error) {
	histories, err := u.historyRepo.FindByPatientCode(u.db.WithContext(ctx), patientCode)
	if err != nil {
		u.log.Warnf("Failed to find patient history: %+v", err)
		return nil, err
	}
	return histories, nil
}
