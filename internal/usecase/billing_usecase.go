package usecase

import (
	"context"
	"time"

	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/repository"
	"healthhub/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type BillingUsecase interface {
	MyBills(ctx context.Context, patientEmail string) ([]dto.BillingItemResponse, error)
	Pay(ctx context.Context, patientEmail string, appointmentID uuid.UUID) (*entity.Billing, error)
}

type billingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientProfileRepository
	appointmentRepo repository.AppointmentRepository
	billingRepo     repository.BillingRepository
	audit           *service.AuditService
}

func NewBillingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	billingRepo repository.BillingRepository,
	audit *service.AuditService,
) BillingUsecase {
	return &billingUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		billingRepo:     billingRepo,
		audit:           audit,
	}
}

// MyBills merges the patient's active appointments with their billing rows.
// Billing rows only exist once a payment happened, so appointments without
// one are reported as Pending.
func (u *billingUsecase) MyBills(ctx context.Context, patientEmail string) ([]dto.BillingItemResponse, error) {
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

	billings, err := u.billingRepo.FindByPatientCode(u.db.WithContext(ctx), patient.PatientCode)
	if err != nil {
		u.log.Warnf("Failed to find billings: %+v", err)
		return nil, err
	}

	byAppointment := make(map[uuid.UUID]*entity.Billing, len(billings))
	for i := range billings {
		byAppointment[billings[i].AppointmentID] = &billings[i]
	}

	items := make([]dto.BillingItemResponse, 0, len(appointments))
	for i := range appointments {
		a := &appointments[i]
		item := dto.BillingItemResponse{
			AppointmentID:        a.ID,
			DoctorName:           a.DoctorName,
			DoctorSpecialization: a.DoctorSpecialization,
			Date:                 a.Date.Format("2006-01-02"),
			ConsultationFee:      a.ConsultationFee,
			BillingStatus:        string(entity.BillingStatusPending),
		}
		if billing, ok := byAppointment[a.ID]; ok {
			item.BillingStatus = string(billing.Status)
			item.BillingID = &billing.ID
			if billing.PaidAt != nil {
				item.PaidAt = billing.PaidAt.Format(time.RFC3339)
			}
		}
		items = append(items, item)
	}

	return items, nil
}

// Pay settles the fee for one appointment. The billing row is created on
// first payment and the operation is idempotent: paying an already paid
// appointment returns the existing record unchanged.
func (u *billingUsecase) Pay(ctx context.Context, patientEmail string, appointmentID uuid.UUID) (*entity.Billing, error) {
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

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil || appointment.PatientCode != patient.PatientCode {
		return nil, ErrAppointmentNotFound
	}

	billing, err := u.billingRepo.FindByAppointmentID(tx, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to find billing: %+v", err)
		return nil, err
	}

	if billing != nil && billing.Status == entity.BillingStatusPaid {
		return billing, nil
	}

	if billing == nil {
		billing = &entity.Billing{
			AppointmentID:   appointment.ID,
			PatientCode:     appointment.PatientCode,
			PatientName:     appointment.PatientName,
			DoctorName:      appointment.DoctorName,
			ConsultationFee: appointment.ConsultationFee,
			AppointmentDate: appointment.Date,
		}
	}

	now := time.Now()
	billing.Status = entity.BillingStatusPaid
	billing.PaidAt = &now

	if err := u.billingRepo.Save(tx, billing); err != nil {
		u.log.Warnf("Failed to save billing: %+v", err)
		return nil, err
	}

	if err := u.audit.Record(tx, nil, entity.AuditActionBillingPay, entity.JSON{
		"patient_code":   patient.PatientCode,
		"appointment_id": appointment.ID.String(),
		"amount":         appointment.ConsultationFee.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return billing, nil
}
