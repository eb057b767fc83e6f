package usecase

import (
	"context"
	"errors"

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
	ErrStaffNotFound = errors.New("staff member not found")
	ErrTaskNotFound  = errors.New("task not found")
)

type StaffTaskUsecase interface {
	StaffList(ctx context.Context) ([]dto.StaffListItem, error)
	Assign(ctx context.Context, actorID uuid.UUID, assignedBy string, req *dto.AssignTaskRequest) (*entity.StaffTask, error)
	All(ctx context.Context) ([]entity.StaffTask, error)
	MyTasks(ctx context.Context, staffEmail string) ([]entity.StaffTask, error)
	Delete(ctx context.Context, taskID uuid.UUID) error
}

type staffTaskUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	staffRepo repository.StaffProfileRepository
	taskRepo  repository.StaffTaskRepository
	audit     *service.AuditService
}

func NewStaffTaskUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	staffRepo repository.StaffProfileRepository,
	taskRepo repository.StaffTaskRepository,
	audit *service.AuditService,
) StaffTaskUsecase {
	return &staffTaskUsecase{
		db:        db,
		log:       log,
		staffRepo: staffRepo,
		taskRepo:  taskRepo,
		audit:     audit,
	}
}

// StaffList is the short listing of approved staff used when assigning tasks.
func (u *staffTaskUsecase) StaffList(ctx context.Context) ([]dto.StaffListItem, error) {
	profiles, err := u.staffRepo.FindByStatus(u.db.WithContext(ctx), entity.StatusApproved)
	if err != nil {
		u.log.Warnf("Failed to find approved staff: %+v", err)
		return nil, err
	}
	return converter.StaffProfilesToListItems(profiles), nil
}

func (u *staffTaskUsecase) Assign(ctx context.Context, actorID uuid.UUID, assignedBy string, req *dto.AssignTaskRequest) (*entity.StaffTask, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff, err := u.staffRepo.FindByCode(tx, req.StaffCode)
	if err != nil {
		u.log.Warnf("Failed to find staff by code: %+v", err)
		return nil, err
	}
	if staff == nil || staff.Status != entity.StatusApproved {
		return nil, ErrStaffNotFound
	}

	task := &entity.StaffTask{
		StaffCode:   staff.StaffCode,
		StaffName:   staff.FullName,
		Designation: staff.Designation,
		Department:  staff.Department,
		Task:        req.Task,
		AssignedBy:  assignedBy,
	}

	if err := u.taskRepo.Create(tx, task); err != nil {
		u.log.Warnf("Failed to create staff task: %+v", err)
		return nil, err
	}

	if err := u.audit.Record(tx, &actorID, entity.AuditActionTaskAssign, entity.JSON{
		"staff_code": staff.StaffCode,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return task, nil
}

func (u *staffTaskUsecase) All(ctx context.Context) ([]entity.StaffTask, error) {
	tasks, err := u.taskRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find staff tasks: %+v", err)
		return nil, err
	}
	return tasks, nil
}

func (u *staffTaskUsecase) MyTasks(ctx context.Context, staffEmail string) ([]entity.StaffTask, error) {
	staff, err := u.staffRepo.FindByEmail(u.db.WithContext(ctx), staffEmail)
	if err != nil {
		u.log.Warnf("Failed to find staff profile: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	tasks, err := u.taskRepo.FindByStaffCode(u.db.WithContext(ctx), staff.StaffCode)
	if err != nil {
		u.log.Warnf("Failed to find staff tasks: %+v", err)
		return nil, err
	}
	return tasks, nil
}

func (u *staffTaskUsecase) Delete(ctx context.Context, taskID uuid.UUID) error {
	task, err := u.taskRepo.FindByID(u.db.WithContext(ctx), taskID)
	if err != nil {
		u.log.Warnf("Failed to find staff task: %+v", err)
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}

	if err := u.taskRepo.Delete(u.db.WithContext(ctx), task); err != nil {
		u.log.Warnf("Failed to delete staff task: %+v", err)
		return err
	}

	return nil
}
