package service

import (
	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes audit trail entries. Callers pass the db handle they are
// working with, which may be an open transaction so the entry commits
// atomically with the change it describes.
type AuditService struct {
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditLogRepo repository.AuditLogRepository) *AuditService {
	return &AuditService{
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (s *AuditService) Record(db *gorm.DB, accountID *uuid.UUID, action string, metadata entity.JSON) error {
	entry := &entity.AuditLog{
		AccountID: accountID,
		Action:    action,
		Metadata:  metadata,
	}

	if err := s.auditLogRepo.Create(db, entry); err != nil {
		s.log.Warnf("Failed to write audit log for %s: %+v", action, err)
		return err
	}

	return nil
}
