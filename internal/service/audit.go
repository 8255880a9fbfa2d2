package service

import (
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"

	"go.uber.org/zap"
)

// RequestInfo carries the request-scoped fields that go into the audit trail.
type RequestInfo struct {
	IP        string
	UserAgent string
	URL       string
	Method    string
}

// AuditRecorder appends security-relevant events to the logs table. Recording
// is fire-and-forget: a failed insert is reported to the process log and the
// triggering operation proceeds unaffected.
type AuditRecorder struct {
	repo   repository.AuditLogRepository
	logger *zap.Logger
}

func NewAuditRecorder(repo repository.AuditLogRepository, logger *zap.Logger) *AuditRecorder {
	return &AuditRecorder{repo: repo, logger: logger}
}

func (a *AuditRecorder) Record(eventType, status string, req RequestInfo) {
	entry := &models.AuditEntry{
		Type:      eventType,
		IP:        req.IP,
		UserAgent: req.UserAgent,
		URL:       req.URL,
		Method:    req.Method,
		Status:    status,
	}
	if err := a.repo.Insert(entry); err != nil {
		a.logger.Error("Failed to record audit entry",
			zap.String("tipo_log", eventType), zap.Error(err))
	}
}
