package handler

import (
	"database/sql"
	"net/http"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/notify"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactHandler interface {
	Create(c *gin.Context)
}

type contactHandler struct {
	repo     repository.ContactRepository
	notifier notify.Notifier
	audit    *service.AuditRecorder
	logger   *zap.Logger
}

func NewContactHandler(repo repository.ContactRepository, notifier notify.Notifier, audit *service.AuditRecorder, logger *zap.Logger) ContactHandler {
	return &contactHandler{repo: repo, notifier: notifier, audit: audit, logger: logger}
}

type ContactRequest struct {
	Name    string `json:"nome"`
	Phone   string `json:"telefone"`
	Email   string `json:"email"`
	Message string `json:"mensagem"`
}

func (h *contactHandler) Create(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Nenhum dado recebido"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "O nome é obrigatório"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "A mensagem é obrigatória"})
		return
	}
	if req.Phone == "" && req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Ao menos um contato é obrigatório"})
		return
	}

	contact := &models.Contact{
		Name:    req.Name,
		Phone:   sql.NullString{String: req.Phone, Valid: req.Phone != ""},
		Email:   sql.NullString{String: req.Email, Valid: req.Email != ""},
		Message: req.Message,
	}
	if err := h.repo.InsertContact(contact); err != nil {
		h.logger.Error("Failed to save contact message", zap.Error(err))
		h.audit.Record("Erro ao salvar contato", err.Error(), requestInfo(c))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Sua mensagem não foi entregue, tente novamente, por favor!"})
		return
	}

	if h.notifier != nil {
		h.notifier.ContactReceived(contact)
	}

	h.audit.Record("Contato recebido", "Mensagem salva", requestInfo(c))
	c.JSON(http.StatusOK, gin.H{"sucesso": "Sua mensagem foi enviada com sucesso!"})
}
