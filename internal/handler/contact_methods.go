package handler

import (
	"errors"
	"net/http"
	"strconv"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactMethodsHandler interface {
	ListPublic(c *gin.Context)
	ListAdmin(c *gin.Context)
	Update(c *gin.Context)
}

type contactMethodsHandler struct {
	repo   repository.ContactRepository
	audit  *service.AuditRecorder
	logger *zap.Logger
}

func NewContactMethodsHandler(repo repository.ContactRepository, audit *service.AuditRecorder, logger *zap.Logger) ContactMethodsHandler {
	return &contactMethodsHandler{repo: repo, audit: audit, logger: logger}
}

// ListPublic returns the contact methods without internal fields.
func (h *contactMethodsHandler) ListPublic(c *gin.Context) {
	m, err := h.repo.GetContactMethods()
	if err != nil {
		h.logger.Error("Failed to list contact methods", zap.Error(err))
		h.audit.Record("Erro ao listar formas de contato", err.Error(), requestInfo(c))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao buscar formas de contato"})
		return
	}

	h.audit.Record("Formas de contato listadas", "Consulta pública", requestInfo(c))
	c.JSON(http.StatusOK, gin.H{
		"redesocial_nome":   m.SocialNetwork,
		"redesocial_perfil": m.SocialProfile,
		"email":             m.Email,
		"telefone":          m.Phone,
	})
}

// ListAdmin returns the full row, including id and update timestamp.
func (h *contactMethodsHandler) ListAdmin(c *gin.Context) {
	m, err := h.repo.GetContactMethods()
	if err != nil {
		h.logger.Error("Failed to list contact methods", zap.Error(err))
		h.audit.Record("Erro ao listar formas de contato", err.Error(), requestInfo(c))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao buscar formas de contato"})
		return
	}

	h.audit.Record("Formas de contato listadas", "Consulta admin", requestInfo(c))
	c.JSON(http.StatusOK, m)
}

type ContactMethodsRequest struct {
	SocialNetwork string `json:"redesocial_nome"`
	SocialProfile string `json:"redesocial_perfil"`
	Email         string `json:"email"`
	Phone         string `json:"telefone"`
}

func (h *contactMethodsHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "ID inválido"})
		return
	}

	var req ContactMethodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Todos os campos são obrigatórios"})
		return
	}
	if req.SocialNetwork == "" || req.SocialProfile == "" || req.Email == "" || req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Todos os campos são obrigatórios"})
		return
	}

	m := &models.ContactMethod{
		SocialNetwork: req.SocialNetwork,
		SocialProfile: req.SocialProfile,
		Email:         req.Email,
		Phone:         req.Phone,
	}
	if err := h.repo.UpdateContactMethods(id, m); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Forma de contato não encontrada"})
			return
		}
		h.logger.Error("Failed to update contact methods", zap.Error(err))
		h.audit.Record("Erro ao salvar a alteração", err.Error(), requestInfo(c))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao salvar sua alteração, tente novamente."})
		return
	}

	h.audit.Record("Forma de contato", "ID "+strconv.FormatInt(id, 10)+" alterada com sucesso!", requestInfo(c))
	c.JSON(http.StatusOK, gin.H{"sucesso": "Forma de contato alterada com sucesso!"})
}
