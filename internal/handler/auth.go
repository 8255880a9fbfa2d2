package handler

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler interface {
	Login(c *gin.Context)
	Register(c *gin.Context)
	RequestRecovery(c *gin.Context)
	ResetPassword(c *gin.Context)
	Logout(c *gin.Context)
}

type authHandler struct {
	authService service.AuthService
	audit       *service.AuditRecorder
	logger      *zap.Logger
}

func NewAuthHandler(authService service.AuthService, audit *service.AuditRecorder, logger *zap.Logger) AuthHandler {
	return &authHandler{authService: authService, audit: audit, logger: logger}
}

// requestInfo extracts the audit fields from the current request.
func requestInfo(c *gin.Context) service.RequestInfo {
	return service.RequestInfo{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		URL:       c.Request.URL.Path,
		Method:    c.Request.Method,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

func (h *authHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		h.audit.Record("Login falhou", "Email e senha são obrigatórios", requestInfo(c))
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Email e senha são obrigatórios"})
		return
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same body for unknown email and wrong password, so the endpoint
			// cannot be used to enumerate registered addresses.
			h.audit.Record("Login falhou", "Dados incorretos", requestInfo(c))
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Dados incorretos"})
			return
		}
		h.logger.Error("Login failed", zap.Error(err))
		h.audit.Record("Erro no login", err.Error(), requestInfo(c))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro interno no servidor"})
		return
	}

	h.audit.Record("Login bem-sucedido", "Fotógrafo autenticado", requestInfo(c))
	c.JSON(http.StatusOK, gin.H{"token": token})
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

func (h *authHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		h.audit.Record("Cadastro recusado", "Email e senha são obrigatórios", requestInfo(c))
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Email e senha são obrigatórios"})
		return
	}

	if err := h.authService.Register(req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			h.audit.Record("Cadastro recusado", "E-mail já cadastrado", requestInfo(c))
			c.JSON(http.StatusConflict, gin.H{"erro": "E-mail já cadastrado"})
			return
		}
		h.logger.Error("Registration failed", zap.Error(err))
		h.audit.Record("Erro no cadastro", err.Error(), requestInfo(c))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao cadastrar fotógrafo"})
		return
	}

	h.audit.Record("Cadastro bem-sucedido", "Fotógrafo cadastrado", requestInfo(c))
	c.JSON(http.StatusCreated, gin.H{"mensagem": "Fotógrafo cadastrado com sucesso"})
}

type RecoveryRequest struct {
	Email string `json:"email"`
}

func (h *authHandler) RequestRecovery(c *gin.Context) {
	var req RecoveryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		h.audit.Record("Recuperação falhou", "Email não informado", requestInfo(c))
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Digite seu email."})
		return
	}

	if err := h.authService.RequestRecovery(req.Email); err != nil {
		if errors.Is(err, service.ErrEmailNotFound) {
			h.audit.Record("Recuperação falhou", "E-mail não encontrado", requestInfo(c))
			c.JSON(http.StatusNotFound, gin.H{"erro": "E-mail não encontrado."})
			return
		}
		h.logger.Error("Recovery request failed", zap.Error(err))
		h.audit.Record("Erro na recuperação", err.Error(), requestInfo(c))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro interno no servidor"})
		return
	}

	h.audit.Record("Recuperação solicitada", "E-mail de recuperação enviado", requestInfo(c))
	c.JSON(http.StatusOK, gin.H{"sucesso": "E-mail para recuperação de senha enviado!"})
}

type ResetPasswordRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"nova_senha"`
	ConfirmPassword string `json:"confirmar_senha"`
}

func (h *authHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.NewPassword == "" || req.ConfirmPassword == "" {
		h.audit.Record("Reset de senha falhou", "Campos de senha são obrigatórios", requestInfo(c))
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Campos de senha são obrigatórios"})
		return
	}
	if req.Token == "" {
		h.audit.Record("Reset de senha falhou", "Token é obrigatório", requestInfo(c))
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Token é obrigatório"})
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		h.audit.Record("Reset de senha falhou", "Senhas não conferem", requestInfo(c))
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Campos de senha não podem ser diferentes."})
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrTokenInvalid):
			h.audit.Record("Reset de senha falhou", "Token inválido", requestInfo(c))
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Token inválido"})
		case errors.Is(err, service.ErrTokenUsed):
			h.audit.Record("Reset de senha falhou", "Token já utilizado", requestInfo(c))
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Token já utilizado"})
		case errors.Is(err, service.ErrTokenExpired):
			h.audit.Record("Reset de senha falhou", "Token expirado", requestInfo(c))
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Token expirado"})
		default:
			h.logger.Error("Password reset failed", zap.Error(err))
			h.audit.Record("Erro no reset de senha", err.Error(), requestInfo(c))
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao redefinir a senha"})
		}
		return
	}

	h.audit.Record("Senha redefinida", "Reset concluído", requestInfo(c))
	c.JSON(http.StatusOK, gin.H{"sucesso": "Senha redefinida com sucesso. Redirecionando você para o login..."})
}

func (h *authHandler) Logout(c *gin.Context) {
	jti := c.MustGet("jti").(string)
	photographerID := c.MustGet("fotografo_id").(int64)

	if err := h.authService.Logout(jti, photographerID); err != nil {
		h.logger.Error("Logout failed", zap.Error(err))
		h.audit.Record("Erro no logout", err.Error(), requestInfo(c))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro interno no servidor"})
		return
	}

	h.audit.Record("Logout realizado", "Token "+shortJTI(jti)+" invalidado", requestInfo(c))
	c.JSON(http.StatusOK, gin.H{"sucesso": "Logout realizado com sucesso"})
}

// shortJTI truncates a jti for log lines.
func shortJTI(jti string) string {
	if len(jti) <= 8 {
		return jti
	}
	return jti[:8] + "..."
}
