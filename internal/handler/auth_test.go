package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type fakeAuthService struct {
	loginToken  string
	loginErr    error
	registerErr error
	recoveryErr error
	resetErr    error
	logoutErr   error

	loggedOutJTI string
}

func (f *fakeAuthService) Login(email, password string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeAuthService) Register(email, password string) error { return f.registerErr }

func (f *fakeAuthService) RequestRecovery(email string) error { return f.recoveryErr }

func (f *fakeAuthService) ResetPassword(token, newPassword string) error { return f.resetErr }

func (f *fakeAuthService) Logout(jti string, photographerID int64) error {
	f.loggedOutJTI = jti
	return f.logoutErr
}

type fakeAuditRepo struct {
	entries []*models.AuditEntry
}

func (f *fakeAuditRepo) Insert(entry *models.AuditEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func newAuthTestRouter(svc service.AuthService, audit *fakeAuditRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	recorder := service.NewAuditRecorder(audit, zap.NewNop())
	h := NewAuthHandler(svc, recorder, zap.NewNop())

	r := gin.New()
	auth := r.Group("/api/auth")
	auth.POST("/login", h.Login)
	auth.POST("/cadastro", h.Register)
	auth.POST("/recuperar-senha", h.RequestRecovery)
	auth.POST("/resetar-senha", h.ResetPassword)
	auth.POST("/logout", func(c *gin.Context) {
		// stand-in for the auth middleware
		c.Set("jti", "test-jti")
		c.Set("fotografo_id", models.PhotographerID)
	}, h.Logout)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler_Success(t *testing.T) {
	t.Parallel()

	audit := &fakeAuditRepo{}
	r := newAuthTestRouter(&fakeAuthService{loginToken: "signed-token"}, audit)

	w := postJSON(r, "/api/auth/login", `{"email":"a@b.com","senha":"secret123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "signed-token") {
		t.Fatalf("expected token in response, got %s", w.Body.String())
	}
	if len(audit.entries) == 0 {
		t.Fatalf("expected an audit entry for the login")
	}
}

func TestLoginHandler_MissingFields(t *testing.T) {
	t.Parallel()

	audit := &fakeAuditRepo{}
	r := newAuthTestRouter(&fakeAuthService{}, audit)

	bodies := []string{`{}`, `{"email":"a@b.com"}`, `{"senha":"x"}`, `not json`}
	for _, body := range bodies {
		w := postJSON(r, "/api/auth/login", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, w.Code)
		}
	}
	if len(audit.entries) != len(bodies) {
		t.Fatalf("every rejected login must be audited: got %d entries for %d requests", len(audit.entries), len(bodies))
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	t.Parallel()

	audit := &fakeAuditRepo{}
	r := newAuthTestRouter(&fakeAuthService{loginErr: service.ErrInvalidCredentials}, audit)

	w := postJSON(r, "/api/auth/login", `{"email":"a@b.com","senha":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Dados incorretos") {
		t.Fatalf("expected generic failure body, got %s", w.Body.String())
	}
	if len(audit.entries) == 0 {
		t.Fatalf("failed login must still be audited")
	}
}

func TestRegisterHandler_Success(t *testing.T) {
	t.Parallel()

	r := newAuthTestRouter(&fakeAuthService{}, &fakeAuditRepo{})

	w := postJSON(r, "/api/auth/cadastro", `{"email":"a@b.com","senha":"secret123"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Fotógrafo cadastrado com sucesso") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestRegisterHandler_MissingFields(t *testing.T) {
	t.Parallel()

	audit := &fakeAuditRepo{}
	r := newAuthTestRouter(&fakeAuthService{}, audit)

	w := postJSON(r, "/api/auth/cadastro", `{"email":"a@b.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if len(audit.entries) != 1 {
		t.Fatalf("rejected registration must be audited, got %d entries", len(audit.entries))
	}
}

func TestRegisterHandler_Duplicate(t *testing.T) {
	t.Parallel()

	r := newAuthTestRouter(&fakeAuthService{registerErr: service.ErrEmailExists}, &fakeAuditRepo{})

	w := postJSON(r, "/api/auth/cadastro", `{"email":"a@b.com","senha":"secret123"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "E-mail já cadastrado") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestRecoveryHandler_EmailNotFound(t *testing.T) {
	t.Parallel()

	r := newAuthTestRouter(&fakeAuthService{recoveryErr: service.ErrEmailNotFound}, &fakeAuditRepo{})

	w := postJSON(r, "/api/auth/recuperar-senha", `{"email":"nobody@b.com"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "E-mail não encontrado.") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestRecoveryHandler_MissingEmail(t *testing.T) {
	t.Parallel()

	audit := &fakeAuditRepo{}
	r := newAuthTestRouter(&fakeAuthService{}, audit)

	w := postJSON(r, "/api/auth/recuperar-senha", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Digite seu email.") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if len(audit.entries) != 1 {
		t.Fatalf("rejected recovery request must be audited, got %d entries", len(audit.entries))
	}
}

func TestResetHandler_Validation(t *testing.T) {
	t.Parallel()

	audit := &fakeAuditRepo{}
	r := newAuthTestRouter(&fakeAuthService{}, audit)

	cases := []struct {
		body    string
		wantMsg string
	}{
		{`{"token":"t"}`, "Campos de senha são obrigatórios"},
		{`{"nova_senha":"a","confirmar_senha":"a"}`, "Token é obrigatório"},
		{`{"token":"t","nova_senha":"a","confirmar_senha":"b"}`, "Campos de senha não podem ser diferentes."},
	}
	for _, tc := range cases {
		w := postJSON(r, "/api/auth/resetar-senha", tc.body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", tc.body, w.Code)
		}
		if !strings.Contains(w.Body.String(), tc.wantMsg) {
			t.Fatalf("body %q: expected %q, got %s", tc.body, tc.wantMsg, w.Body.String())
		}
	}
	if len(audit.entries) != len(cases) {
		t.Fatalf("every rejected reset must be audited: got %d entries for %d requests", len(audit.entries), len(cases))
	}
}

func TestResetHandler_TokenStates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		svcErr  error
		wantMsg string
	}{
		{service.ErrTokenInvalid, "Token inválido"},
		{service.ErrTokenUsed, "Token já utilizado"},
		{service.ErrTokenExpired, "Token expirado"},
	}
	for _, tc := range cases {
		r := newAuthTestRouter(&fakeAuthService{resetErr: tc.svcErr}, &fakeAuditRepo{})
		w := postJSON(r, "/api/auth/resetar-senha", `{"token":"t","nova_senha":"a","confirmar_senha":"a"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%v: expected 400, got %d", tc.svcErr, w.Code)
		}
		if !strings.Contains(w.Body.String(), tc.wantMsg) {
			t.Fatalf("%v: expected %q, got %s", tc.svcErr, tc.wantMsg, w.Body.String())
		}
	}
}

func TestResetHandler_Success(t *testing.T) {
	t.Parallel()

	r := newAuthTestRouter(&fakeAuthService{}, &fakeAuditRepo{})

	w := postJSON(r, "/api/auth/resetar-senha", `{"token":"t","nova_senha":"newpass","confirmar_senha":"newpass"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Senha redefinida com sucesso") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestLogoutHandler_Success(t *testing.T) {
	t.Parallel()

	svc := &fakeAuthService{}
	r := newAuthTestRouter(svc, &fakeAuditRepo{})

	w := postJSON(r, "/api/auth/logout", ``)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Logout realizado com sucesso") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if svc.loggedOutJTI != "test-jti" {
		t.Fatalf("expected jti from context to reach the service, got %q", svc.loggedOutJTI)
	}
}
