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

func newMethodsTestRouter(repo *fakeContactRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	recorder := service.NewAuditRecorder(&fakeAuditRepo{}, zap.NewNop())
	h := NewContactMethodsHandler(repo, recorder, zap.NewNop())

	r := gin.New()
	r.GET("/api/formas-contato", h.ListPublic)
	r.GET("/api/formas-contato/admin", h.ListAdmin)
	r.PUT("/api/formas-contato/:id", h.Update)
	return r
}

func putJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestContactMethods_ListPublicOmitsInternalFields(t *testing.T) {
	t.Parallel()

	repo := &fakeContactRepo{methods: &models.ContactMethod{
		ID:            1,
		SocialNetwork: "instagram",
		SocialProfile: "@fotografa",
		Email:         "contato@fotografa.com",
		Phone:         "11999990000",
	}}
	r := newMethodsTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/formas-contato", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "@fotografa") || !strings.Contains(body, "contato@fotografa.com") {
		t.Fatalf("public listing misses data: %s", body)
	}
	if strings.Contains(body, "atualizado_em") || strings.Contains(body, `"id"`) {
		t.Fatalf("public listing must not expose internal fields: %s", body)
	}
}

func TestContactMethods_Update(t *testing.T) {
	t.Parallel()

	repo := &fakeContactRepo{}
	r := newMethodsTestRouter(repo)

	w := putJSON(r, "/api/formas-contato/1",
		`{"redesocial_nome":"instagram","redesocial_perfil":"@fotografa","email":"a@b.com","telefone":"119999"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if repo.updatedID != 1 {
		t.Fatalf("expected update of id 1, got %d", repo.updatedID)
	}
}

func TestContactMethods_UpdateValidation(t *testing.T) {
	t.Parallel()

	r := newMethodsTestRouter(&fakeContactRepo{})

	w := putJSON(r, "/api/formas-contato/1", `{"redesocial_nome":"instagram"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Todos os campos são obrigatórios") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	w = putJSON(r, "/api/formas-contato/abc", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id: expected 400, got %d", w.Code)
	}
}
