package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"flota_ot/internal/domain/entities"
	"flota_ot/internal/infrastructure/notification"
	"flota_ot/internal/usecase"
	mock_interfaces "flota_ot/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSistemasHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("lista de sistemas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIFallasBackend(ctrl)
		catalogo := usecase.NewSistemasCatalog(backend, notification.NewRecorder())
		h := NewSistemasHandler(catalogo, backend)

		r := gin.New()
		r.GET("/v1/sistemas", h.Sistemas)

		backend.EXPECT().GetSistemas(gomock.Any()).Return([]entities.FallaPrincipalFiltro{
			{IDFallaPrincipal: 5, DetalleFallaPrincipal: "Motor"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/sistemas", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string][]map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body["data"]) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("subsistemas con id invalido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIFallasBackend(ctrl)
		catalogo := usecase.NewSistemasCatalog(backend, notification.NewRecorder())
		h := NewSistemasHandler(catalogo, backend)

		r := gin.New()
		r.GET("/v1/sistemas/:id/subsistemas", h.SubSistemas)

		req := httptest.NewRequest(http.MethodGet, "/v1/sistemas/abc/subsistemas", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("subsistemas por principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIFallasBackend(ctrl)
		catalogo := usecase.NewSistemasCatalog(backend, notification.NewRecorder())
		h := NewSistemasHandler(catalogo, backend)

		r := gin.New()
		r.GET("/v1/sistemas/:id/subsistemas", h.SubSistemas)

		backend.EXPECT().GetSubSistemas(gomock.Any(), 5).Return([]entities.FallaSecundariaFiltro{
			{IDFallaSecundaria: 10, IDFallaPrincipal: 5, DetalleFallaSecundaria: "Bomba de agua"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/sistemas/5/subsistemas", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
