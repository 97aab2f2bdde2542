package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"flota_ot/internal/domain/entities"
	"flota_ot/internal/usecase"
	mocks "flota_ot/internal/usecase/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func protectedRouter(uc usecase.ISessionUseCase, p entities.Permission) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireSession(uc), RequirePermission(p), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sin token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		r := protectedRouter(uc, entities.PermisoOrdenesTrabajo)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("token desconocido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		r := protectedRouter(uc, entities.PermisoOrdenesTrabajo)

		uc.EXPECT().Resolve(gomock.Any(), "nope").Return(entities.Session{}, usecase.ErrSesionNoEncontrada)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("sin permiso del modulo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		r := protectedRouter(uc, entities.PermisoOrdenesTrabajo)

		uc.EXPECT().Resolve(gomock.Any(), "tok-1").Return(entities.Session{Token: "tok-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("con permiso pasa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		r := protectedRouter(uc, entities.PermisoOrdenesTrabajo)

		session := entities.Session{
			Token:       "tok-1",
			Permissions: []entities.Permission{entities.PermisoOrdenesTrabajo},
		}
		uc.EXPECT().Resolve(gomock.Any(), "tok-1").Return(session, nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("X-Session-Token", "tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
