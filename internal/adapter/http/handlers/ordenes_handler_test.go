package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"flota_ot/internal/domain/entities"
	"flota_ot/internal/usecase"
	"flota_ot/internal/usecase/interfaces"
	mocks "flota_ot/internal/usecase/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrdenesHandler_ListOrdenes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("filtros invalidos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrdenesUseCase(ctrl)
		h := NewOrdenesHandler(uc)

		r := gin.New()
		r.GET("/v1/ordenes-trabajo", h.ListOrdenes)

		req := httptest.NewRequest(http.MethodGet, "/v1/ordenes-trabajo?fechaIngreso=not-a-date", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("pagina con aritmetica derivada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrdenesUseCase(ctrl)
		h := NewOrdenesHandler(uc)

		r := gin.New()
		r.GET("/v1/ordenes-trabajo", h.ListOrdenes)

		uc.EXPECT().GetOrdenes(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, input entities.GetOrdenesTrabajoInput) (entities.OrdenesPage, error) {
				if input.NroOT == nil || *input.NroOT != 77 || input.Pagina != 2 {
					t.Errorf("unexpected input: %+v", input)
				}
				return entities.OrdenesPage{Data: []entities.OrdenDeTrabajo{{NumeroOrden: 77}}, Total: 101}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/v1/ordenes-trabajo?nroOT=77&pagina=2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total"] != float64(101) || body["totalPaginas"] != float64(3) || body["pagina"] != float64(2) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("backend caido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrdenesUseCase(ctrl)
		h := NewOrdenesHandler(uc)

		r := gin.New()
		r.GET("/v1/ordenes-trabajo", h.ListOrdenes)

		uc.EXPECT().GetOrdenes(gomock.Any(), gomock.Any()).
			Return(entities.OrdenesPage{}, &interfaces.BackendError{Err: errors.New("connection refused")})

		req := httptest.NewRequest(http.MethodGet, "/v1/ordenes-trabajo", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestOrdenesHandler_GetDetalle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("id invalido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrdenesUseCase(ctrl)
		h := NewOrdenesHandler(uc)

		r := gin.New()
		r.GET("/v1/ordenes-trabajo/:id", h.GetDetalle)

		req := httptest.NewRequest(http.MethodGet, "/v1/ordenes-trabajo/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("detalle no disponible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrdenesUseCase(ctrl)
		h := NewOrdenesHandler(uc)

		r := gin.New()
		r.GET("/v1/ordenes-trabajo/:id", h.GetDetalle)

		uc.EXPECT().GetDetalle(gomock.Any(), 42).Return(nil, usecase.ErrDetalleNoDisponible)

		req := httptest.NewRequest(http.MethodGet, "/v1/ordenes-trabajo/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrdenesHandler_CreateOrden(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("json invalido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrdenesUseCase(ctrl)
		h := NewOrdenesHandler(uc)

		r := gin.New()
		r.POST("/v1/ordenes-trabajo", h.CreateOrden)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes-trabajo", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("payload rechazado por validacion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrdenesUseCase(ctrl)
		h := NewOrdenesHandler(uc)

		r := gin.New()
		r.POST("/v1/ordenes-trabajo", h.CreateOrden)

		uc.EXPECT().Crear(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrOrdenInvalida)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes-trabajo", bytes.NewBufferString(`{"detalle_ingreso":"ab"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("creacion exitosa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrdenesUseCase(ctrl)
		h := NewOrdenesHandler(uc)

		r := gin.New()
		r.POST("/v1/ordenes-trabajo", h.CreateOrden)

		resp := &entities.CreateOrdenTrabajoResponse{Message: "Orden creada correctamente"}
		resp.Data.IDSolicitudIngresada = 777
		uc.EXPECT().Crear(gomock.Any(), gomock.Any()).Return(resp, nil)

		payload := `{"id_personal_ingreso":1,"id_tipo_orden":2,"codigo_flota":3,"detalle_ingreso":"Ruido en el motor","codigo_taller":4,"fallas":[{"id_falla_principal":5}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes-trabajo", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["numeroOrden"] != float64(777) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestOrdenesHandler_DeleteOrden(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("eliminacion exitosa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrdenesUseCase(ctrl)
		h := NewOrdenesHandler(uc)

		r := gin.New()
		r.DELETE("/v1/ordenes-trabajo/:id", h.DeleteOrden)

		uc.EXPECT().Eliminar(gomock.Any(), 10).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/ordenes-trabajo/10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("rechazo del backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrdenesUseCase(ctrl)
		h := NewOrdenesHandler(uc)

		r := gin.New()
		r.DELETE("/v1/ordenes-trabajo/:id", h.DeleteOrden)

		uc.EXPECT().Eliminar(gomock.Any(), 10).Return(usecase.ErrOperacionRechazada)

		req := httptest.NewRequest(http.MethodDelete, "/v1/ordenes-trabajo/10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapOrdenesError(t *testing.T) {
	if got := mapOrdenesError(usecase.ErrIDOrdenInvalido); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapOrdenesError(usecase.ErrOrdenInvalida); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapOrdenesError(usecase.ErrDetalleNoDisponible); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapOrdenesError(usecase.ErrOperacionRechazada); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapOrdenesError(&interfaces.BackendError{Err: errors.New("x")}); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502")
	}
	if got := mapOrdenesError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
