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

func editFlowRouter(h *EditFlowHandler) *gin.Engine {
	r := gin.New()
	edicion := r.Group("/v1/ordenes-trabajo/:id/edicion")
	edicion.POST("", h.AbrirSesion)
	edicion.DELETE("", h.CerrarSesion)
	edicion.GET("/filas", h.Filas)
	edicion.POST("/filas", h.AgregarFila)
	edicion.POST("/filas/editar", h.EditarFila)
	edicion.POST("/filas/guardar", h.GuardarFila)
	edicion.POST("/filas/eliminar", h.EliminarFila)
	edicion.POST("/confirmar", h.ConfirmarCambios)
	return r
}

func TestEditFlowHandler_AbrirSesion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("id invalido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEditFlowUseCase(ctrl)
		r := editFlowRouter(NewEditFlowHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes-trabajo/abc/edicion", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("devuelve el detalle cargado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEditFlowUseCase(ctrl)
		r := editFlowRouter(NewEditFlowHandler(uc))

		detalle := &entities.OrdenTrabajoDetalle{Basic: entities.OrdenDetalleBasic{NumeroOrden: 42}}
		uc.EXPECT().AbrirSesion(gomock.Any(), 42, gomock.Any()).Return(detalle, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes-trabajo/42/edicion", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("detalle no disponible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEditFlowUseCase(ctrl)
		r := editFlowRouter(NewEditFlowHandler(uc))

		uc.EXPECT().AbrirSesion(gomock.Any(), 42, gomock.Any()).Return(nil, usecase.ErrDetalleNoDisponible)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes-trabajo/42/edicion", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEditFlowHandler_Filas(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEditFlowUseCase(ctrl)
	r := editFlowRouter(NewEditFlowHandler(uc))

	idRel := 11
	uc.EXPECT().Filas(42).Return([]usecase.FilaSistema{
		{TempID: 1001, IDRelacionFalla: &idRel, DetallePrincipal: "Motor", DetalleSecundaria: "Bomba de agua"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/ordenes-trabajo/42/edicion/filas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["detalleFallaPrincipal"] != "Motor" || body[0]["tempId"] != float64(1001) {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestEditFlowHandler_GuardarFila(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("con cambios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEditFlowUseCase(ctrl)
		r := editFlowRouter(NewEditFlowHandler(uc))

		uc.EXPECT().GuardarFila(gomock.Any(), 42, int64(1001)).
			Return([]string{"Falla principal: Motor → Frenos"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes-trabajo/42/edicion/filas/guardar", bytes.NewBufferString(`{"temp_id":1001}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["sinCambios"] != false {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("sin cambios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEditFlowUseCase(ctrl)
		r := editFlowRouter(NewEditFlowHandler(uc))

		uc.EXPECT().GuardarFila(gomock.Any(), 42, int64(1001)).Return(nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes-trabajo/42/edicion/filas/guardar", bytes.NewBufferString(`{"temp_id":1001}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["sinCambios"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("fila sin principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEditFlowUseCase(ctrl)
		r := editFlowRouter(NewEditFlowHandler(uc))

		uc.EXPECT().GuardarFila(gomock.Any(), 42, int64(1001)).Return(nil, usecase.ErrOrdenInvalida)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes-trabajo/42/edicion/filas/guardar", bytes.NewBufferString(`{"temp_id":1001}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestEditFlowHandler_EliminarFila(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("fila local eliminada de inmediato", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEditFlowUseCase(ctrl)
		r := editFlowRouter(NewEditFlowHandler(uc))

		uc.EXPECT().EliminarFila(gomock.Any(), 42, int64(1001)).Return(nil, false, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes-trabajo/42/edicion/filas/eliminar", bytes.NewBufferString(`{"temp_id":1001}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["eliminada"] != true || body["requiereConfirmacion"] != false {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("fila persistida devuelve el preview", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEditFlowUseCase(ctrl)
		r := editFlowRouter(NewEditFlowHandler(uc))

		preview := &entities.DeleteFallaResponse{Success: true, Message: "Se eliminarán 2 insumos"}
		uc.EXPECT().EliminarFila(gomock.Any(), 42, int64(1001)).Return(preview, true, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes-trabajo/42/edicion/filas/eliminar", bytes.NewBufferString(`{"temp_id":1001}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["requiereConfirmacion"] != true || body["preview"] == nil {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestEditFlowHandler_ConfirmarCambios(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sin cambios pendientes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEditFlowUseCase(ctrl)
		r := editFlowRouter(NewEditFlowHandler(uc))

		uc.EXPECT().ConfirmarCambios(gomock.Any(), 42).Return(usecase.ErrSinCambiosPendientes)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes-trabajo/42/edicion/confirmar", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("confirmacion exitosa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEditFlowUseCase(ctrl)
		r := editFlowRouter(NewEditFlowHandler(uc))

		uc.EXPECT().ConfirmarCambios(gomock.Any(), 42).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes-trabajo/42/edicion/confirmar", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMapEditFlowError(t *testing.T) {
	if got := mapEditFlowError(usecase.ErrSesionEdicionNoAbierta); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapEditFlowError(usecase.ErrEdicionEnCurso); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapEditFlowError(usecase.ErrSinEdicionActiva); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapEditFlowError(usecase.ErrFilaNoEncontrada); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapEditFlowError(&interfaces.BackendError{Err: errors.New("x")}); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502")
	}
	if got := mapEditFlowError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
