package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"flota_ot/internal/domain/entities"
	"flota_ot/internal/infrastructure/notification"
	"flota_ot/internal/store"
	"flota_ot/internal/usecase/interfaces"
	mock_interfaces "flota_ot/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func ordenValida() entities.CreateOrdenTrabajoInput {
	return entities.CreateOrdenTrabajoInput{
		IDPersonalIngreso: 1,
		IDTipoOrden:       2,
		CodigoFlota:       3,
		DetalleIngreso:    "Ruido en el motor",
		CodigoTaller:      4,
		Fallas:            []entities.FallaCrear{{IDFallaPrincipal: 5}},
	}
}

func TestValidarCreateOrden(t *testing.T) {
	t.Run("payload completo", func(t *testing.T) {
		if mensajes := ValidarCreateOrden(ordenValida()); len(mensajes) != 0 {
			t.Fatalf("expected no violations, got %v", mensajes)
		}
	})

	t.Run("detalle demasiado corto", func(t *testing.T) {
		input := ordenValida()
		input.DetalleIngreso = "ab"
		mensajes := ValidarCreateOrden(input)
		if len(mensajes) != 1 || mensajes[0] != "El detalle es obligatorio" {
			t.Fatalf("unexpected violations: %v", mensajes)
		}
	})

	t.Run("todas las violaciones a la vez", func(t *testing.T) {
		mensajes := ValidarCreateOrden(entities.CreateOrdenTrabajoInput{})
		if len(mensajes) != 6 {
			t.Fatalf("expected 6 violations, got %d: %v", len(mensajes), mensajes)
		}
	})

	t.Run("falla sin principal", func(t *testing.T) {
		input := ordenValida()
		input.Fallas = []entities.FallaCrear{{IDFallaPrincipal: 5}, {}}
		mensajes := ValidarCreateOrden(input)
		if len(mensajes) != 1 || mensajes[0] != "Cada falla requiere una falla principal" {
			t.Fatalf("unexpected violations: %v", mensajes)
		}
	})
}

func TestOrdenesUseCase_Crear(t *testing.T) {
	t.Run("violaciones no llegan al backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIOrdenesBackend(ctrl)
		recorder := notification.NewRecorder()
		uc := NewOrdenesUseCase(backend, store.NewOrdenesStore(), recorder)

		input := ordenValida()
		input.DetalleIngreso = "ab"
		input.CodigoTaller = 0

		_, err := uc.Crear(context.Background(), input)
		if !errors.Is(err, ErrOrdenInvalida) {
			t.Fatalf("expected ErrOrdenInvalida, got %v", err)
		}

		notices := recorder.Drain()
		if len(notices) != 1 || notices[0].Level != "error" {
			t.Fatalf("unexpected notices: %v", notices)
		}
		if !strings.Contains(notices[0].Message, "El detalle es obligatorio") ||
			!strings.Contains(notices[0].Message, "Debe seleccionar un taller") {
			t.Fatalf("expected joined violations, got %q", notices[0].Message)
		}
	})

	t.Run("creacion exitosa notifica el numero de OT", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIOrdenesBackend(ctrl)
		recorder := notification.NewRecorder()
		uc := NewOrdenesUseCase(backend, store.NewOrdenesStore(), recorder)

		resp := &entities.CreateOrdenTrabajoResponse{Message: "Orden creada correctamente"}
		resp.Data.IDSolicitudIngresada = 777
		backend.EXPECT().CreateOrdenTrabajo(gomock.Any(), gomock.Any()).Return(resp, nil)

		result, err := uc.Crear(context.Background(), ordenValida())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Data.IDSolicitudIngresada != 777 {
			t.Fatalf("unexpected result: %+v", result)
		}

		notices := recorder.Drain()
		if len(notices) != 1 || notices[0].Level != "success" {
			t.Fatalf("unexpected notices: %v", notices)
		}
		if notices[0].Message != "Orden creada correctamente (OT #777)" {
			t.Fatalf("unexpected message: %q", notices[0].Message)
		}
	})

	t.Run("rechazo del servidor incluye su texto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIOrdenesBackend(ctrl)
		recorder := notification.NewRecorder()
		uc := NewOrdenesUseCase(backend, store.NewOrdenesStore(), recorder)

		backend.EXPECT().CreateOrdenTrabajo(gomock.Any(), gomock.Any()).
			Return(nil, &interfaces.BackendError{StatusCode: 500, ServerText: "bus no vigente"})

		if _, err := uc.Crear(context.Background(), ordenValida()); err == nil {
			t.Fatalf("expected error")
		}
		notices := recorder.Drain()
		if len(notices) != 1 || notices[0].Message != "Error al crear orden: bus no vigente" {
			t.Fatalf("unexpected notices: %v", notices)
		}
	})
}

func TestOrdenesUseCase_Eliminar(t *testing.T) {
	registros := []entities.OrdenDeTrabajo{{NumeroOrden: 10}, {NumeroOrden: 20}}

	t.Run("la fila cae solo tras confirmar el backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIOrdenesBackend(ctrl)
		recorder := notification.NewRecorder()
		listado := store.NewOrdenesStore()
		listado.SetRegistros(registros, 2)
		uc := NewOrdenesUseCase(backend, listado, recorder)

		backend.EXPECT().DeleteOrdenTrabajo(gomock.Any(), 10).
			Return(&entities.DeleteOrdenTrabajoResponse{Success: true, Respuesta: 1}, nil)

		if err := uc.Eliminar(context.Background(), 10); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := listado.Registros(); len(got) != 1 || got[0].NumeroOrden != 20 {
			t.Fatalf("unexpected registros: %v", got)
		}
		notices := recorder.Drain()
		if len(notices) != 1 || notices[0].Message != "Orden eliminada correctamente" {
			t.Fatalf("unexpected notices: %v", notices)
		}
	})

	t.Run("rechazo de negocio no toca el listado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIOrdenesBackend(ctrl)
		recorder := notification.NewRecorder()
		listado := store.NewOrdenesStore()
		listado.SetRegistros(registros, 2)
		uc := NewOrdenesUseCase(backend, listado, recorder)

		backend.EXPECT().DeleteOrdenTrabajo(gomock.Any(), 10).
			Return(&entities.DeleteOrdenTrabajoResponse{Success: false, Mensaje: "La orden ya está en ejecución"}, nil)

		if err := uc.Eliminar(context.Background(), 10); !errors.Is(err, ErrOperacionRechazada) {
			t.Fatalf("expected ErrOperacionRechazada, got %v", err)
		}
		if got := listado.Registros(); len(got) != 2 {
			t.Fatalf("listado must stay untouched, got %v", got)
		}
		notices := recorder.Drain()
		if len(notices) != 1 || notices[0].Message != "La orden ya está en ejecución" {
			t.Fatalf("unexpected notices: %v", notices)
		}
	})

	t.Run("fallo de transporte", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIOrdenesBackend(ctrl)
		recorder := notification.NewRecorder()
		uc := NewOrdenesUseCase(backend, store.NewOrdenesStore(), recorder)

		backend.EXPECT().DeleteOrdenTrabajo(gomock.Any(), 10).
			Return(nil, &interfaces.BackendError{Err: errors.New("connection refused")})

		if err := uc.Eliminar(context.Background(), 10); err == nil {
			t.Fatalf("expected error")
		}
		notices := recorder.Drain()
		if len(notices) != 1 || notices[0].Message != "Error de conexión al eliminar OT" {
			t.Fatalf("unexpected notices: %v", notices)
		}
	})
}
