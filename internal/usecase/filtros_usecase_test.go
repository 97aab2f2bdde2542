package usecase

import (
	"context"
	"errors"
	"testing"

	"flota_ot/internal/domain/entities"
	"flota_ot/internal/infrastructure/notification"
	"flota_ot/internal/store"
	"flota_ot/internal/usecase/interfaces"
	mock_interfaces "flota_ot/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func filtrosCompletos() *entities.DataFiltrosMant {
	return &entities.DataFiltrosMant{
		Talleres:  []entities.TallerFiltro{{CodigoTaller: 1, NombreTaller: "Taller Central"}},
		EstadosOt: []entities.EstadoOTFiltro{{IDEstadoSolicitud: 1, DetalleEstadoSolicitud: "Ingresada"}},
	}
}

func TestFiltrosUseCase_FetchUnaSolaVez(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_interfaces.NewMockIFiltrosBackend(ctrl)
	uc := NewFiltrosUseCase(backend, store.NewFiltrosStore(), notification.NewRecorder())
	ctx := context.Background()

	backend.EXPECT().GetAllFiltros(gomock.Any()).Return(filtrosCompletos(), nil).Times(1)

	for i := 0; i < 3; i++ {
		filtros, err := uc.GetFiltros(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(filtros.Talleres) != 1 {
			t.Fatalf("unexpected filtros: %+v", filtros)
		}
	}
}

func TestFiltrosUseCase_PorTipoMezclaSobreLaCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_interfaces.NewMockIFiltrosBackend(ctrl)
	cache := store.NewFiltrosStore()
	uc := NewFiltrosUseCase(backend, cache, notification.NewRecorder())
	ctx := context.Background()

	backend.EXPECT().GetAllFiltros(gomock.Any()).Return(filtrosCompletos(), nil)
	if _, err := uc.GetFiltros(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	backend.EXPECT().GetFiltroByTipo(gomock.Any(), "buses").Return(&entities.DataFiltrosMant{
		Buses: []entities.BusFiltro{{NumeroInterno: 101, PlacaPatente: "ABCD12"}},
	}, nil)

	filtros, err := uc.GetFiltroByTipo(ctx, "buses")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtros.Buses) != 1 || len(filtros.Talleres) != 1 {
		t.Fatalf("expected merged aggregate, got %+v", filtros)
	}
}

func TestFiltrosUseCase_ErrorNotifica(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_interfaces.NewMockIFiltrosBackend(ctrl)
	recorder := notification.NewRecorder()
	uc := NewFiltrosUseCase(backend, store.NewFiltrosStore(), recorder)

	backend.EXPECT().GetAllFiltros(gomock.Any()).
		Return(nil, &interfaces.BackendError{Err: errors.New("connection refused")})

	if _, err := uc.GetFiltros(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	notices := recorder.Drain()
	if len(notices) != 1 || notices[0].Message != "Error de conexión al obtener filtros" {
		t.Fatalf("unexpected notices: %v", notices)
	}
}
