package usecase

import (
	"context"
	"testing"

	"flota_ot/internal/infrastructure/notification"
	mock_interfaces "flota_ot/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSistemasCatalog_CacheaPorPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_interfaces.NewMockIFallasBackend(ctrl)
	catalogo := NewSistemasCatalog(backend, notification.NewRecorder())
	ctx := context.Background()

	backend.EXPECT().GetSistemas(gomock.Any()).Return(sistemasTaxonomia(), nil).Times(1)
	backend.EXPECT().GetSubSistemas(gomock.Any(), 5).Return(subsMotor(), nil).Times(1)
	backend.EXPECT().GetSubSistemas(gomock.Any(), 7).Return(subsFrenos(), nil).Times(1)

	for i := 0; i < 3; i++ {
		if _, err := catalogo.Sistemas(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := catalogo.SubSistemas(ctx, 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := catalogo.SubSistemas(ctx, 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestSistemasCatalog_ResuelveEtiquetas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_interfaces.NewMockIFallasBackend(ctrl)
	catalogo := NewSistemasCatalog(backend, notification.NewRecorder())
	ctx := context.Background()

	backend.EXPECT().GetSistemas(gomock.Any()).Return(sistemasTaxonomia(), nil)
	backend.EXPECT().GetSubSistemas(gomock.Any(), 5).Return(subsMotor(), nil)

	if got := catalogo.DetallePrincipal(ctx, 5); got != "Motor" {
		t.Fatalf("expected Motor, got %q", got)
	}
	if got := catalogo.DetallePrincipal(ctx, 99); got != "" {
		t.Fatalf("expected empty label for unknown id, got %q", got)
	}
	if got := catalogo.DetalleSecundaria(ctx, 5, 10); got != "Bomba de agua" {
		t.Fatalf("expected Bomba de agua, got %q", got)
	}
	if got := catalogo.DetalleSecundaria(ctx, 5, 99); got != "" {
		t.Fatalf("expected empty label for unknown id, got %q", got)
	}
}
