package response

import (
	"testing"

	"flota_ot/internal/domain/entities"
)

func TestFromOrdenesPage(t *testing.T) {
	cases := []struct {
		name         string
		total        int
		totalPaginas int
	}{
		{name: "vacio", total: 0, totalPaginas: 0},
		{name: "una pagina justa", total: 50, totalPaginas: 1},
		{name: "resto abre otra pagina", total: 101, totalPaginas: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := entities.OrdenesPage{Data: []entities.OrdenDeTrabajo{}, Total: tc.total}
			resp := FromOrdenesPage(page, 2)
			if resp.TotalPaginas != tc.totalPaginas {
				t.Fatalf("expected %d pages, got %d", tc.totalPaginas, resp.TotalPaginas)
			}
			if resp.Pagina != 2 || resp.Total != tc.total {
				t.Fatalf("unexpected response: %+v", resp)
			}
		})
	}
}

func TestFromCreateOrden(t *testing.T) {
	r := entities.CreateOrdenTrabajoResponse{Message: "Orden creada correctamente"}
	r.Data.IDSolicitudIngresada = 777

	resp := FromCreateOrden(r)
	if resp.NumeroOrden != 777 || resp.Message != "Orden creada correctamente" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
