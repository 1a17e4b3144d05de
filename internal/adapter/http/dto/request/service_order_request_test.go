package request

import (
	"testing"

	"oficina_prime/internal/domain/entities"
)

func TestServiceOrderRequest_ToDraft(t *testing.T) {
	r := ServiceOrderRequest{
		ClientName:  "João Silva",
		Vehicle:     VehicleRequest{Model: "Fiat Uno", Year: "2015", Plate: "ABC-1234"},
		ServiceType: "Revisão completa",
		LaborCost:   120,
		Status:      "EM_ANDAMENTO",
		Parts: []PartRequest{
			{Name: "Filtro de óleo", Price: 25, Quantity: 1, InventoryItemID: "inv-1"},
		},
	}

	draft := r.ToDraft()
	if draft.Vehicle.Plate != "ABC-1234" {
		t.Fatalf("expected plate mapped, got %q", draft.Vehicle.Plate)
	}
	if draft.Status != entities.ServiceOrderStatusEmAndamento {
		t.Fatalf("expected EM_ANDAMENTO, got %s", draft.Status)
	}
	if len(draft.Parts) != 1 || draft.Parts[0].InventoryItemID != "inv-1" {
		t.Fatalf("expected part draft with inventory link, got %+v", draft.Parts)
	}
}

func TestServiceOrderUpdateRequest_ToPatch(t *testing.T) {
	labor := 150.0
	status := "CONCLUIDO"
	parts := []PartRequest{{Name: "Correia", Price: 90, Quantity: 1}}
	r := ServiceOrderUpdateRequest{
		LaborCost: &labor,
		Status:    &status,
		Parts:     &parts,
	}

	patch := r.ToPatch()
	if patch.ClientName != nil || patch.ServiceType != nil {
		t.Fatalf("absent fields must stay nil")
	}
	if patch.LaborCost == nil || *patch.LaborCost != 150 {
		t.Fatalf("expected labor cost 150, got %v", patch.LaborCost)
	}
	if patch.Status == nil || *patch.Status != entities.ServiceOrderStatusConcluido {
		t.Fatalf("expected CONCLUIDO, got %v", patch.Status)
	}
	if patch.Parts == nil || len(*patch.Parts) != 1 {
		t.Fatalf("expected replacement part set, got %v", patch.Parts)
	}
}

func TestServiceOrderUpdateRequest_EmptyPartsClears(t *testing.T) {
	parts := []PartRequest{}
	r := ServiceOrderUpdateRequest{Parts: &parts}

	patch := r.ToPatch()
	if patch.Parts == nil {
		t.Fatalf("explicit empty parts must map to an empty replacement, not nil")
	}
	if len(*patch.Parts) != 0 {
		t.Fatalf("expected empty part set, got %v", *patch.Parts)
	}
}
