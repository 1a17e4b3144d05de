package usecase

import (
	"context"
	"strings"

	"oficina_prime/internal/domain/entities"
)

// InventoryItemDraft carries the fields a new stock item is created from.
type InventoryItemDraft struct {
	Name          string
	PurchasePrice float64
	SellingPrice  float64
	Stock         int
	MinStock      int
}

// InventoryItemPatch is a partial update; nil fields are left untouched.
type InventoryItemPatch struct {
	Name          *string
	PurchasePrice *float64
	SellingPrice  *float64
	Stock         *int
	MinStock      *int
}

func (d InventoryItemDraft) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrMissingName
	}
	if d.Stock < 0 || d.MinStock < 0 {
		return ErrInvalidStock
	}
	return nil
}

func (s *Store) AddInventoryItem(ctx context.Context, draft InventoryItemDraft) (entities.InventoryItem, error) {
	if err := draft.validate(); err != nil {
		s.notifyFailure("Dados do item de estoque inválidos: " + err.Error())
		return entities.InventoryItem{}, err
	}

	item := entities.InventoryItem{
		ID:            s.newID(),
		Name:          strings.TrimSpace(draft.Name),
		PurchasePrice: draft.PurchasePrice,
		SellingPrice:  draft.SellingPrice,
		Stock:         draft.Stock,
		MinStock:      draft.MinStock,
	}

	if err := s.repos.Inventory.Create(ctx, item); err != nil {
		s.notifyFailure("Erro ao adicionar item de estoque: " + err.Error())
		return entities.InventoryItem{}, err
	}

	s.mu.Lock()
	s.inventory = append(s.inventory, item)
	s.mu.Unlock()

	s.notifySuccess("Item de estoque adicionado!")
	return item, nil
}

func (s *Store) UpdateInventoryItem(ctx context.Context, id string, patch InventoryItemPatch) (entities.InventoryItem, error) {
	if err := validateID(id); err != nil {
		s.notifyFailure("Identificador de item inválido")
		return entities.InventoryItem{}, err
	}

	item, ok := s.findInventoryItem(id)
	if !ok {
		s.notifyFailure("Item de estoque não encontrado")
		return entities.InventoryItem{}, ErrInventoryItemNotFound
	}

	if patch.Name != nil {
		item.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.PurchasePrice != nil {
		item.PurchasePrice = *patch.PurchasePrice
	}
	if patch.SellingPrice != nil {
		item.SellingPrice = *patch.SellingPrice
	}
	if patch.Stock != nil {
		if *patch.Stock < 0 {
			s.notifyFailure("Estoque não pode ser negativo")
			return entities.InventoryItem{}, ErrInvalidStock
		}
		item.Stock = *patch.Stock
	}
	if patch.MinStock != nil {
		if *patch.MinStock < 0 {
			s.notifyFailure("Estoque mínimo não pode ser negativo")
			return entities.InventoryItem{}, ErrInvalidStock
		}
		item.MinStock = *patch.MinStock
	}

	if err := s.repos.Inventory.Update(ctx, item); err != nil {
		s.notifyFailure("Erro ao atualizar item de estoque: " + err.Error())
		return entities.InventoryItem{}, err
	}

	s.mu.Lock()
	for i := range s.inventory {
		if s.inventory[i].ID == item.ID {
			s.inventory[i] = item
			break
		}
	}
	s.mu.Unlock()

	s.notifySuccess("Item de estoque atualizado!")
	return item, nil
}

func (s *Store) DeleteInventoryItem(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		s.notifyFailure("Identificador de item inválido")
		return err
	}
	if _, ok := s.findInventoryItem(id); !ok {
		s.notifyFailure("Item de estoque não encontrado")
		return ErrInventoryItemNotFound
	}

	if err := s.repos.Inventory.Delete(ctx, id); err != nil {
		s.notifyFailure("Erro ao excluir item de estoque: " + err.Error())
		return err
	}

	s.mu.Lock()
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			s.inventory = append(s.inventory[:i], s.inventory[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notifySuccess("Item de estoque excluído!")
	return nil
}

func (s *Store) findInventoryItem(id string) (entities.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.inventory {
		if item.ID == id {
			return item, true
		}
	}
	return entities.InventoryItem{}, false
}
