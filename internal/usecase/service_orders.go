package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/domain/reports"
)

// PartDraft is an unsaved part line. InventoryItemID links the line to a
// stock record; when set, the referenced item's stock is decremented on
// order creation.
type PartDraft struct {
	Name            string
	Price           float64
	Quantity        int
	InventoryItemID string
}

// ServiceOrderDraft carries the fields a new order is created from. The
// total is never taken from the caller: it is recomputed from labor cost
// and parts before submission.
type ServiceOrderDraft struct {
	ClientName  string
	Vehicle     entities.VehicleRef
	ServiceType string
	Parts       []PartDraft
	LaborCost   float64
	Status      entities.ServiceOrderStatus
}

// ServiceOrderPatch is a partial update; nil fields are left untouched.
// Replacing Parts rewrites the order's part lines wholesale.
type ServiceOrderPatch struct {
	ClientName  *string
	ServiceType *string
	LaborCost   *float64
	Status      *entities.ServiceOrderStatus
	Parts       *[]PartDraft
}

func (d ServiceOrderDraft) validate() error {
	if strings.TrimSpace(d.ClientName) == "" {
		return ErrMissingClientName
	}
	if strings.TrimSpace(d.Vehicle.Plate) == "" {
		return ErrMissingPlate
	}
	if strings.TrimSpace(d.ServiceType) == "" {
		return ErrMissingServiceType
	}
	return nil
}

// AddServiceOrder persists a new order with its parts and merges it into
// the snapshot. The vehicle is ensured first as an explicit step, and the
// stock of referenced inventory items is decremented afterwards; both are
// secondary effects that never fail the order itself.
func (s *Store) AddServiceOrder(ctx context.Context, draft ServiceOrderDraft) (entities.ServiceOrder, error) {
	if err := draft.validate(); err != nil {
		s.notifyFailure("Dados da ordem de serviço inválidos: " + err.Error())
		return entities.ServiceOrder{}, err
	}

	s.ensureVehicle(ctx, draft.Vehicle)

	now := s.now()
	status := draft.Status
	if status == "" {
		status = entities.ServiceOrderStatusRascunho
	}

	order := entities.ServiceOrder{
		ID:          s.newID(),
		ClientName:  strings.TrimSpace(draft.ClientName),
		Vehicle:     draft.Vehicle,
		ServiceType: strings.TrimSpace(draft.ServiceType),
		LaborCost:   draft.LaborCost,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	order.Parts = s.buildParts(order.ID, draft.Parts)
	order.Total = reports.OrderTotal(order)

	if err := s.repos.ServiceOrders.Create(ctx, order); err != nil {
		s.notifyFailure("Erro ao criar ordem de serviço: " + err.Error())
		return entities.ServiceOrder{}, err
	}
	if len(order.Parts) > 0 {
		if err := s.repos.Parts.CreateMany(ctx, order.Parts); err != nil {
			// The order row is already authoritative; surface the partial write.
			log.Warn().Err(err).Str("service_order_id", order.ID).
				Msg("[store] parts write failed after order create")
			s.notifyFailure("Ordem criada, mas houve falha ao salvar as peças: " + err.Error())
		}
	}

	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	s.consumeStock(ctx, order.Parts)

	s.notifySuccess("Ordem de serviço criada com sucesso!")
	return order, nil
}

// UpdateServiceOrder applies a partial update, refreshes UpdatedAt and the
// recomputed total, persists the full record, and replaces it in the
// snapshot on success.
func (s *Store) UpdateServiceOrder(ctx context.Context, id string, patch ServiceOrderPatch) (entities.ServiceOrder, error) {
	if err := validateID(id); err != nil {
		s.notifyFailure("Identificador de ordem de serviço inválido")
		return entities.ServiceOrder{}, err
	}

	order, ok := s.findOrder(id)
	if !ok {
		s.notifyFailure("Ordem de serviço não encontrada")
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}

	if patch.ClientName != nil {
		order.ClientName = strings.TrimSpace(*patch.ClientName)
	}
	if patch.ServiceType != nil {
		order.ServiceType = strings.TrimSpace(*patch.ServiceType)
	}
	if patch.LaborCost != nil {
		order.LaborCost = *patch.LaborCost
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	partsReplaced := false
	if patch.Parts != nil {
		order.Parts = s.buildParts(order.ID, *patch.Parts)
		partsReplaced = true
	}
	order.UpdatedAt = s.now()
	order.Total = reports.OrderTotal(order)

	if err := s.repos.ServiceOrders.Update(ctx, order); err != nil {
		s.notifyFailure("Erro ao atualizar ordem de serviço: " + err.Error())
		return entities.ServiceOrder{}, err
	}
	if partsReplaced {
		if err := s.rewriteParts(ctx, order); err != nil {
			log.Warn().Err(err).Str("service_order_id", order.ID).
				Msg("[store] parts rewrite failed after order update")
			s.notifyFailure("Ordem atualizada, mas houve falha ao salvar as peças: " + err.Error())
		}
	}

	s.replaceOrder(order)
	s.notifySuccess("Ordem de serviço atualizada!")
	return order, nil
}

// DeleteServiceOrder removes the order and cascades to its parts. Stock
// consumed by the order is intentionally not restored.
func (s *Store) DeleteServiceOrder(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		s.notifyFailure("Identificador de ordem de serviço inválido")
		return err
	}
	if _, ok := s.findOrder(id); !ok {
		s.notifyFailure("Ordem de serviço não encontrada")
		return ErrServiceOrderNotFound
	}

	if err := s.repos.Parts.DeleteByServiceOrderID(ctx, id); err != nil {
		s.notifyFailure("Erro ao excluir ordem de serviço: " + err.Error())
		return err
	}
	if err := s.repos.ServiceOrders.Delete(ctx, id); err != nil {
		s.notifyFailure("Erro ao excluir ordem de serviço: " + err.Error())
		return err
	}

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notifySuccess("Ordem de serviço excluída!")
	return nil
}

// CompleteServiceOrder closes the order: status CONCLUIDO, CompletedAt and
// UpdatedAt stamped, record persisted and merged. Completing an already
// completed order is a no-op success, so the history append below cannot
// duplicate. Canceled orders cannot be completed.
//
// Two secondary effects follow the authoritative status change, each with
// its own failure channel that never masks the primary success: the
// vehicle history append, and the payment capture when a gateway is
// configured.
func (s *Store) CompleteServiceOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	if err := validateID(id); err != nil {
		s.notifyFailure("Identificador de ordem de serviço inválido")
		return entities.ServiceOrder{}, err
	}

	order, ok := s.findOrder(id)
	if !ok {
		s.notifyFailure("Ordem de serviço não encontrada")
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	if order.Status == entities.ServiceOrderStatusConcluido {
		return order, nil
	}
	if order.Status == entities.ServiceOrderStatusCancelado {
		s.notifyFailure("Ordem de serviço cancelada não pode ser finalizada")
		return entities.ServiceOrder{}, ErrInvalidStatusTransition
	}

	now := s.now()
	order.Status = entities.ServiceOrderStatusConcluido
	order.CompletedAt = &now
	order.UpdatedAt = now

	if err := s.repos.ServiceOrders.Update(ctx, order); err != nil {
		s.notifyFailure("Erro ao finalizar ordem de serviço: " + err.Error())
		return entities.ServiceOrder{}, err
	}

	s.replaceOrder(order)
	s.notifySuccess("Ordem de serviço finalizada com sucesso!")

	s.appendCompletionHistory(ctx, order)
	s.capturePayment(ctx, order)

	return order, nil
}

func (s *Store) appendCompletionHistory(ctx context.Context, order entities.ServiceOrder) {
	names := make([]string, 0, len(order.Parts))
	for _, p := range order.Parts {
		names = append(names, p.Name)
	}
	description := fmt.Sprintf("Mão de obra: R$ %.2f", order.LaborCost)
	if len(names) > 0 {
		description += "; Peças: " + strings.Join(names, ", ")
	}

	entry := entities.VehicleService{
		ID:          s.newID(),
		VehicleID:   order.Vehicle.Plate,
		ServiceType: order.ServiceType,
		Description: description,
		ServiceDate: order.UpdatedAt,
		Price:       order.Total,
		ClientName:  order.ClientName,
		CreatedAt:   order.UpdatedAt,
	}

	if err := s.repos.VehicleServices.Create(ctx, entry); err != nil {
		log.Warn().Err(err).Str("service_order_id", order.ID).
			Msg("[store] vehicle history append failed after completion")
		s.notifyFailure("Ordem finalizada, mas o histórico do veículo não foi gravado: " + err.Error())
		return
	}

	s.mu.Lock()
	s.vehicleServices = append(s.vehicleServices, entry)
	s.mu.Unlock()
}

func (s *Store) capturePayment(ctx context.Context, order entities.ServiceOrder) {
	if s.gateway == nil {
		return
	}
	description := fmt.Sprintf("OS %s - %s", order.ID, order.ServiceType)
	providerID, status, err := s.gateway.CreatePayment(ctx, order.ID, description, order.Total)
	if err != nil {
		log.Warn().Err(err).Str("service_order_id", order.ID).
			Msg("[store] payment capture failed after completion")
		s.notifyFailure("Ordem finalizada, mas a cobrança não foi processada: " + err.Error())
		return
	}
	log.Info().
		Str("service_order_id", order.ID).
		Str("provider_payment_id", providerID).
		Str("provider_status", status).
		Msg("[store] payment captured")
}

func (s *Store) buildParts(orderID string, drafts []PartDraft) []entities.Part {
	if len(drafts) == 0 {
		return nil
	}
	parts := make([]entities.Part, 0, len(drafts))
	for _, d := range drafts {
		parts = append(parts, entities.Part{
			ID:              s.newID(),
			ServiceOrderID:  orderID,
			Name:            strings.TrimSpace(d.Name),
			Price:           d.Price,
			Quantity:        d.Quantity,
			InventoryItemID: d.InventoryItemID,
		})
	}
	return parts
}

func (s *Store) rewriteParts(ctx context.Context, order entities.ServiceOrder) error {
	if err := s.repos.Parts.DeleteByServiceOrderID(ctx, order.ID); err != nil {
		return err
	}
	if len(order.Parts) == 0 {
		return nil
	}
	return s.repos.Parts.CreateMany(ctx, order.Parts)
}

// consumeStock decrements the stock of every inventory item referenced by
// the given parts. Consumption is irreversible: nothing restores stock on
// order deletion or cancellation. Failures are surfaced as warnings, the
// order itself stays authoritative.
func (s *Store) consumeStock(ctx context.Context, parts []entities.Part) {
	for _, p := range parts {
		if p.InventoryItemID == "" {
			continue
		}

		s.mu.Lock()
		idx := -1
		for i := range s.inventory {
			if s.inventory[i].ID == p.InventoryItemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			s.mu.Unlock()
			log.Warn().Str("inventory_item_id", p.InventoryItemID).
				Msg("[store] part references unknown inventory item")
			continue
		}
		newStock := s.inventory[idx].Stock - p.Quantity
		if newStock < 0 {
			newStock = 0
		}
		s.inventory[idx].Stock = newStock
		itemID := s.inventory[idx].ID
		s.mu.Unlock()

		if err := s.repos.Inventory.UpdateStock(ctx, itemID, newStock); err != nil {
			log.Warn().Err(err).Str("inventory_item_id", itemID).
				Msg("[store] stock decrement failed")
			s.notifyFailure("Falha ao baixar estoque do item: " + err.Error())
		}
	}
}

func (s *Store) findOrder(id string) (entities.ServiceOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return entities.ServiceOrder{}, false
}

func (s *Store) replaceOrder(order entities.ServiceOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			s.orders[i] = order
			return
		}
	}
}
