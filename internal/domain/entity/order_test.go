package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

func TestOrder_CanTransition_FlujoNormal(t *testing.T) {
	o := &entity.Order{Status: entity.OrderStatusDraft}
	assert.True(t, o.CanTransition(entity.OrderStatusConfirmed))
	assert.False(t, o.CanTransition(entity.OrderStatusShipped),
		"no se puede saltar de draft a shipped")

	o.Status = entity.OrderStatusConfirmed
	assert.True(t, o.CanTransition(entity.OrderStatusInProduction))

	o.Status = entity.OrderStatusInProduction
	assert.True(t, o.CanTransition(entity.OrderStatusShipped))

	o.Status = entity.OrderStatusShipped
	assert.True(t, o.CanTransition(entity.OrderStatusCompleted))
}

func TestOrder_CanTransition_CancelarDesdeNoTerminal(t *testing.T) {
	for _, status := range []string{
		entity.OrderStatusDraft,
		entity.OrderStatusConfirmed,
		entity.OrderStatusInProduction,
		entity.OrderStatusShipped,
	} {
		o := &entity.Order{Status: status}
		assert.True(t, o.CanTransition(entity.OrderStatusCancelled),
			"cancelar debe permitirse desde %s", status)
	}
}

func TestOrder_CanTransition_EstadosTerminales(t *testing.T) {
	for _, status := range []string{entity.OrderStatusCompleted, entity.OrderStatusCancelled} {
		o := &entity.Order{Status: status}
		for _, to := range []string{
			entity.OrderStatusDraft, entity.OrderStatusConfirmed,
			entity.OrderStatusInProduction, entity.OrderStatusShipped,
			entity.OrderStatusCompleted, entity.OrderStatusCancelled,
		} {
			assert.False(t, o.CanTransition(to),
				"%s es terminal, no debe permitir %s", status, to)
		}
	}
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, entity.ValidOrderStatus(entity.OrderStatusDraft))
	assert.True(t, entity.ValidOrderStatus(entity.OrderStatusCancelled))
	assert.False(t, entity.ValidOrderStatus("enviada"))
	assert.False(t, entity.ValidOrderStatus(""))
}
