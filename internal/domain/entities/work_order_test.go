package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingOrder() WorkOrder {
	return NewWorkOrder("wo-1", Customer{ID: "c-1", Name: "Ana"}, Mechanic{ID: "m-1", Name: "Beto"}, time.Now())
}

func TestNewWorkOrder(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	wo := NewWorkOrder("wo-1", Customer{ID: "c-1"}, Mechanic{ID: "m-1"}, now)

	assert.Equal(t, WorkOrderStatusPendente, wo.Status)
	assert.Equal(t, "c-1", wo.CustomerID)
	assert.Equal(t, "m-1", wo.MechanicID)
	assert.Equal(t, time.UTC, wo.OpenedAt.Location())
	assert.True(t, wo.OpenedAt.Equal(now))
	assert.Nil(t, wo.ConcludedAt)
	assert.True(t, wo.TotalValue.IsZero())
}

func TestWorkOrder_ServiceAttachments(t *testing.T) {
	wo := newPendingOrder()
	svc := Service{ID: "s-10", Name: "Alinhamento", Price: decimal.RequireFromString("50.00")}

	require.NoError(t, wo.AttachService(svc))
	assert.True(t, wo.TotalValue.Equal(decimal.RequireFromString("50")))

	err := wo.AttachService(svc)
	require.ErrorIs(t, err, ErrServiceAlreadyAttached)
	assert.True(t, IsBusinessRule(err))
	assert.Len(t, wo.Services, 1)

	require.NoError(t, wo.DetachService("s-10"))
	assert.Empty(t, wo.Services)
	assert.True(t, wo.TotalValue.IsZero())

	require.ErrorIs(t, wo.DetachService("s-10"), ErrServiceNotAttached)
}

func TestWorkOrder_AddPartMergesQuantity(t *testing.T) {
	wo := newPendingOrder()
	part := Part{ID: "p-20", Name: "Pastilha", Price: decimal.RequireFromString("15.00")}

	row, err := wo.AddPart(part, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, row.Quantity)

	row, err = wo.AddPart(part, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, row.Quantity)

	require.Len(t, wo.Parts, 1)
	assert.Equal(t, 5, wo.Parts[0].Quantity)
	assert.True(t, wo.TotalValue.Equal(decimal.RequireFromString("75")))
}

func TestWorkOrder_AddPartRejectsNonPositiveQuantity(t *testing.T) {
	wo := newPendingOrder()
	for _, qty := range []int{0, -1} {
		_, err := wo.AddPart(Part{ID: "p-1", Price: decimal.NewFromInt(1)}, qty)
		require.ErrorIs(t, err, ErrInvalidPartQuantity)
	}
	assert.Empty(t, wo.Parts)
}

func TestWorkOrder_RemovePart(t *testing.T) {
	wo := newPendingOrder()
	_, err := wo.AddPart(Part{ID: "p-1", Price: decimal.NewFromInt(10)}, 4)
	require.NoError(t, err)
	_, err = wo.AddPart(Part{ID: "p-2", Price: decimal.NewFromInt(3)}, 1)
	require.NoError(t, err)

	require.ErrorIs(t, wo.RemovePart("p-9"), ErrPartNotAttached)
	require.Len(t, wo.Parts, 2)

	require.NoError(t, wo.RemovePart("p-1"))
	require.Len(t, wo.Parts, 1)
	assert.Equal(t, "p-2", wo.Parts[0].PartID)
	assert.True(t, wo.TotalValue.Equal(decimal.NewFromInt(3)))
}

func TestWorkOrder_RemoveDoesNotAliasPreviousSlice(t *testing.T) {
	wo := newPendingOrder()
	_, _ = wo.AddPart(Part{ID: "p-1", Price: decimal.NewFromInt(1)}, 1)
	_, _ = wo.AddPart(Part{ID: "p-2", Price: decimal.NewFromInt(2)}, 1)
	before := wo.Parts

	require.NoError(t, wo.RemovePart("p-1"))
	assert.Equal(t, "p-1", before[0].PartID)
	assert.Equal(t, "p-2", before[1].PartID)
}

func TestWorkOrder_Conclude(t *testing.T) {
	t.Run("no attachments yields zero total", func(t *testing.T) {
		wo := newPendingOrder()
		wo.TotalValue = decimal.NewFromInt(999)

		require.NoError(t, wo.Conclude(time.Now()))
		assert.True(t, wo.IsConcluded())
		assert.True(t, wo.TotalValue.IsZero())
		require.NotNil(t, wo.ConcludedAt)
	})

	t.Run("second conclude is rejected and keeps concluded_at", func(t *testing.T) {
		wo := newPendingOrder()
		first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, wo.Conclude(first))

		err := wo.Conclude(first.Add(time.Hour))
		require.ErrorIs(t, err, ErrWorkOrderConcluded)
		assert.True(t, wo.ConcludedAt.Equal(first))
	})
}

func TestWorkOrder_ConcludedRejectsMutations(t *testing.T) {
	wo := newPendingOrder()
	require.NoError(t, wo.AttachService(Service{ID: "s-1", Price: decimal.NewFromInt(50)}))
	_, err := wo.AddPart(Part{ID: "p-1", Price: decimal.NewFromInt(15)}, 2)
	require.NoError(t, err)
	require.NoError(t, wo.Conclude(time.Now()))
	total := wo.TotalValue

	require.ErrorIs(t, wo.AttachService(Service{ID: "s-2", Price: decimal.NewFromInt(1)}), ErrWorkOrderConcluded)
	require.ErrorIs(t, wo.DetachService("s-1"), ErrWorkOrderConcluded)
	_, err = wo.AddPart(Part{ID: "p-1", Price: decimal.NewFromInt(15)}, 1)
	require.ErrorIs(t, err, ErrWorkOrderConcluded)
	require.ErrorIs(t, wo.RemovePart("p-1"), ErrWorkOrderConcluded)
	require.ErrorIs(t, wo.Reassign(Customer{ID: "c-2"}, Mechanic{ID: "m-2"}), ErrWorkOrderConcluded)

	assert.Len(t, wo.Services, 1)
	assert.Len(t, wo.Parts, 1)
	assert.Equal(t, 2, wo.Parts[0].Quantity)
	assert.Equal(t, "c-1", wo.CustomerID)
	assert.True(t, wo.TotalValue.Equal(total))
}

func TestWorkOrder_Reassign(t *testing.T) {
	wo := newPendingOrder()
	require.NoError(t, wo.Reassign(Customer{ID: "c-2", Name: "Carla"}, Mechanic{ID: "m-2"}))
	assert.Equal(t, "c-2", wo.CustomerID)
	assert.Equal(t, "m-2", wo.MechanicID)
	assert.Equal(t, "Carla", wo.Customer.Name)
}

func TestCalculateTotal(t *testing.T) {
	services := []WorkOrderService{
		{ServiceID: "s-1", Price: decimal.RequireFromString("0.10")},
		{ServiceID: "s-2", Price: decimal.RequireFromString("0.20")},
	}
	parts := []WorkOrderPart{
		{PartID: "p-1", Price: decimal.RequireFromString("19.99"), Quantity: 3},
	}

	assert.True(t, CalculateTotal(nil, nil).IsZero())
	assert.Equal(t, "60.27", CalculateTotal(services, parts).StringFixed(2))
}

func TestErrorTaxonomy(t *testing.T) {
	for _, err := range []error{ErrCustomerNotFound, ErrMechanicNotFound, ErrServiceNotFound, ErrPartNotFound, ErrWorkOrderNotFound} {
		assert.True(t, IsNotFound(err), err.Error())
		assert.False(t, IsBusinessRule(err), err.Error())
	}
	for _, err := range []error{ErrWorkOrderConcluded, ErrServiceAlreadyAttached, ErrServiceNotAttached, ErrPartNotAttached, ErrCustomerInUse, ErrPartInUse} {
		assert.True(t, IsBusinessRule(err), err.Error())
		assert.False(t, IsNotFound(err), err.Error())
	}
}
