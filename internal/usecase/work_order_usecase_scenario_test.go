package usecase

import (
	"context"
	"testing"
	"time"

	"oficina_mecanica/internal/adapter/persistence/memory"
	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScenarioStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	err := store.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		if _, err := repos.Customers().Create(ctx, entities.Customer{ID: "1", Name: "Ana"}); err != nil {
			return err
		}
		if _, err := repos.Customers().Create(ctx, entities.Customer{ID: "2", Name: "Bia"}); err != nil {
			return err
		}
		if _, err := repos.Mechanics().Create(ctx, entities.Mechanic{ID: "1", Name: "Caio"}); err != nil {
			return err
		}
		if _, err := repos.Services().Create(ctx, entities.Service{ID: "10", Name: "Alinhamento", Price: decimal.RequireFromString("50.0"), Active: true}); err != nil {
			return err
		}
		if _, err := repos.Services().Create(ctx, entities.Service{ID: "11", Name: "Balanceamento", Price: decimal.RequireFromString("35.5"), Active: true}); err != nil {
			return err
		}
		if _, err := repos.Parts().Create(ctx, entities.Part{ID: "20", Name: "Pastilha", Price: decimal.RequireFromString("15.0")}); err != nil {
			return err
		}
		_, err := repos.Parts().Create(ctx, entities.Part{ID: "21", Name: "Filtro", Price: decimal.RequireFromString("22.9")})
		return err
	})
	require.NoError(t, err)
	return store
}

func newScenarioUseCase(store *memory.Store) *WorkOrderUseCase {
	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	return NewWorkOrderUseCase(store, nil, log.NewEntry(logger))
}

func TestWorkOrderUseCase_Scenario(t *testing.T) {
	ctx := context.Background()
	uc := newScenarioUseCase(newScenarioStore(t))

	wo, err := uc.Create(ctx, CreateWorkOrderInput{
		CustomerID: "1",
		MechanicID: "1",
		ServiceIDs: []string{"10"},
		Parts:      []PartItemInput{{PartID: "20", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.WorkOrderStatusPendente, wo.Status)
	assert.Equal(t, "80", wo.TotalValue.String())

	wo, err = uc.AddPart(ctx, wo.ID, PartItemInput{PartID: "20", Quantity: 3})
	require.NoError(t, err)
	require.Len(t, wo.Parts, 1)
	assert.Equal(t, 5, wo.Parts[0].Quantity)
	assert.Equal(t, "125", wo.TotalValue.String())

	wo, err = uc.Conclude(ctx, wo.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.WorkOrderStatusConcluida, wo.Status)
	require.NotNil(t, wo.ConcludedAt)
	assert.Equal(t, "125", wo.TotalValue.String())
	concludedAt := *wo.ConcludedAt

	_, err = uc.Conclude(ctx, wo.ID)
	require.ErrorIs(t, err, entities.ErrWorkOrderConcluded)
	assert.True(t, entities.IsBusinessRule(err))

	stored, err := uc.GetByID(ctx, wo.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.WorkOrderStatusConcluida, stored.Status)
	assert.True(t, stored.ConcludedAt.Equal(concludedAt))
	assert.Equal(t, "125", stored.TotalValue.String())
}

func TestWorkOrderUseCase_CreateWithoutAttachmentsHasZeroTotal(t *testing.T) {
	ctx := context.Background()
	uc := newScenarioUseCase(newScenarioStore(t))

	wo, err := uc.Create(ctx, CreateWorkOrderInput{CustomerID: "1", MechanicID: "1"})
	require.NoError(t, err)
	assert.True(t, wo.TotalValue.IsZero())

	wo, err = uc.Conclude(ctx, wo.ID)
	require.NoError(t, err)
	assert.True(t, wo.TotalValue.IsZero())
	assert.Equal(t, entities.WorkOrderStatusConcluida, wo.Status)
}

func TestWorkOrderUseCase_CreateIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	store := newScenarioStore(t)
	uc := newScenarioUseCase(store)

	_, err := uc.Create(ctx, CreateWorkOrderInput{
		CustomerID: "1", MechanicID: "1",
		ServiceIDs: []string{"10", "404"},
	})
	require.ErrorIs(t, err, entities.ErrServiceNotFound)

	_, err = uc.Create(ctx, CreateWorkOrderInput{
		CustomerID: "1", MechanicID: "1",
		ServiceIDs: []string{"10", "10"},
	})
	require.ErrorIs(t, err, entities.ErrServiceAlreadyAttached)

	orders, err := uc.List(ctx, interfaces.WorkOrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestWorkOrderUseCase_CreateMergesDuplicateParts(t *testing.T) {
	uc := newScenarioUseCase(newScenarioStore(t))

	wo, err := uc.Create(context.Background(), CreateWorkOrderInput{
		CustomerID: "1", MechanicID: "1",
		Parts: []PartItemInput{{PartID: "20", Quantity: 1}, {PartID: "20", Quantity: 2}},
	})
	require.NoError(t, err)
	require.Len(t, wo.Parts, 1)
	assert.Equal(t, 3, wo.Parts[0].Quantity)
	assert.Equal(t, "45", wo.TotalValue.String())
}

func TestWorkOrderUseCase_AttachDetachKeepsTotalConsistent(t *testing.T) {
	ctx := context.Background()
	uc := newScenarioUseCase(newScenarioStore(t))

	wo, err := uc.Create(ctx, CreateWorkOrderInput{CustomerID: "1", MechanicID: "1"})
	require.NoError(t, err)

	steps := []func(id string) (entities.WorkOrder, error){
		func(id string) (entities.WorkOrder, error) { return uc.AddService(ctx, id, "10") },
		func(id string) (entities.WorkOrder, error) { return uc.AddService(ctx, id, "11") },
		func(id string) (entities.WorkOrder, error) {
			return uc.AddPart(ctx, id, PartItemInput{PartID: "21", Quantity: 3})
		},
		func(id string) (entities.WorkOrder, error) { return uc.RemoveService(ctx, id, "10") },
		func(id string) (entities.WorkOrder, error) {
			return uc.AddPart(ctx, id, PartItemInput{PartID: "20", Quantity: 1})
		},
		func(id string) (entities.WorkOrder, error) { return uc.RemovePart(ctx, id, "21") },
	}
	for _, step := range steps {
		wo, err = step(wo.ID)
		require.NoError(t, err)
		assert.True(t, wo.TotalValue.Equal(entities.CalculateTotal(wo.Services, wo.Parts)))
	}

	stored, err := uc.GetByID(ctx, wo.ID)
	require.NoError(t, err)
	assert.Equal(t, "50.5", stored.TotalValue.String())
	assert.True(t, stored.TotalValue.Equal(entities.CalculateTotal(stored.Services, stored.Parts)))
}

func TestWorkOrderUseCase_RemoveMissingAttachment(t *testing.T) {
	ctx := context.Background()
	uc := newScenarioUseCase(newScenarioStore(t))

	wo, err := uc.Create(ctx, CreateWorkOrderInput{
		CustomerID: "1", MechanicID: "1",
		Parts: []PartItemInput{{PartID: "20", Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = uc.RemovePart(ctx, wo.ID, "21")
	require.ErrorIs(t, err, entities.ErrPartNotAttached)
	assert.True(t, entities.IsBusinessRule(err))

	_, err = uc.RemoveService(ctx, wo.ID, "10")
	require.ErrorIs(t, err, entities.ErrServiceNotAttached)

	stored, err := uc.GetByID(ctx, wo.ID)
	require.NoError(t, err)
	require.Len(t, stored.Parts, 1)
	assert.Equal(t, 2, stored.Parts[0].Quantity)
}

func TestWorkOrderUseCase_ConcludedOrderIsFrozen(t *testing.T) {
	ctx := context.Background()
	uc := newScenarioUseCase(newScenarioStore(t))

	wo, err := uc.Create(ctx, CreateWorkOrderInput{
		CustomerID: "1", MechanicID: "1",
		ServiceIDs: []string{"10"},
		Parts:      []PartItemInput{{PartID: "20", Quantity: 2}},
	})
	require.NoError(t, err)
	_, err = uc.Conclude(ctx, wo.ID)
	require.NoError(t, err)

	_, err = uc.AddService(ctx, wo.ID, "11")
	require.ErrorIs(t, err, entities.ErrWorkOrderConcluded)
	_, err = uc.RemoveService(ctx, wo.ID, "10")
	require.ErrorIs(t, err, entities.ErrWorkOrderConcluded)
	_, err = uc.AddPart(ctx, wo.ID, PartItemInput{PartID: "20", Quantity: 1})
	require.ErrorIs(t, err, entities.ErrWorkOrderConcluded)
	_, err = uc.RemovePart(ctx, wo.ID, "20")
	require.ErrorIs(t, err, entities.ErrWorkOrderConcluded)
	_, err = uc.Reassign(ctx, wo.ID, "2", "")
	require.ErrorIs(t, err, entities.ErrWorkOrderConcluded)

	stored, err := uc.GetByID(ctx, wo.ID)
	require.NoError(t, err)
	assert.Equal(t, "1", stored.CustomerID)
	assert.Len(t, stored.Services, 1)
	require.Len(t, stored.Parts, 1)
	assert.Equal(t, 2, stored.Parts[0].Quantity)
	assert.Equal(t, "80", stored.TotalValue.String())
}

func TestWorkOrderUseCase_ReassignKeepsBlankReference(t *testing.T) {
	ctx := context.Background()
	uc := newScenarioUseCase(newScenarioStore(t))

	wo, err := uc.Create(ctx, CreateWorkOrderInput{CustomerID: "1", MechanicID: "1"})
	require.NoError(t, err)

	wo, err = uc.Reassign(ctx, wo.ID, "2", " ")
	require.NoError(t, err)
	assert.Equal(t, "2", wo.CustomerID)
	assert.Equal(t, "1", wo.MechanicID)
	require.NotNil(t, wo.Customer)
	assert.Equal(t, "Bia", wo.Customer.Name)

	_, err = uc.Reassign(ctx, wo.ID, "", "404")
	require.ErrorIs(t, err, entities.ErrMechanicNotFound)
}

func TestWorkOrderUseCase_DeleteLeavesReferencesUntouched(t *testing.T) {
	ctx := context.Background()
	store := newScenarioStore(t)
	uc := newScenarioUseCase(store)

	wo, err := uc.Create(ctx, CreateWorkOrderInput{
		CustomerID: "1", MechanicID: "1",
		ServiceIDs: []string{"10"},
		Parts:      []PartItemInput{{PartID: "20", Quantity: 2}},
	})
	require.NoError(t, err)

	deleted, err := uc.Delete(ctx, wo.ID)
	require.NoError(t, err)
	assert.Equal(t, wo.ID, deleted.ID)
	assert.Len(t, deleted.Services, 1)

	_, err = uc.GetByID(ctx, wo.ID)
	require.ErrorIs(t, err, entities.ErrWorkOrderNotFound)

	err = store.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		c, err := repos.Customers().GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "1", c.ID)
		s, err := repos.Services().GetByID(ctx, "10")
		require.NoError(t, err)
		assert.Equal(t, "10", s.ID)
		inUse, err := repos.WorkOrders().ExistsByPartID(ctx, "20")
		require.NoError(t, err)
		assert.False(t, inUse)
		return nil
	})
	require.NoError(t, err)
}

func TestWorkOrderUseCase_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	uc := newScenarioUseCase(newScenarioStore(t))
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	tick := 0
	uc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	var ids []string
	for _, customerID := range []string{"1", "2", "1"} {
		wo, err := uc.Create(ctx, CreateWorkOrderInput{CustomerID: customerID, MechanicID: "1"})
		require.NoError(t, err)
		ids = append(ids, wo.ID)
	}

	orders, err := uc.List(ctx, interfaces.WorkOrderFilter{CustomerName: "an"})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, ids[2], orders[0].ID)
	assert.Equal(t, ids[0], orders[1].ID)

	orders, err = uc.List(ctx, interfaces.WorkOrderFilter{Page: interfaces.Page{Limit: 1}})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, ids[2], orders[0].ID)
}

func TestWorkOrderUseCase_PendingTotalFollowsCatalogPrices(t *testing.T) {
	ctx := context.Background()
	store := newScenarioStore(t)
	uc := newScenarioUseCase(store)
	services := NewServiceUseCase(store)

	wo, err := uc.Create(ctx, CreateWorkOrderInput{
		CustomerID: "1", MechanicID: "1",
		ServiceIDs: []string{"10"},
		Parts:      []PartItemInput{{PartID: "20", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "80", wo.TotalValue.String())

	_, err = services.Update(ctx, entities.Service{ID: "10", Name: "Alinhamento", Price: decimal.RequireFromString("70"), Active: true})
	require.NoError(t, err)

	loaded, err := uc.GetByID(ctx, wo.ID)
	require.NoError(t, err)
	assert.Equal(t, "70", loaded.Services[0].Price.String())
	assert.Equal(t, "100", loaded.TotalValue.String())

	concluded, err := uc.Conclude(ctx, wo.ID)
	require.NoError(t, err)
	assert.Equal(t, "100", concluded.TotalValue.String())

	_, err = services.Update(ctx, entities.Service{ID: "10", Name: "Alinhamento", Price: decimal.RequireFromString("90"), Active: true})
	require.NoError(t, err)

	loaded, err = uc.GetByID(ctx, wo.ID)
	require.NoError(t, err)
	assert.Equal(t, "100", loaded.TotalValue.String())
}
