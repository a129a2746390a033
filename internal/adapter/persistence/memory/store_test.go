package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *Store) {
	t.Helper()
	err := s.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		for _, c := range []entities.Customer{{ID: "c-1", Name: "Ana"}, {ID: "c-2", Name: "Bruno"}} {
			if _, err := repos.Customers().Create(ctx, c); err != nil {
				return err
			}
		}
		for _, m := range []entities.Mechanic{{ID: "m-1", Name: "Carlos"}, {ID: "m-2", Name: "Diana"}} {
			if _, err := repos.Mechanics().Create(ctx, m); err != nil {
				return err
			}
		}
		if _, err := repos.Services().Create(ctx, entities.Service{ID: "s-1", Name: "Alinhamento", Price: decimal.NewFromInt(50), Active: true}); err != nil {
			return err
		}
		_, err := repos.Parts().Create(ctx, entities.Part{ID: "p-1", Name: "Pastilha", Price: decimal.NewFromInt(15)})
		return err
	})
	require.NoError(t, err)
}

func createOrder(t *testing.T, s *Store, id, customerID, mechanicID string, openedAt time.Time) {
	t.Helper()
	err := s.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		return repos.WorkOrders().Create(ctx, entities.WorkOrder{
			ID: id, CustomerID: customerID, MechanicID: mechanicID,
			OpenedAt: openedAt, Status: entities.WorkOrderStatusPendente,
		})
	})
	require.NoError(t, err)
}

func TestStore_RollbackDiscardsWrites(t *testing.T) {
	s := NewStore()
	seed(t, s)
	boom := errors.New("boom")

	err := s.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		if _, err := repos.Customers().Create(ctx, entities.Customer{ID: "c-9", Name: "Zé"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_ = s.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		c, err := repos.Customers().GetByID(ctx, "c-9")
		require.NoError(t, err)
		assert.Empty(t, c.ID)
		return nil
	})
}

func TestStore_CanceledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.Do(ctx, func(context.Context, interfaces.IRepositories) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestWorkOrderRepository_Attachments(t *testing.T) {
	s := NewStore()
	seed(t, s)
	createOrder(t, s, "wo-1", "c-1", "m-1", time.Now().UTC())

	err := s.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		orders := repos.WorkOrders()
		require.NoError(t, orders.AttachService(ctx, "wo-1", "s-1"))
		require.ErrorIs(t, orders.AttachService(ctx, "wo-1", "s-1"), entities.ErrServiceAlreadyAttached)
		require.NoError(t, orders.SavePart(ctx, "wo-1", entities.WorkOrderPart{PartID: "p-1", Quantity: 2}))
		require.NoError(t, orders.SavePart(ctx, "wo-1", entities.WorkOrderPart{PartID: "p-1", Quantity: 5}))
		return nil
	})
	require.NoError(t, err)

	_ = s.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		wo, err := repos.WorkOrders().GetByID(ctx, "wo-1")
		require.NoError(t, err)
		require.NotNil(t, wo.Customer)
		assert.Equal(t, "Ana", wo.Customer.Name)
		require.Len(t, wo.Services, 1)
		assert.True(t, wo.Services[0].Price.Equal(decimal.NewFromInt(50)))
		require.Len(t, wo.Parts, 1)
		assert.Equal(t, 5, wo.Parts[0].Quantity)
		return nil
	})
}

func TestWorkOrderRepository_DeleteCascadesAndRestricts(t *testing.T) {
	s := NewStore()
	seed(t, s)
	createOrder(t, s, "wo-1", "c-1", "m-1", time.Now().UTC())

	err := s.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		require.NoError(t, repos.WorkOrders().AttachService(ctx, "wo-1", "s-1"))
		require.NoError(t, repos.WorkOrders().SavePart(ctx, "wo-1", entities.WorkOrderPart{PartID: "p-1", Quantity: 1}))
		return nil
	})
	require.NoError(t, err)

	err = s.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		return repos.Services().Delete(ctx, "s-1")
	})
	require.ErrorIs(t, err, entities.ErrServiceInUse)

	err = s.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		return repos.Customers().Delete(ctx, "c-1")
	})
	require.ErrorIs(t, err, entities.ErrCustomerInUse)

	err = s.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		if err := repos.WorkOrders().Delete(ctx, "wo-1"); err != nil {
			return err
		}
		exists, err := repos.WorkOrders().ExistsByServiceID(ctx, "s-1")
		require.NoError(t, err)
		assert.False(t, exists)
		exists, err = repos.WorkOrders().ExistsByPartID(ctx, "p-1")
		require.NoError(t, err)
		assert.False(t, exists)
		return repos.Services().Delete(ctx, "s-1")
	})
	require.NoError(t, err)
}

func TestWorkOrderRepository_List(t *testing.T) {
	s := NewStore()
	seed(t, s)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	createOrder(t, s, "wo-1", "c-1", "m-1", base)
	createOrder(t, s, "wo-2", "c-2", "m-1", base.Add(time.Hour))
	createOrder(t, s, "wo-3", "c-1", "m-2", base.Add(2*time.Hour))

	list := func(f interfaces.WorkOrderFilter) []string {
		var ids []string
		_ = s.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
			orders, err := repos.WorkOrders().List(ctx, f)
			require.NoError(t, err)
			for _, wo := range orders {
				ids = append(ids, wo.ID)
			}
			return nil
		})
		return ids
	}

	assert.Equal(t, []string{"wo-3", "wo-2", "wo-1"}, list(interfaces.WorkOrderFilter{}))
	assert.Equal(t, []string{"wo-2"}, list(interfaces.WorkOrderFilter{Page: interfaces.Page{Skip: 1, Limit: 1}}))
	assert.Equal(t, []string{"wo-3", "wo-1"}, list(interfaces.WorkOrderFilter{CustomerName: "aN"}))
	assert.Equal(t, []string{"wo-3"}, list(interfaces.WorkOrderFilter{CustomerID: "c-1", MechanicName: "DI"}))

	from, to := base, base.Add(time.Hour)
	assert.Equal(t, []string{"wo-2", "wo-1"}, list(interfaces.WorkOrderFilter{OpenedAtFrom: &from, OpenedAtTo: &to}))
	assert.Len(t, list(interfaces.WorkOrderFilter{OpenedAtFrom: &to}), 3, "a single bound is ignored")
	assert.Empty(t, list(interfaces.WorkOrderFilter{OpenedAtFrom: &to, OpenedAtTo: &from}))
}

func TestWorkOrderRepository_ListBreaksTiesByID(t *testing.T) {
	s := NewStore()
	seed(t, s)
	openedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for _, id := range []string{"wo-b", "wo-c", "wo-a"} {
		createOrder(t, s, id, "c-1", "m-1", openedAt)
	}

	_ = s.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		var ids []string
		for skip := 0; skip < 3; skip++ {
			orders, err := repos.WorkOrders().List(ctx, interfaces.WorkOrderFilter{Page: interfaces.Page{Skip: skip, Limit: 1}})
			require.NoError(t, err)
			require.Len(t, orders, 1)
			ids = append(ids, orders[0].ID)
		}
		assert.Equal(t, []string{"wo-c", "wo-b", "wo-a"}, ids)
		return nil
	})
}

func TestCatalog_ListAndCount(t *testing.T) {
	s := NewStore()
	seed(t, s)

	_ = s.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		customers, err := repos.Customers().List(ctx, interfaces.Page{Limit: 1, Skip: 1})
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "c-2", customers[0].ID)

		empty, err := repos.Customers().List(ctx, interfaces.Page{Skip: 10})
		require.NoError(t, err)
		assert.Empty(t, empty)

		n, err := repos.Parts().Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		updated, err := repos.Mechanics().Update(ctx, entities.Mechanic{ID: "m-404", Name: "x"})
		require.NoError(t, err)
		assert.Empty(t, updated.ID)
		return nil
	})
}
