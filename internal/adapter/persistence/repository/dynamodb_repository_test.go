package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUnitOfWork(t *testing.T) (*UnitOfWork, *fakeDynamo, Tables) {
	t.Helper()
	tables := DefaultTables("test_")
	fake := newFakeDynamo(tables)
	return NewUnitOfWork(fake, tables), fake, tables
}

func seedCatalog(t *testing.T, uow *UnitOfWork) {
	t.Helper()
	err := uow.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		if _, err := repos.Customers().Create(ctx, entities.Customer{ID: "c-1", Name: "Ana"}); err != nil {
			return err
		}
		if _, err := repos.Customers().Create(ctx, entities.Customer{ID: "c-2", Name: "Bia"}); err != nil {
			return err
		}
		if _, err := repos.Mechanics().Create(ctx, entities.Mechanic{ID: "m-1", Name: "Caio"}); err != nil {
			return err
		}
		if _, err := repos.Services().Create(ctx, entities.Service{ID: "s-10", Name: "Alinhamento", Price: decimal.RequireFromString("50.00"), Active: true}); err != nil {
			return err
		}
		if _, err := repos.Services().Create(ctx, entities.Service{ID: "s-11", Name: "Balanceamento", Price: decimal.RequireFromString("30.00"), Active: true}); err != nil {
			return err
		}
		_, err := repos.Parts().Create(ctx, entities.Part{ID: "p-20", Name: "Pastilha", Price: decimal.RequireFromString("15.00")})
		return err
	})
	require.NoError(t, err)
}

func quietUseCase(uow interfaces.IUnitOfWork) *usecase.WorkOrderUseCase {
	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	return usecase.NewWorkOrderUseCase(uow, nil, log.NewEntry(logger))
}

func TestUnitOfWork_WorkOrderLifecycle(t *testing.T) {
	ctx := context.Background()
	uow, fake, tables := newTestUnitOfWork(t)
	seedCatalog(t, uow)
	uc := quietUseCase(uow)

	wo, err := uc.Create(ctx, usecase.CreateWorkOrderInput{
		CustomerID: "c-1",
		MechanicID: "m-1",
		ServiceIDs: []string{"s-10", "s-11"},
	})
	require.NoError(t, err)
	assert.Equal(t, "80", wo.TotalValue.String())
	assert.Equal(t, 2, fake.count(tables.WorkOrderItems))

	wo, err = uc.AddPart(ctx, wo.ID, usecase.PartItemInput{PartID: "p-20", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, "125", wo.TotalValue.String())

	wo, err = uc.AddPart(ctx, wo.ID, usecase.PartItemInput{PartID: "p-20", Quantity: 1})
	require.NoError(t, err)
	require.Len(t, wo.Parts, 1)
	assert.Equal(t, 4, wo.Parts[0].Quantity)

	_, err = uc.AddService(ctx, wo.ID, "s-10")
	require.ErrorIs(t, err, entities.ErrServiceAlreadyAttached)

	loaded, err := uc.GetByID(ctx, wo.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Customer)
	assert.Equal(t, "Ana", loaded.Customer.Name)
	require.Len(t, loaded.Services, 2)
	assert.Equal(t, "s-10", loaded.Services[0].ServiceID)
	assert.Equal(t, "140", loaded.TotalValue.String())

	concluded, err := uc.Conclude(ctx, wo.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.WorkOrderStatusConcluida, concluded.Status)
	require.NotNil(t, concluded.ConcludedAt)

	_, err = uc.Conclude(ctx, wo.ID)
	require.ErrorIs(t, err, entities.ErrWorkOrderConcluded)

	_, err = uc.Delete(ctx, wo.ID)
	require.NoError(t, err)
	assert.Zero(t, fake.count(tables.WorkOrders))
	assert.Zero(t, fake.count(tables.WorkOrderItems))
}

func TestUnitOfWork_DeleteOrderWithManyAttachments(t *testing.T) {
	ctx := context.Background()
	uow, fake, tables := newTestUnitOfWork(t)
	seedCatalog(t, uow)
	uc := quietUseCase(uow)

	wo, err := uc.Create(ctx, usecase.CreateWorkOrderInput{CustomerID: "c-1", MechanicID: "m-1", ServiceIDs: []string{"s-10"}})
	require.NoError(t, err)

	const parts = 150
	for i := 0; i < parts; i++ {
		id := fmt.Sprintf("bulk-%03d", i)
		require.NoError(t, uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
			_, err := repos.Parts().Create(ctx, entities.Part{ID: id, Name: "Parafuso", Price: decimal.NewFromInt(1)})
			return err
		}))
		_, err := uc.AddPart(ctx, wo.ID, usecase.PartItemInput{PartID: id, Quantity: 1})
		require.NoError(t, err)
	}
	require.Equal(t, parts+1, fake.count(tables.WorkOrderItems))

	calls := fake.transactCalls
	deleted, err := uc.Delete(ctx, wo.ID)
	require.NoError(t, err)
	assert.Len(t, deleted.Parts, parts)
	assert.Equal(t, calls+2, fake.transactCalls)
	assert.Zero(t, fake.count(tables.WorkOrders))
	assert.Zero(t, fake.count(tables.WorkOrderItems))

	_, err = uc.GetByID(ctx, wo.ID)
	require.ErrorIs(t, err, entities.ErrWorkOrderNotFound)
}

func TestUnitOfWork_DeleteRequiresExistingOrder(t *testing.T) {
	uow, _, _ := newTestUnitOfWork(t)
	err := uow.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		return repos.WorkOrders().Delete(ctx, "ghost")
	})
	require.ErrorIs(t, err, entities.ErrWorkOrderNotFound)
}

func TestUnitOfWork_FailedUnitWritesNothing(t *testing.T) {
	ctx := context.Background()
	uow, fake, tables := newTestUnitOfWork(t)
	seedCatalog(t, uow)
	calls := fake.transactCalls

	_, err := quietUseCase(uow).Create(ctx, usecase.CreateWorkOrderInput{
		CustomerID: "c-1",
		MechanicID: "m-1",
		ServiceIDs: []string{"s-10", "s-404"},
	})
	require.ErrorIs(t, err, entities.ErrServiceNotFound)
	assert.Equal(t, calls, fake.transactCalls)
	assert.Zero(t, fake.count(tables.WorkOrders))
}

func TestUnitOfWork_DuplicateAttachmentMapsToBusinessError(t *testing.T) {
	ctx := context.Background()
	uow, _, _ := newTestUnitOfWork(t)
	seedCatalog(t, uow)

	wo, err := quietUseCase(uow).Create(ctx, usecase.CreateWorkOrderInput{CustomerID: "c-1", MechanicID: "m-1"})
	require.NoError(t, err)

	attach := func(ctx context.Context, repos interfaces.IRepositories) error {
		return repos.WorkOrders().AttachService(ctx, wo.ID, "s-10")
	}
	require.NoError(t, uow.Do(ctx, attach))
	require.ErrorIs(t, uow.Do(ctx, attach), entities.ErrServiceAlreadyAttached)
}

func TestUnitOfWork_UpdateMissingWorkOrder(t *testing.T) {
	uow, _, _ := newTestUnitOfWork(t)
	err := uow.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		return repos.WorkOrders().Update(ctx, entities.WorkOrder{ID: "ghost", Status: entities.WorkOrderStatusPendente})
	})
	require.ErrorIs(t, err, entities.ErrWorkOrderNotFound)
}

func TestUnitOfWork_TransactionLimit(t *testing.T) {
	uow, fake, _ := newTestUnitOfWork(t)
	err := uow.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		for i := 0; i <= maxTransactItems; i++ {
			if err := repos.Customers().Delete(ctx, "c"); err != nil {
				return err
			}
		}
		return nil
	})
	require.ErrorIs(t, err, ErrTransactionTooLarge)
	assert.Zero(t, fake.transactCalls)
}

func TestUnitOfWork_PropagatesUnmappedErrors(t *testing.T) {
	uow, fake, _ := newTestUnitOfWork(t)
	boom := errors.New("throttled")
	fake.transactErr = boom

	err := uow.Do(context.Background(), func(ctx context.Context, repos interfaces.IRepositories) error {
		_, err := repos.Customers().Create(ctx, entities.Customer{ID: "c-9"})
		return err
	})
	require.ErrorIs(t, err, boom)
}

func TestCatalogRepository_ListCountUpdate(t *testing.T) {
	ctx := context.Background()
	uow, _, _ := newTestUnitOfWork(t)
	for _, id := range []string{"p-1", "p-2", "p-3"} {
		require.NoError(t, uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
			_, err := repos.Parts().Create(ctx, entities.Part{ID: id, Name: "Peca " + id, Price: decimal.NewFromInt(10)})
			return err
		}))
	}

	err := uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		n, err := repos.Parts().Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 3, n)

		page, err := repos.Parts().List(ctx, interfaces.Page{Skip: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "p-2", page[0].ID)

		missing, err := repos.Parts().Update(ctx, entities.Part{ID: "p-404"})
		require.NoError(t, err)
		assert.Empty(t, missing.ID)

		_, err = repos.Parts().Update(ctx, entities.Part{ID: "p-1", Name: "Disco", Price: decimal.RequireFromString("99.90")})
		return err
	})
	require.NoError(t, err)

	err = uow.Do(ctx, func(ctx context.Context, repos interfaces.IRepositories) error {
		all, err := repos.Parts().List(ctx, interfaces.Page{Limit: 10})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "p-1", all[0].ID)
		assert.Equal(t, "Disco", all[0].Name)
		assert.Equal(t, "99.9", all[0].Price.String())
		return nil
	})
	require.NoError(t, err)
}

func TestWorkOrderRepository_ListFiltersAndGuards(t *testing.T) {
	ctx := context.Background()
	uow, _, _ := newTestUnitOfWork(t)
	seedCatalog(t, uow)
	uc := quietUseCase(uow)

	first, err := uc.Create(ctx, usecase.CreateWorkOrderInput{CustomerID: "c-1", MechanicID: "m-1", ServiceIDs: []string{"s-10"}})
	require.NoError(t, err)
	second, err := uc.Create(ctx, usecase.CreateWorkOrderInput{CustomerID: "c-2", MechanicID: "m-1"})
	require.NoError(t, err)

	byCustomer, err := uc.List(ctx, interfaces.WorkOrderFilter{CustomerID: "c-2"})
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	assert.Equal(t, second.ID, byCustomer[0].ID)

	byName, err := uc.List(ctx, interfaces.WorkOrderFilter{CustomerName: "AN"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, first.ID, byName[0].ID)
	require.NotNil(t, byName[0].Mechanic)
	assert.Equal(t, "Caio", byName[0].Mechanic.Name)

	all, err := uc.List(ctx, interfaces.WorkOrderFilter{MechanicID: "m-1"})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = usecase.NewServiceUseCase(uow).Delete(ctx, "s-10")
	require.ErrorIs(t, err, entities.ErrServiceInUse)
	_, err = usecase.NewCustomerUseCase(uow).Delete(ctx, "c-2")
	require.ErrorIs(t, err, entities.ErrCustomerInUse)

	deleted, err := usecase.NewServiceUseCase(uow).Delete(ctx, "s-11")
	require.NoError(t, err)
	assert.Equal(t, "s-11", deleted.ID)
}

type fakeTableCreator struct {
	existing map[string]bool
	created  []string
}

func (f *fakeTableCreator) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.existing[aws.ToString(in.TableName)] {
		return &dynamodb.DescribeTableOutput{}, nil
	}
	return nil, &types.ResourceNotFoundException{Message: aws.String("missing")}
}

func (f *fakeTableCreator) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = append(f.created, aws.ToString(in.TableName))
	return &dynamodb.CreateTableOutput{}, nil
}

func TestCreateIfMissing(t *testing.T) {
	tables := DefaultTables("dev_")
	creator := &fakeTableCreator{existing: map[string]bool{tables.Customers: true}}

	for _, in := range tableDefinitions(tables) {
		_, err := createIfMissing(context.Background(), creator, in)
		require.NoError(t, err)
	}
	assert.NotContains(t, creator.created, tables.Customers)
	assert.Contains(t, creator.created, "dev_work_order_items")
	assert.Len(t, creator.created, 5)
}

func TestWorkOrderItemConversion(t *testing.T) {
	pending := fromWorkOrderItem(workOrderItem{ID: "wo-1", OpenedAt: "2026-10-01T12:00:00Z", Status: "pendente", TotalValue: "0"})
	assert.Nil(t, pending.ConcludedAt)
	assert.True(t, pending.TotalValue.IsZero())

	itemType, refID := lineRef(partLineKey("p-7"))
	assert.Equal(t, itemTypePart, itemType)
	assert.Equal(t, "p-7", refID)
}
