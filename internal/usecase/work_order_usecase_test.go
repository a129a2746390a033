package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"
	mock_interfaces "oficina_mecanica/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type workOrderMocks struct {
	uow       *mock_interfaces.MockIUnitOfWork
	repos     *mock_interfaces.MockIRepositories
	customers *mock_interfaces.MockICustomerRepository
	mechanics *mock_interfaces.MockIMechanicRepository
	services  *mock_interfaces.MockIServiceRepository
	parts     *mock_interfaces.MockIPartRepository
	orders    *mock_interfaces.MockIWorkOrderRepository
	metrics   *mock_interfaces.MockIWorkOrderMetrics
}

// newWorkOrderMocks wires a unit of work that runs fn straight against the
// repository mocks.
func newWorkOrderMocks(ctrl *gomock.Controller) workOrderMocks {
	m := workOrderMocks{
		uow:       mock_interfaces.NewMockIUnitOfWork(ctrl),
		repos:     mock_interfaces.NewMockIRepositories(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		mechanics: mock_interfaces.NewMockIMechanicRepository(ctrl),
		services:  mock_interfaces.NewMockIServiceRepository(ctrl),
		parts:     mock_interfaces.NewMockIPartRepository(ctrl),
		orders:    mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		metrics:   mock_interfaces.NewMockIWorkOrderMetrics(ctrl),
	}
	m.uow.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, interfaces.IRepositories) error) error {
			return fn(ctx, m.repos)
		},
	).AnyTimes()
	m.repos.EXPECT().Customers().Return(m.customers).AnyTimes()
	m.repos.EXPECT().Mechanics().Return(m.mechanics).AnyTimes()
	m.repos.EXPECT().Services().Return(m.services).AnyTimes()
	m.repos.EXPECT().Parts().Return(m.parts).AnyTimes()
	m.repos.EXPECT().WorkOrders().Return(m.orders).AnyTimes()
	return m
}

func (m workOrderMocks) useCase() *WorkOrderUseCase {
	uc := NewWorkOrderUseCase(m.uow, m.metrics, nil)
	uc.now = func() time.Time { return time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC) }
	uc.newID = func() string { return "wo-1" }
	return uc
}

func pendingOrder() entities.WorkOrder {
	wo := entities.NewWorkOrder("wo-1", entities.Customer{ID: "c-1"}, entities.Mechanic{ID: "m-1"}, time.Now())
	wo.Services = []entities.WorkOrderService{{ServiceID: "s-1", Price: decimal.NewFromInt(50)}}
	wo.RecalculateTotal()
	return wo
}

func TestWorkOrderUseCase_InputValidation(t *testing.T) {
	uc := NewWorkOrderUseCase(nil, nil, nil)
	ctx := context.Background()

	cases := []struct {
		name string
		call func() error
		want error
	}{
		{"create blank customer", func() error {
			_, err := uc.Create(ctx, CreateWorkOrderInput{CustomerID: " ", MechanicID: "m-1"})
			return err
		}, ErrInvalidCustomerID},
		{"create blank mechanic", func() error {
			_, err := uc.Create(ctx, CreateWorkOrderInput{CustomerID: "c-1"})
			return err
		}, ErrInvalidMechanicID},
		{"create zero quantity", func() error {
			_, err := uc.Create(ctx, CreateWorkOrderInput{CustomerID: "c-1", MechanicID: "m-1", Parts: []PartItemInput{{PartID: "p-1"}}})
			return err
		}, ErrInvalidQuantity},
		{"create blank service id", func() error {
			_, err := uc.Create(ctx, CreateWorkOrderInput{CustomerID: "c-1", MechanicID: "m-1", ServiceIDs: []string{""}})
			return err
		}, ErrInvalidServiceID},
		{"create too many lines", func() error {
			in := CreateWorkOrderInput{CustomerID: "c-1", MechanicID: "m-1"}
			for i := 0; i < 60; i++ {
				in.ServiceIDs = append(in.ServiceIDs, fmt.Sprintf("s-%d", i))
			}
			for i := 0; i < MaxCreateLines-60+1; i++ {
				in.Parts = append(in.Parts, PartItemInput{PartID: fmt.Sprintf("p-%d", i), Quantity: 1})
			}
			_, err := uc.Create(ctx, in)
			return err
		}, ErrTooManyLines},
		{"get blank id", func() error {
			_, err := uc.GetByID(ctx, "  ")
			return err
		}, ErrInvalidWorkOrderID},
		{"reassign nothing", func() error {
			_, err := uc.Reassign(ctx, "wo-1", "", " ")
			return err
		}, ErrInvalidReassignment},
		{"conclude blank id", func() error {
			_, err := uc.Conclude(ctx, "")
			return err
		}, ErrInvalidWorkOrderID},
		{"add part negative quantity", func() error {
			_, err := uc.AddPart(ctx, "wo-1", PartItemInput{PartID: "p-1", Quantity: -2})
			return err
		}, ErrInvalidQuantity},
		{"remove part blank id", func() error {
			_, err := uc.RemovePart(ctx, "wo-1", "")
			return err
		}, ErrInvalidPartID},
		{"add service blank id", func() error {
			_, err := uc.AddService(ctx, "wo-1", "")
			return err
		}, ErrInvalidServiceID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !IsValidationError(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestWorkOrderUseCase_CreateCountsMergedPartsOnce(t *testing.T) {
	in := CreateWorkOrderInput{CustomerID: "c-1", MechanicID: "m-1"}
	for i := 0; i < MaxCreateLines; i++ {
		in.Parts = append(in.Parts, PartItemInput{PartID: fmt.Sprintf("p-%d", i), Quantity: 1})
	}
	in.Parts = append(in.Parts, PartItemInput{PartID: "p-0", Quantity: 2})

	got, err := normalizeCreateInput(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Parts) != MaxCreateLines+1 {
		t.Fatalf("expected %d part lines, got %d", MaxCreateLines+1, len(got.Parts))
	}
}

func TestWorkOrderUseCase_Create(t *testing.T) {
	t.Run("missing customer stops before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newWorkOrderMocks(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{}, nil)
		m.metrics.EXPECT().ObserveOperation("create", entities.ErrCustomerNotFound, gomock.Any())

		_, err := m.useCase().Create(context.Background(), CreateWorkOrderInput{CustomerID: "c-1", MechanicID: "m-1"})
		if !errors.Is(err, entities.ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("persists aggregate with computed total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newWorkOrderMocks(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1", Name: "Ana"}, nil)
		m.mechanics.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Mechanic{ID: "m-1"}, nil)
		m.services.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1", Price: decimal.RequireFromString("50.00")}, nil)
		m.parts.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{ID: "p-1", Price: decimal.RequireFromString("15.00")}, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkOrder{})).DoAndReturn(
			func(_ context.Context, wo entities.WorkOrder) error {
				if wo.ID != "wo-1" || wo.Status != entities.WorkOrderStatusPendente || wo.ConcludedAt != nil {
					t.Fatalf("unexpected work order: %+v", wo)
				}
				if len(wo.Services) != 1 || len(wo.Parts) != 1 || wo.Parts[0].Quantity != 2 {
					t.Fatalf("unexpected attachments: %+v %+v", wo.Services, wo.Parts)
				}
				return nil
			},
		)
		m.metrics.EXPECT().ObserveOperation("create", nil, gomock.Any())

		wo, err := m.useCase().Create(context.Background(), CreateWorkOrderInput{
			CustomerID: " c-1 ",
			MechanicID: "m-1",
			ServiceIDs: []string{"s-1"},
			Parts:      []PartItemInput{{PartID: "p-1", Quantity: 2}},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if wo.TotalValue.String() != "80" {
			t.Fatalf("expected total 80, got %s", wo.TotalValue)
		}
		if !wo.OpenedAt.Equal(time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected opened_at: %v", wo.OpenedAt)
		}
	})
}

func TestWorkOrderUseCase_AddService(t *testing.T) {
	t.Run("storage failure is propagated and total not written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newWorkOrderMocks(ctrl)
		dbErr := errors.New("db")

		m.orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(pendingOrder(), nil)
		m.services.EXPECT().GetByID(gomock.Any(), "s-2").Return(entities.Service{ID: "s-2", Price: decimal.NewFromInt(10)}, nil)
		m.orders.EXPECT().AttachService(gomock.Any(), "wo-1", "s-2").Return(dbErr)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
		m.metrics.EXPECT().ObserveOperation("add_service", dbErr, gomock.Any())

		_, err := m.useCase().AddService(context.Background(), "wo-1", "s-2")
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("already attached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newWorkOrderMocks(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(pendingOrder(), nil)
		m.services.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1", Price: decimal.NewFromInt(50)}, nil)
		m.metrics.EXPECT().ObserveOperation("add_service", gomock.Any(), gomock.Any())

		_, err := m.useCase().AddService(context.Background(), "wo-1", "s-1")
		if !errors.Is(err, entities.ErrServiceAlreadyAttached) {
			t.Fatalf("expected ErrServiceAlreadyAttached, got %v", err)
		}
	})

	t.Run("success updates total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newWorkOrderMocks(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(pendingOrder(), nil)
		m.services.EXPECT().GetByID(gomock.Any(), "s-2").Return(entities.Service{ID: "s-2", Price: decimal.NewFromInt(10)}, nil)
		gomock.InOrder(
			m.orders.EXPECT().AttachService(gomock.Any(), "wo-1", "s-2").Return(nil),
			m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, wo entities.WorkOrder) error {
				if wo.TotalValue.String() != "60" {
					t.Fatalf("expected total 60, got %s", wo.TotalValue)
				}
				return nil
			}),
		)
		m.metrics.EXPECT().ObserveOperation("add_service", nil, gomock.Any())

		wo, err := m.useCase().AddService(context.Background(), "wo-1", "s-2")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(wo.Services) != 2 {
			t.Fatalf("expected 2 services, got %d", len(wo.Services))
		}
	})
}

func TestWorkOrderUseCase_AddPartSavesMergedRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newWorkOrderMocks(ctrl)

	order := pendingOrder()
	order.Parts = []entities.WorkOrderPart{{PartID: "p-1", Price: decimal.NewFromInt(15), Quantity: 2}}
	order.RecalculateTotal()

	m.orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(order, nil)
	m.parts.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{ID: "p-1", Price: decimal.NewFromInt(15)}, nil)
	m.orders.EXPECT().SavePart(gomock.Any(), "wo-1", gomock.AssignableToTypeOf(entities.WorkOrderPart{})).DoAndReturn(
		func(_ context.Context, _ string, item entities.WorkOrderPart) error {
			if item.Quantity != 5 {
				t.Fatalf("expected merged quantity 5, got %d", item.Quantity)
			}
			return nil
		},
	)
	m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.metrics.EXPECT().ObserveOperation("add_part", nil, gomock.Any())

	wo, err := m.useCase().AddPart(context.Background(), "wo-1", PartItemInput{PartID: "p-1", Quantity: 3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if wo.TotalValue.String() != "125" {
		t.Fatalf("expected total 125, got %s", wo.TotalValue)
	}
}

func TestWorkOrderUseCase_Conclude(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newWorkOrderMocks(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "wo-9").Return(entities.WorkOrder{}, nil)
		m.metrics.EXPECT().ObserveOperation("conclude", entities.ErrWorkOrderNotFound, gomock.Any())

		_, err := m.useCase().Conclude(context.Background(), "wo-9")
		if !entities.IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("records concluded total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newWorkOrderMocks(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(pendingOrder(), nil)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, wo entities.WorkOrder) error {
			if wo.Status != entities.WorkOrderStatusConcluida || wo.ConcludedAt == nil {
				t.Fatalf("expected concluded order, got %+v", wo)
			}
			return nil
		})
		m.metrics.EXPECT().ObserveOperation("conclude", nil, gomock.Any())
		m.metrics.EXPECT().WorkOrderConcluded(50.0)

		if _, err := m.useCase().Conclude(context.Background(), "wo-1"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestWorkOrderUseCase_DeleteReturnsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newWorkOrderMocks(ctrl)

	m.orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(pendingOrder(), nil)
	m.orders.EXPECT().Delete(gomock.Any(), "wo-1").Return(nil)
	m.metrics.EXPECT().ObserveOperation("delete", nil, gomock.Any())

	wo, err := m.useCase().Delete(context.Background(), "wo-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if wo.ID != "wo-1" || len(wo.Services) != 1 {
		t.Fatalf("unexpected snapshot: %+v", wo)
	}
}

func TestWorkOrderUseCase_ListNormalizesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newWorkOrderMocks(ctrl)

	m.orders.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f interfaces.WorkOrderFilter) ([]entities.WorkOrder, error) {
			if f.Limit != interfaces.DefaultPageLimit || f.CustomerName != "ana" {
				t.Fatalf("unexpected filter: %+v", f)
			}
			return nil, nil
		},
	)
	m.metrics.EXPECT().ObserveOperation("list", nil, gomock.Any())

	orders, err := m.useCase().List(context.Background(), interfaces.WorkOrderFilter{CustomerName: " ana "})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", orders)
	}
}
