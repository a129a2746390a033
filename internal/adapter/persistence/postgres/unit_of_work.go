// Package postgres is the GORM-backed persistence driver.
package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies the embedded schema. Every statement is idempotent.
func Migrate(ctx context.Context, db *gorm.DB) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// UnitOfWork runs each call inside one database transaction.
type UnitOfWork struct {
	db *gorm.DB
}

var _ interfaces.IUnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos interfaces.IRepositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, newRepositories(tx))
	})
}

type repositories struct {
	customers  *catalogRepository[entities.Customer, customerModel]
	mechanics  *catalogRepository[entities.Mechanic, mechanicModel]
	services   *catalogRepository[entities.Service, serviceModel]
	parts      *catalogRepository[entities.Part, partModel]
	workOrders *workOrderRepository
}

func newRepositories(tx *gorm.DB) *repositories {
	return &repositories{
		customers: &catalogRepository[entities.Customer, customerModel]{
			db: tx, toModel: toCustomerModel, fromModel: fromCustomerModel,
			id:    func(c entities.Customer) string { return c.ID },
			inUse: entities.ErrCustomerInUse,
		},
		mechanics: &catalogRepository[entities.Mechanic, mechanicModel]{
			db: tx, toModel: toMechanicModel, fromModel: fromMechanicModel,
			id:    func(m entities.Mechanic) string { return m.ID },
			inUse: entities.ErrMechanicInUse,
		},
		services: &catalogRepository[entities.Service, serviceModel]{
			db: tx, toModel: toServiceModel, fromModel: fromServiceModel,
			id:    func(s entities.Service) string { return s.ID },
			inUse: entities.ErrServiceInUse,
		},
		parts: &catalogRepository[entities.Part, partModel]{
			db: tx, toModel: toPartModel, fromModel: fromPartModel,
			id:    func(p entities.Part) string { return p.ID },
			inUse: entities.ErrPartInUse,
		},
		workOrders: &workOrderRepository{db: tx},
	}
}

func (r *repositories) Customers() interfaces.ICustomerRepository   { return r.customers }
func (r *repositories) Mechanics() interfaces.IMechanicRepository   { return r.mechanics }
func (r *repositories) Services() interfaces.IServiceRepository     { return r.services }
func (r *repositories) Parts() interfaces.IPartRepository           { return r.parts }
func (r *repositories) WorkOrders() interfaces.IWorkOrderRepository { return r.workOrders }

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
