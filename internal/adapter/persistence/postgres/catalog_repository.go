package postgres

import (
	"context"

	"oficina_mecanica/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// catalogRepository serves the single-table records. E is the domain entity,
// M its GORM model.
type catalogRepository[E any, M any] struct {
	db        *gorm.DB
	toModel   func(E) M
	fromModel func(M) E
	id        func(E) string
	inUse     error
}

func (r *catalogRepository[E, M]) Create(ctx context.Context, e E) (E, error) {
	m := r.toModel(e)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		var zero E
		return zero, err
	}
	return r.fromModel(m), nil
}

func (r *catalogRepository[E, M]) GetByID(ctx context.Context, id string) (E, error) {
	var (
		m    M
		zero E
	)
	res := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&m)
	if res.Error != nil {
		return zero, res.Error
	}
	if res.RowsAffected == 0 {
		return zero, nil
	}
	return r.fromModel(m), nil
}

func (r *catalogRepository[E, M]) List(ctx context.Context, page interfaces.Page) ([]E, error) {
	page = page.Normalize()

	var models []M
	err := r.db.WithContext(ctx).
		Order("created_at ASC").Order("id ASC").
		Offset(page.Skip).Limit(page.Limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]E, 0, len(models))
	for _, m := range models {
		out = append(out, r.fromModel(m))
	}
	return out, nil
}

func (r *catalogRepository[E, M]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(new(M)).Count(&n).Error
	return n, err
}

// Update overwrites every column, zero values included.
func (r *catalogRepository[E, M]) Update(ctx context.Context, e E) (E, error) {
	var zero E
	m := r.toModel(e)
	res := r.db.WithContext(ctx).Model(new(M)).Where("id = ?", r.id(e)).Select("*").Updates(&m)
	if res.Error != nil {
		return zero, res.Error
	}
	if res.RowsAffected == 0 {
		return zero, nil
	}
	return r.fromModel(m), nil
}

func (r *catalogRepository[E, M]) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(M)).Error
	if isForeignKeyViolation(err) {
		return r.inUse
	}
	return err
}
