// Package memory is an in-process persistence driver. It backs the tests and
// STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"sort"
	"sync"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"
)

type entry[T any] struct {
	seq   uint64
	value T
}

// table keeps insertion order through seq so that catalog listings are stable.
type table[T any] map[string]entry[T]

func (t table[T]) clone() table[T] {
	out := make(table[T], len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

func (t table[T]) sorted() []T {
	entries := make([]entry[T], 0, len(t))
	for _, e := range t {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.value)
	}
	return out
}

type partRow struct {
	partID   string
	quantity int
}

type state struct {
	seq uint64

	customers table[entities.Customer]
	mechanics table[entities.Mechanic]
	services  table[entities.Service]
	parts     table[entities.Part]
	orders    table[entities.WorkOrder]

	orderServices map[string][]string
	orderParts    map[string][]partRow
}

func newState() *state {
	return &state{
		customers:     table[entities.Customer]{},
		mechanics:     table[entities.Mechanic]{},
		services:      table[entities.Service]{},
		parts:         table[entities.Part]{},
		orders:        table[entities.WorkOrder]{},
		orderServices: map[string][]string{},
		orderParts:    map[string][]partRow{},
	}
}

// clone copies every table. Attachment slices are copied too since
// repositories replace them rather than mutate in place, but a shared
// backing array would still leak appends into the committed state.
func (s *state) clone() *state {
	out := &state{
		seq:           s.seq,
		customers:     s.customers.clone(),
		mechanics:     s.mechanics.clone(),
		services:      s.services.clone(),
		parts:         s.parts.clone(),
		orders:        s.orders.clone(),
		orderServices: make(map[string][]string, len(s.orderServices)),
		orderParts:    make(map[string][]partRow, len(s.orderParts)),
	}
	for k, v := range s.orderServices {
		out.orderServices[k] = append([]string(nil), v...)
	}
	for k, v := range s.orderParts {
		out.orderParts[k] = append([]partRow(nil), v...)
	}
	return out
}

func (s *state) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// Store serializes units of work behind one mutex. Each unit runs against a
// private copy of the state which replaces the committed state only when fn
// returns nil.
type Store struct {
	mu    sync.Mutex
	state *state
}

var _ interfaces.IUnitOfWork = (*Store)(nil)

func NewStore() *Store {
	return &Store{state: newState()}
}

func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, repos interfaces.IRepositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.clone()
	if err := fn(ctx, newRepositories(working)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = working
	return nil
}

type repositories struct {
	customers  *catalog[entities.Customer]
	mechanics  *catalog[entities.Mechanic]
	services   *catalog[entities.Service]
	parts      *catalog[entities.Part]
	workOrders *workOrderRepository
}

func newRepositories(st *state) *repositories {
	orders := &workOrderRepository{st: st}
	return &repositories{
		customers: &catalog[entities.Customer]{
			st: st, rows: st.customers,
			id:    func(c entities.Customer) string { return c.ID },
			inUse: guard(orders.ExistsByCustomerID, entities.ErrCustomerInUse),
		},
		mechanics: &catalog[entities.Mechanic]{
			st: st, rows: st.mechanics,
			id:    func(m entities.Mechanic) string { return m.ID },
			inUse: guard(orders.ExistsByMechanicID, entities.ErrMechanicInUse),
		},
		services: &catalog[entities.Service]{
			st: st, rows: st.services,
			id:    func(s entities.Service) string { return s.ID },
			inUse: guard(orders.ExistsByServiceID, entities.ErrServiceInUse),
		},
		parts: &catalog[entities.Part]{
			st: st, rows: st.parts,
			id:    func(p entities.Part) string { return p.ID },
			inUse: guard(orders.ExistsByPartID, entities.ErrPartInUse),
		},
		workOrders: orders,
	}
}

func (r *repositories) Customers() interfaces.ICustomerRepository   { return r.customers }
func (r *repositories) Mechanics() interfaces.IMechanicRepository   { return r.mechanics }
func (r *repositories) Services() interfaces.IServiceRepository     { return r.services }
func (r *repositories) Parts() interfaces.IPartRepository           { return r.parts }
func (r *repositories) WorkOrders() interfaces.IWorkOrderRepository { return r.workOrders }

func guard(exists func(context.Context, string) (bool, error), inUse error) func(ctx context.Context, id string) error {
	return func(ctx context.Context, id string) error {
		ok, err := exists(ctx, id)
		if err != nil {
			return err
		}
		if ok {
			return inUse
		}
		return nil
	}
}
