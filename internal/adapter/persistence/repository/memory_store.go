package repository

import (
	"context"
	"fmt"
	"sync"

	"revenda_veiculos/internal/domain/entities"
	"revenda_veiculos/internal/usecase/interfaces"
)

// MemoryStore keeps every table in process memory. It enforces the same
// unique guards and version checks as the DynamoDB unit of work, so it can
// stand in for it in local runs and tests.
//
// Entities are stored as copies; callers never share pointers with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	vehicles map[string]entities.Vehicle
	clients  map[string]entities.Client
	payments map[string]entities.Payment
	sales    map[string]entities.Sale
	uniques  map[string]string
}

var _ interfaces.IUnitOfWork = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		vehicles: make(map[string]entities.Vehicle),
		clients:  make(map[string]entities.Client),
		payments: make(map[string]entities.Payment),
		sales:    make(map[string]entities.Sale),
		uniques:  make(map[string]string),
	}
}

func (s *MemoryStore) Vehicles() *MemoryVehicleRepository { return &MemoryVehicleRepository{s} }
func (s *MemoryStore) Clients() *MemoryClientRepository { return &MemoryClientRepository{s} }
func (s *MemoryStore) Sales() *MemorySaleRepository { return &MemorySaleRepository{s} }

// Commit validates every change against the current state before applying
// any of them.
func (s *MemoryStore) Commit(ctx context.Context, changes entities.ChangeSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if changes.IsEmpty() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Guard claims made earlier in the same change set.
	claimed := map[string]string{}
	for _, ch := range changes.Changes() {
		if err := s.validate(ch, claimed); err != nil {
			return err
		}
	}

	bumpVersions(changes)
	for _, ch := range changes.Changes() {
		s.apply(ch)
	}
	return nil
}

func (s *MemoryStore) storedVersion(entity any) (int, bool) {
	switch e := entity.(type) {
	case *entities.Vehicle:
		v, ok := s.vehicles[e.ID]
		return v.Version, ok
	case *entities.Client:
		c, ok := s.clients[e.ID]
		return c.Version, ok
	case *entities.Payment:
		p, ok := s.payments[e.ID]
		return p.Version, ok
	case *entities.Sale:
		sl, ok := s.sales[e.ID]
		return sl.Version, ok
	}
	return 0, false
}

func (s *MemoryStore) validate(ch entities.Change, claimed map[string]string) error {
	base, err := entityBase(ch.Entity)
	if err != nil {
		return err
	}
	version, exists := s.storedVersion(ch.Entity)

	switch ch.Kind {
	case entities.ChangeInsert:
		if exists {
			return entities.ErrDuplicateKey
		}
	case entities.ChangeUpdate, entities.ChangeCheck:
		if !exists || version != base.Version {
			return entities.ErrConcurrentUpdate
		}
	default:
		return fmt.Errorf("unsupported change kind %s", ch.Kind)
	}

	claim := func(key, owner string, reentrant bool) error {
		current, taken := claimed[key]
		if !taken {
			current, taken = s.uniques[key]
		}
		if taken && !(reentrant && current == owner) {
			return entities.ErrDuplicateKey
		}
		claimed[key] = owner
		return nil
	}

	switch e := ch.Entity.(type) {
	case *entities.Client:
		if ch.Kind == entities.ChangeInsert {
			return claim(clientCpfKey(e.Cpf), e.ID, false)
		}
	case *entities.Payment:
		if ch.Kind == entities.ChangeInsert {
			return claim(paymentCodeKey(e.Code), e.SaleID, false)
		}
	case *entities.Sale:
		switch {
		case ch.Kind == entities.ChangeInsert:
			return claim(saleVehicleKey(e.VehicleID), e.ID, false)
		case ch.Kind == entities.ChangeUpdate && !e.Canceled:
			return claim(saleVehicleKey(e.VehicleID), e.ID, true)
		}
	}
	return nil
}

func (s *MemoryStore) apply(ch entities.Change) {
	if ch.Kind == entities.ChangeCheck {
		return
	}
	switch e := ch.Entity.(type) {
	case *entities.Vehicle:
		s.vehicles[e.ID] = *e
	case *entities.Client:
		s.clients[e.ID] = *e
		s.uniques[clientCpfKey(e.Cpf)] = e.ID
	case *entities.Payment:
		s.payments[e.ID] = *e
		s.uniques[paymentCodeKey(e.Code)] = e.SaleID
	case *entities.Sale:
		stored := *e
		stored.Vehicle, stored.Client, stored.Payment = nil, nil, nil
		s.sales[e.ID] = stored

		key := saleVehicleKey(e.VehicleID)
		if !e.Canceled {
			s.uniques[key] = e.ID
		} else if s.uniques[key] == e.ID {
			delete(s.uniques, key)
		}
	}
}

// MemoryVehicleRepository reads vehicles from a MemoryStore.
type MemoryVehicleRepository struct{ s *MemoryStore }

var _ interfaces.IVehicleRepository = (*MemoryVehicleRepository)(nil)

func (r *MemoryVehicleRepository) GetByID(_ context.Context, id string) (*entities.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.vehicles[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *MemoryVehicleRepository) ListByStatus(_ context.Context, status entities.VehicleStatus) ([]*entities.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entities.Vehicle, 0)
	for _, v := range r.s.vehicles {
		if v.Status == status {
			out = append(out, &v)
		}
	}
	return out, nil
}

// MemoryClientRepository reads clients from a MemoryStore.
type MemoryClientRepository struct{ s *MemoryStore }

var _ interfaces.IClientRepository = (*MemoryClientRepository)(nil)

func (r *MemoryClientRepository) GetByID(_ context.Context, id string) (*entities.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *MemoryClientRepository) GetByCpf(ctx context.Context, cpf entities.Cpf) (*entities.Client, error) {
	r.s.mu.RLock()
	id, ok := r.s.uniques[clientCpfKey(cpf)]
	r.s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// MemorySaleRepository reads hydrated sales from a MemoryStore.
type MemorySaleRepository struct{ s *MemoryStore }

var _ interfaces.ISaleRepository = (*MemorySaleRepository)(nil)

func (r *MemorySaleRepository) GetByID(_ context.Context, id string) (*entities.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.load(id)
}

func (r *MemorySaleRepository) GetByPaymentCode(_ context.Context, code string) (*entities.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.uniques[paymentCodeKey(code)]
	if !ok {
		return nil, nil
	}
	return r.load(id)
}

func (r *MemorySaleRepository) load(id string) (*entities.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	vehicle, vok := r.s.vehicles[sale.VehicleID]
	client, cok := r.s.clients[sale.ClientID]
	payment, pok := r.s.payments[sale.PaymentID]
	if !vok || !cok || !pok {
		return nil, fmt.Errorf("sale %s: dangling reference", id)
	}
	sale.Vehicle, sale.Client, sale.Payment = &vehicle, &client, &payment
	return &sale, nil
}
