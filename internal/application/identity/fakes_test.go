package identity_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/personal-api/internal/domain"
	"github.com/jhoicas/personal-api/internal/domain/entity"
	"github.com/jhoicas/personal-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: mismo comportamiento observable que los adaptadores de
// postgres (nil sin error cuando no existe, sentinelas de conflicto en los
// índices únicos, rollback del TxRunner restaurando el estado previo).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	identities  map[string]*entity.Identity   // por ID
	employments map[string]*entity.Employment // por IdentityID
	roles       map[string]*entity.Role       // por nombre
	stores      map[string]*entity.Store      // por código
	assignments map[string][]string           // identityID -> roleIDs

	// forcedCodeCollisions hace fallar los próximos N inserts de empleo con
	// ErrCodigoEmpleadoEnUso, emulando la carrera por el índice único.
	forcedCodeCollisions int
	txAttempts           int
}

func newMemStore() *memStore {
	return &memStore{
		identities:  map[string]*entity.Identity{},
		employments: map[string]*entity.Employment{},
		roles:       map[string]*entity.Role{},
		stores:      map[string]*entity.Store{},
		assignments: map[string][]string{},
	}
}

func (m *memStore) snapshot() *memStore {
	c := newMemStore()
	for k, v := range m.identities {
		cp := *v
		c.identities[k] = &cp
	}
	for k, v := range m.employments {
		cp := *v
		c.employments[k] = &cp
	}
	for k, v := range m.roles {
		cp := *v
		c.roles[k] = &cp
	}
	for k, v := range m.stores {
		cp := *v
		c.stores[k] = &cp
	}
	for k, v := range m.assignments {
		c.assignments[k] = append([]string(nil), v...)
	}
	return c
}

func (m *memStore) restore(s *memStore) {
	m.identities = s.identities
	m.employments = s.employments
	m.roles = s.roles
	m.stores = s.stores
	m.assignments = s.assignments
}

// ── IdentityRepository ────────────────────────────────────────────────────────

type memIdentityRepo struct{ s *memStore }

var _ repository.IdentityRepository = (*memIdentityRepo)(nil)

func (r *memIdentityRepo) Create(_ context.Context, i *entity.Identity) error {
	for _, existing := range r.s.identities {
		if existing.Email == i.Email {
			return domain.ErrEmailEnUso
		}
		if existing.DocumentNumber != nil && i.DocumentNumber != nil && *existing.DocumentNumber == *i.DocumentNumber {
			return domain.ErrDocumentoEnUso
		}
	}
	cp := *i
	r.s.identities[i.ID] = &cp
	return nil
}

func (r *memIdentityRepo) GetByID(_ context.Context, id string) (*entity.Identity, error) {
	if i, ok := r.s.identities[id]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, nil
}

func (r *memIdentityRepo) GetByEmail(_ context.Context, email string) (*entity.Identity, error) {
	for _, i := range r.s.identities {
		if i.Email == email {
			cp := *i
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memIdentityRepo) GetByDocument(_ context.Context, documentNumber string) (*entity.Identity, error) {
	for _, i := range r.s.identities {
		if i.DocumentNumber != nil && *i.DocumentNumber == documentNumber {
			cp := *i
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memIdentityRepo) Update(_ context.Context, i *entity.Identity) error {
	if _, ok := r.s.identities[i.ID]; !ok {
		return domain.ErrIdentidadNoEncontrada
	}
	cp := *i
	r.s.identities[i.ID] = &cp
	return nil
}

func (r *memIdentityRepo) UpdateStatus(_ context.Context, id string, active bool, when time.Time) error {
	i, ok := r.s.identities[id]
	if !ok {
		return domain.ErrIdentidadNoEncontrada
	}
	i.IsActive = active
	i.UpdatedAt = when
	return nil
}

func (r *memIdentityRepo) List(_ context.Context, filter repository.IdentityFilter, limit, offset int, before *repository.CursorKey) ([]*entity.Identity, error) {
	var all []*entity.Identity
	for _, i := range r.s.identities {
		if filter.IdentityType != "" && i.IdentityType != filter.IdentityType {
			continue
		}
		if filter.Email != "" && i.Email != filter.Email {
			continue
		}
		if filter.DocumentNumber != "" && (i.DocumentNumber == nil || *i.DocumentNumber != filter.DocumentNumber) {
			continue
		}
		if filter.City != "" && i.Address.City != filter.City {
			continue
		}
		if filter.State != "" && i.Address.State != filter.State {
			continue
		}
		if filter.StoreID != "" && (i.StoreID == nil || *i.StoreID != filter.StoreID) {
			continue
		}
		if filter.Name != "" && !strings.Contains(i.FirstName, filter.Name) && !strings.Contains(i.LastName, filter.Name) {
			continue
		}
		if filter.IsActive != nil && i.IsActive != *filter.IsActive {
			continue
		}
		cp := *i
		all = append(all, &cp)
	}
	sort.Slice(all, func(a, b int) bool {
		if !all[a].CreatedAt.Equal(all[b].CreatedAt) {
			return all[a].CreatedAt.After(all[b].CreatedAt)
		}
		return all[a].ID > all[b].ID
	})
	if before != nil {
		// Keyset: estrictamente posteriores al cursor en el orden DESC.
		var page []*entity.Identity
		for _, i := range all {
			if i.CreatedAt.Before(before.CreatedAt) || (i.CreatedAt.Equal(before.CreatedAt) && i.ID < before.ID) {
				page = append(page, i)
			}
		}
		all = page
	} else if offset > 0 {
		if offset >= len(all) {
			return nil, nil
		}
		all = all[offset:]
	}
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// ── EmploymentRepository ──────────────────────────────────────────────────────

type memEmploymentRepo struct{ s *memStore }

var _ repository.EmploymentRepository = (*memEmploymentRepo)(nil)

func (r *memEmploymentRepo) Create(_ context.Context, e *entity.Employment) error {
	if r.s.forcedCodeCollisions > 0 {
		r.s.forcedCodeCollisions--
		return domain.ErrCodigoEmpleadoEnUso
	}
	for _, existing := range r.s.employments {
		if existing.EmployeeCode == e.EmployeeCode {
			return domain.ErrCodigoEmpleadoEnUso
		}
	}
	cp := *e
	r.s.employments[e.IdentityID] = &cp
	return nil
}

func (r *memEmploymentRepo) GetByIdentityID(_ context.Context, identityID string) (*entity.Employment, error) {
	if e, ok := r.s.employments[identityID]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (r *memEmploymentRepo) LastCodeWithPrefix(_ context.Context, prefix string) (string, error) {
	last := ""
	for _, e := range r.s.employments {
		if strings.HasPrefix(e.EmployeeCode, prefix) && e.EmployeeCode > last {
			last = e.EmployeeCode
		}
	}
	return last, nil
}

func (r *memEmploymentRepo) Update(_ context.Context, e *entity.Employment) error {
	if _, ok := r.s.employments[e.IdentityID]; !ok {
		return domain.ErrEmpleoNoEncontrado
	}
	cp := *e
	r.s.employments[e.IdentityID] = &cp
	return nil
}

func (r *memEmploymentRepo) UpdateStatusByIdentityID(_ context.Context, identityID string, active bool, when time.Time) error {
	e, ok := r.s.employments[identityID]
	if !ok {
		return domain.ErrEmpleoNoEncontrado
	}
	e.IsActive = active
	e.UpdatedAt = when
	return nil
}

func (r *memEmploymentRepo) ListByIdentityIDs(_ context.Context, identityIDs []string) ([]*entity.Employment, error) {
	var list []*entity.Employment
	for _, id := range identityIDs {
		if e, ok := r.s.employments[id]; ok {
			cp := *e
			list = append(list, &cp)
		}
	}
	return list, nil
}

// ── RoleRepository / RoleAssignmentRepository ─────────────────────────────────

type memRoleRepo struct{ s *memStore }

var _ repository.RoleRepository = (*memRoleRepo)(nil)

func (r *memRoleRepo) Create(_ context.Context, role *entity.Role) error {
	cp := *role
	r.s.roles[role.Name] = &cp
	return nil
}

func (r *memRoleRepo) GetByID(_ context.Context, id string) (*entity.Role, error) {
	for _, role := range r.s.roles {
		if role.ID == id {
			cp := *role
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRoleRepo) GetByName(_ context.Context, name string) (*entity.Role, error) {
	if role, ok := r.s.roles[name]; ok {
		cp := *role
		return &cp, nil
	}
	return nil, nil
}

type memAssignmentRepo struct{ s *memStore }

var _ repository.RoleAssignmentRepository = (*memAssignmentRepo)(nil)

func (r *memAssignmentRepo) Create(_ context.Context, a *entity.RoleAssignment) error {
	r.s.assignments[a.IdentityID] = append(r.s.assignments[a.IdentityID], a.RoleID)
	return nil
}

func (r *memAssignmentRepo) DeleteByIdentityID(_ context.Context, identityID string) error {
	delete(r.s.assignments, identityID)
	return nil
}

func (r *memAssignmentRepo) RoleNamesByIdentityIDs(_ context.Context, identityIDs []string) (map[string][]string, error) {
	result := map[string][]string{}
	for _, id := range identityIDs {
		for _, roleID := range r.s.assignments[id] {
			for _, role := range r.s.roles {
				if role.ID == roleID {
					result[id] = append(result[id], role.Name)
				}
			}
		}
	}
	return result, nil
}

// ── StoreRepository ───────────────────────────────────────────────────────────

type memStoreRepo struct{ s *memStore }

var _ repository.StoreRepository = (*memStoreRepo)(nil)

func (r *memStoreRepo) Create(_ context.Context, store *entity.Store) error {
	cp := *store
	r.s.stores[store.Code] = &cp
	return nil
}

func (r *memStoreRepo) GetByID(_ context.Context, id string) (*entity.Store, error) {
	for _, store := range r.s.stores {
		if store.ID == id {
			cp := *store
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memStoreRepo) GetByCode(_ context.Context, code string) (*entity.Store, error) {
	if store, ok := r.s.stores[code]; ok {
		cp := *store
		return &cp, nil
	}
	return nil, nil
}

func (r *memStoreRepo) ListByIDs(_ context.Context, ids []string) ([]*entity.Store, error) {
	var list []*entity.Store
	for _, id := range ids {
		for _, store := range r.s.stores {
			if store.ID == id {
				cp := *store
				list = append(list, &cp)
			}
		}
	}
	return list, nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// memTxRunner emula la semántica transaccional: si el callback falla se
// restaura el estado previo completo (rollback).
type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(_ context.Context, fn func(
	identityRepo repository.IdentityRepository,
	employmentRepo repository.EmploymentRepository,
	assignmentRepo repository.RoleAssignmentRepository,
	roleRepo repository.RoleRepository,
	storeRepo repository.StoreRepository,
) error) error {
	t.s.txAttempts++
	snap := t.s.snapshot()
	err := fn(
		&memIdentityRepo{s: t.s},
		&memEmploymentRepo{s: t.s},
		&memAssignmentRepo{s: t.s},
		&memRoleRepo{s: t.s},
		&memStoreRepo{s: t.s},
	)
	if err != nil {
		t.s.restore(snap)
	}
	return err
}
