package store

import (
	"context"
	"fmt"
	"time"

	"github.com/noah-isme/school-portal-api/pkg/kvstore"

	"github.com/noah-isme/school-portal-api/internal/models"
)

// TenantStore holds the tenant registry and the active-tenant choice. The
// registry is seeded with one default tenant on first read so downstream
// stores always have an owning tenant to key by.
type TenantStore struct {
	kv kvstore.Store
}

// NewTenantStore creates a registry over the given backend.
func NewTenantStore(kv kvstore.Store) *TenantStore {
	return &TenantStore{kv: kv}
}

// List returns all tenants in insertion order, seeding the default tenant
// when the registry is empty.
func (s *TenantStore) List(ctx context.Context) ([]models.Tenant, error) {
	var tenants []models.Tenant
	ok, err := getJSON(ctx, s.kv, keyTenants, &tenants)
	if err != nil {
		return nil, err
	}
	if !ok || len(tenants) == 0 {
		seeded := defaultTenant(time.Now().UTC())
		tenants = []models.Tenant{seeded}
		if err := setJSON(ctx, s.kv, keyTenants, tenants); err != nil {
			return nil, err
		}
	}
	return tenants, nil
}

// GetByID returns the tenant with the given id, reporting presence.
func (s *TenantStore) GetByID(ctx context.Context, id string) (*models.Tenant, bool, error) {
	tenants, err := s.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range tenants {
		if tenants[i].ID == id {
			return &tenants[i], true, nil
		}
	}
	return nil, false, nil
}

// ActiveID returns the persisted active-tenant id, defaulting to the first
// seeded tenant when unset.
func (s *TenantStore) ActiveID(ctx context.Context) (string, error) {
	id, ok, err := s.kv.Get(ctx, keyActiveTenant)
	if err != nil {
		return "", err
	}
	if ok && id != "" {
		return id, nil
	}

	tenants, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	first := tenants[0].ID
	if err := s.kv.Set(ctx, keyActiveTenant, first); err != nil {
		return "", err
	}
	return first, nil
}

// SetActiveID persists the active-tenant choice.
func (s *TenantStore) SetActiveID(ctx context.Context, id string) error {
	return s.kv.Set(ctx, keyActiveTenant, id)
}

// Create appends a new tenant to the registry.
func (s *TenantStore) Create(ctx context.Context, tenant models.Tenant) error {
	tenants, err := s.List(ctx)
	if err != nil {
		return err
	}
	for _, existing := range tenants {
		if existing.ID == tenant.ID {
			return fmt.Errorf("tenant %s already exists", tenant.ID)
		}
	}
	tenants = append(tenants, tenant)
	return setJSON(ctx, s.kv, keyTenants, tenants)
}

// Update replaces the tenant with the given id, reporting presence.
func (s *TenantStore) Update(ctx context.Context, id string, tenant models.Tenant) (bool, error) {
	tenants, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for i := range tenants {
		if tenants[i].ID == id {
			tenant.ID = id
			tenants[i] = tenant
			return true, setJSON(ctx, s.kv, keyTenants, tenants)
		}
	}
	return false, nil
}

// Delete removes the tenant with the given id. When the deleted tenant was
// active, the first remaining tenant becomes active. The caller guards
// against deleting the last tenant.
func (s *TenantStore) Delete(ctx context.Context, id string) (bool, error) {
	tenants, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	remaining := make([]models.Tenant, 0, len(tenants))
	found := false
	for _, tenant := range tenants {
		if tenant.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, tenant)
	}
	if !found {
		return false, nil
	}
	if err := setJSON(ctx, s.kv, keyTenants, remaining); err != nil {
		return false, err
	}

	activeID, err := s.ActiveID(ctx)
	if err != nil {
		return false, err
	}
	if activeID == id && len(remaining) > 0 {
		if err := s.SetActiveID(ctx, remaining[0].ID); err != nil {
			return false, err
		}
	}
	return true, nil
}
