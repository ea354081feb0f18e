package store

import (
	"context"
	"time"

	"github.com/noah-isme/school-portal-api/pkg/kvstore"

	"github.com/noah-isme/school-portal-api/internal/models"
)

// CredentialStore keeps per-tenant login records in one global map keyed by
// tenant id. A tenant observed with no records is seeded with the three
// documented default accounts, one per role.
type CredentialStore struct {
	kv kvstore.Store
}

// NewCredentialStore creates a credential store over the given backend.
func NewCredentialStore(kv kvstore.Store) *CredentialStore {
	return &CredentialStore{kv: kv}
}

func (s *CredentialStore) load(ctx context.Context) (map[string][]models.User, error) {
	users := make(map[string][]models.User)
	if _, err := getJSON(ctx, s.kv, keyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *CredentialStore) save(ctx context.Context, users map[string][]models.User) error {
	return setJSON(ctx, s.kv, keyUsers, users)
}

// ListForTenant returns the tenant's records, secrets included, seeding the
// default accounts on first observation.
func (s *CredentialStore) ListForTenant(ctx context.Context, tenantID string) ([]models.User, error) {
	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	records := all[tenantID]
	if len(records) == 0 {
		records = defaultUsers(tenantID, time.Now().UTC())
		all[tenantID] = records
		if err := s.save(ctx, all); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Validate matches email and secret exactly within the tenant's records and
// returns the public identity on success.
func (s *CredentialStore) Validate(ctx context.Context, email, secret, tenantID string) (*models.UserInfo, bool, error) {
	records, err := s.ListForTenant(ctx, tenantID)
	if err != nil {
		return nil, false, err
	}
	for _, record := range records {
		if record.Email == email && record.Secret == secret {
			info := record.Public()
			return &info, true, nil
		}
	}
	return nil, false, nil
}

// Add appends a record under its owning tenant.
func (s *CredentialStore) Add(ctx context.Context, user models.User) error {
	// Seed first so a brand-new tenant keeps its default accounts alongside
	// the explicitly added one.
	if _, err := s.ListForTenant(ctx, user.TenantID); err != nil {
		return err
	}
	all, err := s.load(ctx)
	if err != nil {
		return err
	}
	all[user.TenantID] = append(all[user.TenantID], user)
	return s.save(ctx, all)
}

// Update replaces the record with the given id, reporting presence.
func (s *CredentialStore) Update(ctx context.Context, id string, user models.User) (bool, error) {
	all, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	records := all[user.TenantID]
	for i := range records {
		if records[i].ID == id {
			user.ID = id
			records[i] = user
			all[user.TenantID] = records
			return true, s.save(ctx, all)
		}
	}
	return false, nil
}

// Delete removes the record with the given id from the tenant. The caller
// guards against deleting the tenant's last record.
func (s *CredentialStore) Delete(ctx context.Context, id, tenantID string) (bool, error) {
	all, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	records := all[tenantID]
	remaining := make([]models.User, 0, len(records))
	found := false
	for _, record := range records {
		if record.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, record)
	}
	if !found {
		return false, nil
	}
	all[tenantID] = remaining
	return true, s.save(ctx, all)
}
