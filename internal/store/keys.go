package store

// Persisted key layout. Global keys are shared across tenants; content keys
// carry the owning tenant id as a suffix so switching the active tenant can
// never surface another tenant's entities.
const (
	keyTenants      = "schools_list"
	keyActiveTenant = "active_school_id"
	keyUsers        = "school_users"
	keySession      = "auth_token"

	brandingKeyPrefix  = "school_data:"
	surveysKeyPrefix   = "surveys_data:"
	filesKeyPrefix     = "files_data:"
	responsesKeyPrefix = "survey_responses:"
)

func brandingKey(tenantID string) string  { return brandingKeyPrefix + tenantID }
func surveysKey(tenantID string) string   { return surveysKeyPrefix + tenantID }
func filesKey(tenantID string) string     { return filesKeyPrefix + tenantID }
func responsesKey(tenantID string) string { return responsesKeyPrefix + tenantID }
