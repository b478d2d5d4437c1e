package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// The login tracker writes login_events through raw SQL, so the model
// that migrations create must expose exactly the columns the insert
// statement names.
func TestLoginEventSchemaMatchesRawInsert(t *testing.T) {
	s, err := schema.Parse(&LoginEvent{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	assert.Equal(t, "login_events", s.Table)

	insertColumns := []string{
		"id", "user_id", "logged_in_at", "method", "ip_address", "user_agent", "device_type",
	}
	for _, col := range insertColumns {
		assert.NotNil(t, s.LookUpField(col), "missing column %s", col)
	}
}
