package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestModelsParseAsGormSchemas(t *testing.T) {
	for _, model := range []interface{}{&User{}, &Category{}, &Genre{}, &Title{}, &Review{}, &Comment{}} {
		parsed, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err, "%T", model)
		assert.NotEmpty(t, parsed.Table)
	}
}

func TestUserRoleColumn(t *testing.T) {
	parsed, err := schema.Parse(&User{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	role := parsed.LookUpField("Role")
	require.NotNil(t, role)
	assert.True(t, role.NotNull)
	assert.False(t, role.HasDefaultValue)
	assert.Equal(t, schema.DataType("string"), role.DataType)
}
