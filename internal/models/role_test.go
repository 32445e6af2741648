package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleRank(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleModerator))
	assert.True(t, RoleModerator.AtLeast(RoleModerator))
	assert.False(t, RoleUser.AtLeast(RoleModerator))
}

func TestParseRole(t *testing.T) {
	for i, name := range RoleChoices {
		role, err := ParseRole(name)
		require.NoError(t, err)
		assert.Equal(t, Role(i), role)
		assert.Equal(t, name, role.String())
	}

	_, err := ParseRole("superadmin")
	assert.Error(t, err)
}

func TestRoleJSONUsesNames(t *testing.T) {
	data, err := json.Marshal(struct {
		Role Role `json:"role"`
	}{RoleModerator})
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"moderator"}`, string(data))

	var out struct {
		Role Role `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"role":"admin"}`), &out))
	assert.Equal(t, RoleAdmin, out.Role)

	assert.Error(t, json.Unmarshal([]byte(`{"role":"root"}`), &out))
}

func TestRoleScanValue(t *testing.T) {
	v, err := RoleAdmin.Value()
	require.NoError(t, err)
	assert.Equal(t, "admin", v)

	var r Role
	require.NoError(t, r.Scan([]byte("moderator")))
	assert.Equal(t, RoleModerator, r)
	require.NoError(t, r.Scan(nil))
	assert.Equal(t, RoleUser, r)
	assert.Error(t, r.Scan(42))

	_, err = Role(9).Value()
	assert.Error(t, err)
}

func TestUserAdminFlags(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.True(t, (&User{Role: RoleUser, IsSuperuser: true}).IsAdmin())
	assert.False(t, (&User{Role: RoleModerator}).IsAdmin())
	assert.True(t, (&User{Role: RoleModerator}).IsModerator())
}
