package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleCapabilities(t *testing.T) {
	cases := []struct {
		role          Role
		createEntries bool
		viewLogs      bool
		manageUsers   bool
	}{
		{RoleViewer, true, false, false},
		{RoleAdmin, false, true, false},
		{RoleGod, true, true, true},
	}

	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			assert.Equal(t, tc.createEntries, tc.role.CanCreateEntries())
			assert.Equal(t, tc.viewLogs, tc.role.CanViewLogs())
			assert.Equal(t, tc.viewLogs, tc.role.CanExportLogs())
			assert.Equal(t, tc.manageUsers, tc.role.CanManageUsers())
		})
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.Valid(), "role %q", r)
	}
	assert.False(t, Role("root").Valid())
	assert.False(t, Role("").Valid())
}
