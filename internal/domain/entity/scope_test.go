package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeFor(t *testing.T) {
	tests := []struct {
		name     string
		user     *User
		callerID string
		want     Scope
	}{
		{
			name:     "admin",
			user:     &User{ID: "admin-1", Role: RoleAdmin},
			callerID: "admin-1",
			want:     Scope{Admin: true},
		},
		{
			name:     "resident",
			user:     &User{ID: "resident-1", Role: RoleResident},
			callerID: "resident-1",
			want:     Scope{OwnerID: "resident-1"},
		},
		{
			name:     "unknown user",
			user:     nil,
			callerID: "ghost",
			want:     Scope{OwnerID: "ghost"},
		},
		{
			name:     "unrecognised role fails closed",
			user:     &User{ID: "u-1", Role: Role("superuser")},
			callerID: "u-1",
			want:     Scope{OwnerID: "u-1"},
		},
		{
			name:     "role match is case sensitive",
			user:     &User{ID: "u-2", Role: Role("Admin")},
			callerID: "u-2",
			want:     Scope{OwnerID: "u-2"},
		},
		{
			name:     "admin record for a different id",
			user:     &User{ID: "admin-1", Role: RoleAdmin},
			callerID: "resident-1",
			want:     Scope{OwnerID: "resident-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScopeFor(tt.user, tt.callerID))
		})
	}
}

func TestScope_Visible(t *testing.T) {
	assert.True(t, Scope{Admin: true}.Visible("anyone"))
	assert.True(t, Scope{Admin: true}.Visible(""))
	assert.True(t, Scope{OwnerID: "resident-1"}.Visible("resident-1"))
	assert.False(t, Scope{OwnerID: "resident-1"}.Visible("resident-2"))
	assert.False(t, Scope{}.Visible(""))
}

func TestSession_Scope(t *testing.T) {
	assert.Equal(t, Scope{Admin: true}, Session{UserID: "admin-1", Role: RoleAdmin}.Scope())
	assert.Equal(t, Scope{OwnerID: "resident-1"}, Session{UserID: "resident-1", Role: RoleResident}.Scope())
	assert.Equal(t, Scope{OwnerID: "x"}, Session{UserID: "x", Role: "root"}.Scope())
}

func TestFilter_KeepsOrder(t *testing.T) {
	units := []*Unit{
		{ID: "a", ResidentID: "r1"},
		{ID: "b"},
		{ID: "c", ResidentID: "r1"},
	}
	owner := func(u *Unit) string { return u.ResidentID }

	got := Filter(Scope{OwnerID: "r1"}, units, owner)
	assert.Equal(t, []*Unit{units[0], units[2]}, got)

	assert.Equal(t, units, Filter(Scope{Admin: true}, units, owner))
	assert.Empty(t, Filter(Scope{OwnerID: "r2"}, units, owner))
}
