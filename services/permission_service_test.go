package services

import (
	"context"
	"testing"

	"hotel-saas-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEffectivePermissionsUnionsRoleSets(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPermissionService(db)

	admin := createUser(t, db, "owner@h1.test", models.RoleAdmin, nil)
	hotel := createHotel(t, db, "Hotel One", admin.ID)
	staff := createUser(t, db, "staff@h1.test", models.RoleUser, &hotel.ID)

	front := createRoleWithPerms(t, db, "Front Desk", &hotel.ID, "booking_view", "booking_create", "room_view")
	cleaning := createRoleWithPerms(t, db, "Cleaning", &hotel.ID, "room_view", "room_update")
	assignRole(t, db, staff.ID, front.ID, hotel.ID)
	assignRole(t, db, staff.ID, cleaning.ID, hotel.ID)

	perms, err := svc.ResolveEffectivePermissions(context.Background(), staff.ID, &hotel.ID)
	require.NoError(t, err)

	assert.False(t, perms.All)
	// duplicates across roles collapse into a sorted union
	assert.Equal(t, []string{"booking_create", "booking_view", "room_update", "room_view"}, perms.Names)
	assert.True(t, perms.Has("room_update"))
	assert.False(t, perms.Has("room_delete"))
}

func TestResolveEffectivePermissionsSuperadminSentinel(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPermissionService(db)

	super := createUser(t, db, "root@saas.test", models.RoleSuperAdmin, nil)

	perms, err := svc.ResolveEffectivePermissions(context.Background(), super.ID, nil)
	require.NoError(t, err)

	assert.True(t, perms.All)
	assert.Empty(t, perms.Names)
	assert.True(t, perms.Has("anything_at_all"))
}

func TestResolveEffectivePermissionsRequiresHotelContext(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPermissionService(db)

	staff := createUser(t, db, "staff@nohotel.test", models.RoleUser, nil)

	_, err := svc.ResolveEffectivePermissions(context.Background(), staff.ID, nil)
	assert.ErrorIs(t, err, ErrHotelContextRequired)
}

func TestResolveEffectivePermissionsNoRoleAssigned(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPermissionService(db)

	admin := createUser(t, db, "owner@h2.test", models.RoleAdmin, nil)
	hotel := createHotel(t, db, "Hotel Two", admin.ID)
	staff := createUser(t, db, "lonely@h2.test", models.RoleUser, &hotel.ID)

	_, err := svc.ResolveEffectivePermissions(context.Background(), staff.ID, &hotel.ID)
	assert.ErrorIs(t, err, ErrNoRoleAssigned)
}

func TestResolveEffectivePermissionsUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPermissionService(db)

	_, err := svc.ResolveEffectivePermissions(context.Background(), 99999, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveEffectivePermissionsScopedPerHotel(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPermissionService(db)

	adminA := createUser(t, db, "owner@ha.test", models.RoleAdmin, nil)
	adminB := createUser(t, db, "owner@hb.test", models.RoleAdmin, nil)
	hotelA := createHotel(t, db, "Hotel A", adminA.ID)
	hotelB := createHotel(t, db, "Hotel B", adminB.ID)

	staff := createUser(t, db, "shared@staff.test", models.RoleUser, &hotelA.ID)
	roleA := createRoleWithPerms(t, db, "Desk A", &hotelA.ID, "booking_view")
	assignRole(t, db, staff.ID, roleA.ID, hotelA.ID)

	perms, err := svc.ResolveEffectivePermissions(context.Background(), staff.ID, &hotelA.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"booking_view"}, perms.Names)

	// same user, other hotel: no assignment there
	_, err = svc.ResolveEffectivePermissions(context.Background(), staff.ID, &hotelB.ID)
	assert.ErrorIs(t, err, ErrNoRoleAssigned)
}
