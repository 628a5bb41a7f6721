package services

import (
	"context"
	"testing"

	"hotel-saas-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, NewPermissionService(db))

	admin := createUser(t, db, "owner@auth.test", models.RoleAdmin, nil)
	hotel := createHotel(t, db, "Auth Hotel", admin.ID)

	user, err := svc.Register(context.Background(), RegisterInput{
		FullName: "New Staff",
		Email:    "Staff@Auth.Test", // normalized to lower case
		Password: "sup3rsecret",
		Role:     models.RoleUser,
		HotelID:  &hotel.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "staff@auth.test", user.Email)
	assert.NotEqual(t, "sup3rsecret", user.Password, "password must be stored hashed")

	// staff with no role assignment still logs in with empty permissions
	loggedIn, perms, err := svc.Login(context.Background(), "staff@auth.test", "sup3rsecret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.False(t, perms.All)
	assert.Empty(t, perms.Names)
}

func TestLoginResolvesPermissionsIntoSession(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, NewPermissionService(db))

	admin := createUser(t, db, "owner@auth2.test", models.RoleAdmin, nil)
	hotel := createHotel(t, db, "Auth Hotel 2", admin.ID)

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:    "desk@auth2.test",
		Password: "sup3rsecret",
		Role:     models.RoleUser,
		HotelID:  &hotel.ID,
	})
	require.NoError(t, err)

	role := createRoleWithPerms(t, db, "Desk", &hotel.ID, "booking_view", "booking_create")
	assignRole(t, db, user.ID, role.ID, hotel.ID)

	_, perms, err := svc.Login(context.Background(), "desk@auth2.test", "sup3rsecret")
	require.NoError(t, err)
	assert.Equal(t, []string{"booking_create", "booking_view"}, perms.Names)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, NewPermissionService(db))

	admin := createUser(t, db, "owner@auth3.test", models.RoleAdmin, nil)
	hotel := createHotel(t, db, "Auth Hotel 3", admin.ID)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "victim@auth3.test",
		Password: "sup3rsecret",
		Role:     models.RoleUser,
		HotelID:  &hotel.ID,
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "victim@auth3.test", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@auth3.test", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, NewPermissionService(db))

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"missing email", RegisterInput{Password: "sup3rsecret"}},
		{"short password", RegisterInput{Email: "a@b.test", Password: "short"}},
		{"superadmin self-grant", RegisterInput{Email: "a@b.test", Password: "sup3rsecret", Role: models.RoleSuperAdmin}},
		{"unknown role", RegisterInput{Email: "a@b.test", Password: "sup3rsecret", Role: "owner"}},
		{"staff without hotel", RegisterInput{Email: "a@b.test", Password: "sup3rsecret", Role: models.RoleUser}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.in)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}

	// duplicate email
	_, err := svc.Register(context.Background(), RegisterInput{Email: "dup@b.test", Password: "sup3rsecret", Role: models.RoleAdmin})
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), RegisterInput{Email: "dup@b.test", Password: "sup3rsecret", Role: models.RoleAdmin})
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
