package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devhive/backend/internal/models"
	"github.com/devhive/backend/internal/service"
	"github.com/devhive/backend/internal/testhelpers"
	"github.com/devhive/backend/internal/types"
)

func strptr(s string) *string { return &s }

func TestListReturnsSummaryProjection(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")
	devSvc := service.NewDevService(db)
	ctx := context.Background()

	created, err := authSvc.Signup(ctx, signupRequest("ada"))
	require.NoError(t, err)

	summaries, err := devSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, created.ID, summaries[0].ID)
	assert.Equal(t, "Ada", summaries[0].Firstname)
	assert.Equal(t, "Lovelace", summaries[0].Lastname)
}

func TestGetRoundTripsLinksAndStacks(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")
	devSvc := service.NewDevService(db)
	ctx := context.Background()

	req := signupRequest("ada")
	req.Bio = "analytical engines"
	created, err := authSvc.Signup(ctx, req)
	require.NoError(t, err)

	profile, err := devSvc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", profile.Username)
	assert.Equal(t, "analytical engines", profile.Bio)
	assert.Equal(t, models.StringArray{"go", "postgres"}, profile.Stacks)
	assert.Equal(t, models.LinkList{{Name: "github", URL: "https://github.com/ada"}}, profile.Links)
}

func TestGetMissingID(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	devSvc := service.NewDevService(db)

	_, err := devSvc.Get(context.Background(), "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSearchMatchesAnyNameField(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")
	devSvc := service.NewDevService(db)
	ctx := context.Background()

	_, err := authSvc.Signup(ctx, signupRequest("ada"))
	require.NoError(t, err)

	other := signupRequest("grace")
	other.Firstname = "Grace"
	other.Lastname = "Hopper"
	_, err = authSvc.Signup(ctx, other)
	require.NoError(t, err)

	results, err := devSvc.Search(ctx, "ada")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Ada", results[0].Firstname)

	// substring against lastname
	results, err = devSvc.Search(ctx, "Hopp")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Grace", results[0].Firstname)

	// empty term matches everything
	results, err = devSvc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestUpdateIsIdempotent(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")
	devSvc := service.NewDevService(db)
	ctx := context.Background()

	created, err := authSvc.Signup(ctx, signupRequest("ada"))
	require.NoError(t, err)

	update := &types.UpdateDevRequest{
		ID:     created.ID,
		Bio:    strptr("new bio"),
		Stacks: &[]string{"go", "redis"},
	}

	require.NoError(t, devSvc.Update(ctx, update))
	first, err := devSvc.Get(ctx, created.ID)
	require.NoError(t, err)

	require.NoError(t, devSvc.Update(ctx, update))
	second, err := devSvc.Get(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "new bio", second.Bio)
	assert.Equal(t, models.StringArray{"go", "redis"}, second.Stacks)
}

func TestUpdateOnlyTouchesProvidedFields(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")
	devSvc := service.NewDevService(db)
	ctx := context.Background()

	req := signupRequest("ada")
	req.Bio = "original bio"
	created, err := authSvc.Signup(ctx, req)
	require.NoError(t, err)

	require.NoError(t, devSvc.Update(ctx, &types.UpdateDevRequest{
		ID:       created.ID,
		Lastname: strptr("Byron"),
	}))

	profile, err := devSvc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Byron", profile.Lastname)
	assert.Equal(t, "original bio", profile.Bio)
	assert.Equal(t, "Ada", profile.Firstname)
}

func TestUpdatePasswordRehashes(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")
	devSvc := service.NewDevService(db)
	ctx := context.Background()

	created, err := authSvc.Signup(ctx, signupRequest("ada"))
	require.NoError(t, err)

	require.NoError(t, devSvc.Update(ctx, &types.UpdateDevRequest{
		ID:       created.ID,
		Password: strptr("anotherpassword"),
	}))

	_, err = authSvc.Login(ctx, "ada", "longpassword")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	dev, err := authSvc.Login(ctx, "ada", "anotherpassword")
	require.NoError(t, err)
	assert.Equal(t, created.ID, dev.ID)
}

func TestUpdateToTakenUsername(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")
	devSvc := service.NewDevService(db)
	ctx := context.Background()

	_, err := authSvc.Signup(ctx, signupRequest("ada"))
	require.NoError(t, err)

	other := signupRequest("grace")
	created, err := authSvc.Signup(ctx, other)
	require.NoError(t, err)

	err = devSvc.Update(ctx, &types.UpdateDevRequest{
		ID:       created.ID,
		Username: strptr("ada"),
	})
	assert.ErrorIs(t, err, service.ErrUsernameTaken)
}

func TestDeleteWithoutExistenceCheck(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")
	devSvc := service.NewDevService(db)
	ctx := context.Background()

	created, err := authSvc.Signup(ctx, signupRequest("ada"))
	require.NoError(t, err)

	require.NoError(t, devSvc.Delete(ctx, created.ID))
	_, err = devSvc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	// deleting the same id again still succeeds
	require.NoError(t, devSvc.Delete(ctx, created.ID))
}
