package repositories_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/HimeshRasaily/FlowArt/internal/models"
	"github.com/HimeshRasaily/FlowArt/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRepo opens a fresh in-memory SQLite database for one test.
func setupRepo(t *testing.T) *repositories.GORMUserRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return repositories.NewGORMUserRepository(db)
}

func seedUser(t *testing.T, repo *repositories.GORMUserRepository, user models.User) models.User {
	t.Helper()
	if err := repo.Insert(context.Background(), &user); err != nil {
		t.Fatalf("failed to seed user %s: %v", user.Email, err)
	}
	return user
}

func TestGORMUserRepository_InsertAndFind(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	user := seedUser(t, repo, models.User{
		Name:     "Elena Rodriguez",
		Username: "elena_creates",
		Email:    "elena@flowart.demo",
		Password: "hashed",
		Medium:   "Digital",
	})
	assert.NotEmpty(t, user.ID)
	assert.True(t, repo.ValidID(user.ID))

	byEmail, err := repo.FindByEmail(ctx, "elena@flowart.demo")
	assert.NoError(t, err)
	assert.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	byUsername, err := repo.FindByUsername(ctx, "elena_creates")
	assert.NoError(t, err)
	assert.NotNil(t, byUsername)

	byID, err := repo.FindByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.NotNil(t, byID)
	assert.Equal(t, "Elena Rodriguez", byID.Name)

	// Absent records come back as nil without an error.
	missing, err := repo.FindByEmail(ctx, "nobody@flowart.demo")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGORMUserRepository_Query(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	seedUser(t, repo, models.User{
		Name: "Elena Rodriguez", Username: "elena_creates", Email: "elena@flowart.demo",
		Medium: "Digital", Experience: "Professional",
		Bio: "Digital artist exploring nature and technology.",
	})
	seedUser(t, repo, models.User{
		Name: "Marcus Chen", Username: "marcus_sculptor", Email: "marcus@flowart.demo",
		Medium: "Sculpture", Experience: "Professional",
	})
	seedUser(t, repo, models.User{
		Name: "Aisha Patel", Username: "aisha_canvas", Email: "aisha@flowart.demo",
		Medium: "Canvas", Experience: "Emerging",
	})

	// No filters: everyone, in insertion order.
	all, err := repo.Query(ctx, repositories.BuildUserQuery(repositories.UserFilter{}))
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "elena_creates", all[0].Username)
	assert.Equal(t, "aisha_canvas", all[2].Username)

	// Exact medium filter.
	digital, err := repo.Query(ctx, repositories.BuildUserQuery(repositories.UserFilter{Medium: "Digital"}))
	assert.NoError(t, err)
	assert.Len(t, digital, 1)
	assert.Equal(t, "elena_creates", digital[0].Username)

	// "All" sentinel imposes no constraint.
	sentinel, err := repo.Query(ctx, repositories.BuildUserQuery(repositories.UserFilter{Medium: "All", Experience: "All"}))
	assert.NoError(t, err)
	assert.Len(t, sentinel, 3)

	// Case-insensitive search across name, username and bio.
	search, err := repo.Query(ctx, repositories.BuildUserQuery(repositories.UserFilter{Search: "ELENA"}))
	assert.NoError(t, err)
	assert.Len(t, search, 1)
	assert.Equal(t, "Elena Rodriguez", search[0].Name)

	bioSearch, err := repo.Query(ctx, repositories.BuildUserQuery(repositories.UserFilter{Search: "technology"}))
	assert.NoError(t, err)
	assert.Len(t, bioSearch, 1)

	// Search ANDed with an exact filter.
	none, err := repo.Query(ctx, repositories.BuildUserQuery(repositories.UserFilter{Medium: "Sculpture", Search: "elena"}))
	assert.NoError(t, err)
	assert.Empty(t, none)

	// Limit bounds the result count.
	limited, err := repo.Query(ctx, repositories.BuildUserQuery(repositories.UserFilter{Limit: 2}))
	assert.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestGORMUserRepository_UpdateFields(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	user := seedUser(t, repo, models.User{
		Name: "Elena Rodriguez", Username: "elena_creates", Email: "elena@flowart.demo",
		Location: "Barcelona, Spain",
	})

	stamp := time.Now().UTC().Truncate(time.Second)
	n, err := repo.UpdateFields(ctx, user.ID, map[string]interface{}{
		"bio":              "New bio",
		"social_instagram": "@elena_creates",
		"updated_at":       stamp,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	updated, err := repo.FindByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "New bio", updated.Bio)
	assert.Equal(t, "@elena_creates", updated.Social.Instagram)
	// Untouched fields keep their values.
	assert.Equal(t, "Barcelona, Spain", updated.Location)

	// Updating a nonexistent record changes zero rows.
	n, err = repo.UpdateFields(ctx, "1e9bdb20-7f10-4c3a-9a9e-000000000000", map[string]interface{}{"bio": "x"})
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestGORMUserRepository_ValidID(t *testing.T) {
	repo := setupRepo(t)

	assert.True(t, repo.ValidID("1e9bdb20-7f10-4c3a-9a9e-000000000000"))
	assert.False(t, repo.ValidID("not-a-uuid"))
	assert.False(t, repo.ValidID(""))
}
