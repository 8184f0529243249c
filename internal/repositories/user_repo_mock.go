package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/HimeshRasaily/FlowArt/internal/models"

	"github.com/google/uuid"
)

// MockUserRepository is an in-memory implementation of UserRepository.
// It preserves insertion order for Query, matching the behavior of the
// GORM-backed repository.
type MockUserRepository struct {
	users map[string]models.User
	order []string
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// FindByEmail returns the user with the given email, or nil if absent.
func (r *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// FindByUsername returns the user with the given username, or nil if absent.
func (r *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// FindByID returns the user with the given ID, or nil if absent.
func (r *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Insert adds a new user, assigning a UUID and timestamps when unset.
func (r *MockUserRepository) Insert(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}
	r.users[user.ID] = *user
	r.order = append(r.order, user.ID)
	return nil
}

// UpdateFields applies a partial column map to the user with the given ID.
func (r *MockUserRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return 0, nil
	}

	for column, value := range fields {
		if err := applyField(&user, column, value); err != nil {
			return 0, err
		}
	}
	r.users[id] = user
	return 1, nil
}

func applyField(user *models.User, column string, value interface{}) error {
	switch column {
	case "bio":
		user.Bio = value.(string)
	case "location":
		user.Location = value.(string)
	case "medium":
		user.Medium = value.(string)
	case "experience":
		user.Experience = value.(string)
	case "avatar":
		user.Avatar = value.(string)
	case "cover_image":
		user.CoverImage = value.(string)
	case "social_instagram":
		user.Social.Instagram = value.(string)
	case "social_twitter":
		user.Social.Twitter = value.(string)
	case "social_website":
		user.Social.Website = value.(string)
	case "updated_at":
		user.UpdatedAt = value.(time.Time)
	default:
		return fmt.Errorf("unknown user column %q", column)
	}
	return nil
}

// Query returns the users matching the predicate, in insertion order.
func (r *MockUserRepository) Query(ctx context.Context, query UserQuery) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0)
	for _, id := range r.order {
		user := r.users[id]
		if !query.Matches(&user) {
			continue
		}
		users = append(users, user)
		if query.Limit > 0 && len(users) == query.Limit {
			break
		}
	}
	return users, nil
}

// ValidID reports whether id is a well-formed UUID.
func (r *MockUserRepository) ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
