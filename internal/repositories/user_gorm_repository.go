package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/HimeshRasaily/FlowArt/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// queryTimeout bounds every database call so a stalled store cannot hang a
// request indefinitely.
const queryTimeout = 5 * time.Second

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// FindByEmail retrieves a user by their email from the database.
func (r *GORMUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByUsername retrieves a user by their username from the database.
func (r *GORMUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

// FindByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *GORMUserRepository) findOne(ctx context.Context, cond string, arg string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, cond, arg).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by %q: %w", cond, err)
	}
	return &user, nil
}

// Insert creates a new user in the database, assigning a UUID when the
// caller did not set one.
func (r *GORMUserRepository) Insert(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateFields applies a partial column map to the user with the given ID and
// returns the number of rows changed.
func (r *GORMUserRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update user %s: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// Query returns the users matching the predicate, oldest first.
func (r *GORMUserRepository) Query(ctx context.Context, query UserQuery) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx := r.db.WithContext(ctx).Model(&models.User{}).Order("created_at")
	for _, clause := range query.Clauses {
		tx = tx.Where(clause.Expr, clause.Args...)
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}

	users := make([]models.User, 0)
	if err := tx.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return users, nil
}

// ValidID reports whether id is a well-formed UUID.
func (r *GORMUserRepository) ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
