package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/HimeshRasaily/FlowArt/internal/auth"
	"github.com/HimeshRasaily/FlowArt/internal/models"
	"github.com/HimeshRasaily/FlowArt/internal/repositories"
	"github.com/HimeshRasaily/FlowArt/pkg/rabbitmq"
)

// AuthService handles business logic for registration, login and caller
// identification. It owns no state beyond its collaborators; all user data
// lives behind the repository.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenService
	mqClient *rabbitmq.Client // optional, nil disables event publishing
}

// NewAuthService creates a new AuthService. mqClient may be nil.
func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenService, mqClient *rabbitmq.Client) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		mqClient: mqClient,
	}
}

// Register creates a new user with default profile attributes and returns it
// together with a freshly issued access token. When username is empty one is
// derived from the name; a colliding username gets one wider-random retry
// before the registration fails.
func (s *AuthService) Register(ctx context.Context, name, email, password, username string) (*models.User, string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	if username == "" {
		username = generateUsername(name)
	}
	username, err = s.resolveUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:       name,
		Username:   username,
		Email:      email,
		Password:   hashedPassword,
		Bio:        "",
		Avatar:     models.DefaultAvatar,
		CoverImage: models.DefaultCoverImage,
		Location:   "",
		Medium:     models.DefaultMedium,
		Experience: models.DefaultExperience,
		Verified:   false,
		Followers:  0,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.publishUserRegistered(user)

	return user, token, nil
}

// resolveUsername checks the candidate username for a collision and, if
// taken, retries once with a wider random suffix. The fallback space is large
// enough that a second collision is treated as a hard conflict rather than
// looping.
func (s *AuthService) resolveUsername(ctx context.Context, username string) (string, error) {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to check username: %w", err)
	}
	if existing == nil {
		return username, nil
	}

	retry := fmt.Sprintf("%s_%d", username, 1000+rand.Intn(9000))
	existing, err = s.userRepo.FindByUsername(ctx, retry)
	if err != nil {
		return "", fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return "", ErrUsernameTaken
	}
	return retry, nil
}

// Login authenticates a user by email and password and issues an access
// token. Unknown email and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !auth.CheckPassword(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// Identify resolves an access token to the user it was issued for. Invalid,
// expired and forged tokens all fail the same way, as does a token whose
// subject no longer exists.
func (s *AuthService) Identify(ctx context.Context, tokenString string) (*models.User, error) {
	subjectID, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByID(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// publishUserRegistered emits a user.registered event. Publishing is best
// effort: a broker failure must not fail the registration.
func (s *AuthService) publishUserRegistered(user *models.User) {
	if s.mqClient == nil {
		return
	}

	event := map[string]interface{}{
		"userID":   user.ID,
		"username": user.Username,
		"email":    user.Email,
		"medium":   user.Medium,
	}
	if err := s.mqClient.PublishUserRegistered(event); err != nil {
		log.Printf("Warning: Failed to publish user registered event for user %s: %v", user.ID, err)
	}
}

// generateUsername derives a username from a display name: strip everything
// but letters and digits, lowercase, and append a short random suffix.
func generateUsername(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return fmt.Sprintf("%s_%d", b.String(), 100+rand.Intn(900))
}
