package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/prospectio/outreach-system/internal/core/domain"
	"github.com/prospectio/outreach-system/internal/core/ports"
)

// AuthService implements registration, login, token handling and profile
// management.
type AuthService struct {
	repo      ports.UserRepository
	denylist  ports.TokenDenylist
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, denylist ports.TokenDenylist, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		denylist:  denylist,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	if len(input.Password) < domain.MinPasswordLength {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, domain.MinPasswordLength)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:     strings.TrimSpace(input.FirstName),
		LastName:      strings.TrimSpace(input.LastName),
		Email:         email,
		PasswordHash:  string(hash),
		LinkedinEmail: strings.TrimSpace(input.LinkedinEmail),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(created.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, token, nil
}

// Login deliberately returns the same error for an unknown email and a wrong
// password, so callers cannot probe which addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	userID, _, err := s.parseToken(token)
	if err != nil {
		return "", err
	}

	revoked, err := s.denylist.IsRevoked(ctx, token)
	if err != nil {
		return "", fmt.Errorf("denylist check: %w", err)
	}
	if revoked {
		return "", domain.ErrTokenRevoked
	}

	return userID, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	_, expiresAt, err := s.parseToken(token)
	if err != nil {
		return err
	}

	ttl := int64(time.Until(expiresAt).Seconds())
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}

	return s.denylist.Revoke(ctx, token, ttl)
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	fields := map[string]any{}
	if input.FirstName != nil {
		fields["first_name"] = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		fields["last_name"] = strings.TrimSpace(*input.LastName)
	}
	if input.Email != nil {
		fields["email"] = strings.ToLower(strings.TrimSpace(*input.Email))
	}

	changingPassword := input.CurrentPassword != nil || input.NewPassword != nil || input.ConfirmPassword != nil
	if changingPassword {
		if input.CurrentPassword == nil || input.NewPassword == nil || input.ConfirmPassword == nil {
			return nil, fmt.Errorf("%w: password change requires current, new and confirm passwords", domain.ErrValidation)
		}

		user, err := s.repo.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(*input.CurrentPassword)) != nil {
			return nil, fmt.Errorf("%w: current password is incorrect", domain.ErrValidation)
		}
		if *input.NewPassword != *input.ConfirmPassword {
			return nil, fmt.Errorf("%w: new passwords do not match", domain.ErrValidation)
		}
		if len(*input.NewPassword) < domain.MinPasswordLength {
			return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, domain.MinPasswordLength)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(*input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		fields["password_hash"] = string(hash)
	}

	if len(fields) == 0 {
		return s.repo.FindByID(ctx, userID)
	}
	fields["updated_at"] = time.Now().UTC()

	updated, err := s.repo.Update(ctx, userID, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Bool("password_changed", changingPassword).Msg("profile updated")
	return updated, nil
}

func (s *AuthService) generateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) parseToken(token string) (userID string, expiresAt time.Time, err error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", time.Time{}, domain.ErrInvalidCredentials
	}

	userID, _ = claims["user_id"].(string)
	if userID == "" {
		return "", time.Time{}, domain.ErrInvalidCredentials
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return "", time.Time{}, domain.ErrInvalidCredentials
	}

	return userID, exp.Time, nil
}
