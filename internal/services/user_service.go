package services

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5"

	"apotek-backend/internal/apperr"
	"apotek-backend/internal/auth"
	"apotek-backend/internal/cache"
	"apotek-backend/internal/config"
	"apotek-backend/internal/models"
	"apotek-backend/internal/repositories"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type UserService struct {
	Repo       *repositories.UserRepository
	TokenRepo  *repositories.RefreshTokenRepository
	JWTManager *auth.JWTManager
	Cfg        *config.Config
}

func NewUserService(repo *repositories.UserRepository, tokenRepo *repositories.RefreshTokenRepository, jwtManager *auth.JWTManager, cfg *config.Config) *UserService {
	return &UserService{
		Repo:       repo,
		TokenRepo:  tokenRepo,
		JWTManager: jwtManager,
		Cfg:        cfg,
	}
}

// issueTokens creates a JWT access token plus a fresh refresh token row.
func (s *UserService) issueTokens(ctx context.Context, user *models.User) (string, string, error) {
	accessToken, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return "", "", err
	}

	refreshValue, err := auth.GenerateRefreshToken()
	if err != nil {
		return "", "", err
	}

	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshValue,
		ExpiresAt: time.Now().Add(time.Duration(s.Cfg.JWT.RefreshDays) * 24 * time.Hour),
	}
	if err := s.TokenRepo.Create(ctx, refreshToken); err != nil {
		return "", "", err
	}

	return accessToken, refreshValue, nil
}

// Register creates a new account and signs it in immediately.
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, apperr.BadRequest("username, email, and password are required")
	}
	if !emailRegex.MatchString(req.Email) {
		return nil, apperr.BadRequest("invalid email format")
	}
	if msg := auth.ValidatePasswordStrength(req.Password); msg != "" {
		return nil, apperr.BadRequest("password validation failed: %s", msg)
	}
	if req.Role != "" && req.Role != "admin" && req.Role != "manager" && req.Role != "user" {
		return nil, apperr.BadRequest("invalid role: %s", req.Role)
	}

	// Check if user already exists
	if existing, _ := s.Repo.GetByEmail(ctx, req.Email); existing != nil && existing.ID != 0 {
		return nil, apperr.Conflict("user with this email already exists")
	}
	if existing, _ := s.Repo.GetByUsername(ctx, req.Username); existing != nil && existing.ID != 0 {
		return nil, apperr.Conflict("username already taken")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:   req.Username,
		Email:      req.Email,
		Password:   hashed,
		Role:       req.Role,
		IDKaryawan: req.IDKaryawan,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, conflictOnUnique(err, "username or email already taken")
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		User:         user,
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login verifies credentials and issues a new token pair. Prior sessions
// stay valid (multi-device).
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperr.BadRequest("username and password are required")
	}

	user, err := s.Repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Unauthorized("invalid credentials")
		}
		return nil, err
	}

	// Credential cache fast path skips the bcrypt compare on repeat logins
	if cachedID, ok := cache.GetCachedAuth(ctx, req.Username, req.Password); !ok || cachedID != user.ID {
		if !auth.VerifyPassword(user.Password, req.Password) {
			return nil, apperr.Unauthorized("invalid credentials")
		}
		cache.CacheAuth(ctx, req.Username, req.Password, user.ID)
	}

	if !user.IsActive {
		return nil, apperr.Unauthorized("account is deactivated")
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		User:         user,
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is NOT rotated; the same value is echoed back.
func (s *UserService) Refresh(ctx context.Context, token string) (*models.RefreshResponse, error) {
	if token == "" {
		return nil, apperr.BadRequest("refresh token is required")
	}

	stored, err := s.TokenRepo.GetValid(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Unauthorized("invalid or expired refresh token")
		}
		return nil, err
	}

	user, err := s.Repo.Get(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.RefreshResponse{
		Token:        accessToken,
		RefreshToken: stored.Token,
	}, nil
}

// Logout revokes the given refresh token. Unknown tokens are ignored so the
// operation is idempotent.
func (s *UserService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.TokenRepo.Revoke(ctx, token)
}

// LogoutAll revokes every live session of the user.
func (s *UserService) LogoutAll(ctx context.Context, userID int) error {
	return s.TokenRepo.RevokeAllForUser(ctx, userID)
}

// ChangePassword verifies the current password before accepting the new one.
func (s *UserService) ChangePassword(ctx context.Context, userID int, req *models.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperr.BadRequest("current password and new password are required")
	}

	user, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.VerifyPassword(user.Password, req.CurrentPassword) {
		return apperr.BadRequest("current password is incorrect")
	}
	if msg := auth.ValidatePasswordStrength(req.NewPassword); msg != "" {
		return apperr.BadRequest("password validation failed: %s", msg)
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdatePassword(ctx, userID, hashed); err != nil {
		return err
	}

	// Stale cached credentials must not keep working
	cache.InvalidateAuth(ctx, user.Username, req.CurrentPassword)
	return nil
}

func (s *UserService) GetProfile(ctx context.Context, userID int) (*models.User, error) {
	user, err := s.Repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes username/email of the actor, re-checking uniqueness.
func (s *UserService) UpdateProfile(ctx context.Context, userID int, req *models.UpdateProfileRequest) (*models.User, error) {
	if req.Username == "" && req.Email == "" {
		return nil, apperr.BadRequest("nothing to update")
	}

	user, err := s.Repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}

	if req.Username != "" && req.Username != user.Username {
		if existing, _ := s.Repo.GetByUsername(ctx, req.Username); existing != nil && existing.ID != 0 {
			return nil, apperr.Conflict("username already taken")
		}
		user.Username = req.Username
	}
	if req.Email != "" && req.Email != user.Email {
		if !emailRegex.MatchString(req.Email) {
			return nil, apperr.BadRequest("invalid email format")
		}
		if existing, _ := s.Repo.GetByEmail(ctx, req.Email); existing != nil && existing.ID != 0 {
			return nil, apperr.Conflict("user with this email already exists")
		}
		user.Email = req.Email
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, conflictOnUnique(err, "username or email already taken")
	}
	return user, nil
}

// CleanupTokens removes refresh tokens that can never be used again.
func (s *UserService) CleanupTokens(ctx context.Context) (int, error) {
	return s.TokenRepo.DeleteExpired(ctx)
}

// Admin user management.

func (s *UserService) ListUsers(ctx context.Context, f models.UserFilter) ([]*models.User, int, error) {
	return s.Repo.List(ctx, f)
}

func (s *UserService) GetUser(ctx context.Context, id int) (*models.User, error) {
	user, err := s.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser applies an admin patch (role, activity, linked employee,
// username/email).
func (s *UserService) UpdateUser(ctx context.Context, id int, p *models.UserPatch) (*models.User, error) {
	if p.IsEmpty() {
		return nil, apperr.BadRequest("nothing to update")
	}

	user, err := s.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}

	if p.Username != nil && *p.Username != user.Username {
		if existing, _ := s.Repo.GetByUsername(ctx, *p.Username); existing != nil && existing.ID != 0 {
			return nil, apperr.Conflict("username already taken")
		}
		user.Username = *p.Username
	}
	if p.Email != nil && *p.Email != user.Email {
		if !emailRegex.MatchString(*p.Email) {
			return nil, apperr.BadRequest("invalid email format")
		}
		if existing, _ := s.Repo.GetByEmail(ctx, *p.Email); existing != nil && existing.ID != 0 {
			return nil, apperr.Conflict("user with this email already exists")
		}
		user.Email = *p.Email
	}
	if p.Role != nil {
		if *p.Role != "admin" && *p.Role != "manager" && *p.Role != "user" {
			return nil, apperr.BadRequest("invalid role: %s", *p.Role)
		}
		user.Role = *p.Role
	}
	if p.IDKaryawan != nil {
		user.IDKaryawan = p.IDKaryawan
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, conflictOnUnique(err, "username or email already taken")
	}

	if p.IsActive != nil && *p.IsActive != user.IsActive {
		if err := s.Repo.SetActiveStatus(ctx, id, *p.IsActive); err != nil {
			return nil, err
		}
		user.IsActive = *p.IsActive

		// Deactivation also kills live sessions
		if !user.IsActive {
			if err := s.TokenRepo.RevokeAllForUser(ctx, id); err != nil {
				return nil, err
			}
		}
	}

	return user, nil
}

// DeactivateUser soft-deletes an account and revokes its sessions. User rows
// are never hard-deleted.
func (s *UserService) DeactivateUser(ctx context.Context, id int) error {
	user, err := s.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("user not found")
		}
		return err
	}
	if !user.IsActive {
		return nil
	}

	if err := s.Repo.SetActiveStatus(ctx, id, false); err != nil {
		return err
	}
	return s.TokenRepo.RevokeAllForUser(ctx, id)
}
