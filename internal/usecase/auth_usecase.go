package usecase

import (
	"context"
	"io"

	"greengarden/internal/domain/entity"
	"greengarden/internal/domain/repository"
	"greengarden/internal/domain/service"
	"greengarden/pkg/errors"
	"greengarden/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	storage      service.FileStorage
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, storage service.FileStorage, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		storage:      storage,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Username string
	Phone    string
	Role     entity.Role
	Avatar   io.Reader
}

type AuthResult struct {
	User  *entity.User
	Token string
}

// Register creates the auth account first, uploads the avatar best-effort,
// then writes the profile document.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	var photoURL *string
	if input.Avatar != nil {
		url, err := uc.storage.UploadAvatar(ctx, uid, input.Avatar)
		if err != nil {
			logger.Warn("Avatar upload failed during signup for %s: %v", uid, err)
		} else {
			photoURL = &url
		}
	}

	user := &entity.User{
		ID:         uid,
		Email:      input.Email,
		Username:   input.Username,
		Phone:      input.Phone,
		PhotoURL:   photoURL,
		Role:       role,
		IsDisabled: false,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	token, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, email, password)
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NotFound("User", nil)
	}

	// Disabled accounts are force-logged-out: revoke and reject.
	if user.IsDisabled {
		if err := uc.firebaseAuth.RevokeTokens(ctx, uid); err != nil {
			logger.Warn("Token revocation failed for disabled user %s: %v", uid, err)
		}
		return nil, errors.Unauthorized("Account is disabled", nil)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	return uc.firebaseAuth.RevokeTokens(ctx, uid)
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NotFound("User", nil)
	}

	return user, nil
}
