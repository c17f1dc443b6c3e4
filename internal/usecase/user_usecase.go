package usecase

import (
	"context"
	"io"
	"strings"

	"greengarden/internal/domain/entity"
	"greengarden/internal/domain/repository"
	"greengarden/internal/domain/service"
	"greengarden/pkg/errors"
	"greengarden/pkg/logger"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	storage      service.FileStorage
	firebaseAuth FirebaseAuthClient
}

func NewUserUseCase(userRepo repository.UserRepository, storage service.FileStorage, firebaseAuth FirebaseAuthClient) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		storage:      storage,
		firebaseAuth: firebaseAuth,
	}
}

type UpdateProfileInput struct {
	Username *string
	Phone    *string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NotFound("User", nil)
	}

	return user, nil
}

// UpdateProfile applies the patch, uploading a new avatar first when one is
// supplied. The avatar upload is best-effort: a failure is logged and the
// profile patch still applies without the new photo URL.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput, avatar io.Reader) (*entity.User, error) {
	if input.Username != nil && strings.TrimSpace(*input.Username) == "" {
		return nil, errors.Validation("username must not be empty")
	}

	user, err := uc.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	patch := entity.UserPatch{
		Username: input.Username,
		Phone:    input.Phone,
	}

	if avatar != nil {
		photoURL, err := uc.storage.UploadAvatar(ctx, user.ID, avatar)
		if err != nil {
			logger.Warn("Avatar upload failed for user %s: %v", user.ID, err)
		} else {
			patch.PhotoURL = &photoURL
		}
	}

	if err := uc.userRepo.Update(ctx, user.ID, patch); err != nil {
		return nil, err
	}

	return uc.GetProfile(ctx, userID)
}

// RemoveAvatar nulls photoURL even when the underlying blob delete fails.
func (uc *UserUseCase) RemoveAvatar(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := uc.storage.DeleteAvatar(ctx, user.ID); err != nil {
		logger.Warn("Avatar delete failed for user %s: %v", user.ID, err)
	}

	if err := uc.userRepo.Update(ctx, user.ID, entity.UserPatch{ClearPhoto: true}); err != nil {
		return nil, err
	}

	return uc.GetProfile(ctx, userID)
}

func (uc *UserUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List(ctx)
}

// SetDisabled flips the account flag. Disabled accounts are rejected at the
// auth middleware on their next request; the auth-provider disable and token
// revocation are best-effort.
func (uc *UserUseCase) SetDisabled(ctx context.Context, userID string, disabled bool) (*entity.User, error) {
	user, err := uc.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Update(ctx, user.ID, entity.UserPatch{IsDisabled: &disabled}); err != nil {
		return nil, err
	}

	if err := uc.firebaseAuth.SetDisabled(ctx, user.ID, disabled); err != nil {
		logger.Warn("Auth provider disable update failed for user %s: %v", user.ID, err)
	}
	if disabled {
		if err := uc.firebaseAuth.RevokeTokens(ctx, user.ID); err != nil {
			logger.Warn("Token revocation failed for user %s: %v", user.ID, err)
		}
	}

	return uc.GetProfile(ctx, userID)
}

// DeleteUser removes the profile. The avatar blob and the auth account are
// deleted best-effort before and after the primary write.
func (uc *UserUseCase) DeleteUser(ctx context.Context, userID string) error {
	user, err := uc.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if err := uc.storage.DeleteAvatar(ctx, user.ID); err != nil {
		logger.Warn("Avatar delete failed for user %s: %v", user.ID, err)
	}

	if err := uc.userRepo.Delete(ctx, user.ID); err != nil {
		return err
	}

	if err := uc.firebaseAuth.DeleteUser(ctx, user.ID); err != nil {
		logger.Warn("Auth account delete failed for user %s: %v", user.ID, err)
	}

	return nil
}
