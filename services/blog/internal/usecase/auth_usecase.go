package usecase

import (
	"context"
	"errors"

	"blog-platform/pkg/apperror"
	"blog-platform/pkg/auth"
	"blog-platform/pkg/jwt"
	"blog-platform/pkg/logger"
	"blog-platform/services/blog/internal/entity"
	"blog-platform/services/blog/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// ProfileInput carries optional replacements; nil fields are left as is.
type ProfileInput struct {
	Name     *string
	Bio      *string
	Avatar   *string
	Password *string
}

type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*entity.User, error)
	ResolveIdentity(ctx context.Context, userID string) (*auth.Identity, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

var errInvalidCredentials = apperror.Unauthorized("Invalid email or password")

func (uc *authUseCase) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, "", err
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, "", err
	}
	if err := checkPassword(in.Password); err != nil {
		return nil, "", err
	}

	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", apperror.Conflict("User already exists with this email")
	} else if !errors.Is(err, persistent.ErrNotFound) {
		return nil, "", apperror.Internal("Failed to create user", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperror.Internal("Failed to process registration", err)
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, persistent.ErrDuplicate) {
			return nil, "", apperror.Conflict("User already exists with this email")
		}
		return nil, "", apperror.Internal("Failed to create user", err)
	}

	token, err := uc.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, "", apperror.Internal("Failed to generate token", err)
	}

	uc.logger.Info("Registered user %s", user.ID)
	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperror.Validation("Please provide email and password")
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, "", errInvalidCredentials
		}
		return nil, "", apperror.Internal("Failed to log in", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", errInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, "", apperror.Internal("Failed to generate token", err)
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) loadUser(ctx context.Context, userID string) (*entity.User, error) {
	if !validID(userID) {
		return nil, apperror.NotFound("User not found")
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal("Failed to load user", err)
	}
	return user, nil
}

func (uc *authUseCase) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*entity.User, error) {
	user, err := uc.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if user.Name, err = normalizeName(*in.Name); err != nil {
			return nil, err
		}
	}
	if in.Bio != nil {
		if user.Bio, err = normalizeBio(*in.Bio); err != nil {
			return nil, err
		}
	}
	if in.Avatar != nil {
		if user.Avatar, err = normalizeAvatar(*in.Avatar); err != nil {
			return nil, err
		}
	}

	// An empty password leaves the stored hash untouched.
	if in.Password != nil && *in.Password != "" {
		if err := checkPassword(*in.Password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperror.Internal("Failed to update profile", err)
		}
		user.Password = string(hashed)
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal("Failed to update profile", err)
	}

	user.Password = ""
	return user, nil
}

// ResolveIdentity implements auth.Resolver for the authentication gate.
func (uc *authUseCase) ResolveIdentity(ctx context.Context, userID string) (*auth.Identity, error) {
	user, err := uc.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	identity := ToIdentity(user)
	return &identity, nil
}

func ToIdentity(user *entity.User) auth.Identity {
	return auth.Identity{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Bio:       user.Bio,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}
}

func authorOf(identity auth.Identity) *entity.Author {
	return &entity.Author{
		ID:     identity.ID,
		Name:   identity.Name,
		Email:  identity.Email,
		Avatar: identity.Avatar,
		Bio:    identity.Bio,
	}
}
