package usecase

import (
	"fmt"

	"mld-backend/internal/entity"
	"mld-backend/internal/repo/persistent"
	"mld-backend/pkg/jwt"
	"mld-backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Register(username, password, firstName, lastName, email string) (*entity.User, string, error)
	Login(username, password string) (*entity.User, string, error)
	Setup(username, password, firstName, lastName, email string) (*entity.User, error)
	GetUser(userID string) (*entity.User, error)
	ResolveRole(userID string) (string, error)
	UpdateProfile(userID, firstName, lastName, email, phoneNumber string) (*entity.User, error)
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

func (uc *authUseCase) Register(username, password, firstName, lastName, email string) (*entity.User, string, error) {
	// A duplicate of either key fails with the same message, so callers
	// cannot tell which one is taken.
	if _, err := uc.userRepo.GetByUsername(username); err == nil {
		return nil, "", fmt.Errorf("%w: username or email already exists", ErrValidation)
	}
	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, "", fmt.Errorf("%w: username or email already exists", ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Username:  username,
		Password:  string(hashedPassword),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Role:      entity.RoleUser,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(username, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		if isNotFound(err) {
			return nil, "", fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
		}
		uc.logger.Error("Failed to load user %s: %v", username, err)
		return nil, "", fmt.Errorf("failed to login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

// Setup bootstraps the first admin account. It refuses as soon as any admin
// exists, checked against the store on every call.
func (uc *authUseCase) Setup(username, password, firstName, lastName, email string) (*entity.User, error) {
	exists, err := uc.userRepo.AdminExists()
	if err != nil {
		uc.logger.Error("Failed to check for existing admin: %v", err)
		return nil, fmt.Errorf("failed to create admin user")
	}
	if exists {
		return nil, fmt.Errorf("%w: admin user already exists", ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to create admin user")
	}

	admin := &entity.User{
		Username:  username,
		Password:  string(hashedPassword),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Role:      entity.RoleAdmin,
	}

	if err := uc.userRepo.Create(admin); err != nil {
		uc.logger.Error("Failed to create admin user: %v", err)
		return nil, fmt.Errorf("failed to create admin user")
	}

	admin.Password = ""
	return admin, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("user %w", ErrNotFound)
		}
		uc.logger.Error("Failed to load user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to load user")
	}
	user.Password = ""
	return user, nil
}

// ResolveRole backs the auth gate: it confirms the token subject still
// exists and reports its current role.
func (uc *authUseCase) ResolveRole(userID string) (string, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return "", err
	}
	return string(user.Role), nil
}

func (uc *authUseCase) UpdateProfile(userID, firstName, lastName, email, phoneNumber string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("user %w", ErrNotFound)
		}
		uc.logger.Error("Failed to load user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to update profile")
	}

	if email != user.Email {
		if other, err := uc.userRepo.GetByEmail(email); err == nil && other.ID != userID {
			return nil, fmt.Errorf("%w: email already in use", ErrValidation)
		}
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.Email = email
	user.PhoneNumber = phoneNumber

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update profile for %s: %v", userID, err)
		return nil, fmt.Errorf("failed to update profile")
	}

	user.Password = ""
	return user, nil
}
