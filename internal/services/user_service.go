package services

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"jambanganBack/internal/models"
	"jambanganBack/internal/repositories"
	"jambanganBack/utils"
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
	Denylist     *repositories.TokenDenylist
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.UserRepo.GetAllUsers(ctx)
}

func (s *UserService) CreateUser(ctx context.Context, user models.User) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	return s.UserRepo.CreateUser(ctx, user)
}

// UpdateUser renames the account; the password is re-hashed only when a new
// one was supplied.
func (s *UserService) UpdateUser(ctx context.Context, id int, username, password string) error {
	var hashed string
	if password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hashed = string(hashedPassword)
	}

	return s.UserRepo.UpdateUser(ctx, id, username, hashed)
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.UserRepo.DeleteUser(ctx, id)
}

func (s *UserService) HasPosts(ctx context.Context, userID int) (bool, error) {
	return s.UserRepo.HasPosts(ctx, userID)
}

// SignIn verifies credentials and issues a session token. Unknown username
// and wrong password collapse into the same error so the endpoint cannot be
// used to enumerate accounts.
func (s *UserService) SignIn(ctx context.Context, username, password string) (models.LoginResponse, error) {
	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if err == models.ErrUserNotFound {
			return models.LoginResponse{}, models.ErrInvalidCredentials
		}
		return models.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.LoginResponse{}, models.ErrInvalidCredentials
	}

	token, err := s.TokenManager.NewJWT(user.ID, user.Username, user.Level)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return models.LoginResponse{}, err
	}

	if err := s.UserRepo.SetAktif(ctx, user.ID, 1); err != nil {
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{Status: "Success", Level: user.Level, Token: token}, nil
}

// LogOut flips the online flag and revokes the presented token for the rest
// of its lifetime. Without a denylist the token simply runs out at expiry.
func (s *UserService) LogOut(ctx context.Context, claims *models.Claims) error {
	if err := s.UserRepo.SetAktif(ctx, claims.UserID, 0); err != nil {
		return err
	}

	if s.Denylist != nil {
		ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
		if err := s.Denylist.Revoke(ctx, claims.Id, ttl); err != nil {
			log.Printf("Error revoking token %s: %v", claims.Id, err)
		}
	}

	return nil
}
