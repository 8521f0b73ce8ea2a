package services

import (
	"golang.org/x/crypto/bcrypt"

	"canopy/internal/apperr"
	"canopy/internal/domain"
	"canopy/internal/repos"
)

// UserService is the thin user surface left once real authentication was
// scoped out: lookups for the demo account plus registration for seeds and
// tooling. Passwords are stored bcrypt-hashed.
type UserService struct {
	Users *repos.UserRepo
}

func NewUserService(users *repos.UserRepo) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) ByID(id int64) (domain.User, error) {
	u, err := s.Users.ByID(id)
	if err == repos.ErrNotFound {
		return domain.User{}, apperr.NewNotFoundError("User not found")
	}
	if err != nil {
		return domain.User{}, apperr.NewInternalError("Failed to fetch user", err)
	}
	return u, nil
}

func (s *UserService) ByUsername(username string) (domain.User, error) {
	u, err := s.Users.ByUsername(username)
	if err == repos.ErrNotFound {
		return domain.User{}, apperr.NewNotFoundError("User not found")
	}
	if err != nil {
		return domain.User{}, apperr.NewInternalError("Failed to fetch user", err)
	}
	return u, nil
}

func (s *UserService) Register(username, password string) (domain.User, error) {
	if username == "" || password == "" {
		return domain.User{}, apperr.NewValidationError("Invalid user data",
			apperr.ValidationDetail{Field: "username", Message: "username and password are required"})
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, apperr.NewInternalError("Failed to create user", err)
	}
	u, err := s.Users.Create(username, string(hash))
	if err != nil {
		return domain.User{}, apperr.NewInternalError("Failed to create user", err)
	}
	return u, nil
}

// CheckPassword verifies a raw password against the stored hash.
func (s *UserService) CheckPassword(u domain.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
