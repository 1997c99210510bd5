// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pocketmart/pocketmart-data/internal/models"
	"github.com/pocketmart/pocketmart-data/internal/utils"
)

type UserService struct {
	db *gorm.DB
}

type CreateUserRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     models.Role `json:"role" validate:"omitempty,oneof=buyer seller"`
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Create inserts a new user. There is no pre-insert duplicate lookup: the
// unique index on email is the single authority, and its violation comes
// back as the store's own error. Use IsDuplicateEmail to classify it.
func (s *UserService) Create(req *CreateUserRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleBuyer
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user created")

	return user, nil
}

// Authenticate returns the single user matching both email and password, or
// nil when none does. Credentials are compared as opaque strings; no match
// is a valid result, not an error.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ? AND password = ?", email, password).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByID(id int64) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile overwrites name and email for the given user. Email
// uniqueness is not re-checked here; a conflicting update surfaces the
// store's constraint error.
func (s *UserService) UpdateProfile(id int64, name, email string) error {
	return s.db.Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "email": email}).Error
}

// IsDuplicateEmail reports whether err is the unique-email violation, so
// callers can translate it into a friendly message.
func IsDuplicateEmail(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed: users.email")
}
