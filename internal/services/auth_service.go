package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/cyra/internal/db"
	"github.com/terraincognita07/cyra/internal/models"
	"github.com/terraincognita07/cyra/internal/security"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles registration and login. Each user gets exactly one
// customer record, created together with the account.
type AuthService struct {
	database  *gorm.DB
	users     *db.UserRepository
	customers *db.CustomerRepository
}

func NewAuthService(database *gorm.DB, users *db.UserRepository, customers *db.CustomerRepository) *AuthService {
	return &AuthService{database: database, users: users, customers: customers}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func (service *AuthService) Register(input RegisterInput) (models.User, models.Customer, error) {
	email := models.NormalizeEmail(input.Email)

	if err := ValidatePasswordStrength(input.Password); err != nil {
		return models.User{}, models.Customer{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, models.Customer{}, err
	}
	if exists {
		return models.User{}, models.Customer{}, ErrEmailTaken
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return models.User{}, models.Customer{}, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		CreatedAt:    time.Now().UTC(),
	}
	customer := models.Customer{}

	err = service.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		customer.UserID = user.ID
		return tx.Create(&customer).Error
	})
	if err != nil {
		return models.User{}, models.Customer{}, err
	}

	return user, customer, nil
}

func (service *AuthService) Login(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(models.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if !security.CheckPassword(user.PasswordHash, password) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if !security.CheckPassword(user.PasswordHash, currentPassword) {
		return ErrInvalidCredentials
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return service.users.UpdatePassword(userID, passwordHash)
}
