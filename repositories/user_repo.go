// Data-access layer. Only talks to the database (via GORM here), no
// HTTP/JSON. All queries are parameterized by GORM for the chosen dialect.

package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Thammasok/user-api/models"
)

// UserRepository defines the operations the service layer expects.
// Absent rows come back as (nil, nil), never as an error; every non-nil
// error returned here is a genuine storage failure.
type UserRepository interface {
	FindAll() ([]models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(name, email string) (*models.User, error)
	Update(id uuid.UUID, name, email *string) (*models.User, error)
	Delete(id uuid.UUID) (bool, error)
	Count() (int64, error)
}

type userRepo struct{ db *gorm.DB }

// NewUserRepository injects *gorm.DB and returns the interface, so main
// can wire dependencies without exposing concrete types to other layers.
// The *gorm.DB is a shared pool handle: constructed once, never mutated
// per request.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

// FindAll returns every user, newest first.
func (r *userRepo) FindAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) FindByID(id uuid.UUID) (*models.User, error) {
	var u models.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(email string) (*models.User, error) {
	var u models.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new row. The UUID comes from the model's BeforeCreate
// hook; uniqueness of the email is the caller's responsibility.
func (r *userRepo) Create(name, email string) (*models.User, error) {
	u := models.User{Name: name, Email: email, CreatedAt: time.Now().UTC()}
	if err := r.db.Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Update merges the provided fields over the current row and writes the
// result back, returning the updated user or (nil, nil) when the id does
// not exist. The read locks the row (SELECT ... FOR UPDATE) inside the
// transaction, so a concurrent update blocks until this one commits and
// cannot silently drop its fields.
func (r *userRepo) Update(id uuid.UUID, name, email *string) (*models.User, error) {
	var updated *models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var u models.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&u).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if name != nil {
			u.Name = *name
		}
		if email != nil {
			u.Email = *email
		}

		if err := tx.Model(&models.User{}).Where("id = ?", id).
			Updates(map[string]any{"name": u.Name, "email": u.Email}).Error; err != nil {
			return err
		}
		updated = &u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a row by primary key. Returns false when no row matched.
func (r *userRepo) Delete(id uuid.UUID) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&models.User{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Count returns the total number of users. No endpoint exposes it yet;
// kept for completeness and monitoring.
func (r *userRepo) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
