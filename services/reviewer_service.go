package services

import (
	"errors"
	"strings"
	"time"

	"reviews/database"
	"reviews/models"
	"reviews/utils"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var validate = validator.New()

// ReviewerPatch carries the fields of a partial reviewer update. Nil means
// the field was absent from the request and stays untouched.
type ReviewerPatch struct {
	Email   *string
	Name    *string
	Country *string
}

// validateReviewer runs the full field validator chain and normalizes the
// country code on the record before it touches the store.
func validateReviewer(reviewer *models.Reviewer) error {
	if err := validate.Var(reviewer.Email, "required,email"); err != nil {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if len(strings.TrimSpace(reviewer.Name)) < 2 {
		return &ValidationError{Field: "name", Reason: "must be at least 2 characters long"}
	}
	code, err := utils.ValidateAlpha3(reviewer.Country)
	if err != nil {
		return &ValidationError{Field: "country", Reason: "must be a valid ISO-3166-1 alpha-3 country code"}
	}
	reviewer.Country = code
	return nil
}

// ListReviewers returns all reviewers, optionally filtered by exact alpha-3
// country code.
func ListReviewers(country string) ([]models.Reviewer, error) {
	query := database.Database.Db
	if country != "" {
		query = query.Where("country = ?", country)
	}

	var reviewers []models.Reviewer
	if err := query.Find(&reviewers).Error; err != nil {
		return nil, err
	}
	return reviewers, nil
}

// CreateReviewer inserts a new reviewer with created_at set to now.
func CreateReviewer(email, name, country string) (*models.Reviewer, error) {
	now := time.Now().UTC()
	return insertReviewer(&models.Reviewer{
		Email:     email,
		Name:      name,
		Country:   country,
		CreatedAt: &now,
	})
}

// CreateImportedReviewer inserts a reviewer from the ingestion pipeline with
// created_at left NULL, the sentinel for records whose real creation time is
// unknown.
func CreateImportedReviewer(email, name, country string) (*models.Reviewer, error) {
	return insertReviewer(&models.Reviewer{
		Email:   email,
		Name:    name,
		Country: country,
	})
}

func insertReviewer(reviewer *models.Reviewer) (*models.Reviewer, error) {
	if err := validateReviewer(reviewer); err != nil {
		return nil, err
	}
	if err := database.Database.Db.Create(reviewer).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, &ConflictError{Reason: "reviewer email already in use"}
		}
		return nil, err
	}
	return reviewer, nil
}

// GetReviewer returns a single reviewer by id.
func GetReviewer(id uint) (*models.Reviewer, error) {
	var reviewer models.Reviewer
	if err := database.Database.Db.First(&reviewer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Reviewer"}
		}
		return nil, err
	}
	return &reviewer, nil
}

// GetReviewerByEmail returns a single reviewer by email. The ingestion
// pipeline uses it to adopt an existing reviewer after a duplicate insert.
func GetReviewerByEmail(email string) (*models.Reviewer, error) {
	var reviewer models.Reviewer
	if err := database.Database.Db.Where("email = ?", email).First(&reviewer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Reviewer"}
		}
		return nil, err
	}
	return &reviewer, nil
}

// UpdateReviewer applies the non-nil patch fields, re-validates the merged
// record and saves it. A patch with no fields is a no-op and leaves
// updated_at unchanged.
func UpdateReviewer(id uint, patch ReviewerPatch) (*models.Reviewer, error) {
	reviewer, err := GetReviewer(id)
	if err != nil {
		return nil, err
	}

	applied := false
	if patch.Email != nil {
		reviewer.Email = *patch.Email
		applied = true
	}
	if patch.Name != nil {
		reviewer.Name = *patch.Name
		applied = true
	}
	if patch.Country != nil {
		reviewer.Country = *patch.Country
		applied = true
	}
	if !applied {
		return reviewer, nil
	}

	if err := validateReviewer(reviewer); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reviewer.UpdatedAt = &now
	if err := database.Database.Db.Save(reviewer).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, &ConflictError{Reason: "reviewer email already in use"}
		}
		return nil, err
	}
	return reviewer, nil
}

// DeleteReviewer removes a reviewer. The store's foreign key constraint
// blocks the delete while any of the reviewer's reviews exist.
func DeleteReviewer(id uint) error {
	reviewer, err := GetReviewer(id)
	if err != nil {
		return err
	}
	if err := database.Database.Db.Delete(reviewer).Error; err != nil {
		if isForeignKeyViolation(err) {
			return &ConflictError{Reason: "reviewer can't be deleted if it has reviews"}
		}
		return err
	}
	return nil
}
