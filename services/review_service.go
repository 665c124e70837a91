package services

import (
	"errors"
	"strconv"
	"time"

	"reviews/database"
	"reviews/models"
	"reviews/utils"

	"gorm.io/gorm"
)

// ReviewPatch carries the fields of a partial review update. Nil means the
// field was absent from the request and stays untouched.
type ReviewPatch struct {
	Title   *string
	Rating  *int
	Content *string
}

// validateReview runs the full field validator chain. Content is demojized
// in place before its length check, so raw emoji never reach the store.
func validateReview(review *models.Review) error {
	if review.ReviewerID < 1 {
		return &ValidationError{Field: "reviewer_id", Reason: "must be greater than 0"}
	}
	if len(review.Title) < 2 {
		return &ValidationError{Field: "title", Reason: "must be at least 2 characters long"}
	}
	if review.Rating < 1 || review.Rating > 5 {
		return &ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}
	if utils.EmojiCount(review.Content) > 0 {
		review.Content = utils.Demojize(review.Content)
	}
	if len(review.Content) < 10 {
		return &ValidationError{Field: "content", Reason: "must be at least 10 characters long"}
	}
	return nil
}

// ListReviews returns all reviews matching the conjunction of the supplied
// filters. Rating and date arrive as "[op:]literal" query values already
// shape-checked by the request validators.
func ListReviews(rating, date string, reviewerID uint) ([]models.Review, error) {
	query := database.Database.Db

	if rating != "" {
		comparator, literal := utils.ParseFilter(rating)
		value, err := strconv.Atoi(literal)
		if err != nil {
			return nil, &ValidationError{Field: "rating", Reason: "must be a rating between 1 and 5"}
		}
		query = query.Where("rating "+comparator+" ?", value)
	}

	if date != "" {
		comparator, literal := utils.ParseFilter(date)
		value, err := time.Parse("2006-01-02", literal)
		if err != nil {
			return nil, &ValidationError{Field: "date", Reason: "must be a date in YYYY-MM-DD format"}
		}
		query = query.Where("created_at "+comparator+" ?", value.UTC())
	}

	if reviewerID > 0 {
		query = query.Where("reviewer_id = ?", reviewerID)
	}

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview inserts a new review. createdAt overrides the creation time
// when the caller knows it (the ingestion pipeline passes the CSV review
// date); nil means now. A missing reviewer surfaces as NotFound, not
// Conflict: from the caller's view the referenced reviewer doesn't exist.
func CreateReview(reviewerID uint, title string, rating int, content string, createdAt *time.Time) (*models.Review, error) {
	review := &models.Review{
		ReviewerID: reviewerID,
		Title:      title,
		Rating:     rating,
		Content:    content,
	}
	if err := validateReview(review); err != nil {
		return nil, err
	}

	if createdAt != nil {
		review.CreatedAt = createdAt.UTC()
	} else {
		review.CreatedAt = time.Now().UTC()
	}

	if err := database.Database.Db.Create(review).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, &NotFoundError{Entity: "Reviewer"}
		}
		return nil, err
	}
	return review, nil
}

// GetReview returns a single review by id.
func GetReview(id uint) (*models.Review, error) {
	var review models.Review
	if err := database.Database.Db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Review"}
		}
		return nil, err
	}
	return &review, nil
}

// UpdateReview applies the non-nil patch fields, re-validates the merged
// record and saves it. A patch with no fields is a no-op and leaves
// updated_at unchanged.
func UpdateReview(id uint, patch ReviewPatch) (*models.Review, error) {
	review, err := GetReview(id)
	if err != nil {
		return nil, err
	}

	applied := false
	if patch.Title != nil {
		review.Title = *patch.Title
		applied = true
	}
	if patch.Rating != nil {
		review.Rating = *patch.Rating
		applied = true
	}
	if patch.Content != nil {
		review.Content = *patch.Content
		applied = true
	}
	if !applied {
		return review, nil
	}

	if err := validateReview(review); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	review.UpdatedAt = &now
	if err := database.Database.Db.Save(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a review. Reviews have no child rows, so unlike
// reviewers the delete can't conflict.
func DeleteReview(id uint) error {
	review, err := GetReview(id)
	if err != nil {
		return err
	}
	return database.Database.Db.Delete(review).Error
}
