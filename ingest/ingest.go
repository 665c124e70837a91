package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"reviews/services"
	"reviews/utils"
)

// columns are the required CSV header names, matched exactly.
var columns = []string{
	"Email Address",
	"Reviewer Name",
	"Country",
	"Review Title",
	"Review Rating",
	"Review Content",
	"Review Date",
}

// Summary holds the counters logged at the end of an ingestion run.
type Summary struct {
	Rows             int
	ReviewersLoaded  int
	ReviewersSkipped int
	ReviewsLoaded    int
	ReviewsSkipped   int
}

// LoadFromCSV bulk-loads reviewers and reviews from the initial dataset.
// Rows are processed independently: a bad row is logged and skipped without
// touching the rows before it. Re-running against the same file adds at most
// one reviewer per unique email; reviews are re-inserted blindly, which is
// part of the ingest contract.
func LoadFromCSV(filePath string) (*Summary, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	log.Printf("Loading data from csv %s", filePath)

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("CSV file is empty")
	}

	headerIndex := make(map[string]int)
	for i, name := range records[0] {
		headerIndex[strings.TrimSpace(name)] = i
	}
	for _, name := range columns {
		if _, ok := headerIndex[name]; !ok {
			return nil, fmt.Errorf("CSV is missing required column %q", name)
		}
	}

	summary := &Summary{}
	for i, record := range records[1:] {
		rowNo := i + 1
		row := make(map[string]string, len(columns))
		for _, name := range columns {
			if idx := headerIndex[name]; idx < len(record) {
				row[name] = strings.TrimSpace(record[idx])
			}
		}

		reviewerLoaded, reviewLoaded := LoadRow(rowNo, row)
		summary.Rows++
		if reviewerLoaded {
			summary.ReviewersLoaded++
		} else {
			summary.ReviewersSkipped++
		}
		if reviewLoaded {
			summary.ReviewsLoaded++
		} else {
			summary.ReviewsSkipped++
		}
	}

	log.Printf("=== Ingestion Complete ===")
	log.Printf("Reviewers loaded: %d", summary.ReviewersLoaded)
	log.Printf("Reviewers skipped: %d", summary.ReviewersSkipped)
	log.Printf("Reviews loaded: %d", summary.ReviewsLoaded)
	log.Printf("Reviews skipped: %d", summary.ReviewsSkipped)

	return summary, nil
}

// LoadRow loads a single CSV row and reports whether a new reviewer and a
// review were inserted. A reviewer validation failure skips the whole row; a
// duplicate reviewer email adopts the existing record and still loads the
// review; a review failure skips the review only.
func LoadRow(rowNo int, row map[string]string) (reviewerLoaded, reviewLoaded bool) {
	country, err := utils.NormalizeCountry(row["Country"])
	if err != nil {
		log.Printf("Reviewer validation error on row %d: %v", rowNo, err)
		log.Printf("Invalid Reviewer data, skipping row %d", rowNo)
		return false, false
	}

	email := row["Email Address"]
	reviewer, err := services.CreateImportedReviewer(email, row["Reviewer Name"], country)
	if err != nil {
		var conflictErr *services.ConflictError
		if !errors.As(err, &conflictErr) {
			log.Printf("Reviewer validation error on row %d: %v", rowNo, err)
			log.Printf("Invalid Reviewer data, skipping row %d", rowNo)
			return false, false
		}

		// Reviewer already exists, attach the review to the existing record
		log.Printf("Reviewer from row %d already exists", rowNo)
		log.Println("Continuing to load review with existing reviewer")
		reviewer, err = services.GetReviewerByEmail(email)
		if err != nil {
			log.Printf("Failed to look up existing reviewer on row %d: %v", rowNo, err)
			return false, false
		}
	} else {
		reviewerLoaded = true
	}

	rating, err := strconv.Atoi(row["Review Rating"])
	if err != nil {
		log.Printf("Review validation error on row %d: invalid rating %q", rowNo, row["Review Rating"])
		log.Printf("Invalid Review data, skipping review from row %d", rowNo)
		return reviewerLoaded, false
	}

	createdAt, err := time.Parse("2006-01-02", row["Review Date"])
	if err != nil {
		log.Printf("Review validation error on row %d: invalid date %q", rowNo, row["Review Date"])
		log.Printf("Invalid Review data, skipping review from row %d", rowNo)
		return reviewerLoaded, false
	}

	if _, err := services.CreateReview(reviewer.ID, row["Review Title"], rating, row["Review Content"], &createdAt); err != nil {
		log.Printf("Review validation error on row %d: %v", rowNo, err)
		log.Printf("Invalid Review data, skipping review from row %d", rowNo)
		return reviewerLoaded, false
	}

	return reviewerLoaded, true
}
