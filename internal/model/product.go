package model

import "time"

// Defaults applied when the admin leaves optional catalog fields empty.
const (
	DefaultCategory = "Uncategorized"
	DefaultFileSize = "N/A"
	DefaultFileType = "Digital"
)

type Product struct {
	ID          string `json:"id" firestore:"id"`
	Name        string `json:"name" firestore:"name" validate:"required"`
	Description string `json:"description" firestore:"description"`
	Price       int64  `json:"price" firestore:"price" validate:"required,gt=0"` // smallest currency unit
	Category    string `json:"category" firestore:"category"`
	ImageURL    string `json:"imageUrl" firestore:"imageUrl"`
	VideoURL    string `json:"videoUrl,omitempty" firestore:"videoUrl,omitempty"`
	FileURL     string `json:"fileUrl" firestore:"fileUrl" validate:"required"`
	FileSize    string `json:"fileSize" firestore:"fileSize"`
	FileType    string `json:"fileType" firestore:"fileType"`

	// Rating cache, maintained by review aggregation only.
	// TotalReviews == 0 implies AverageRating == 0.
	AverageRating float64 `json:"averageRating" firestore:"averageRating"`
	TotalReviews  int     `json:"totalReviews" firestore:"totalReviews"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// ApplyDefaults fills optional fields and resets the rating cache.
// Runs on create only; updates never touch these implicitly.
func (p *Product) ApplyDefaults() {
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if p.FileSize == "" {
		p.FileSize = DefaultFileSize
	}
	if p.FileType == "" {
		p.FileType = DefaultFileType
	}
	p.AverageRating = 0
	p.TotalReviews = 0
}
