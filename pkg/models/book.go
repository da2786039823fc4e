package models

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Age category values a book can be shelved under.
const (
	AgeCategoryChildren = "children"
	AgeCategoryTeen     = "teen"
	AgeCategoryAdult    = "adult"
	AgeCategoryAll      = "all"
)

// AgeCategoryLabels maps age category values to their display labels.
var AgeCategoryLabels = map[string]string{
	AgeCategoryChildren: "Children",
	AgeCategoryTeen:     "Teen",
	AgeCategoryAdult:    "Adult",
	AgeCategoryAll:      "All Ages",
}

type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID            int       `bun:",pk,nullzero" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	DeletedAt     time.Time `bun:",soft_delete,nullzero" json:"deleted_at,omitempty"`
	Title         string    `bun:",nullzero" json:"title"`
	Author        string    `bun:",nullzero" json:"author"`
	Description   string    `bun:",nullzero" json:"description"`
	Category      string    `bun:",nullzero" json:"category"`
	AgeCategory   string    `bun:",nullzero" json:"age_category"`
	CoverImage    *string   `json:"cover_image"`
	PDFFile       string    `bun:"pdf_file,nullzero" json:"pdf_file"`
	FileSize      *int64    `json:"file_size"`
	Pages         *int      `json:"pages"`
	PublishedYear *int      `json:"published_year"`
	ISBN          *string   `bun:"isbn" json:"isbn"`
	Language      string    `bun:",nullzero" json:"language"`
	IsActive      bool      `json:"is_active"`
}

// VisibleToReaders reports whether the book appears in reader-facing queries.
// Soft-deleted books are hidden from everyone but admins; inactive books stay
// in the admin catalog only.
func (b *Book) VisibleToReaders() bool {
	return b.DeletedAt.IsZero() && b.IsActive
}

// FormattedFileSize renders the PDF size in human-readable units.
// Returns the empty string when no file size is recorded.
func (b *Book) FormattedFileSize() string {
	if b.FileSize == nil {
		return ""
	}

	size := float64(*b.FileSize)
	units := []string{"B", "KB", "MB", "GB"}
	i := 0
	for size > 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}

	return fmt.Sprintf("%.2f %s", size, units[i])
}
