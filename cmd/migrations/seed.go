package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/tulisify/tulisify/pkg/auth"
	"github.com/tulisify/tulisify/pkg/models"
	"github.com/uptrace/bun"
)

// seed inserts the demo accounts and sample books. Running it twice is safe:
// existing emails and titles are skipped.
func seed(ctx context.Context, db *bun.DB) error {
	now := time.Now()

	seedUsers := []struct {
		name     string
		email    string
		password string
		role     string
	}{
		{"Admin Tulisify", "admin@tulisify.com", "password", models.RoleAdmin},
		{"Pembaca Demo", "user@tulisify.com", "password", models.RoleUser},
	}

	for _, su := range seedUsers {
		exists, err := db.NewSelect().
			Model((*models.User)(nil)).
			Where("email = ? COLLATE NOCASE", su.email).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if exists {
			fmt.Printf("User %s already exists, skipping\n", su.email)
			continue
		}

		hash, err := auth.HashPassword(su.password)
		if err != nil {
			return err
		}

		user := &models.User{
			CreatedAt:    now,
			UpdatedAt:    now,
			Name:         su.name,
			Email:        su.email,
			PasswordHash: hash,
			Role:         su.role,
		}
		if _, err := db.NewInsert().Model(user).Exec(ctx); err != nil {
			return errors.WithStack(err)
		}
		fmt.Printf("Created user %s\n", su.email)
	}

	for _, book := range sampleBooks() {
		exists, err := db.NewSelect().
			Model((*models.Book)(nil)).
			Where("title = ?", book.Title).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if exists {
			fmt.Printf("Book %q already exists, skipping\n", book.Title)
			continue
		}

		book.CreatedAt = now
		book.UpdatedAt = now
		book.IsActive = true
		if _, err := db.NewInsert().Model(book).Exec(ctx); err != nil {
			return errors.WithStack(err)
		}
		fmt.Printf("Created book %q\n", book.Title)
	}

	return nil
}

// sampleBooks references blob names that are not present on disk; downloads
// of seeded books return a file-missing 404 until real PDFs are uploaded.
func sampleBooks() []*models.Book {
	return []*models.Book{
		{
			Title:         "Belajar Laravel untuk Pemula",
			Author:        "Ahmad Fauzi",
			Description:   "Panduan langkah demi langkah membangun aplikasi web pertama Anda.",
			Category:      "Teknologi",
			AgeCategory:   models.AgeCategoryAll,
			PDFFile:       "books/seed-belajar-laravel.pdf",
			Language:      "Indonesian",
			PublishedYear: intPtr(2023),
			Pages:         intPtr(320),
		},
		{
			Title:         "Dongeng Nusantara",
			Author:        "Siti Rahma",
			Description:   "Kumpulan cerita rakyat dari berbagai daerah di Indonesia.",
			Category:      "Cerita Anak",
			AgeCategory:   models.AgeCategoryChildren,
			PDFFile:       "books/seed-dongeng-nusantara.pdf",
			Language:      "Indonesian",
			PublishedYear: intPtr(2021),
			Pages:         intPtr(96),
		},
		{
			Title:         "Petualangan di Langit Senja",
			Author:        "Budi Santoso",
			Description:   "Novel remaja tentang persahabatan dan keberanian.",
			Category:      "Fiksi",
			AgeCategory:   models.AgeCategoryTeen,
			PDFFile:       "books/seed-langit-senja.pdf",
			Language:      "Indonesian",
			PublishedYear: intPtr(2022),
			Pages:         intPtr(214),
		},
	}
}

func intPtr(i int) *int {
	return &i
}
