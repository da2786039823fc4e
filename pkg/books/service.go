package books

import (
	"context"
	"database/sql"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/tulisify/tulisify/pkg/blobstore"
	"github.com/tulisify/tulisify/pkg/errcodes"
	"github.com/tulisify/tulisify/pkg/models"
	"github.com/uptrace/bun"
)

// Admin listing status filters.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusDeleted  = "deleted"
)

// Upload is a validated file upload ready to be stored as a blob.
type Upload struct {
	File io.Reader
	Ext  string
}

type RetrieveBookOptions struct {
	ID *int

	// VisibleOnly restricts the lookup to books readers may see.
	VisibleOnly bool
}

type ListBooksOptions struct {
	Search      *string
	Category    *string
	AgeCategory *string

	// Status is the admin listing filter (active|inactive|deleted). Leave nil
	// for all non-deleted records.
	Status *string

	// VisibleOnly restricts the listing to books readers may see.
	VisibleOnly bool

	Limit  int
	Offset int
}

type UpdateBookOptions struct {
	Columns []string
}

type Service struct {
	db    *bun.DB
	blobs *blobstore.Store
}

func NewService(db *bun.DB, blobs *blobstore.Store) *Service {
	return &Service{db, blobs}
}

// CreateBook stores the uploads as blobs and persists the record. The PDF
// upload is mandatory; handlers validate that before calling. If the insert
// fails the fresh blobs are cleaned up best-effort.
func (svc *Service) CreateBook(ctx context.Context, book *models.Book, cover, pdf *Upload) error {
	log := logger.FromContext(ctx)

	pdfName, pdfSize, err := svc.blobs.Put(pdf.File, blobstore.PrefixPDF, pdf.Ext)
	if err != nil {
		return errors.Wrap(err, "failed to store pdf blob")
	}
	book.PDFFile = pdfName
	book.FileSize = &pdfSize

	if cover != nil {
		coverName, _, err := svc.blobs.Put(cover.File, blobstore.PrefixCover, cover.Ext)
		if err != nil {
			svc.deleteBlob(log, book.PDFFile)
			return errors.Wrap(err, "failed to store cover blob")
		}
		book.CoverImage = &coverName
	}

	now := time.Now()
	if book.CreatedAt.IsZero() {
		book.CreatedAt = now
	}
	book.UpdatedAt = book.CreatedAt
	book.IsActive = true

	_, err = svc.db.
		NewInsert().
		Model(book).
		Returning("*").
		Exec(ctx)
	if err != nil {
		svc.deleteBlob(log, book.PDFFile)
		if book.CoverImage != nil {
			svc.deleteBlob(log, *book.CoverImage)
		}
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) RetrieveBook(ctx context.Context, opts RetrieveBookOptions) (*models.Book, error) {
	book := &models.Book{}

	q := svc.db.
		NewSelect().
		Model(book)

	if opts.ID != nil {
		q = q.Where("b.id = ?", *opts.ID)
	}
	if opts.VisibleOnly {
		q = q.Where("b.is_active = ?", true)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book")
		}
		return nil, errors.WithStack(err)
	}

	return book, nil
}

// ListBooks returns a page of books plus the total count, newest first.
// Soft-deleted records are excluded unless the deleted status filter asks for
// them explicitly.
func (svc *Service) ListBooks(ctx context.Context, opts ListBooksOptions) ([]*models.Book, int, error) {
	books := []*models.Book{}

	q := svc.db.
		NewSelect().
		Model(&books).
		Order("b.created_at DESC")

	if opts.VisibleOnly {
		q = q.Where("b.is_active = ?", true)
	}
	if opts.Status != nil {
		switch *opts.Status {
		case StatusActive:
			q = q.Where("b.is_active = ?", true)
		case StatusInactive:
			q = q.Where("b.is_active = ?", false)
		case StatusDeleted:
			q = q.WhereDeleted()
		}
	}
	if opts.Category != nil && *opts.Category != "" {
		q = q.Where("b.category = ?", *opts.Category)
	}
	if opts.AgeCategory != nil && *opts.AgeCategory != "" {
		q = q.Where("b.age_category = ?", *opts.AgeCategory)
	}
	if opts.Search != nil && *opts.Search != "" {
		search := "%" + *opts.Search + "%"
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("b.title LIKE ? COLLATE NOCASE", search).
				WhereOr("b.author LIKE ? COLLATE NOCASE", search)
		})
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return books, total, nil
}

// UpdateBook applies a partial update. A replacement upload deletes the
// previous blob first (best-effort, logged) and then stores the new one, so a
// failed cleanup never blocks the update.
func (svc *Service) UpdateBook(ctx context.Context, book *models.Book, opts UpdateBookOptions, cover, pdf *Upload) error {
	log := logger.FromContext(ctx)

	if cover != nil {
		if book.CoverImage != nil {
			svc.deleteBlob(log, *book.CoverImage)
		}
		name, _, err := svc.blobs.Put(cover.File, blobstore.PrefixCover, cover.Ext)
		if err != nil {
			return errors.Wrap(err, "failed to store cover blob")
		}
		book.CoverImage = &name
		opts.Columns = append(opts.Columns, "cover_image")
	}

	if pdf != nil {
		if book.PDFFile != "" {
			svc.deleteBlob(log, book.PDFFile)
		}
		name, size, err := svc.blobs.Put(pdf.File, blobstore.PrefixPDF, pdf.Ext)
		if err != nil {
			return errors.Wrap(err, "failed to store pdf blob")
		}
		book.PDFFile = name
		book.FileSize = &size
		opts.Columns = append(opts.Columns, "pdf_file", "file_size")
	}

	if len(opts.Columns) == 0 {
		return nil
	}

	// Update updated_at.
	book.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	_, err := svc.db.
		NewUpdate().
		Model(book).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errcodes.NotFound("Book")
		}
		return errors.WithStack(err)
	}

	return nil
}

// SoftDeleteBook releases both blobs best-effort and marks the record
// deleted. Download history is kept.
func (svc *Service) SoftDeleteBook(ctx context.Context, book *models.Book) error {
	log := logger.FromContext(ctx)

	if book.CoverImage != nil {
		svc.deleteBlob(log, *book.CoverImage)
	}
	if book.PDFFile != "" {
		svc.deleteBlob(log, book.PDFFile)
	}

	_, err := svc.db.
		NewDelete().
		Model(book).
		WherePK().
		Exec(ctx)
	return errors.WithStack(err)
}

// ListCategories returns the distinct non-empty categories among books
// readers can see.
func (svc *Service) ListCategories(ctx context.Context) ([]string, error) {
	categories := []string{}

	err := svc.db.
		NewSelect().
		Model((*models.Book)(nil)).
		ColumnExpr("DISTINCT b.category").
		Where("b.is_active = ?", true).
		Where("b.category <> ''").
		Order("b.category ASC").
		Scan(ctx, &categories)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return categories, nil
}

// PDFExists reports whether the book's PDF blob is physically present.
func (svc *Service) PDFExists(book *models.Book) bool {
	return svc.blobs.Exists(book.PDFFile)
}

// PDFPath resolves the book's PDF blob to a filesystem path.
func (svc *Service) PDFPath(book *models.Book) string {
	return svc.blobs.Path(book.PDFFile)
}

// CoverPath resolves the book's cover blob to a filesystem path.
func (svc *Service) CoverPath(book *models.Book) (string, bool) {
	if book.CoverImage == nil || !svc.blobs.Exists(*book.CoverImage) {
		return "", false
	}
	return svc.blobs.Path(*book.CoverImage), true
}

// deleteBlob removes a stale blob. An orphaned blob is an acceptable leak;
// losing the request over it is not.
func (svc *Service) deleteBlob(log logger.Logger, name string) {
	if err := svc.blobs.Delete(name); err != nil {
		log.Err(err).Warn("failed to delete blob")
	}
}
