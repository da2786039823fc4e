package books

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/tulisify/tulisify/pkg/auth"
	"github.com/tulisify/tulisify/pkg/downloads"
	"github.com/tulisify/tulisify/pkg/errcodes"
	"github.com/tulisify/tulisify/pkg/models"
	"github.com/tulisify/tulisify/pkg/respond"
)

type handler struct {
	bookService     *Service
	downloadService *downloads.Service
}

// list returns the reader-facing catalog page.
func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListBooksQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	books, total, err := h.bookService.ListBooks(ctx, ListBooksOptions{
		Search:      params.Search,
		Category:    params.Category,
		AgeCategory: params.AgeCategory,
		VisibleOnly: true,
		Limit:       params.PerPage,
		Offset:      (params.Page - 1) * params.PerPage,
	})
	if err != nil {
		return err
	}

	return respond.Data(c, http.StatusOK, respond.NewPage(books, total, params.Page, params.PerPage))
}

// retrieve returns a single visible book.
func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := bookID(c)
	if err != nil {
		return err
	}

	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID:          &id,
		VisibleOnly: true,
	})
	if err != nil {
		return err
	}

	return respond.Data(c, http.StatusOK, book)
}

// categories lists the distinct categories readers can filter on.
func (h *handler) categories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.bookService.ListCategories(ctx)
	if err != nil {
		return err
	}

	return respond.Data(c, http.StatusOK, categories)
}

// ageCategories returns the fixed age category labels.
func (h *handler) ageCategories(c echo.Context) error {
	return respond.Data(c, http.StatusOK, models.AgeCategoryLabels)
}

// cover streams the book's cover image.
func (h *handler) cover(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := bookID(c)
	if err != nil {
		return err
	}

	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID:          &id,
		VisibleOnly: true,
	})
	if err != nil {
		return err
	}

	path, ok := h.bookService.CoverPath(book)
	if !ok {
		return errcodes.FileMissing()
	}

	return errors.WithStack(c.File(path))
}

// download records the download for the authenticated user and streams the
// PDF. A record whose blob went missing is its own 404 so the catalog entry
// and the file can be told apart.
func (h *handler) download(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := bookID(c)
	if err != nil {
		return err
	}

	user, ok := auth.UserFromContext(c)
	if !ok {
		return errcodes.Unauthorized("Authentication required")
	}

	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID:          &id,
		VisibleOnly: true,
	})
	if err != nil {
		return err
	}

	if !h.bookService.PDFExists(book) {
		return errcodes.FileMissing()
	}

	if err := h.downloadService.Record(ctx, user.ID, book.ID); err != nil {
		return err
	}

	return errors.WithStack(c.Attachment(h.bookService.PDFPath(book), downloadFilename(book.Title)))
}

// adminList returns the catalog page for the admin panel, optionally filtered
// by status, including soft-deleted records when asked for.
func (h *handler) adminList(c echo.Context) error {
	ctx := c.Request().Context()

	params := AdminListBooksQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	books, total, err := h.bookService.ListBooks(ctx, ListBooksOptions{
		Search: params.Search,
		Status: params.Status,
		Limit:  params.PerPage,
		Offset: (params.Page - 1) * params.PerPage,
	})
	if err != nil {
		return err
	}

	return respond.Data(c, http.StatusOK, respond.NewPage(books, total, params.Page, params.PerPage))
}

// create adds a book to the catalog. The PDF is mandatory; the cover is not.
func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	pdfHeader, ok := params.FormFiles[pdfField]
	if !ok {
		return errcodes.FieldError(pdfField, "\"pdf_file\" is required")
	}

	pdf, closePDF, err := openPDFUpload(pdfHeader)
	if err != nil {
		return err
	}
	defer closePDF()

	var cover *Upload
	if coverHeader, ok := params.FormFiles[coverField]; ok {
		var closeCover func()
		cover, closeCover, err = openCoverUpload(coverHeader)
		if err != nil {
			return err
		}
		defer closeCover()
	}

	language := "Indonesian"
	if params.Language != nil {
		language = *params.Language
	}

	book := &models.Book{
		Title:         params.Title,
		Author:        params.Author,
		Description:   params.Description,
		Category:      params.Category,
		AgeCategory:   params.AgeCategory,
		PublishedYear: params.PublishedYear,
		ISBN:          params.ISBN,
		Language:      language,
		Pages:         params.Pages,
	}

	if err := h.bookService.CreateBook(ctx, book, cover, pdf); err != nil {
		return err
	}

	return respond.DataMessage(c, http.StatusCreated, "Book created successfully", book)
}

// update applies a partial update to a book, replacing blobs when new
// uploads are present.
func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := bookID(c)
	if err != nil {
		return err
	}

	params := UpdateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{ID: &id})
	if err != nil {
		return err
	}

	opts := UpdateBookOptions{}
	if params.Title != nil {
		book.Title = *params.Title
		opts.Columns = append(opts.Columns, "title")
	}
	if params.Author != nil {
		book.Author = *params.Author
		opts.Columns = append(opts.Columns, "author")
	}
	if params.Description != nil {
		book.Description = *params.Description
		opts.Columns = append(opts.Columns, "description")
	}
	if params.Category != nil {
		book.Category = *params.Category
		opts.Columns = append(opts.Columns, "category")
	}
	if params.AgeCategory != nil {
		book.AgeCategory = *params.AgeCategory
		opts.Columns = append(opts.Columns, "age_category")
	}
	if params.PublishedYear != nil {
		book.PublishedYear = params.PublishedYear
		opts.Columns = append(opts.Columns, "published_year")
	}
	if params.ISBN != nil {
		book.ISBN = params.ISBN
		opts.Columns = append(opts.Columns, "isbn")
	}
	if params.Language != nil {
		book.Language = *params.Language
		opts.Columns = append(opts.Columns, "language")
	}
	if params.Pages != nil {
		book.Pages = params.Pages
		opts.Columns = append(opts.Columns, "pages")
	}
	if params.IsActive != nil {
		book.IsActive = *params.IsActive
		opts.Columns = append(opts.Columns, "is_active")
	}

	var cover, pdf *Upload
	if coverHeader, ok := params.FormFiles[coverField]; ok {
		var closeCover func()
		cover, closeCover, err = openCoverUpload(coverHeader)
		if err != nil {
			return err
		}
		defer closeCover()
	}
	if pdfHeader, ok := params.FormFiles[pdfField]; ok {
		var closePDF func()
		pdf, closePDF, err = openPDFUpload(pdfHeader)
		if err != nil {
			return err
		}
		defer closePDF()
	}

	if err := h.bookService.UpdateBook(ctx, book, opts, cover, pdf); err != nil {
		return err
	}

	return respond.DataMessage(c, http.StatusOK, "Book updated successfully", book)
}

// destroy soft-deletes a book. Download history is kept.
func (h *handler) destroy(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := bookID(c)
	if err != nil {
		return err
	}

	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{ID: &id})
	if err != nil {
		return err
	}

	if err := h.bookService.SoftDeleteBook(ctx, book); err != nil {
		return err
	}

	return respond.Message(c, http.StatusOK, "Book deleted successfully")
}

func bookID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errcodes.NotFound("Book")
	}
	return id, nil
}
