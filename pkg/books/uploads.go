package books

import (
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/tulisify/tulisify/pkg/errcodes"
)

// Upload form field names and size limits, matching the catalog contract:
// covers up to 2 MiB as JPEG or PNG, PDFs up to 50 MB.
const (
	coverField = "cover_image"
	pdfField   = "pdf_file"

	maxCoverSize = 2 << 20
	maxPDFSize   = 50 << 20
)

// openCoverUpload size-checks and sniffs a cover upload, returning it ready
// for the blob store. The caller must close the returned reader via closeFn.
func openCoverUpload(fh *multipart.FileHeader) (*Upload, func(), error) {
	if fh.Size > maxCoverSize {
		return nil, nil, errcodes.FieldError(coverField, "\"cover_image\" must be 2MB or smaller")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return nil, nil, errors.WithStack(err)
	}

	var ext string
	switch {
	case mtype.Is("image/jpeg"):
		ext = ".jpg"
	case mtype.Is("image/png"):
		ext = ".png"
	default:
		f.Close()
		return nil, nil, errcodes.FieldError(coverField, "\"cover_image\" must be a JPEG or PNG image")
	}

	// Rewind past the sniffed bytes.
	if _, err := f.Seek(0, 0); err != nil {
		f.Close()
		return nil, nil, errors.WithStack(err)
	}

	return &Upload{File: f, Ext: ext}, func() { f.Close() }, nil
}

// openPDFUpload size-checks and sniffs a PDF upload, returning it ready for
// the blob store. The caller must close the returned reader via closeFn.
func openPDFUpload(fh *multipart.FileHeader) (*Upload, func(), error) {
	if fh.Size > maxPDFSize {
		return nil, nil, errcodes.FieldError(pdfField, "\"pdf_file\" must be 50MB or smaller")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return nil, nil, errors.WithStack(err)
	}

	if !mtype.Is("application/pdf") {
		f.Close()
		return nil, nil, errcodes.FieldError(pdfField, "\"pdf_file\" must be a PDF document")
	}

	if _, err := f.Seek(0, 0); err != nil {
		f.Close()
		return nil, nil, errors.WithStack(err)
	}

	return &Upload{File: f, Ext: ".pdf"}, func() { f.Close() }, nil
}
