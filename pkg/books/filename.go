package books

import "strings"

// invalidFilenameChars contains characters that are not allowed in filenames
// across Windows, macOS, and Linux.
var invalidFilenameChars = []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}

// downloadFilename builds the attachment filename for a book's PDF from its
// title.
func downloadFilename(title string) string {
	return sanitizeFilename(title) + ".pdf"
}

// sanitizeFilename removes characters that are not valid in filenames.
func sanitizeFilename(s string) string {
	result := s
	for _, char := range invalidFilenameChars {
		result = strings.ReplaceAll(result, char, "")
	}
	// Also trim leading/trailing whitespace and collapse multiple spaces
	result = strings.TrimSpace(result)
	for strings.Contains(result, "  ") {
		result = strings.ReplaceAll(result, "  ", " ")
	}
	if result == "" {
		result = "book"
	}
	return result
}
