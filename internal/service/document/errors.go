package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrFileTooLarge     = errors.New("file exceeds maximum size")
	ErrEmptyFile        = errors.New("file is empty")
)
