package sheetify

import "errors"

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidJSON indicates the input is not a valid JSON document.
var ErrInvalidJSON = errors.New("invalid json document")
