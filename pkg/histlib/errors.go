package histlib

import "errors"

var (
	ErrRowOutOfRange = errors.New("row number is outside the current view")

	ErrExportPath = errors.New("export path is empty")
)
