package output

import "fmt"

// ExportError represents a failure while writing an export artifact.
type ExportError struct {
	// Artifact is the artifact being written: "workbook" or "csv".
	Artifact string
	// Sheet is the sheet name when the failure is sheet-scoped.
	Sheet string
	Err   error
}

func (e *ExportError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("export error in %s sheet %q: %v", e.Artifact, e.Sheet, e.Err)
	}
	return fmt.Sprintf("export error in %s: %v", e.Artifact, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

func newExportError(artifact, sheet string, err error) *ExportError {
	return &ExportError{
		Artifact: artifact,
		Sheet:    sheet,
		Err:      err,
	}
}
