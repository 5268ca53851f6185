package driving

import "context"

// IngestService uploads documents for backend processing.
type IngestService interface {
	// Upload streams a PDF to the backend and returns its status message.
	// Returns domain.ErrUnsupportedFile for non-PDF paths before any
	// request is issued, and domain.ErrUploadInFlight while an upload is
	// outstanding.
	Upload(ctx context.Context, path string) (string, error)
}
