package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/legalbrief/brief-cli/internal/core/domain"
	"github.com/legalbrief/brief-cli/internal/core/ports/driven"
	"github.com/legalbrief/brief-cli/internal/core/ports/driving"
	"github.com/legalbrief/brief-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService uploads documents for backend processing. The backend only
// accepts PDFs, so the extension is checked client-side to save the round
// trip. Uploads are single-flight.
type IngestService struct {
	backend driven.BackendClient

	mu       sync.Mutex
	inFlight bool
}

// NewIngestService creates an ingest service backed by the given client.
func NewIngestService(backend driven.BackendClient) *IngestService {
	return &IngestService{backend: backend}
}

// Upload streams the file at path to the backend and returns its status
// message. Processing continues server-side after the call returns.
func (s *IngestService) Upload(ctx context.Context, path string) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return "", domain.ErrUnsupportedFile
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return "", domain.ErrUploadInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	logger.Debug("Uploading %s", path)
	msg, err := s.backend.Upload(ctx, filepath.Base(path), f)
	if err != nil {
		return "", fmt.Errorf("upload document: %w", err)
	}
	return msg, nil
}
