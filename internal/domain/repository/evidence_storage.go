package repository

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -source=evidence_storage.go -destination=mocks/mock_evidence_storage.go -package=mock_repository

// StoredObject describes one object in evidence storage.
type StoredObject struct {
	Path       string
	Size       int64
	ModifiedAt time.Time
}

// EvidenceStorage keeps delivery photos.
type EvidenceStorage interface {
	Upload(ctx context.Context, path string, body io.Reader, size int64, contentType string) error
	URL(ctx context.Context, path string) (string, error)
	Delete(ctx context.Context, path string) error
	// ListOlderThan returns objects under prefix last modified before cutoff.
	ListOlderThan(ctx context.Context, prefix string, cutoff time.Time) ([]StoredObject, error)
}
