package service

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultEvidencePrefix is where evidence lives when no prefix is configured.
const DefaultEvidencePrefix = "deliveries"

// EvidenceKeys lays out evidence objects as
// {prefix}/{quoteId}/{unixMillis}-delivery.{ext}. The sweeper only ever
// touches keys of that shape.
type EvidenceKeys struct {
	prefix string
}

// NewEvidenceKeys trims slashes from prefix. A blank prefix stores evidence at
// the storage root.
func NewEvidenceKeys(prefix string) EvidenceKeys {
	return EvidenceKeys{prefix: strings.Trim(strings.TrimSpace(prefix), "/")}
}

// ListPrefix is the storage listing prefix, empty or ending in "/".
func (k EvidenceKeys) ListPrefix() string {
	if k.prefix == "" {
		return ""
	}
	return k.prefix + "/"
}

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/heic": "heic",
	"image/gif":  "gif",
}

// Path names the object for a delivery of quoteID at the given time.
func (k EvidenceKeys) Path(quoteID uuid.UUID, at time.Time, file *EvidenceFile) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	if ext == "" {
		ext = imageExtensions[strings.ToLower(file.ContentType)]
	}
	if ext == "" {
		ext = "jpg"
	}
	return fmt.Sprintf("%s%s/%d-delivery.%s", k.ListPrefix(), quoteID, at.UnixMilli(), ext)
}

// Owns reports whether p is a key Path could have produced.
func (k EvidenceKeys) Owns(p string) bool {
	rest, ok := strings.CutPrefix(p, k.ListPrefix())
	if !ok {
		return false
	}
	quoteID, name, ok := strings.Cut(rest, "/")
	if !ok {
		return false
	}
	if _, err := uuid.Parse(quoteID); err != nil {
		return false
	}
	millis, ext, ok := strings.Cut(name, "-delivery.")
	if !ok || ext == "" || strings.ContainsAny(ext, "/.") {
		return false
	}
	_, err := strconv.ParseUint(millis, 10, 64)
	return err == nil
}
