package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
)

// Store is the object storage boundary: upload a blob under a key, get back
// a public URL, delete by key.
type Store interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// JobDocumentKey builds the jobs/<jobId>/<docType>/<file> convention. The
// timestamp prefix keeps two uploads of the same filename from colliding.
func JobDocumentKey(jobID uint, docType, filename string) string {
	unique := fmt.Sprintf("%d_%s%s",
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		path.Ext(filename),
	)
	return fmt.Sprintf("jobs/%d/%s/%s", jobID, docType, unique)
}

// GalleryMediaKey builds the galleries/<id>/<file> convention.
func GalleryMediaKey(galleryID uint, filename string) string {
	unique := fmt.Sprintf("%d_%s%s",
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		path.Ext(filename),
	)
	return fmt.Sprintf("galleries/%d/%s", galleryID, unique)
}
