package storage_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/silverhalide/studio-api/internal/storage"
)

func TestJobDocumentKey(t *testing.T) {
	key := storage.JobDocumentKey(7, "contracts", "signed copy.pdf")

	assert.True(t, strings.HasPrefix(key, "jobs/7/contracts/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"), "extension survives")
	assert.NotContains(t, key, " ", "original filename never reaches the key")
}

func TestJobDocumentKey_Unique(t *testing.T) {
	a := storage.JobDocumentKey(7, "invoices", "bill.pdf")
	b := storage.JobDocumentKey(7, "invoices", "bill.pdf")

	assert.NotEqual(t, a, b, "same filename twice must not collide")
}

func TestGalleryMediaKey(t *testing.T) {
	key := storage.GalleryMediaKey(3, "IMG_0042.jpg")

	assert.True(t, strings.HasPrefix(key, "galleries/3/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
}
