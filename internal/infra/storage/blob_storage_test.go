package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_StoreAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewWithBucket(bucket, "https://media.example.com/")

	url, err := storage.Store(ctx, "products/front.jpg", "image/jpeg", strings.NewReader("fake jpeg bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/products/front.jpg", url)

	data, err := bucket.ReadAll(ctx, "products/front.jpg")
	require.NoError(t, err)
	assert.Equal(t, "fake jpeg bytes", string(data))

	require.NoError(t, storage.Delete(ctx, "products/front.jpg"))

	exists, err := bucket.Exists(ctx, "products/front.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_DeleteMissingKey(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewWithBucket(bucket, "https://media.example.com")

	assert.Error(t, storage.Delete(ctx, "products/ghost.jpg"))
}
