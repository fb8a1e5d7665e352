package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/contentcraft/contentcraft/backend/api/internal/config"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_PutOpen(t *testing.T) {
	fs := &FileStorage{Dir: t.TempDir()}
	ctx := context.Background()

	body := `{"stats":[]}`
	require.NoError(t, fs.Put(ctx, "fixtures/seed.json", strings.NewReader(body), int64(len(body)), "application/json"))

	rc, err := fs.Open(ctx, "fixtures/seed.json")
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, body, string(got))
}

func TestFileStorage_KeyStaysInsideDir(t *testing.T) {
	dir := t.TempDir()
	fs := &FileStorage{Dir: dir}
	p, err := fs.path("../../etc/passwd")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(p, dir))

	_, err = fs.Open(context.Background(), "/")
	require.Error(t, err)
}

func TestFileStorage_OpenMissing(t *testing.T) {
	fs := &FileStorage{Dir: t.TempDir()}
	_, err := fs.Open(context.Background(), "nope.json")
	require.Error(t, err)
}

func TestNewMinIOStorage_RequiresEndpoint(t *testing.T) {
	_, err := NewMinIOStorage(context.Background(), config.MinIOConfig{Bucket: "contentcraft"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "minio config missing")
}
