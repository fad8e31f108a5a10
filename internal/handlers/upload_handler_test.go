package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func upload(t *testing.T, h *UploadHandler, files map[string][]byte) (*httptest.ResponseRecorder, []string) {
	t.Helper()
	e := echo.New()
	h.RegisterUploadRoutes(e, e.Group("/api"))

	body, contentType := multipartBody(t, files)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var urls []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &urls), rec.Body.String())
	return rec, urls
}

func TestUploadFiles(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	h := NewUploadHandler(store, 1024)

	rec, urls := upload(t, h, map[string][]byte{
		"Dish.PNG":  pngHeader,
		"noext":     []byte("plain bytes"),
		"empty.jpg": {},
		"huge.mp4":  bytes.Repeat([]byte{0}, 2048),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, urls, 2)

	var exts []string
	for _, u := range urls {
		assert.True(t, strings.HasPrefix(u, "/uploads/"))
		name := strings.TrimPrefix(u, "/uploads/")
		exts = append(exts, filepath.Ext(name))
		_, err := os.Stat(filepath.Join(store.Dir(), name))
		assert.NoError(t, err)
	}
	assert.ElementsMatch(t, []string{".png", ".jpg"}, exts)
}

func TestUploadNothingStored(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	rec, urls := upload(t, NewUploadHandler(store, 1024), map[string][]byte{"empty.jpg": {}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, urls)
}

func TestFileExtension(t *testing.T) {
	tests := map[string]string{
		"photo.JPEG":     "jpeg",
		"clip.mp4":       "mp4",
		"noext":          "jpg",
		".hidden":        "jpg",
		"weird.p$g":      "jpg",
		"archive.tar.gz": "gz",
	}
	for in, want := range tests {
		assert.Equal(t, want, fileExtension(in), in)
	}
}
