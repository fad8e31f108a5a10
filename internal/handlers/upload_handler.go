package handlers

import (
	"context"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/storage"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/pkg/observability"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultUploadExtension = "jpg"
	presignTTL             = 15 * time.Minute
)

type presigner interface {
	PresignGet(ctx context.Context, name string, ttl time.Duration) (*url.URL, error)
}

// UploadHandler stores multipart uploads and returns their public URLs
type UploadHandler struct {
	store    storage.Store
	maxBytes int64
}

func NewUploadHandler(store storage.Store, maxBytes int64) *UploadHandler {
	return &UploadHandler{store: store, maxBytes: maxBytes}
}

// RegisterUploadRoutes registers the upload endpoint. When the store can presign
// URLs, /uploads/:name redirects to the object; otherwise the router serves the
// upload directory statically.
func (h *UploadHandler) RegisterUploadRoutes(e *echo.Echo, g *echo.Group) {
	g.POST("/upload", h.UploadFiles)
	if _, ok := h.store.(presigner); ok {
		e.GET(storage.URLPrefix+":name", h.RedirectToObject)
	}
}

// UploadFiles saves every acceptable part of the "files" field. Empty parts,
// suspicious names and files over the size limit are skipped.
func (h *UploadHandler) UploadFiles(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		log.Println("No files received")
		return c.JSON(http.StatusBadRequest, []string{})
	}

	urls := []string{}
	for _, fh := range form.File["files"] {
		u, err := h.save(c.Request().Context(), fh)
		if err != nil {
			log.Printf("Failed to save file %q: %v", fh.Filename, err)
			continue
		}
		if u != "" {
			urls = append(urls, u)
		}
	}

	if len(urls) == 0 {
		log.Println("No files were successfully processed")
		return c.JSON(http.StatusBadRequest, urls)
	}
	return c.JSON(http.StatusOK, urls)
}

// save returns "" for parts that are skipped rather than failed
func (h *UploadHandler) save(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	switch {
	case fh.Size == 0:
		log.Println("Empty file received")
		return "", nil
	case strings.Contains(fh.Filename, ".."):
		log.Printf("Invalid filename: %s", fh.Filename)
		return "", nil
	case h.maxBytes > 0 && fh.Size > h.maxBytes:
		log.Printf("File %s exceeds the %d byte limit", fh.Filename, h.maxBytes)
		return "", nil
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	name := uuid.NewString() + "." + fileExtension(fh.Filename)
	u, err := h.store.Save(ctx, name, mt.String(), f, fh.Size)
	if err != nil {
		return "", err
	}
	observability.UploadedFilesTotal.WithLabelValues(h.store.Name()).Inc()
	log.Printf("Saved upload %s as %s (%s)", fh.Filename, u, mt.String())
	return u, nil
}

// fileExtension lowercases the original extension; names without one get "jpg"
func fileExtension(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" || strings.HasPrefix(filepath.Base(filename), ".") && strings.Count(filepath.Base(filename), ".") == 1 {
		return defaultUploadExtension
	}
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return defaultUploadExtension
		}
	}
	return ext
}

// RedirectToObject sends the client to a short-lived presigned URL
func (h *UploadHandler) RedirectToObject(c echo.Context) error {
	name := filepath.Base(c.Param("name"))
	if name == "." || name == "/" || strings.Contains(name, "..") {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid file name")
	}

	u, err := h.store.(presigner).PresignGet(c.Request().Context(), name, presignTTL)
	if err != nil {
		return httpError(err, "File")
	}
	return c.Redirect(http.StatusFound, u.String())
}
