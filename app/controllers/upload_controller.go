package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"path"

	"github.com/shashiranjanraj/gearbay/pkg/response"
	"github.com/shashiranjanraj/gearbay/pkg/storage"
)

// maxUploadBytes caps a single part image at 8 MB.
const maxUploadBytes = 8 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadController stores part images on the configured media disk.
type UploadController struct {
	disk storage.Disk
}

func NewUploadController(disk storage.Disk) *UploadController {
	return &UploadController{disk: disk}
}

// Image handles POST /uploads: multipart form with an "image" field.
// Returns the public URL for use as a part's img field.
func (c *UploadController) Image(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid upload")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "missing image field")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		response.Error(w, http.StatusUnsupportedMediaType,
			fmt.Sprintf("unsupported content type %q", contentType))
		return
	}

	name, err := randomName()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not store image")
		return
	}

	key := path.Join("parts", name+ext)
	if err := c.disk.Put(r.Context(), key, file); err != nil {
		response.Error(w, http.StatusInternalServerError, "could not store image")
		return
	}

	response.Created(w, map[string]string{
		"path": key,
		"url":  c.disk.URL(key),
	})
}

func randomName() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
