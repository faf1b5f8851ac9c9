package command

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"pawhaven/internal/storage"
)

const maxImageSize = 5 << 20 // 5MB

// UploadImageCommand represents the command to upload a pet image
type UploadImageCommand struct {
	UserID      string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadImageHandler stores pet images in the configured object store
type UploadImageHandler struct {
	store storage.ObjectStore
	now   func() time.Time
}

// NewUploadImageHandler creates a new upload image handler
func NewUploadImageHandler(store storage.ObjectStore) *UploadImageHandler {
	return &UploadImageHandler{store: store, now: time.Now}
}

// Handle validates and stores the image, returning its public URL
func (h *UploadImageHandler) Handle(ctx context.Context, cmd UploadImageCommand) (string, error) {
	if !strings.HasPrefix(cmd.ContentType, "image/") {
		return "", fmt.Errorf("please select an image file")
	}
	if cmd.Size > maxImageSize {
		return "", fmt.Errorf("image size must be less than 5MB")
	}

	ext := filepath.Ext(cmd.Filename)
	key := fmt.Sprintf("%s-%d%s", cmd.UserID, h.now().UnixNano(), ext)

	url, err := h.store.Upload(ctx, key, cmd.ContentType, cmd.Body)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	return url, nil
}
