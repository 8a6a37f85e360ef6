package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/vercel098/central-city-soccer/storage"
	"golang.org/x/sync/errgroup"
)

const maxUploadSize = 32 << 20 // 32MB across all files

type UploadHandler struct {
	uploader storage.FileUploader
}

func NewUploadHandler(uploader storage.FileUploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload handles POST /upload: multipart "files" parts are stored
// concurrently and the resulting public URLs are returned in part order.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		badRequestResponse(w, r, errors.New("no files provided"))
		return
	}

	urls := make([]string, len(files))
	g, ctx := errgroup.WithContext(r.Context())

	for i, header := range files {
		i, header := i, header
		g.Go(func() error {
			file, err := header.Open()
			if err != nil {
				return fmt.Errorf("failed to open uploaded file %q: %w", header.Filename, err)
			}
			defer file.Close()

			key := fmt.Sprintf("%s-%s", uuid.NewString(), header.Filename)
			contentType := header.Header.Get("Content-Type")
			if contentType == "" {
				contentType = "application/octet-stream"
			}

			result, err := h.uploader.Upload(ctx, key, contentType, file)
			if err != nil {
				return err
			}
			urls[i] = result.Location
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"urls": urls}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
