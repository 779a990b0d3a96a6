package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"paintpro-backend/internal/domains/upload"
	"paintpro-backend/internal/domains/upload/service"
	"paintpro-backend/internal/shared/apperror"
)

type UploadHandler struct {
	service upload.Service
}

func NewUploadHandler(svc upload.Service) *UploadHandler {
	return &UploadHandler{service: svc}
}

// Post handles POST /api/upload. The response shape here is the flat
// {success, url} document the site editor expects, not the shared envelope.
func (h *UploadHandler) Post(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "missing file field"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "could not read uploaded file"})
		return
	}
	defer file.Close()

	// Read one byte past the limit so oversized files are rejected without
	// buffering the whole body.
	data, err := io.ReadAll(io.LimitReader(file, service.MaxUploadSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "could not read uploaded file"})
		return
	}

	url, err := h.service.Upload(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		if appErr, ok := apperror.As(err); ok {
			c.JSON(appErr.HTTPStatus(), gin.H{"success": false, "error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}
