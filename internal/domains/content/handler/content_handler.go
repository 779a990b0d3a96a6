package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"paintpro-backend/internal/domains/content"
	"paintpro-backend/internal/shared/response"
)

// ContentHandler serves GET/PUT for every simple section. One handler, bound
// per section key at route registration.
type ContentHandler struct {
	service content.Service
}

func NewContentHandler(service content.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

// Get handles GET /api/<section>
func (h *ContentHandler) Get(key content.SectionKey) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := h.service.Get(c.Request.Context(), key)
		if err != nil {
			response.FromError(c, err)
			return
		}

		response.Success(c, http.StatusOK, rec.Payload)
	}
}

// Put handles PUT /api/<section>
func (h *ContentHandler) Put(key content.SectionKey) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.BadRequest(c, "failed to read request body")
			return
		}

		rec, err := h.service.Update(c.Request.Context(), key, body)
		if err != nil {
			response.FromError(c, err)
			return
		}

		response.Success(c, http.StatusOK, rec.Payload)
	}
}
