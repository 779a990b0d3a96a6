package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"paintpro-backend/internal/domains/blog"
	"paintpro-backend/internal/shared/response"
)

type BlogHandler struct {
	service blog.Service
}

func NewBlogHandler(service blog.Service) *BlogHandler {
	return &BlogHandler{service: service}
}

// List handles GET /api/blogs
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// Get handles GET /api/blogs/:id
func (h *BlogHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "blog id must be an integer")
		return
	}

	post, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// Post handles POST /api/blogs
func (h *BlogHandler) Post(c *gin.Context) {
	var req blog.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	post, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, post)
}

// Put handles PUT /api/blogs (post id carried in the body)
func (h *BlogHandler) Put(c *gin.Context) {
	var req blog.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	post, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// Delete handles DELETE /api/blogs?id=<n>
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id query parameter must be an integer")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
