package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"paintpro-backend/internal/blogstore"
	"paintpro-backend/internal/domains/clients"
	"paintpro-backend/internal/domains/content"
	"paintpro-backend/internal/domains/projects"
	"paintpro-backend/internal/domains/services"
	"paintpro-backend/pkg/logger"
)

// PageHandler renders the public site. Sections that have never been written
// fall back to built-in defaults so a fresh install still serves full pages.
type PageHandler struct {
	content  content.Service
	services services.Service
	projects projects.Service
	clients  clients.Service
	blogs    *blogstore.Store
}

func NewPageHandler(
	contentSvc content.Service,
	servicesSvc services.Service,
	projectsSvc projects.Service,
	clientsSvc clients.Service,
	blogs *blogstore.Store,
) *PageHandler {
	return &PageHandler{
		content:  contentSvc,
		services: servicesSvc,
		projects: projectsSvc,
		clients:  clientsSvc,
		blogs:    blogs,
	}
}

// section returns the current typed payload for key, or the default when the
// section has never been written or cannot be decoded.
func (h *PageHandler) section(c *gin.Context, key content.SectionKey) interface{} {
	fallback, _ := content.DefaultPayload(key)

	record, err := h.content.Get(c.Request.Context(), key)
	if err != nil {
		return fallback
	}

	payload, ok := content.NewPayload(key)
	if !ok {
		return fallback
	}
	if err := json.Unmarshal(record.Payload, payload); err != nil {
		logger.Warn("failed to decode stored section, using default", map[string]interface{}{
			"section": string(key),
		})
		return fallback
	}
	return payload
}

func (h *PageHandler) servicesSection(c *gin.Context) interface{} {
	section, err := h.services.Get(c.Request.Context())
	if err != nil {
		return services.DefaultSection()
	}
	return section
}

func (h *PageHandler) projectsSection(c *gin.Context) interface{} {
	section, err := h.projects.Get(c.Request.Context())
	if err != nil {
		return projects.DefaultSection()
	}
	return section
}

func (h *PageHandler) clientsSection(c *gin.Context) interface{} {
	section, err := h.clients.Get(c.Request.Context())
	if err != nil {
		return clients.DefaultSection()
	}
	return section
}

// Home handles GET /
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Hero":       h.section(c, content.SectionHero),
		"Statistics": h.section(c, content.SectionStatistics),
		"Services":   h.servicesSection(c),
		"Projects":   h.projectsSection(c),
		"Clients":    h.clientsSection(c),
		"Quote":      h.section(c, content.SectionQuote),
	})
}

// About handles GET /about
func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"AboutHero":   h.section(c, content.SectionAboutHero),
		"About":       h.section(c, content.SectionAbout),
		"History":     h.section(c, content.SectionHistory),
		"OurApproach": h.section(c, content.SectionOurApproach),
		"Warranty":    h.section(c, content.SectionWarranty),
	})
}

// Services handles GET /services
func (h *PageHandler) Services(c *gin.Context) {
	c.HTML(http.StatusOK, "services.html", gin.H{
		"Services": h.servicesSection(c),
		"Quote":    h.section(c, content.SectionQuote),
	})
}

// AreasServed handles GET /areas-served
func (h *PageHandler) AreasServed(c *gin.Context) {
	c.HTML(http.StatusOK, "areas_served.html", gin.H{
		"AreasServed": h.section(c, content.SectionAreasServed),
		"Contact":     h.section(c, content.SectionContact),
	})
}

// Contact handles GET /contact
func (h *PageHandler) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Contact": h.section(c, content.SectionContact),
		"Quote":   h.section(c, content.SectionQuote),
	})
}

// Blog handles GET /blog
func (h *PageHandler) Blog(c *gin.Context) {
	if err := h.blogs.Hydrate(); err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "The blog is unavailable right now."})
		return
	}

	c.HTML(http.StatusOK, "blog.html", gin.H{
		"Posts":      h.blogs.Posts(),
		"Categories": h.blogs.Categories(),
	})
}

// BlogPost handles GET /blog/:id
func (h *PageHandler) BlogPost(c *gin.Context) {
	if err := h.blogs.Hydrate(); err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "The blog is unavailable right now."})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Post not found."})
		return
	}

	post, err := h.blogs.GetPost(id)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Post not found."})
		return
	}

	c.HTML(http.StatusOK, "blog_post.html", gin.H{"Post": post})
}
