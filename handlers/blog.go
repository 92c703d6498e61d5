package handlers

import (
	"net/http"

	sessionRepo "letsheal/database/repository/session"
	"letsheal/models"
	"letsheal/services/blog"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	svc  *blog.Service
	errs errorResponder
}

func NewBlogHandler(svc *blog.Service, store sessionRepo.Store) *BlogHandler {
	return &BlogHandler{svc: svc, errs: errorResponder{sessions: store}}
}

// List returns all posts; ?search= matches title, content or author.
func (h *BlogHandler) List(c *gin.Context) {
	state, err := bindListState(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	blogs, err := h.svc.List(c.Request.Context(), sessionToken(c), state)
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}

func (h *BlogHandler) Mine(c *gin.Context) {
	state, err := bindListState(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	blogs, err := h.svc.Mine(c.Request.Context(), sessionToken(c), state)
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}

func (h *BlogHandler) Detail(c *gin.Context) {
	detail, err := h.svc.Detail(c.Request.Context(), sessionToken(c), c.Param("id"))
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var in models.BlogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.svc.Create(c.Request.Context(), sessionToken(c), in)
	if err != nil {
		h.errs.respond(c, err, "You don't have permission to publish posts.")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BlogHandler) Update(c *gin.Context) {
	var in models.BlogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), sessionToken(c), c.Param("id"), in)
	if err != nil {
		h.errs.respond(c, err, "You can only edit your own posts.")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), sessionToken(c), c.Param("id")); err != nil {
		h.errs.respond(c, err, "You can only delete your own posts.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}
