package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/blogpost/data/repository"
	"github.com/ncobase/blogpost/ecode"
	"github.com/ncobase/blogpost/logging/logger"
	"github.com/ncobase/blogpost/net/resp"
	"github.com/ncobase/blogpost/service"
	"github.com/ncobase/blogpost/structs"
)

// MaxBodyBytes caps the size of create and update bodies.
const MaxBodyBytes = 100 << 10

var errBodyTooLarge = errors.New("request body too large")

// BlogPostHandler handles HTTP requests for blog posts.
type BlogPostHandler struct {
	svc    *service.BlogPostService
	logger *logger.Logger
}

// NewBlogPostHandler creates a new blog post handler.
func NewBlogPostHandler(svc *service.BlogPostService, logger *logger.Logger) *BlogPostHandler {
	return &BlogPostHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /blog-posts.
func (h *BlogPostHandler) List(c *gin.Context) {
	posts, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "failed to list blog posts", err)
		return
	}

	resp.Success(c.Writer, &structs.ListBlogPosts{BlogPosts: structs.SerializeAll(posts)})
}

// Get handles GET /blog-posts/:id.
func (h *BlogPostHandler) Get(c *gin.Context) {
	id := c.Param("id")

	post, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.Fail(c.Writer, resp.NotFound(""))
			return
		}
		h.internalError(c, "failed to get blog post", err, "id", id)
		return
	}

	resp.Success(c.Writer, post.Serialize())
}

// Create handles POST /blog-posts. Client errors are reported as plain text.
func (h *BlogPostHandler) Create(c *gin.Context) {
	fields, err := h.decodeBody(c)
	if err != nil {
		if errors.Is(err, errBodyTooLarge) {
			resp.Fail(c.Writer, resp.PayloadTooLarge(""))
			return
		}
		resp.Text(c.Writer, http.StatusBadRequest, ecode.MalformedBody())
		return
	}

	post, err := h.svc.Create(c.Request.Context(), fields)
	if err != nil {
		var missing *service.MissingFieldError
		if errors.As(err, &missing) {
			resp.Text(c.Writer, http.StatusBadRequest, missing.Error())
			return
		}
		h.internalError(c, "failed to create blog post", err)
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, post.Serialize())
}

// Update handles PUT /blog-posts/:id.
func (h *BlogPostHandler) Update(c *gin.Context) {
	id := c.Param("id")

	fields, err := h.decodeBody(c)
	if err != nil {
		if errors.Is(err, errBodyTooLarge) {
			resp.Fail(c.Writer, resp.PayloadTooLarge(""))
			return
		}
		resp.Fail(c.Writer, resp.BadRequest(ecode.MalformedBody()))
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, fields); err != nil {
		var mismatch *service.IDMismatchError
		if errors.As(err, &mismatch) {
			resp.Fail(c.Writer, resp.BadRequest(mismatch.Error()))
			return
		}
		h.internalError(c, "failed to update blog post", err, "id", id)
		return
	}

	resp.NoContent(c.Writer)
}

// Delete handles DELETE /blog-posts/:id.
func (h *BlogPostHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.internalError(c, "failed to delete blog post", err, "id", id)
		return
	}

	resp.NoContent(c.Writer)
}

// decodeBody reads a JSON request body of at most MaxBodyBytes. Bodies sent
// with another content type are ignored and decode to no fields.
func (h *BlogPostHandler) decodeBody(c *gin.Context) (service.Fields, error) {
	if !isJSON(c.GetHeader("Content-Type")) {
		return service.Fields{}, nil
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn(c.Request.Context(), "request body too large", "limit", tooLarge.Limit)
			return nil, errBodyTooLarge
		}
		h.logger.Warn(c.Request.Context(), "failed to read request body", "error", err)
		return nil, err
	}

	fields, err := service.DecodeFields(body)
	if err != nil {
		h.logger.Warn(c.Request.Context(), "invalid request", "error", err)
		return nil, err
	}
	return fields, nil
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

// internalError logs the cause and answers with the generic 500 body.
func (h *BlogPostHandler) internalError(c *gin.Context, msg string, err error, kv ...any) {
	h.logger.Error(c.Request.Context(), msg, append(kv, "error", err)...)
	resp.Fail(c.Writer, resp.InternalServer(""))
}
