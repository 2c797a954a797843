package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"murmur/internal/adapters/httpapi/middleware"
	postapp "murmur/internal/core/post/service"
	"murmur/internal/ports/media"
	postPort "murmur/internal/ports/post"
)

// maxImages caps the attachments accepted on a single post.
const maxImages = 4

var errTooManyImages = errors.New("at most 4 images can be attached")

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

// Create accepts a multipart form: post fields plus up to four files under
// the "images" key. Metadata arrives as a JSON-encoded string field.
func (ctl *PostController) Create(c *gin.Context) {
	var req struct {
		Title     string   `form:"title" binding:"required"`
		Body      string   `form:"body" binding:"required"`
		IsPrivate bool     `form:"isPrivate"`
		Metadata  string   `form:"metadata"`
		Tags      []string `form:"tags"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	var metadata map[string]any
	if req.Metadata != "" {
		if err := json.Unmarshal([]byte(req.Metadata), &metadata); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "metadata must be a JSON object"})
			return
		}
	}

	files, err := formImages(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims := middleware.ClaimsFrom(c)
	in := postapp.CreatePostInput{
		Title:     req.Title,
		Body:      req.Body,
		IsPrivate: req.IsPrivate,
		Metadata:  metadata,
		Tags:      req.Tags,
		UserID:    claims.UserID(),
	}

	p, err := ctl.pc.Create(c.Request.Context(), in, files)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (ctl *PostController) List(c *gin.Context) {
	posts, err := ctl.pc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// ListOwn returns the authenticated user's posts, private ones included.
func (ctl *PostController) ListOwn(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	posts, err := ctl.pc.ListByUser(c.Request.Context(), claims.UserID())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get serves one post. The route is optionally authenticated: anonymous
// viewers only see public posts.
func (ctl *PostController) Get(c *gin.Context) {
	p, err := ctl.pc.Get(c.Request.Context(), c.Param("id"), middleware.ClaimsFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ctl *PostController) Update(c *gin.Context) {
	var in postPort.UpdatePostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	p, err := ctl.pc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ctl *PostController) UpdatePrivacy(c *gin.Context) {
	var req struct {
		IsPrivate *bool `json:"isPrivate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	p, err := ctl.pc.SetPrivacy(c.Request.Context(), c.Param("id"), *req.IsPrivate)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ctl *PostController) Delete(c *gin.Context) {
	res, err := ctl.pc.SoftDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) Restore(c *gin.Context) {
	p, err := ctl.pc.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// formImages reads the uploaded files into memory for the media uploader.
func formImages(c *gin.Context) ([]media.File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body means no attachments.
		return nil, nil
	}
	headers := form.File["images"]
	if len(headers) > maxImages {
		return nil, errTooManyImages
	}

	files := make([]media.File, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, media.File{
			Name:        h.Filename,
			ContentType: h.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, nil
}
