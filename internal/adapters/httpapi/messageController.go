package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"murmur/internal/adapters/httpapi/middleware"
	messagePort "murmur/internal/ports/message"
)

type MessageController struct{ mc MessageUseCase }

func NewMessageController(mc MessageUseCase) *MessageController {
	return &MessageController{mc: mc}
}

func (ctl *MessageController) Create(c *gin.Context) {
	var req struct {
		Content    string `json:"content" binding:"required"`
		TTLSeconds int64  `json:"expiresIn"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	claims := middleware.ClaimsFrom(c)
	m, err := ctl.mc.Create(c.Request.Context(), req.Content, req.TTLSeconds, claims.UserID())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (ctl *MessageController) List(c *gin.Context) {
	messages, err := ctl.mc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (ctl *MessageController) Get(c *gin.Context) {
	m, err := ctl.mc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (ctl *MessageController) Update(c *gin.Context) {
	var in messagePort.UpdateMessageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	m, err := ctl.mc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (ctl *MessageController) Delete(c *gin.Context) {
	res, err := ctl.mc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
