package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"murmur/internal/adapters/httpapi/middleware"
)

type UserController struct{ uc UserUseCase }

func NewUserController(uc UserUseCase) *UserController { return &UserController{uc: uc} }

func (ctl *UserController) Register(c *gin.Context) {
	var req struct {
		Username     string `json:"username" binding:"required"`
		FirstName    string `json:"firstName" binding:"required"`
		LastName     string `json:"lastName" binding:"required"`
		EmailAddress string `json:"emailAddress" binding:"required,email"`
		Password     string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	u, err := ctl.uc.Register(c.Request.Context(), req.Username, req.EmailAddress, req.FirstName, req.LastName, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (ctl *UserController) Login(c *gin.Context) {
	var req struct {
		EmailAddress string `json:"emailAddress"`
		Username     string `json:"username"`
		Password     string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.uc.Login(c.Request.Context(), req.EmailAddress, req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Credentials returns the authenticated user's own account, posts and
// messages included.
func (ctl *UserController) Credentials(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	creds, err := ctl.uc.Get(c.Request.Context(), claims.UserID())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, creds)
}

func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.uc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctl *UserController) Get(c *gin.Context) {
	creds, err := ctl.uc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, creds)
}

func (ctl *UserController) Delete(c *gin.Context) {
	if err := ctl.uc.Delete(c.Request.Context(), c.Param("username")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
