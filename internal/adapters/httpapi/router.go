package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"

	"murmur/internal/adapters/httpapi/middleware"
	"murmur/internal/auth"
	messageEntity "murmur/internal/core/message"
	postEntity "murmur/internal/core/post"
	postapp "murmur/internal/core/post/service"
	userEntity "murmur/internal/core/user"
	"murmur/internal/ports/media"
	messagePort "murmur/internal/ports/message"
	postPort "murmur/internal/ports/post"
	userPort "murmur/internal/ports/user"
)

// Inbound ports: what the controllers need from the services.

type UserUseCase interface {
	Register(ctx context.Context, username, email, firstName, lastName, password string) (*userEntity.User, error)
	Login(ctx context.Context, email, username, password string) (*userPort.LoginResponse, error)
	Get(ctx context.Context, id string) (*userPort.Credentials, error)
	List(ctx context.Context) ([]*userEntity.User, error)
	Delete(ctx context.Context, username string) error
}

type PostUseCase interface {
	Create(ctx context.Context, in postapp.CreatePostInput, files []media.File) (*postEntity.Post, error)
	List(ctx context.Context) ([]*postEntity.Post, error)
	ListByUser(ctx context.Context, userID string) ([]*postEntity.Post, error)
	Get(ctx context.Context, id string, viewer *auth.Claims) (*postEntity.Post, error)
	Update(ctx context.Context, id string, in postPort.UpdatePostInput) (*postEntity.Post, error)
	SetPrivacy(ctx context.Context, id string, isPrivate bool) (*postEntity.Post, error)
	SoftDelete(ctx context.Context, id string) (*postPort.DeleteResponse, error)
	Restore(ctx context.Context, id string) (*postEntity.Post, error)
}

type MessageUseCase interface {
	Create(ctx context.Context, content string, ttlSeconds int64, userID string) (*messageEntity.Message, error)
	List(ctx context.Context) ([]*messageEntity.Message, error)
	Get(ctx context.Context, id string) (*messageEntity.Message, error)
	Update(ctx context.Context, id string, in messagePort.UpdateMessageInput) (*messageEntity.Message, error)
	Delete(ctx context.Context, id string) (*messagePort.DeleteResponse, error)
}

// SetupRoutes wires controllers to routes. Services are injected from main.
func SetupRoutes(userUC UserUseCase, postUC PostUseCase, messageUC MessageUseCase, jwtSecret []byte) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	pc := NewPostController(postUC)
	mc := NewMessageController(messageUC)

	required := middleware.Auth(jwtSecret, false)
	optional := middleware.Auth(jwtSecret, true)

	users := r.Group("/users")
	{
		users.POST("/registration", uc.Register)
		users.POST("/login", uc.Login)
		users.GET("/credentials", required, uc.Credentials)
		users.GET("", uc.List)
		users.GET("/:id", uc.Get)
		users.POST("/delete/:username", uc.Delete)
	}

	posts := r.Group("/posts")
	{
		posts.POST("", required, pc.Create)
		posts.GET("", pc.List)
		posts.GET("/user", required, pc.ListOwn)
		posts.GET("/:id", optional, pc.Get)
		posts.PUT("/:id", required, pc.Update)
		posts.PUT("/:id/private", required, pc.UpdatePrivacy)
		posts.PUT("/:id/restore", required, pc.Restore)
		posts.DELETE("/:id", required, pc.Delete)
	}

	messages := r.Group("/messages")
	{
		messages.POST("", required, mc.Create)
		messages.GET("", mc.List)
		messages.GET("/:id", mc.Get)
		messages.PUT("/:id", required, mc.Update)
		messages.DELETE("/:id", required, mc.Delete)
	}

	return r
}
