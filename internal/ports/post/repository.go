package post

import (
	"murmur/internal/core/post"
)

// PostRepository is the outbound port for storing and loading posts.
// Soft-deleted rows are invisible to every method except the Unscoped pair.
type PostRepository interface {
	Create(p *post.Post) (*post.Post, error)
	CreateImage(img *post.Image) error
	// FindByID loads a live post with owner and images. When publicOnly is
	// set, private posts are treated as absent.
	FindByID(id string, publicOnly bool) (*post.Post, error)
	FindAllPublic() ([]*post.Post, error)
	FindByUserID(userID string) ([]*post.Post, error)
	// UpdateFields applies a partial update and reports rows affected.
	UpdateFields(id string, fields map[string]any) (int64, error)
	SoftDelete(id string) (int64, error)
	FindByIDUnscoped(id string) (*post.Post, error)
	ClearDeletedAt(id string) error
}

// UpdatePostInput carries the optional fields of a partial update.
// Nil means "leave unchanged".
type UpdatePostInput struct {
	Title     *string         `json:"title"`
	Body      *string         `json:"body"`
	IsPrivate *bool           `json:"isPrivate"`
	Metadata  *map[string]any `json:"metadata"`
	Tags      *[]string       `json:"tags"`
}

// Fields converts the input to a column/value map for the repository.
func (in UpdatePostInput) Fields() map[string]any {
	fields := make(map[string]any)
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Body != nil {
		fields["body"] = *in.Body
	}
	if in.IsPrivate != nil {
		fields["is_private"] = *in.IsPrivate
	}
	if in.Metadata != nil {
		fields["metadata"] = *in.Metadata
	}
	if in.Tags != nil {
		fields["tags"] = *in.Tags
	}
	return fields
}

// DeleteResponse acknowledges a delete request.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
