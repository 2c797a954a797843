package postapp

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"murmur/internal/apperror"
	"murmur/internal/auth"
	postEntity "murmur/internal/core/post"
	"murmur/internal/ports/media"
	postPort "murmur/internal/ports/post"
)

// RestoreWindow is how long after a soft delete a post can still be
// brought back. A post deleted exactly this long ago is still restorable;
// only strictly older deletions are refused.
const RestoreWindow = 24 * time.Hour

// CreatePostInput carries the fields of a new post.
type CreatePostInput struct {
	Title     string
	Body      string
	IsPrivate bool
	Metadata  map[string]any
	Tags      []string
	UserID    string
}

// PostService handles the post lifecycle: creation with attached media,
// visibility filtering, soft deletion and the bounded restore window.
type PostService struct {
	PostRepository postPort.PostRepository
	Uploader       media.Uploader
	logger         *zap.Logger
	now            func() time.Time
}

func NewPostService(repo postPort.PostRepository, uploader media.Uploader, logger *zap.Logger) *PostService {
	return &PostService{
		PostRepository: repo,
		Uploader:       uploader,
		logger:         logger,
		now:            time.Now,
	}
}

// Create persists the post first so an id exists for image linkage, then
// uploads any attached files as one batch and links one image row per URL.
// If the upload fails the post stays without its images; the two steps are
// deliberately not wrapped in a transaction.
func (s *PostService) Create(ctx context.Context, in CreatePostInput, files []media.File) (*postEntity.Post, error) {
	uid, err := uuid.FromString(in.UserID)
	if err != nil {
		return nil, apperror.Validation("invalid userId")
	}

	p := &postEntity.Post{
		ID:        uuid.Must(uuid.NewV4()),
		Title:     in.Title,
		Body:      in.Body,
		IsPrivate: in.IsPrivate,
		Metadata:  in.Metadata,
		Tags:      in.Tags,
		UserID:    uid,
	}
	if p.Metadata == nil {
		p.Metadata = map[string]any{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	created, err := s.PostRepository.Create(p)
	if err != nil {
		s.logger.Error("Error creating post", zap.String("userID", in.UserID), zap.Error(err))
		return nil, apperror.Internal(err, "Failed to create post")
	}

	if len(files) > 0 {
		urls, err := s.Uploader.UploadBatch(ctx, files)
		if err != nil {
			s.logger.Error("Error uploading images", zap.String("postID", created.ID.String()), zap.Error(err))
			return nil, apperror.Internal(err, "Failed to create post")
		}
		for _, url := range urls {
			img := &postEntity.Image{
				ID:     uuid.Must(uuid.NewV4()),
				URL:    url,
				PostID: created.ID,
			}
			if err := s.PostRepository.CreateImage(img); err != nil {
				s.logger.Error("Error linking image", zap.String("postID", created.ID.String()), zap.Error(err))
				return nil, apperror.Internal(err, "Failed to create post")
			}
		}
	}

	return s.fetch(created.ID.String())
}

// List returns all live public posts with owner and images.
func (s *PostService) List(ctx context.Context) ([]*postEntity.Post, error) {
	posts, err := s.PostRepository.FindAllPublic()
	if err != nil {
		s.logger.Error("Error listing posts", zap.Error(err))
		return nil, apperror.Internal(err, "Failed to retrieve posts")
	}
	return posts, nil
}

// ListByUser returns all of one owner's live posts regardless of privacy.
func (s *PostService) ListByUser(ctx context.Context, userID string) ([]*postEntity.Post, error) {
	posts, err := s.PostRepository.FindByUserID(userID)
	if err != nil {
		s.logger.Error("Error listing user posts", zap.String("userID", userID), zap.Error(err))
		return nil, apperror.Internal(err, "Failed to retrieve posts")
	}
	return posts, nil
}

// Get returns one live post. An anonymous viewer only sees public posts;
// any authenticated viewer, owner or not, also sees private ones.
func (s *PostService) Get(ctx context.Context, id string, viewer *auth.Claims) (*postEntity.Post, error) {
	p, err := s.PostRepository.FindByID(id, viewer == nil)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Post with ID %s not found", id)
	}
	if err != nil {
		s.logger.Error("Error finding post", zap.String("id", id), zap.Error(err))
		return nil, apperror.Internal(err, "Failed to find post with ID %s", id)
	}
	return p, nil
}

// Update applies a partial update and returns the refreshed post.
func (s *PostService) Update(ctx context.Context, id string, in postPort.UpdatePostInput) (*postEntity.Post, error) {
	fields := in.Fields()
	if len(fields) == 0 {
		return nil, apperror.Validation("no fields to update")
	}
	return s.applyUpdate(id, fields)
}

// SetPrivacy flips the privacy flag and returns the refreshed post.
func (s *PostService) SetPrivacy(ctx context.Context, id string, isPrivate bool) (*postEntity.Post, error) {
	return s.applyUpdate(id, map[string]any{"is_private": isPrivate})
}

// SoftDelete marks the post deleted. Only live rows qualify; a post that is
// absent or already deleted comes back as not found.
func (s *PostService) SoftDelete(ctx context.Context, id string) (*postPort.DeleteResponse, error) {
	affected, err := s.PostRepository.SoftDelete(id)
	if err != nil {
		s.logger.Error("Error deleting post", zap.String("id", id), zap.Error(err))
		return nil, apperror.Internal(err, "Failed to remove post with ID %s", id)
	}
	if affected == 0 {
		return nil, apperror.NotFound("Post with ID %s not found", id)
	}
	return &postPort.DeleteResponse{Deleted: true}, nil
}

// Restore brings a soft-deleted post back to live state, as long as the
// deletion is no older than the restore window.
func (s *PostService) Restore(ctx context.Context, id string) (*postEntity.Post, error) {
	p, err := s.PostRepository.FindByIDUnscoped(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Post with ID %s not found", id)
	}
	if err != nil {
		s.logger.Error("Error finding post to restore", zap.String("id", id), zap.Error(err))
		return nil, apperror.Internal(err, "Failed to restore post with ID %s", id)
	}

	cutoff := s.now().Add(-RestoreWindow)
	if p.DeletedAt.Valid && p.DeletedAt.Time.Before(cutoff) {
		return nil, apperror.RestoreWindowExpired(
			"Cannot restore post with ID %s because it was deleted more than 24 hours ago", id)
	}

	if err := s.PostRepository.ClearDeletedAt(id); err != nil {
		s.logger.Error("Error restoring post", zap.String("id", id), zap.Error(err))
		return nil, apperror.Internal(err, "Failed to restore post with ID %s", id)
	}
	return s.fetch(id)
}

func (s *PostService) applyUpdate(id string, fields map[string]any) (*postEntity.Post, error) {
	affected, err := s.PostRepository.UpdateFields(id, fields)
	if err != nil {
		s.logger.Error("Error updating post", zap.String("id", id), zap.Error(err))
		return nil, apperror.Internal(err, "Failed to update post with ID %s", id)
	}
	if affected == 0 {
		return nil, apperror.NotFound("Post with ID %s not found", id)
	}
	return s.fetch(id)
}

// fetch reloads a post with owner and images, privacy filter dropped. A
// not-found result here propagates as such, never as an internal failure.
func (s *PostService) fetch(id string) (*postEntity.Post, error) {
	p, err := s.PostRepository.FindByID(id, false)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Post with ID %s not found", id)
	}
	if err != nil {
		return nil, apperror.Internal(err, "Failed to find post with ID %s", id)
	}
	return p, nil
}
