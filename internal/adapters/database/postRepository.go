package database

import (
	"encoding/json"

	"gorm.io/gorm"
	"murmur/internal/core/post"
)

// PostRepositoryDatabase implements the PostRepository port on gorm.
// gorm's soft-delete scope keeps deleted rows out of every query here
// except the Unscoped methods used by restore.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(p *post.Post) (*post.Post, error) {
	if err := repo.db.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) CreateImage(img *post.Image) error {
	return repo.db.Create(img).Error
}

func (repo *PostRepositoryDatabase) FindByID(id string, publicOnly bool) (*post.Post, error) {
	q := repo.db.Preload("User").Preload("Images").Where("id = ?", id)
	if publicOnly {
		q = q.Where("is_private = ?", false)
	}
	var p post.Post
	if err := q.First(&p).Error; err != nil {
		return nil, err
	}
	return withImages(&p), nil
}

func (repo *PostRepositoryDatabase) FindAllPublic() ([]*post.Post, error) {
	var posts []*post.Post
	err := repo.db.Preload("User").Preload("Images").
		Where("is_private = ?", false).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		withImages(p)
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) FindByUserID(userID string) ([]*post.Post, error) {
	var posts []*post.Post
	err := repo.db.Preload("User").Preload("Images").
		Where("user_id = ?", userID).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		withImages(p)
	}
	return posts, nil
}

// withImages keeps the images slice non-nil so a post without attachments
// serializes as an empty array rather than null.
func withImages(p *post.Post) *post.Post {
	if p.Images == nil {
		p.Images = []post.Image{}
	}
	return p
}

// UpdateFields applies a partial update to a live row. Metadata and tags
// arrive as Go values and are stored through their JSON column encoding.
func (repo *PostRepositoryDatabase) UpdateFields(id string, fields map[string]any) (int64, error) {
	for _, col := range []string{"metadata", "tags"} {
		if v, ok := fields[col]; ok {
			encoded, err := json.Marshal(v)
			if err != nil {
				return 0, err
			}
			fields[col] = string(encoded)
		}
	}
	res := repo.db.Model(&post.Post{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (repo *PostRepositoryDatabase) SoftDelete(id string) (int64, error) {
	res := repo.db.Where("id = ?", id).Delete(&post.Post{})
	return res.RowsAffected, res.Error
}

func (repo *PostRepositoryDatabase) FindByIDUnscoped(id string) (*post.Post, error) {
	var p post.Post
	err := repo.db.Unscoped().Preload("User").Preload("Images").
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return withImages(&p), nil
}

func (repo *PostRepositoryDatabase) ClearDeletedAt(id string) error {
	return repo.db.Unscoped().Model(&post.Post{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}
