package postapp

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"murmur/internal/adapters/database"
	"murmur/internal/apperror"
	"murmur/internal/auth"
	"murmur/internal/core/post"
	"murmur/internal/core/user"
	"murmur/internal/ports/media"
	postPort "murmur/internal/ports/post"
)

// fakeUploader returns one URL per file, or fails the whole batch.
type fakeUploader struct {
	err   error
	calls int
}

func (f *fakeUploader) UploadBatch(ctx context.Context, files []media.File) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	urls := make([]string, 0, len(files))
	for _, file := range files {
		urls = append(urls, "https://media.example.com/"+file.Name)
	}
	return urls, nil
}

type fixture struct {
	svc      *PostService
	uploader *fakeUploader
	ownerID  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &post.Post{}, &post.Image{}))

	owner := &user.User{
		ID:           uuid.Must(uuid.NewV4()),
		Username:     "alice",
		EmailAddress: "alice@example.com",
		FirstName:    "Alice",
		LastName:     "Doe",
		Password:     "hash",
	}
	require.NoError(t, db.Create(owner).Error)

	uploader := &fakeUploader{}
	svc := NewPostService(database.NewPostRepositoryDatabase(db), uploader, zap.NewNop())
	return &fixture{svc: svc, uploader: uploader, ownerID: owner.ID.String()}
}

func (f *fixture) create(t *testing.T, in CreatePostInput, files []media.File) *post.Post {
	t.Helper()
	if in.UserID == "" {
		in.UserID = f.ownerID
	}
	p, err := f.svc.Create(context.Background(), in, files)
	require.NoError(t, err)
	return p
}

func viewer() *auth.Claims {
	return &auth.Claims{Username: "someone"}
}

func TestCreateWithoutImages(t *testing.T) {
	f := newFixture(t)

	p := f.create(t, CreatePostInput{Title: "Hello", Body: "World"}, nil)

	assert.Equal(t, "Hello", p.Title)
	assert.Equal(t, "World", p.Body)
	assert.False(t, p.IsPrivate)
	require.NotNil(t, p.User)
	assert.Equal(t, "alice", p.User.Username)
	assert.Empty(t, p.Images)
	assert.Zero(t, f.uploader.calls, "uploader must not run for a post without files")
}

func TestCreateLinksOneImagePerFile(t *testing.T) {
	f := newFixture(t)

	files := []media.File{
		{Name: "first.png", ContentType: "image/png", Data: []byte{1}},
		{Name: "second.png", ContentType: "image/png", Data: []byte{2}},
	}
	p := f.create(t, CreatePostInput{Title: "Pics", Body: "two"}, files)

	require.Len(t, p.Images, 2)
	urls := []string{p.Images[0].URL, p.Images[1].URL}
	assert.Contains(t, urls, "https://media.example.com/first.png")
	assert.Contains(t, urls, "https://media.example.com/second.png")
}

func TestCreateKeepsPostWhenUploadFails(t *testing.T) {
	f := newFixture(t)
	f.uploader.err = errors.New("bucket unavailable")

	_, err := f.svc.Create(context.Background(), CreatePostInput{
		Title: "Doomed", Body: "b", UserID: f.ownerID,
	}, []media.File{{Name: "x.png"}})
	assert.True(t, apperror.IsInternal(err))

	// The post row survives without its images; the steps are not atomic.
	posts, listErr := f.svc.ListByUser(context.Background(), f.ownerID)
	require.NoError(t, listErr)
	require.Len(t, posts, 1)
	assert.Equal(t, "Doomed", posts[0].Title)
	assert.Empty(t, posts[0].Images)
}

func TestCreateRejectsBadOwnerID(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), CreatePostInput{
		Title: "t", Body: "b", UserID: "not-a-uuid",
	}, nil)
	assert.True(t, apperror.IsValidation(err))
}

func TestListFiltersPrivateAndDeleted(t *testing.T) {
	f := newFixture(t)

	public := f.create(t, CreatePostInput{Title: "public", Body: "b"}, nil)
	f.create(t, CreatePostInput{Title: "private", Body: "b", IsPrivate: true}, nil)
	deleted := f.create(t, CreatePostInput{Title: "gone", Body: "b"}, nil)

	_, err := f.svc.SoftDelete(context.Background(), deleted.ID.String())
	require.NoError(t, err)

	posts, err := f.svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, public.ID, posts[0].ID)
	for _, p := range posts {
		assert.False(t, p.IsPrivate)
		assert.False(t, p.DeletedAt.Valid)
	}
}

func TestListByUserIncludesPrivate(t *testing.T) {
	f := newFixture(t)

	f.create(t, CreatePostInput{Title: "public", Body: "b"}, nil)
	f.create(t, CreatePostInput{Title: "private", Body: "b", IsPrivate: true}, nil)

	posts, err := f.svc.ListByUser(context.Background(), f.ownerID)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestGetPrivacyDependsOnViewer(t *testing.T) {
	f := newFixture(t)
	p := f.create(t, CreatePostInput{Title: "secret", Body: "b", IsPrivate: true}, nil)

	_, err := f.svc.Get(context.Background(), p.ID.String(), nil)
	assert.True(t, apperror.IsNotFound(err), "anonymous viewer must not see a private post")

	// Any authenticated viewer may read it, owner or not.
	got, err := f.svc.Get(context.Background(), p.ID.String(), viewer())
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestUpdatePartial(t *testing.T) {
	f := newFixture(t)
	p := f.create(t, CreatePostInput{Title: "old", Body: "body", Tags: []string{"a"}}, nil)

	title := "new"
	tags := []string{"b", "c"}
	got, err := f.svc.Update(context.Background(), p.ID.String(), postPort.UpdatePostInput{
		Title: &title,
		Tags:  &tags,
	})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "body", got.Body)
	assert.Equal(t, []string{"b", "c"}, got.Tags)
}

func TestUpdateMissingPost(t *testing.T) {
	f := newFixture(t)

	title := "new"
	_, err := f.svc.Update(context.Background(), uuid.Must(uuid.NewV4()).String(), postPort.UpdatePostInput{Title: &title})
	assert.True(t, apperror.IsNotFound(err))
}

func TestSetPrivacy(t *testing.T) {
	f := newFixture(t)
	p := f.create(t, CreatePostInput{Title: "t", Body: "b"}, nil)

	got, err := f.svc.SetPrivacy(context.Background(), p.ID.String(), true)
	require.NoError(t, err)
	assert.True(t, got.IsPrivate)

	posts, err := f.svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestSoftDeleteThenRestore(t *testing.T) {
	f := newFixture(t)
	p := f.create(t, CreatePostInput{Title: "Hello", Body: "World"}, nil)
	id := p.ID.String()

	res, err := f.svc.SoftDelete(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, res.Deleted)

	// Gone from reads while deleted.
	_, err = f.svc.Get(context.Background(), id, nil)
	assert.True(t, apperror.IsNotFound(err))

	// Deleting again misses: the row is no longer live.
	_, err = f.svc.SoftDelete(context.Background(), id)
	assert.True(t, apperror.IsNotFound(err))

	restored, err := f.svc.Restore(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Hello", restored.Title)
	assert.Equal(t, "World", restored.Body)
	assert.False(t, restored.DeletedAt.Valid)

	got, err := f.svc.Get(context.Background(), id, nil)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestRestoreWindowBoundary(t *testing.T) {
	f := newFixture(t)
	p := f.create(t, CreatePostInput{Title: "t", Body: "b"}, nil)
	id := p.ID.String()

	deletedAt := time.Now()
	_, err := f.svc.SoftDelete(context.Background(), id)
	require.NoError(t, err)

	// Exactly 24 hours after deletion the post is still restorable.
	f.svc.now = func() time.Time { return deletedAt.Add(RestoreWindow) }
	restored, err := f.svc.Restore(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, restored.DeletedAt.Valid)

	_, err = f.svc.SoftDelete(context.Background(), id)
	require.NoError(t, err)

	// One second past the window the restore is refused.
	f.svc.now = func() time.Time { return deletedAt.Add(RestoreWindow + 2*time.Second) }
	_, err = f.svc.Restore(context.Background(), id)
	assert.True(t, apperror.IsRestoreWindowExpired(err))
}

func TestRestoreUnknownPost(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Restore(context.Background(), uuid.Must(uuid.NewV4()).String())
	assert.True(t, apperror.IsNotFound(err))
}
