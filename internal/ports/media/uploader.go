package media

import "context"

// File is a raw uploaded file as received from the client.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Uploader stores raw images on durable storage and returns their URLs.
// The result preserves input order; a single failure fails the whole batch.
type Uploader interface {
	UploadBatch(ctx context.Context, files []File) ([]string, error)
}
