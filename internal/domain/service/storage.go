package service

import (
	"context"
	"io"
)

// FileStorage is the blob store capability. Avatars live at a fixed key per
// account and are always JPEG; re-uploading overwrites in place.
type FileStorage interface {
	UploadAvatar(ctx context.Context, uid string, file io.Reader) (string, error)
	DeleteAvatar(ctx context.Context, uid string) error
	UploadPlantImage(ctx context.Context, file io.Reader, fileType string) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
	Close() error
}
