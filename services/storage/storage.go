package storage

import (
	"context"
	"fmt"

	"yalasafari/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService uploads gallery and catalogue images to a CDN-backed
// media store.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (publicID, url string, err error)
	DeleteFile(ctx context.Context, publicID string) error
}

type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

var _ StorageService = (*CloudinaryStorage)(nil)

// NewCloudinaryStorage builds the storage service from configured
// credentials.
func NewCloudinaryStorage() (*CloudinaryStorage, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("storage: cloudinary credentials not configured")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

// UploadFile pushes a local file into the given folder and returns its
// permanent public ID plus the serving URL.
func (s *CloudinaryStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{Folder: destFolder})
	if err != nil {
		return "", "", fmt.Errorf("storage: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("storage: no public ID returned")
	}
	return result.PublicID, result.SecureURL, nil
}

// DeleteFile removes an uploaded file given its public ID.
func (s *CloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("storage: failed to delete file: %w", err)
	}
	return nil
}
