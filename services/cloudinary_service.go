package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

var cloudinaryService *CloudinaryService

// InitCloudinaryService builds the shared Cloudinary client from env.
// Missing credentials are not fatal: avatar upload is simply disabled.
func InitCloudinaryService() error {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return fmt.Errorf("cloudinary credentials not configured")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return err
	}
	cloudinaryService = &CloudinaryService{cld: cld}
	return nil
}

func GetCloudinaryService() *CloudinaryService {
	return cloudinaryService
}

// UploadAvatar stores a user avatar and returns its secure URL. Each
// user keeps a single avatar asset, re-uploads overwrite the old one.
func (s *CloudinaryService) UploadAvatar(ctx context.Context, file multipart.File, userID string) (string, error) {
	unique := false
	overwrite := true
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         "ant2025/avatars",
		PublicID:       userID,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload succeeded but no URL returned")
	}
	return result.SecureURL, nil
}

// DeleteAvatar removes the user's avatar asset.
func (s *CloudinaryService) DeleteAvatar(ctx context.Context, userID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: "ant2025/avatars/" + userID,
	})
	return err
}
