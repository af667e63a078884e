package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gorm.io/gorm"

	"github.com/devhive/backend/internal/models"
)

// ObjectPutter is the slice of the S3 client the avatar service needs
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// AvatarService stores profile avatars in S3 and records the public URL
type AvatarService struct {
	db     *gorm.DB
	client ObjectPutter
	bucket string
}

func NewAvatarService(db *gorm.DB, client ObjectPutter, bucket string) *AvatarService {
	return &AvatarService{
		db:     db,
		client: client,
		bucket: bucket,
	}
}

// Upload writes the image to S3 under a key derived from the profile id
// and persists the resulting URL on the record.
func (s *AvatarService) Upload(ctx context.Context, devID string, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("avatars/%s%s", devID, extensionFor(contentType))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)

	err = s.db.WithContext(ctx).
		Model(&models.Dev{}).
		Where("id = ?", devID).
		Update("avatar_url", publicURL).Error
	if err != nil {
		return "", err
	}

	log.Printf("[AvatarService] uploaded avatar for %s: %s", devID, publicURL)
	return publicURL, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
