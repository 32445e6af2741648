package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"yamdb-backend/internal/config"
	"yamdb-backend/internal/errs"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const posterPrefix = "posters"

// PosterUpload tells a client where to PUT a poster and the URL to store on
// the title afterwards.
type PosterUpload struct {
	UploadURL string    `json:"upload_url"`
	PublicURL string    `json:"public_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PosterStorage keeps title poster images in object storage.
type PosterStorage interface {
	PresignPosterUpload(ctx context.Context, filename, contentType string) (*PosterUpload, error)
	// RemovePoster deletes the object behind posterURL. URLs that do not
	// point into the bucket are ignored.
	RemovePoster(ctx context.Context, posterURL string) error
}

type MinIOService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	expiry    time.Duration
	logger    *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http://"
		if cfg.UseSSL {
			scheme = "https://"
		}
		publicURL = scheme + endpoint
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		expiry:    cfg.PresignExpiry,
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	// Posters are served straight from the bucket.
	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/%s/*"]
			}
		]
	}`, s.bucket, posterPrefix)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}
	return nil
}

func (s *MinIOService) PresignPosterUpload(ctx context.Context, filename, contentType string) (*PosterUpload, error) {
	if err := checkPosterUpload(filename, contentType); err != nil {
		return nil, err
	}

	objectPath := posterObjectName(filename, uuid.NewString())
	expiry := s.expiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	presigned, err := s.client.PresignHeader(ctx, http.MethodPut, s.bucket, objectPath, expiry, url.Values{},
		http.Header{"Content-Type": []string{contentType}})
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectPath": objectPath,
		"expiry":     expiry,
	}).Info("Generated presigned poster upload")

	return &PosterUpload{
		UploadURL: presigned.String(),
		PublicURL: fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectPath),
		ExpiresAt: time.Now().UTC().Add(expiry),
	}, nil
}

func (s *MinIOService) RemovePoster(ctx context.Context, posterURL string) error {
	objectPath, ok := posterObjectPath(posterURL, s.publicURL, s.bucket)
	if !ok {
		return nil
	}

	err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to delete poster")
		return fmt.Errorf("failed to delete poster: %w", err)
	}

	s.logger.WithField("objectPath", objectPath).Info("Poster deleted from MinIO")
	return nil
}

func checkPosterUpload(filename, contentType string) error {
	v := errs.NewValidation()
	if strings.TrimSpace(filename) == "" {
		v.Add("filename", "This field is required.")
	}
	if !strings.HasPrefix(contentType, "image/") {
		v.Add("contentType", "Only image uploads are accepted.")
	}
	return v.OrNil()
}

// posterObjectName keeps the client's base name for readability and makes it
// unique with a random suffix.
func posterObjectName(filename, id string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	ext := strings.ToLower(filepath.Ext(base))
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, name)
	if len(id) > 8 {
		id = id[:8]
	}
	return path.Join(posterPrefix, fmt.Sprintf("%s_%s%s", name, id, ext))
}

// posterObjectPath extracts the object key from a public poster URL. It
// reports false for URLs outside publicURL/bucket.
func posterObjectPath(posterURL, publicURL, bucket string) (string, bool) {
	if posterURL == "" {
		return "", false
	}
	prefix := strings.TrimSuffix(publicURL, "/") + "/" + bucket + "/"
	if !strings.HasPrefix(posterURL, prefix) {
		return "", false
	}
	objectPath := strings.TrimPrefix(posterURL, prefix)
	// Presigned links may carry a query string.
	if idx := strings.Index(objectPath, "?"); idx != -1 {
		objectPath = objectPath[:idx]
	}
	if objectPath == "" {
		return "", false
	}
	return objectPath, true
}
