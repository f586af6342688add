package services

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/minio/minio-go/v7"

	"github.com/don-Savage01/universe-ofhair-sub001/internal/database"
)

// PhotoStore is the object-storage surface the team-member handlers need.
// The MinIO client satisfies it in production; tests inject fakes.
type PhotoStore interface {
	Put(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
}

// MinioPhotoStore stores team photos in the configured MinIO bucket.
type MinioPhotoStore struct{}

func photoBucket() string {
	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "team-photos"
	}
	return bucket
}

func (MinioPhotoStore) Put(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO not initialized")
	}

	_, err := database.MinIO.PutObject(ctx, photoBucket(), objectName, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if os.Getenv("MINIO_USE_SSL") == "true" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, os.Getenv("MINIO_ENDPOINT"), photoBucket(), objectName), nil
}

func (MinioPhotoStore) Remove(ctx context.Context, objectName string) error {
	if database.MinIO == nil {
		return fmt.Errorf("MinIO not initialized")
	}
	return database.MinIO.RemoveObject(ctx, photoBucket(), objectName, minio.RemoveObjectOptions{})
}
