package team

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/don-Savage01/universe-ofhair-sub001/internal/services"
)

// MaxPhotoSize caps team photo uploads at 5MB.
const MaxPhotoSize = 5 << 20

// photoExtensions maps accepted upload types to the stored extension.
// HEIC/HEIF are relabeled as JPEG for downstream compatibility — this is a
// labeling convention only, the bytes are not transcoded.
var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/heic": ".jpg",
	"image/heif": ".jpg",
}

// normalizePhotoType validates the upload's content type and returns the
// stored extension and content type.
func normalizePhotoType(contentType string) (ext, storedType string, err error) {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	ext, ok := photoExtensions[ct]
	if !ok {
		return "", "", fmt.Errorf("unsupported image type %q (JPEG, PNG, WebP, HEIC or HEIF only)", contentType)
	}
	if ct == "image/heic" || ct == "image/heif" {
		ct = "image/jpeg"
	}
	return ext, ct, nil
}

// photoObjectName builds a collision-resistant object key.
func photoObjectName(ext string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("team/%d-%s%s", time.Now().UnixNano(), suffix, ext)
}

// objectKeyFromURL recovers the storage key from a stored public URL.
func objectKeyFromURL(imageURL string) string {
	if i := strings.Index(imageURL, "/team/"); i >= 0 {
		return imageURL[i+1:]
	}
	return ""
}

// RemovePhoto deletes a member's stored photo object, best effort: failures
// are logged and never propagate. Used when the member row itself goes away.
func RemovePhoto(ctx context.Context, store services.PhotoStore, imageURL string) {
	key := objectKeyFromURL(imageURL)
	if key == "" {
		return
	}
	if err := store.Remove(ctx, key); err != nil {
		log.Printf("⚠️ Team photo deletion failed for %s: %v", key, err)
	}
}

// ReplacePhoto uploads a new team photo and returns its public URL. When the
// member already has an image, the old object is deleted first, best effort:
// a failed delete is logged and never blocks the new upload.
func ReplacePhoto(ctx context.Context, store services.PhotoStore, oldImageURL, contentType string, r io.Reader, size int64) (string, error) {
	if size > MaxPhotoSize {
		return "", fmt.Errorf("image too large (%d bytes, max %d)", size, MaxPhotoSize)
	}

	ext, storedType, err := normalizePhotoType(contentType)
	if err != nil {
		return "", err
	}

	if oldImageURL != "" {
		if key := objectKeyFromURL(oldImageURL); key != "" {
			if err := store.Remove(ctx, key); err != nil {
				log.Printf("⚠️ Old team photo deletion failed (continuing): %v", err)
			}
		}
	}

	return store.Put(ctx, photoObjectName(ext), r, size, storedType)
}
