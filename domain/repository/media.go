package repository

import (
	"context"

	"videotube/domain/model"
)

// UploadResult is what the media host reports back for a stored asset.
// Duration is only populated for video uploads.
type UploadResult struct {
	URL      string
	AssetID  string
	Duration float64
}

// IMedia is the external media host. Upload removes the local temp file
// after either outcome. Delete is keyed by the host's opaque asset id.
type IMedia interface {
	Upload(ctx context.Context, localFilePath string) (*UploadResult, error)
	Delete(ctx context.Context, assetID string, kind model.MediaKind) error
}
