package media

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

const baseURL = "https://api.cloudinary.com/v1_1"

// CloudinaryClient talks to the Cloudinary upload API with signed requests.
type CloudinaryClient struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

func NewCloudinaryClient(cloudName, apiKey, apiSecret string) repository.IMedia {
	return &CloudinaryClient{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type uploadResponse struct {
	SecureURL    string  `json:"secure_url"`
	URL          string  `json:"url"`
	PublicID     string  `json:"public_id"`
	Duration     float64 `json:"duration"`
	ResourceType string  `json:"resource_type"`
}

// Upload pushes the local file to the media host and removes the temp file
// after either outcome, so failed requests don't leak disk.
func (c *CloudinaryClient) Upload(ctx context.Context, localFilePath string) (*repository.UploadResult, error) {
	defer func() {
		if err := os.Remove(localFilePath); err != nil && !os.IsNotExist(err) {
			logger.GetLogger().WithField("error", err).Warn("Error while removing temp file")
		}
	}()

	file, err := os.Open(localFilePath)
	if err != nil {
		return nil, model.NewUpstreamError("Error while reading upload file")
	}
	defer file.Close()

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	signature := c.sign("timestamp=" + timestamp)

	body := &strings.Builder{}
	writer := multipart.NewWriter(body)
	_ = writer.WriteField("api_key", c.apiKey)
	_ = writer.WriteField("timestamp", timestamp)
	_ = writer.WriteField("signature", signature)

	part, err := writer.CreateFormFile("file", filepath.Base(localFilePath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s/auto/upload", baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body.String()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while uploading to media host")
		return nil, model.NewUpstreamError("Error while uploading file")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		logger.GetLogger().
			WithField("status", resp.StatusCode).
			WithField("body", string(raw)).
			Error("Media host rejected upload")
		return nil, model.NewUpstreamError("Error while uploading file")
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, model.NewUpstreamError("Error while decoding media host response")
	}

	uploadURL := parsed.SecureURL
	if uploadURL == "" {
		uploadURL = parsed.URL
	}
	return &repository.UploadResult{
		URL:      uploadURL,
		AssetID:  parsed.PublicID,
		Duration: parsed.Duration,
	}, nil
}

func (c *CloudinaryClient) Delete(ctx context.Context, assetID string, kind model.MediaKind) error {
	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	signature := c.sign(fmt.Sprintf("public_id=%s&timestamp=%s", assetID, timestamp))

	form := url.Values{}
	form.Set("public_id", assetID)
	form.Set("api_key", c.apiKey)
	form.Set("timestamp", timestamp)
	form.Set("signature", signature)

	endpoint := fmt.Sprintf("%s/%s/%s/destroy", baseURL, c.cloudName, kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while deleting from media host")
		return model.NewUpstreamError("Error while deleting asset")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.NewUpstreamError("Error while deleting asset")
	}
	return nil
}

func (c *CloudinaryClient) sign(params string) string {
	sum := sha1.Sum([]byte(params + c.apiSecret))
	return hex.EncodeToString(sum[:])
}
