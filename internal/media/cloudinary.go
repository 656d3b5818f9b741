// Package media forwards image uploads to the external hosting provider.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	_ "golang.org/x/image/webp"
)

// Image is the durable result of an upload. Width and Height are zero when
// the payload could not be decoded locally; the host still accepted it.
type Image struct {
	URL      string
	PublicID string
	Width    int
	Height   int
}

// Uploader forwards a binary image to the external host and returns its
// stable URL. Failures are surfaced directly; there is no local retry.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader) (*Image, error)
	Destroy(ctx context.Context, publicID string) error
}

// CloudinaryUploader implements Uploader against Cloudinary.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader builds an uploader from a CLOUDINARY_URL style
// credential string. folder scopes every upload for this site.
func NewCloudinaryUploader(cloudinaryURL, folder string) (*CloudinaryUploader, error) {
	if cloudinaryURL == "" {
		return nil, errors.New("cloudinary url is not configured")
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}

	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

// Upload reads the whole payload, probes its pixel dimensions locally, and
// forwards it under a dated unique public id.
func (u *CloudinaryUploader) Upload(ctx context.Context, r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("empty upload")
	}

	width, height := probeDimensions(data)

	publicID := fmt.Sprintf("%s-%s", time.Now().Format("20060102"), uuid.New().String())
	result, err := u.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID: publicID,
		Folder:   u.folder,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}

	return &Image{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
		Width:    width,
		Height:   height,
	}, nil
}

// Destroy removes a previously uploaded image from the host.
func (u *CloudinaryUploader) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	_, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	return nil
}

// probeDimensions decodes just the image header. Registered formats cover
// png, jpeg, gif and webp; anything else reports zero dimensions.
func probeDimensions(data []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
