package uploader

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"blog_api/internal/pkg/config"
	"blog_api/pkg/apperr"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

// Uploader stores an uploaded file and returns its public URL.
type Uploader interface {
	UploadFile(file *multipart.FileHeader) (string, error)
}

// allowed image extensions, matching what the web client produces.
var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// AliyunOSSUploader stores post images in an OSS bucket.
type AliyunOSSUploader struct {
	bucket *oss.Bucket
	config config.OSSConfig
}

// NewAliyunOSSUploader connects to the bucket named in the configuration.
func NewAliyunOSSUploader(cfg config.OSSConfig) (*AliyunOSSUploader, error) {
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, err
	}

	bucket, err := client.Bucket(cfg.BucketName)
	if err != nil {
		return nil, err
	}

	return &AliyunOSSUploader{bucket: bucket, config: cfg}, nil
}

// UploadFile stores the file under blog-posts/YYYYMMDD/<uuid>.<ext> and
// returns the public URL. Non-image extensions are rejected.
func (u *AliyunOSSUploader) UploadFile(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExts[ext] {
		return "", apperr.Invalidf("unsupported image format %q", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	objectKey := fmt.Sprintf("blog-posts/%s/%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	if err := u.bucket.PutObject(objectKey, src); err != nil {
		return "", err
	}

	// Assumes a public-read bucket or a CDN in front of it.
	return fmt.Sprintf("https://%s.%s/%s", u.config.BucketName, u.config.Endpoint, objectKey), nil
}
