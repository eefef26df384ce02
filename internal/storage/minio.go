package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/config"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/logger"
)

// MinIO 简历归档存储：原始上传文件和解析出的纯文本分桶保存
type MinIO struct {
	client           *minio.Client
	originalsBucket  string
	parsedTextBucket string
}

// NewMinIO 创建MinIO客户端并确保存储桶存在
func NewMinIO(ctx context.Context, cfg *config.MinIOConfig) (*MinIO, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, fmt.Errorf("MinIO未配置")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建MinIO客户端失败: %w", err)
	}

	m := &MinIO{
		client:           client,
		originalsBucket:  cfg.OriginalsBucket,
		parsedTextBucket: cfg.ParsedTextBucket,
	}
	for _, bucket := range []string{m.originalsBucket, m.parsedTextBucket} {
		if bucket == "" {
			continue
		}
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			return nil, fmt.Errorf("检查存储桶 %s 失败: %w", bucket, err)
		}
		if !exists {
			if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: cfg.Location}); err != nil {
				return nil, fmt.Errorf("创建存储桶 %s 失败: %w", bucket, err)
			}
			logger.Info().Str("bucket", bucket).Msg("已创建MinIO存储桶")
		}
	}
	return m, nil
}

// ArchiveOriginal 归档原始简历文件，返回对象名
func (m *MinIO) ArchiveOriginal(ctx context.Context, submissionID, fileExt string, data []byte) (string, error) {
	if m.originalsBucket == "" {
		return "", fmt.Errorf("未配置原始简历存储桶")
	}
	objectName := fmt.Sprintf("%s/original%s", submissionID, strings.ToLower(fileExt))
	contentType := contentTypeForExt(fileExt)

	_, err := m.client.PutObject(ctx, m.originalsBucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("上传原始简历失败: %w", err)
	}
	return objectName, nil
}

// ArchiveParsedText 归档解析出的纯文本，返回对象名
func (m *MinIO) ArchiveParsedText(ctx context.Context, submissionID, text string) (string, error) {
	if m.parsedTextBucket == "" {
		return "", fmt.Errorf("未配置解析文本存储桶")
	}
	objectName := fmt.Sprintf("%s/parsed.txt", submissionID)

	_, err := m.client.PutObject(ctx, m.parsedTextBucket, objectName,
		strings.NewReader(text), int64(len(text)),
		minio.PutObjectOptions{ContentType: "text/plain; charset=utf-8"})
	if err != nil {
		return "", fmt.Errorf("上传解析文本失败: %w", err)
	}
	return objectName, nil
}

// GetParsedText 取回归档的解析文本
func (m *MinIO) GetParsedText(ctx context.Context, objectName string) (string, error) {
	obj, err := m.client.GetObject(ctx, m.parsedTextBucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("读取解析文本失败: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return "", fmt.Errorf("读取解析文本失败: %w", err)
	}
	return string(data), nil
}

func contentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".doc":
		return "application/msword"
	case ".txt":
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
