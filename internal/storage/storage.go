package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/mentorverse/mentorverse-api/internal/config"
)

// ResumeStore persists uploaded resumes and returns the stored path.
// Delete takes a path previously returned by Save.
type ResumeStore interface {
	Save(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, stored string) error
}

// New returns an S3 store when a bucket is configured and a local store otherwise.
func New(ctx context.Context, cfg config.StorageConfig) (ResumeStore, error) {
	if cfg.S3Bucket == "" {
		return NewLocalStore(cfg.LocalDir), nil
	}
	return NewS3Store(ctx, cfg)
}

// objectName prefixes the client filename with a millisecond timestamp and a
// random fragment and strips any directory components.
func objectName(now time.Time, id, filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r < 0x20, r == '/', r == ':':
			return -1
		}
		return r
	}, base)
	if base == "" || base == "." || base == ".." {
		base = "resume"
	}
	return fmt.Sprintf("%d-%s-%s", now.UnixMilli(), id, base)
}

func shortID() string {
	return uuid.NewString()[:8]
}

// LocalStore writes files below a directory served at /uploads.
type LocalStore struct {
	dir   string
	now   func() time.Time
	newID func() string
}

func NewLocalStore(dir string) *LocalStore {
	if dir == "" {
		dir = "uploads"
	}
	return &LocalStore{dir: dir, now: time.Now, newID: shortID}
}

func (s *LocalStore) Save(_ context.Context, filename, _ string, body io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := objectName(s.now(), s.newID(), filename)
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path.Join("uploads", name), nil
}

func (s *LocalStore) Delete(_ context.Context, stored string) error {
	err := os.Remove(filepath.Join(s.dir, path.Base(stored)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store uploads resumes to an S3-compatible bucket.
type S3Store struct {
	client objectAPI
	bucket string
	prefix string
	now    func() time.Time
	newID  func() string
}

func NewS3Store(ctx context.Context, cfg config.StorageConfig) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.S3Region)}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = cfg.S3UsePathStyle
	})
	return &S3Store{client: client, bucket: cfg.S3Bucket, prefix: "resumes", now: time.Now, newID: shortID}, nil
}

func (s *S3Store) Save(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := path.Join(s.prefix, objectName(s.now(), s.newID(), filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}

func (s *S3Store) Delete(ctx context.Context, stored string) error {
	key, ok := strings.CutPrefix(stored, fmt.Sprintf("s3://%s/", s.bucket))
	if !ok {
		return fmt.Errorf("object %q is not in bucket %s", stored, s.bucket)
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}
