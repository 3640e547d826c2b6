package oss

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	aliyun "github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSService wraps one bucket. Controllers only ever see public URL
// strings; object keys live on the lecture rows so delete can find them.
type OSSService struct {
	Client     *aliyun.Client
	Bucket     *aliyun.Bucket
	Endpoint   string
	BucketName string
	Prefix     string
}

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	ak := getEnv("OSS_ACCESS_KEY_ID")
	sk := getEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := getEnv("OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("oss: OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET must be set")
	}

	var (
		client *aliyun.Client
		err    error
	)
	if sts := getEnv("OSS_SECURITY_TOKEN"); sts != "" {
		client, err = aliyun.New(endpoint, ak, sk, aliyun.SecurityToken(sts))
	} else {
		client, err = aliyun.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

func (s *OSSService) UploadStream(ctx context.Context, key string, r io.Reader, contentType string) error {
	opts := []aliyun.Option{
		aliyun.WithContext(ctx),
		aliyun.ContentType(contentType),
		aliyun.ContentDisposition("inline"),
		aliyun.CacheControl("public, max-age=31536000, immutable"),
	}
	return s.Bucket.PutObject(key, r, opts...)
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, aliyun.WithContext(ctx))
}

func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := s.ExtractKeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return s.DeleteObject(ctx, key)
}

func (s *OSSService) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.Bucket.IsObjectExist(key, aliyun.WithContext(ctx))
	if err != nil {
		return false, err
	}
	return ok, nil
}

type ObjectInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

func (s *OSSService) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var out []ObjectInfo
	marker := ""
	for {
		res, err := s.Bucket.ListObjects(
			aliyun.Prefix(prefix),
			aliyun.Marker(marker),
			aliyun.MaxKeys(1000),
			aliyun.WithContext(ctx),
		)
		if err != nil {
			return nil, err
		}
		for _, o := range res.Objects {
			out = append(out, ObjectInfo{Name: o.Key, Size: o.Size, URL: s.PublicURL(o.Key)})
		}
		if !res.IsTruncated {
			break
		}
		marker = res.NextMarker
	}
	return out, nil
}

// SignedURL issues a time-limited credential-free URL (the vendor's PAR).
// Used for downloads so the bucket can stay private.
func (s *OSSService) SignedURL(key string, expiry time.Duration, attachmentName string) (string, error) {
	opts := []aliyun.Option{}
	if attachmentName != "" {
		opts = append(opts, aliyun.ResponseContentDisposition(
			fmt.Sprintf(`attachment; filename="%s"`, attachmentName)))
	}
	return s.Bucket.SignURL(key, aliyun.HTTPGet, int64(expiry/time.Second), opts...)
}

func (s *OSSService) PublicURL(key string) string {
	end := s.Endpoint
	end = strings.TrimPrefix(end, "https://")
	end = strings.TrimPrefix(end, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

func (s *OSSService) ExtractKeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", fmt.Errorf("parse public url: %w", err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("public url has no object key: %s", publicURL)
	}
	return key, nil
}

func (s *OSSService) buildObjectKey(dir, filename string) string {
	stamp := time.Now().UTC().Format("20060102")
	name := fmt.Sprintf("%s-%s-%s", stamp, randHex(4), safePart(filename))
	return joinParts(s.Prefix, dir, name)
}

func randHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%x", time.Now().UnixNano()&0xffffffff)
	}
	return hex.EncodeToString(b)
}

func safePart(p string) string {
	p = strings.ToLower(strings.TrimSpace(p))
	var b strings.Builder
	for _, r := range p {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = "file"
	}
	return out
}

func joinParts(parts ...string) string {
	var kept []string
	for _, p := range parts {
		p = strings.Trim(p, "/")
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "/")
}
