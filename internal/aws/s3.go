// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/tfctl/fatool/internal/log"
	"github.com/tfctl/fatool/internal/util"
)

// Scheme prefixes every object URI accepted by ParseURI.
const Scheme = "s3://"

// options holds optional overrides for AWS config loading.
type options struct {
	profile  string
	region   string
	endpoint string
	retryer  func() awsv2.Retryer
}

// Option customizes how AWS config is loaded. With no options the shell's
// AWS setup is inherited (AWS_PROFILE, shared config, env, IMDS).
type Option func(*options)

// WithProfile sets the shared config profile.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithEndpoint points the S3 client at an S3-compatible service, such as a
// MinIO evidence locker. Path-style addressing is used when set.
func WithEndpoint(endpoint string) Option {
	return func(o *options) { o.endpoint = endpoint }
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

// NewS3Client loads AWS config with opts applied and returns an S3 client.
func NewS3Client(ctx context.Context, opts ...Option) (*s3v2.Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log.Debugf("aws opts applied: profile=%s, region=%s, endpoint=%s", o.profile, o.region, o.endpoint)

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Debugf("aws config load err: err=%v", err)
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3v2.NewFromConfig(cfg, func(so *s3v2.Options) {
		if o.endpoint != "" {
			so.BaseEndpoint = awsv2.String(o.endpoint)
			so.UsePathStyle = true
		}
	})
	log.Debugf("s3 client created")
	return client, nil
}

// Object addresses one S3 object.
type Object struct {
	Bucket string
	Key    string
}

func (o Object) String() string {
	return Scheme + o.Bucket + "/" + o.Key
}

// IsURI reports whether path names an S3 object rather than a local file.
func IsURI(path string) bool {
	return strings.HasPrefix(path, Scheme)
}

// ParseURI splits s3://bucket/key into its parts. Both must be non-empty.
func ParseURI(uri string) (Object, error) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "s3" {
		return Object{}, fmt.Errorf("not an s3 uri %q: %w", uri, util.ErrPrecondition)
	}

	obj := Object{Bucket: u.Host, Key: strings.TrimPrefix(u.Path, "/")}
	if obj.Bucket == "" || obj.Key == "" {
		return Object{}, fmt.Errorf("s3 uri %q needs a bucket and a key: %w", uri, util.ErrPrecondition)
	}
	return obj, nil
}

// ObjectGetter is the subset of the S3 client used to read objects.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// Fetch reads the whole object. A missing key maps to util.ErrNotFound and
// every other failure to util.ErrIO.
func Fetch(ctx context.Context, svc ObjectGetter, obj Object) ([]byte, error) {
	result, err := svc.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(obj.Bucket),
		Key:    awsv2.String(obj.Key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("%s: %w", obj, util.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w: %w", obj, util.ErrIO, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", obj, util.ErrIO, err)
	}
	log.Debugf("fetched %s: %d bytes", obj, len(data))
	return data, nil
}
