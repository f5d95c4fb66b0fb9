// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/fatool/internal/util"
)

type fakeGetter struct {
	body string
	err  error
	got  *s3v2.GetObjectInput
}

func (f *fakeGetter) GetObject(_ context.Context, in *s3v2.GetObjectInput, _ ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error) {
	f.got = in
	if f.err != nil {
		return nil, f.err
	}
	return &s3v2.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestParseURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    Object
		wantErr bool
	}{
		{name: "simple", uri: "s3://evidence/disk.img", want: Object{Bucket: "evidence", Key: "disk.img"}},
		{name: "nested key", uri: "s3://evidence/case-7/mem.raw", want: Object{Bucket: "evidence", Key: "case-7/mem.raw"}},
		{name: "no key", uri: "s3://evidence/", wantErr: true},
		{name: "no bucket", uri: "s3:///key", wantErr: true},
		{name: "wrong scheme", uri: "file:///etc/passwd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURI(tt.uri)
			if tt.wantErr {
				assert.ErrorIs(t, err, util.ErrPrecondition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.uri, got.String())
		})
	}
}

func TestIsURI(t *testing.T) {
	assert.True(t, IsURI("s3://b/k"))
	assert.False(t, IsURI("/tmp/s3://b/k"))
	assert.False(t, IsURI("b/k"))
}

func TestFetch(t *testing.T) {
	f := &fakeGetter{body: "MZ\x90\x00"}
	data, err := Fetch(context.Background(), f, Object{Bucket: "b", Key: "k.exe"})
	require.NoError(t, err)
	assert.Equal(t, []byte("MZ\x90\x00"), data)
	assert.Equal(t, "b", awsv2.ToString(f.got.Bucket))
	assert.Equal(t, "k.exe", awsv2.ToString(f.got.Key))
}

func TestFetchErrors(t *testing.T) {
	_, err := Fetch(context.Background(), &fakeGetter{err: &types.NoSuchKey{}}, Object{Bucket: "b", Key: "k"})
	assert.ErrorIs(t, err, util.ErrNotFound)

	_, err = Fetch(context.Background(), &fakeGetter{err: errors.New("access denied")}, Object{Bucket: "b", Key: "k"})
	assert.ErrorIs(t, err, util.ErrIO)
	assert.Contains(t, err.Error(), "access denied")
}

func TestOptions(t *testing.T) {
	var opts options
	WithProfile("forensics")(&opts)
	WithRegion("eu-west-1")(&opts)
	WithEndpoint("http://localhost:9000")(&opts)
	WithRetryer(func() awsv2.Retryer { return retry.NewStandard() })(&opts)

	assert.Equal(t, "forensics", opts.profile)
	assert.Equal(t, "eu-west-1", opts.region)
	assert.Equal(t, "http://localhost:9000", opts.endpoint)
	require.NotNil(t, opts.retryer)
	assert.NotNil(t, opts.retryer())
}

func TestNewS3Client(t *testing.T) {
	client, err := NewS3Client(context.Background(), WithRegion("us-east-1"), WithEndpoint("http://localhost:9000"))
	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, "us-east-1", client.Options().Region)
	assert.True(t, client.Options().UsePathStyle)
}
