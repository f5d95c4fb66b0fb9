// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package loader

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/fatool/internal/util"
)

type fakeS3 struct {
	objects map[string]string
}

func (f fakeS3) GetObject(_ context.Context, in *s3v2.GetObjectInput, _ ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error) {
	body, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3v2.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestBytesLocal(t *testing.T) {
	path := writeFile(t, "a.bin", []byte{0, 1, 2})

	data, err := New().Bytes(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2}, data)
}

func TestBytesErrors(t *testing.T) {
	l := New()

	_, err := l.Bytes(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, util.ErrNotFound)

	_, err = l.Bytes(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, util.ErrIO)
	assert.NotErrorIs(t, err, util.ErrNotFound)
}

func TestBytesS3(t *testing.T) {
	l := &Loader{S3: fakeS3{objects: map[string]string{"case/disk.img": "DATA"}}}

	data, err := l.Bytes(context.Background(), "s3://case/disk.img")
	require.NoError(t, err)
	assert.Equal(t, "DATA", string(data))

	_, err = l.Bytes(context.Background(), "s3://case/other.img")
	assert.ErrorIs(t, err, util.ErrNotFound)

	_, err = l.Bytes(context.Background(), "s3://case")
	assert.ErrorIs(t, err, util.ErrPrecondition)
}

func TestBytesS3Cache(t *testing.T) {
	t.Setenv("FATOOL_CACHE_DIR", t.TempDir())
	t.Setenv("FATOOL_CACHE", "")

	warm := &Loader{Cache: true, S3: fakeS3{objects: map[string]string{"case/disk.img": "DATA\n"}}}
	data, err := warm.Bytes(context.Background(), "s3://case/disk.img")
	require.NoError(t, err)
	assert.Equal(t, "DATA\n", string(data))

	cold := &Loader{Cache: true, S3: fakeS3{}}
	data, err = cold.Bytes(context.Background(), "s3://case/disk.img")
	require.NoError(t, err)
	assert.Equal(t, "DATA\n", string(data))

	uncached := &Loader{S3: fakeS3{}}
	_, err = uncached.Bytes(context.Background(), "s3://case/disk.img")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		buf      []byte
		content  string
		encoding string
	}{
		{name: "plain ascii", buf: []byte("hello\n"), content: "hello\n", encoding: EncodingUTF8},
		{name: "utf8 multibyte", buf: []byte("naïve"), content: "naïve", encoding: EncodingUTF8},
		{name: "utf8 bom", buf: []byte("\xEF\xBB\xBFhi"), content: "hi", encoding: EncodingUTF8BOM},
		{name: "utf16le bom", buf: []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, content: "hi", encoding: EncodingUTF16LE},
		{name: "utf16be bom", buf: []byte{0xFE, 0xFF, 0, 'h', 0, 'i'}, content: "hi", encoding: EncodingUTF16BE},
		{name: "empty", buf: nil, content: "", encoding: EncodingUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt, err := Decode(tt.buf)
			require.NoError(t, err)
			assert.Equal(t, tt.content, txt.Content)
			assert.Equal(t, tt.encoding, txt.Encoding)
		})
	}
}

func TestDecodeFailures(t *testing.T) {
	for _, buf := range [][]byte{
		{'a', 0xff, 'b'},
		{0xEF, 0xBB, 0xBF, 0xc3},
		{0xFF, 0xFE, 'h'},
		{0xFF, 0xFE, 'a', 0x00, 0x00, 0xD8, 'b', 0x00},
		{0xFF, 0xFE, 'a', 0x00, 0x3D, 0xD8},
		{0xFE, 0xFF, 0xDC, 0x00, 0x00, 'a'},
	} {
		_, err := Decode(buf)
		assert.ErrorIs(t, err, util.ErrDecode, "buf %x", buf)
	}
}

func TestDecodeSurrogatePair(t *testing.T) {
	txt, err := Decode([]byte{0xFE, 0xFF, 0xD8, 0x3D, 0xDE, 0x00, 0x00, '!'})
	require.NoError(t, err)
	assert.Equal(t, "\U0001F600!", txt.Content)
	assert.Equal(t, EncodingUTF16BE, txt.Encoding)
}

func TestLines(t *testing.T) {
	path := writeFile(t, "a.txt", []byte("one\r\ntwo\nthree\n"))

	lines, txt, err := New().Lines(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, lines)
	assert.Equal(t, EncodingUTF8, txt.Encoding)

	bad := writeFile(t, "b.txt", []byte{0xff, 0xfe, 0x00})
	_, _, err = New().Lines(context.Background(), bad)
	assert.ErrorIs(t, err, util.ErrDecode)
}
