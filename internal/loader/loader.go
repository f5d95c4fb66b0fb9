// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"bytes"
	"encoding/binary"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tfctl/fatool/internal/aws"
	"github.com/tfctl/fatool/internal/cacheutil"
	"github.com/tfctl/fatool/internal/log"
	"github.com/tfctl/fatool/internal/util"
)

// Encoding names reported in Text.
const (
	EncodingUTF8    = "UTF-8"
	EncodingUTF8BOM = "UTF-8 (BOM)"
	EncodingUTF16LE = "UTF-16LE"
	EncodingUTF16BE = "UTF-16BE"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Text is a decoded text buffer and the encoding it was read as.
type Text struct {
	Content  string
	Encoding string
}

// Loader reads local files and S3 objects. The zero value reads local files
// and builds an S3 client on first use of an s3:// path.
type Loader struct {
	// S3 serves s3:// paths. Nil means build one from S3Options.
	S3 aws.ObjectGetter
	// S3Options configure the client built when S3 is nil.
	S3Options []aws.Option
	// Cache keeps fetched objects on disk under cacheutil.Dir, keyed by URI.
	Cache bool
}

// New returns a Loader whose S3 client, if needed, is built with opts.
func New(opts ...aws.Option) *Loader {
	return &Loader{S3Options: opts}
}

// Bytes reads the whole of path.
func (l *Loader) Bytes(ctx context.Context, path string) ([]byte, error) {
	if aws.IsURI(path) {
		return l.fetch(ctx, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, util.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w: %w", path, util.ErrIO, err)
	}
	log.Debugf("loaded %s: %d bytes", path, len(data))
	return data, nil
}

// Text reads and decodes path.
func (l *Loader) Text(ctx context.Context, path string) (Text, error) {
	data, err := l.Bytes(ctx, path)
	if err != nil {
		return Text{}, err
	}

	txt, err := Decode(data)
	if err != nil {
		return Text{}, fmt.Errorf("%s: %w", path, err)
	}
	return txt, nil
}

// Lines reads, decodes and splits path with util.SplitLines.
func (l *Loader) Lines(ctx context.Context, path string) ([]string, Text, error) {
	txt, err := l.Text(ctx, path)
	if err != nil {
		return nil, Text{}, err
	}
	return util.SplitLines(txt.Content), txt, nil
}

func (l *Loader) fetch(ctx context.Context, path string) ([]byte, error) {
	obj, err := aws.ParseURI(path)
	if err != nil {
		return nil, err
	}

	subdirs := []string{"s3", obj.Bucket}
	if l.Cache {
		if entry, ok := cacheutil.Read(subdirs, obj.String()); ok {
			return entry.Data, nil
		}
	}

	if l.S3 == nil {
		client, err := aws.NewS3Client(ctx, l.S3Options...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", path, util.ErrIO, err)
		}
		l.S3 = client
	}

	data, err := aws.Fetch(ctx, l.S3, obj)
	if err != nil {
		return nil, err
	}

	if l.Cache {
		if err := cacheutil.Write(subdirs, obj.String(), data); err != nil {
			log.WithError(err).Warnf("not cached: %s", obj)
		}
	}
	return data, nil
}

// Decode interprets buf as text. A UTF-8 BOM is stripped, UTF-16 with a BOM
// is transcoded to UTF-8, and anything else must already be valid UTF-8.
func Decode(buf []byte) (Text, error) {
	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		rest := buf[len(bomUTF8):]
		if !utf8.Valid(rest) {
			return Text{}, fmt.Errorf("invalid %s: %w", EncodingUTF8BOM, util.ErrDecode)
		}
		return Text{Content: string(rest), Encoding: EncodingUTF8BOM}, nil

	case bytes.HasPrefix(buf, bomUTF16LE):
		return decodeUTF16(buf, unicode.LittleEndian, EncodingUTF16LE)

	case bytes.HasPrefix(buf, bomUTF16BE):
		return decodeUTF16(buf, unicode.BigEndian, EncodingUTF16BE)
	}

	if !utf8.Valid(buf) {
		return Text{}, fmt.Errorf("not valid %s: %w", EncodingUTF8, util.ErrDecode)
	}
	return Text{Content: string(buf), Encoding: EncodingUTF8}, nil
}

func decodeUTF16(buf []byte, order unicode.Endianness, name string) (Text, error) {
	if len(buf)%2 != 0 {
		return Text{}, fmt.Errorf("odd length %s: %w", name, util.ErrDecode)
	}

	// The decoder substitutes U+FFFD for unpaired surrogates instead of failing.
	if !pairedSurrogates(buf[2:], order) {
		return Text{}, fmt.Errorf("unpaired surrogate in %s: %w", name, util.ErrDecode)
	}

	dec := unicode.UTF16(order, unicode.ExpectBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, buf)
	if err != nil {
		return Text{}, fmt.Errorf("invalid %s: %w: %w", name, util.ErrDecode, err)
	}
	return Text{Content: string(out), Encoding: name}, nil
}

// pairedSurrogates reports whether every surrogate code unit in buf is part
// of a high/low pair.
func pairedSurrogates(buf []byte, order unicode.Endianness) bool {
	var bo binary.ByteOrder = binary.LittleEndian
	if order == unicode.BigEndian {
		bo = binary.BigEndian
	}

	n := len(buf) / 2
	for i := 0; i < n; i++ {
		u := bo.Uint16(buf[2*i:])
		switch {
		case u >= 0xD800 && u <= 0xDBFF:
			if i+1 >= n {
				return false
			}
			if next := bo.Uint16(buf[2*i+2:]); next < 0xDC00 || next > 0xDFFF {
				return false
			}
			i++
		case u >= 0xDC00 && u <= 0xDFFF:
			return false
		}
	}
	return true
}
