// Package leveldecoder decodes the gzip+base64 level string format into
// the raw key/value object records the catalog package turns into
// GameObjects. Both steps are plain stdlib work with no improvement
// available from a third-party library, so this package is deliberately
// stdlib-only.
package leveldecoder

import (
	"compress/gzip"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/corvid-run/pathbot/catalog"
)

// gzipMagicPrefix is the base64 encoding of a gzip stream's first three
// bytes (the magic number 1f 8b and the deflate method byte 08), used to locate the payload inside strings that carry an unrelated
// prefix (headers, URL query strings, etc).
const gzipMagicPrefix = "H4sI"

// Decode extracts the gzip+base64 payload from encoded and returns the
// decompressed level string.
func Decode(encoded string) (string, error) {
	clean := encoded
	if idx := strings.Index(encoded, gzipMagicPrefix); idx >= 0 {
		clean = encoded[idx:]
	} else {
		clean = strings.TrimSpace(clean)
	}

	// Real level strings are unpadded URL-safe base64; trimming any
	// trailing '=' and decoding with RawURLEncoding handles both that and
	// the padded form some exporters still emit.
	data, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(clean, "="))
	if err != nil {
		return "", fmt.Errorf("decoding base64 payload: %w", err)
	}

	reader, err := gzip.NewReader(strings.NewReader(string(data)))
	if err != nil {
		return "", fmt.Errorf("opening gzip stream: %w", err)
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("decompressing level data: %w", err)
	}

	return string(decompressed), nil
}

// ParseObjects splits a decoded level string into its semicolon-delimited
// object records, each a comma-delimited, alternating key/value list.
// Malformed or empty records are skipped rather than treated as errors,
// matching the tolerance of the format this was decoded from.
func ParseObjects(levelString string) []catalog.RawObject {
	var objects []catalog.RawObject

	for _, objectStr := range strings.Split(levelString, ";") {
		if strings.TrimSpace(objectStr) == "" {
			continue
		}

		tokens := strings.Split(objectStr, ",")
		var properties []catalog.KV

		for i := 0; i+1 < len(tokens); i += 2 {
			properties = append(properties, catalog.KV{Key: tokens[i], Value: tokens[i+1]})
		}

		if len(properties) > 0 {
			objects = append(objects, catalog.RawObject{Properties: properties})
		}
	}

	return objects
}

// DecodeObjects is the common-case entry point: decode the level string
// and parse it directly into raw object records.
func DecodeObjects(encoded string) ([]catalog.RawObject, error) {
	levelString, err := Decode(encoded)
	if err != nil {
		return nil, err
	}
	return ParseObjects(levelString), nil
}
