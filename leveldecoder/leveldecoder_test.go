package leveldecoder

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"testing"
)

func gzipBase64(t *testing.T, s string) string {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write([]byte(s)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return base64.URLEncoding.EncodeToString(buf.Bytes())
}

func TestDecodeRoundTrips(t *testing.T) {
	const original = "1,1,2,100,3,15;1,1,2,130,3,15;"
	encoded := gzipBase64(t, original)

	got, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != original {
		t.Fatalf("got %q, want %q", got, original)
	}
}

func TestDecodeAcceptsUnpaddedBase64(t *testing.T) {
	const original = "1,1,2,100,3,15;"

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write([]byte(original)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	encoded := base64.RawURLEncoding.EncodeToString(buf.Bytes())

	got, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != original {
		t.Fatalf("got %q, want %q", got, original)
	}
}

func TestDecodeFindsMagicPrefixAfterGarbage(t *testing.T) {
	const original = "1,8,2,0,3,0;"
	encoded := gzipBase64(t, original)
	withPrefix := "garbage-header:" + encoded

	got, err := Decode(withPrefix)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != original {
		t.Fatalf("got %q, want %q", got, original)
	}
}

func TestParseObjectsSkipsEmptyRecords(t *testing.T) {
	objs := ParseObjects("1,1,2,100,3,15;;1,8,2,50,3,50;")
	if len(objs) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(objs))
	}
	if objs[0].Properties[0].Key != "1" || objs[0].Properties[0].Value != "1" {
		t.Fatalf("unexpected first property: %+v", objs[0].Properties[0])
	}
}

func TestParseObjectsDropsDanglingKeyWithoutValue(t *testing.T) {
	objs := ParseObjects("1,1,2,100,3")
	if len(objs) != 1 {
		t.Fatalf("expected 1 object, got %d", len(objs))
	}
	if len(objs[0].Properties) != 2 {
		t.Fatalf("expected the dangling trailing key to be dropped, got %+v", objs[0].Properties)
	}
}

func TestDecodeObjectsEndToEnd(t *testing.T) {
	const original = "1,1,2,100,3,15;1,8,2,200,3,6;"
	encoded := gzipBase64(t, original)

	objs, err := DecodeObjects(encoded)
	if err != nil {
		t.Fatalf("DecodeObjects: %v", err)
	}
	if len(objs) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(objs))
	}
}
