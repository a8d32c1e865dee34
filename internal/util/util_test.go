package util

import (
	"strings"
	"testing"
)

func TestETag(t *testing.T) {
	t.Parallel()

	logo := []byte("png-bytes-of-a-logo")

	tag := ETag(logo)
	if !strings.HasPrefix(tag, `"`) || !strings.HasSuffix(tag, `"`) {
		t.Fatalf("ETag(%q) = %s, want a quoted tag", logo, tag)
	}

	if again := ETag([]byte("png-bytes-of-a-logo")); again != tag {
		t.Fatalf("equal bodies produced different tags: %s vs %s", tag, again)
	}

	if other := ETag([]byte("different body")); other == tag {
		t.Fatalf("different bodies produced the same tag %s", tag)
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 600, expected: "600 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "logo size limit", bytes: 2 << 20, expected: "2.0 MB"},
		{name: "gigabyte", bytes: 3 * 1024 * 1024 * 1024, expected: "3.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}
