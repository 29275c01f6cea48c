package codec

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Algorithm
		wantErr bool
	}{
		{"gzip", Gzip, false},
		{"zlib", Zlib, false},
		{"zstd", Zstd, false},
		{"lz4", LZ4, false},
		{"", "", true},
		{"brotli", "", true},
		{"GZIP", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedAlgorithm) {
					t.Fatalf("Parse(%q) error = %v, want ErrUnsupportedAlgorithm", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFor_Unsupported(t *testing.T) {
	if _, err := For(Algorithm("bz2")); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("For() error = %v, want ErrUnsupportedAlgorithm", err)
	}
}

func TestFor_RoundTrip_AllAlgorithms(t *testing.T) {
	original := []byte("the same payload through every supported codec")

	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			c, err := For(alg)
			if err != nil {
				t.Fatalf("For(%q) error = %v", alg, err)
			}

			var compressed bytes.Buffer
			writer, err := c.Writer(&compressed)
			if err != nil {
				t.Fatalf("Writer() error = %v", err)
			}
			if _, err := writer.Write(original); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if err := writer.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}

			reader, err := c.Reader(&compressed)
			if err != nil {
				t.Fatalf("Reader() error = %v", err)
			}
			decompressed, err := io.ReadAll(reader)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			reader.Close()

			if !bytes.Equal(decompressed, original) {
				t.Errorf("Round-trip failed: got %q, want %q", decompressed, original)
			}
		})
	}
}
