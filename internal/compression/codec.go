package compression

import (
	"context"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/vvka-141/fman/internal/files/filesystem"
)

// Fixed brotli parameters; they match the common defaults of brotli encoders
// so archives are interchangeable with other tools.
const (
	Quality    = brotli.BestCompression
	WindowBits = 22
)

// Compress streams src through a brotli encoder into dst. The encoder is
// closed, flushing its final block, before Compress returns nil.
func Compress(ctx context.Context, dst io.Writer, src io.Reader) error {
	bw := brotli.NewWriterOptions(dst, brotli.WriterOptions{Quality: Quality, LGWin: WindowBits})
	if _, err := filesystem.CopyContext(ctx, bw, src); err != nil {
		_ = bw.Close()
		return err
	}
	return bw.Close()
}

// Decompress streams brotli data from src into dst.
func Decompress(ctx context.Context, dst io.Writer, src io.Reader) error {
	_, err := filesystem.CopyContext(ctx, dst, brotli.NewReader(src))
	return err
}
