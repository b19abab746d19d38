package checksum

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/vvka-141/fman/internal/files/filesystem"
)

// Calculator is an interface for computing content digests.
// This abstraction allows for different digest algorithms.
type Calculator interface {
	// CalculateStream computes the digest of everything r yields, updating
	// the digest state chunk by chunk.
	CalculateStream(ctx context.Context, r io.Reader) (string, error)
}

// SHA256 implements Calculator using SHA-256 with lowercase hex encoding.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateStream computes SHA-256 of a stream without buffering it whole.
func (c SHA256) CalculateStream(ctx context.Context, r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := filesystem.CopyContext(ctx, h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

var _ Calculator = SHA256{}
