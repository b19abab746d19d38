// Package checksum provides streaming content digests.
//
// The digest is SHA-256, encoded as 64 lowercase hex characters. Files are
// hashed incrementally: the digest state is updated once per read chunk, so
// memory use does not grow with file size.
//
// # Example Usage
//
//	hasher := checksum.NewFileHasher(filesystem.NewOSFileSystem(), nil)
//	sum, err := hasher.CalculateHash(ctx, "/home/user", "notes.txt")
//
// # Thread Safety
//
// SHA256 and FileHasher are safe for concurrent use by multiple goroutines.
package checksum
