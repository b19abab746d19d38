// Package compression compresses and decompresses files with brotli.
//
// Compress and Decompress are the bare stream transforms. Service applies
// them to files: the source is streamed through the codec into a temporary
// sibling of the destination, which is renamed into place only after the
// encoder and the file are both closed.
package compression
