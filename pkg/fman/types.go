package fman

// EntryKind is the classification of a directory entry in a listing.
// Its string form is the label that listings sort by.
type EntryKind string

const (
	EntryDirectory EntryKind = "directory"
	EntryFile      EntryKind = "file"
)

// FileEntry is one row of a directory listing.
type FileEntry struct {
	Name string
	Kind EntryKind
}
