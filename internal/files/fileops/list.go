package fileops

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/vvka-141/fman/pkg/fman"
	"golang.org/x/sync/errgroup"
)

// statConcurrency bounds the metadata queries a listing runs at once.
const statConcurrency = 16

// ListFiles returns the entries of dir classified as file or directory.
// Entries are ordered by kind label ("directory" before "file") and then by
// name. The listing fails as a whole if the directory cannot be read or any
// single entry cannot be stat'ed.
func (s *Service) ListFiles(ctx context.Context, dir string) ([]fman.FileEntry, error) {
	s.logger.Verbose("list %s", dir)

	names, err := s.fs.ReadDirNames(dir)
	if err != nil {
		return nil, fman.FromFS("ls", dir, err)
	}

	entries := make([]fman.FileEntry, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(statConcurrency)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			full := filepath.Join(dir, name)
			info, err := s.fs.Stat(full)
			if err != nil {
				return fman.FromFS("ls", full, err)
			}
			kind := fman.EntryFile
			if info.IsDir() {
				kind = fman.EntryDirectory
			}
			entries[i] = fman.FileEntry{Name: name, Kind: kind}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	SortEntries(entries)
	return entries, nil
}

// SortEntries orders entries by kind label, then by name.
func SortEntries(entries []fman.FileEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Kind != entries[j].Kind {
			return entries[i].Kind < entries[j].Kind
		}
		return entries[i].Name < entries[j].Name
	})
}
