// Package scanner synchronizes a library directory tree with the shelf
// index. It walks the root, registers new files and folders as
// elements, refreshes the modified time of changed ones, and removes
// the elements of paths that vanished. The scanner is a collaborator of
// the store: it computes directory, extension, and timestamp values and
// hands them over; the store never touches the filesystem itself.
package scanner

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/atelier-tools/shelf/pkg/types"
)

// DefaultMaxDepth bounds recursive scans, matching the library's
// recursive search depth setting.
const DefaultMaxDepth = 8

// DefaultWorkers bounds the sync worker pool.
const DefaultWorkers = 4

// NewInstanceID supplies fresh instance ids for created elements.
// Injected so tests can use deterministic ids.
type NewInstanceID func() string

// Stats summarizes one Sync pass.
type Stats struct {
	Created int
	Updated int
	Removed int
	Skipped int
}

// Scanner walks a library root and reconciles the element registry.
type Scanner struct {
	elements types.ElementStore
	newID    NewInstanceID
	log      zerolog.Logger
	skip     *regexp.Regexp
	maxDepth int
	workers  int

	mu    sync.Mutex
	stats Stats
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithSkipPattern sets a regular expression; matching paths (relative,
// slash-separated) are ignored.
func WithSkipPattern(re *regexp.Regexp) Option {
	return func(s *Scanner) { s.skip = re }
}

// WithMaxDepth bounds recursion below the root. Depth 1 scans only the
// immediate children.
func WithMaxDepth(depth int) Option {
	return func(s *Scanner) { s.maxDepth = depth }
}

// WithWorkers sets the sync worker pool size.
func WithWorkers(n int) Option {
	return func(s *Scanner) { s.workers = n }
}

// WithLogger sets the progress logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Scanner) { s.log = log }
}

// New creates a Scanner over the given element store.
func New(elements types.ElementStore, newID NewInstanceID, opts ...Option) *Scanner {
	s := &Scanner{
		elements: elements,
		newID:    newID,
		log:      zerolog.Nop(),
		maxDepth: DefaultMaxDepth,
		workers:  DefaultWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// entry is one filesystem path queued for reconciliation.
type entry struct {
	identifier string // slash-separated path relative to the root
	name       string
	directory  string
	extension  string
	folder     bool
	modified   time.Time
}

// Sync walks root and reconciles the index: create, update, then remove
// stale elements. Each element write is one store transaction; Sync as
// a whole is not atomic, and a failed pass can be rerun.
func (s *Scanner) Sync(ctx context.Context, root string) (Stats, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return Stats{}, err
	}
	s.mu.Lock()
	s.stats = Stats{}
	s.mu.Unlock()

	entries, err := s.walk(root)
	if err != nil {
		return s.snapshot(), err
	}
	s.log.Debug().Int("paths", len(entries)).Str("root", root).Msg("scan walk finished")

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		seen[e.identifier] = true
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, e := range entries {
		e := e
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return s.syncOne(e)
		})
	}
	if err := g.Wait(); err != nil {
		return s.snapshot(), err
	}

	if err := s.removeStale(seen); err != nil {
		return s.snapshot(), err
	}

	st := s.snapshot()
	s.log.Info().
		Int("created", st.Created).
		Int("updated", st.Updated).
		Int("removed", st.Removed).
		Int("skipped", st.Skipped).
		Msg("scan finished")
	return st, nil
}

// walk collects entries below root, honoring depth and skip pattern.
func (s *Scanner) walk(root string) ([]entry, error) {
	var entries []entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		identifier := filepath.ToSlash(rel)

		if s.skip != nil && s.skip.MatchString(identifier) {
			s.count(func(st *Stats) { st.Skipped++ })
			s.log.Debug().Str("path", identifier).Msg("skipped by pattern")
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		depth := strings.Count(identifier, "/") + 1
		if depth > s.maxDepth {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		e := entry{
			identifier: identifier,
			name:       baseName(identifier, d.IsDir()),
			directory:  dirOf(identifier),
			folder:     d.IsDir(),
			modified:   info.ModTime().UTC().Truncate(time.Second),
		}
		if !d.IsDir() {
			e.extension = strings.TrimPrefix(filepath.Ext(identifier), ".")
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// syncOne creates or refreshes the element for a single path.
func (s *Scanner) syncOne(e entry) error {
	existing, err := s.elements.GetByIdentifier(e.identifier)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return err
	}

	if existing == nil {
		attrs := types.ElementAttrs{
			Name:       &e.name,
			Directory:  &e.directory,
			Extension:  &e.extension,
			Folder:     &e.folder,
			ModifiedAt: &e.modified,
		}
		elType := typeForEntry(e)
		attrs.Type = &elType
		ctime := time.Now().Unix()
		attrs.CreatedAt = &ctime
		owner := currentUser()
		attrs.Owner = &owner

		if _, err := s.elements.Create(e.identifier, s.newID(), attrs); err != nil {
			// A concurrent scan may have registered the path first.
			if errors.Is(err, types.ErrDuplicateIdentifier) {
				return nil
			}
			return err
		}
		s.count(func(st *Stats) { st.Created++ })
		s.log.Debug().Str("path", e.identifier).Msg("element created")
		return nil
	}

	if existing.ModifiedAt.Equal(e.modified) {
		return nil
	}
	if err := s.elements.UpdateAttributes(e.identifier, types.ElementAttrs{ModifiedAt: &e.modified}); err != nil {
		return err
	}
	s.count(func(st *Stats) { st.Updated++ })
	s.log.Debug().Str("path", e.identifier).Msg("element refreshed")
	return nil
}

// removeStale cascade-deletes every element whose path was not seen in
// this pass. Removal runs after the walk so a path that merely moved is
// registered under its new identifier before the old one goes.
func (s *Scanner) removeStale(seen map[string]bool) error {
	all, err := s.elements.List(types.ElementFilter{})
	if err != nil {
		return err
	}
	for _, el := range all {
		if seen[el.Identifier] {
			continue
		}
		if err := s.elements.Delete(el.Identifier); err != nil {
			if errors.Is(err, types.ErrNotFound) {
				continue
			}
			return err
		}
		s.count(func(st *Stats) { st.Removed++ })
		s.log.Debug().Str("path", el.Identifier).Msg("stale element removed")
	}
	return nil
}

func (s *Scanner) count(f func(*Stats)) {
	s.mu.Lock()
	f(&s.stats)
	s.mu.Unlock()
}

func (s *Scanner) snapshot() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func baseName(identifier string, isDir bool) string {
	base := identifier
	if i := strings.LastIndex(identifier, "/"); i >= 0 {
		base = identifier[i+1:]
	}
	if isDir {
		return base
	}
	if ext := filepath.Ext(base); ext != "" {
		return strings.TrimSuffix(base, ext)
	}
	return base
}

func dirOf(identifier string) string {
	if i := strings.LastIndex(identifier, "/"); i >= 0 {
		return identifier[:i]
	}
	return ""
}

// typeForEntry derives the stored element type. Folders are their own
// type; files fall back to the extension so presentation layers can
// group by it even without a registered data plugin.
func typeForEntry(e entry) string {
	if e.folder {
		return "folder"
	}
	if e.extension == "" {
		return "file"
	}
	return e.extension
}

func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return os.Getenv("USERNAME")
}
