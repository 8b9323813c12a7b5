package includegraph

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Edge is one followed include directive.
type Edge struct {
	From string
	To   string
	Line int
}

// Store is the interface for recording and querying include edges.
type Store interface {
	// AddFile registers a file. Adding the same file twice is a no-op.
	AddFile(ctx context.Context, path string) error
	// AddInclude records that from includes to at line. Both files must
	// already be registered.
	AddInclude(ctx context.Context, from, to string, line int) error
	// Files returns every registered file, sorted.
	Files(ctx context.Context) []string
	// IncludesOf returns the edges leaving path in directive order.
	IncludesOf(ctx context.Context, path string) ([]Edge, error)
}

// InMemory implements Store with maps guarded by a RWMutex.
type InMemory struct {
	mu    sync.RWMutex
	files map[string]struct{}
	edges map[string][]Edge
}

// New creates an empty in-memory store.
func New() *InMemory {
	return &InMemory{
		files: make(map[string]struct{}),
		edges: make(map[string][]Edge),
	}
}

func (s *InMemory) AddFile(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files[path] = struct{}{}
	return nil
}

func (s *InMemory) AddInclude(ctx context.Context, from, to string, line int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[from]; !ok {
		return fmt.Errorf("including file '%s' not found in graph", from)
	}
	if _, ok := s.files[to]; !ok {
		return fmt.Errorf("included file '%s' not found in graph", to)
	}
	for _, e := range s.edges[from] {
		// A file included from several roots is walked once per root.
		if e.To == to && e.Line == line {
			return nil
		}
	}
	s.edges[from] = append(s.edges[from], Edge{From: from, To: to, Line: line})
	return nil
}

func (s *InMemory) Files(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files := make([]string, 0, len(s.files))
	for f := range s.files {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

func (s *InMemory) IncludesOf(ctx context.Context, path string) ([]Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.files[path]; !ok {
		return nil, fmt.Errorf("file '%s' not found in graph", path)
	}
	out := make([]Edge, len(s.edges[path]))
	copy(out, s.edges[path])
	return out, nil
}
