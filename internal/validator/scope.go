package validator

import (
	"fmt"
	"slices"

	"github.com/vk/ppcheck/internal/diag"
	"github.com/vk/ppcheck/internal/macro"
)

// fileScope is the state of one file while it is being validated.
type fileScope struct {
	path      string
	ancestors []string
	table     *macro.Table
	included  map[string]struct{}
	result    *diag.Result
}

func newFileScope(path string, ancestors []string, inherited map[string]*macro.Definition) *fileScope {
	return &fileScope{
		path:      path,
		ancestors: ancestors,
		table:     macro.NewTable(inherited),
		included:  make(map[string]struct{}),
		result:    diag.New(),
	}
}

// childAncestors is the chain handed to a file included from this one.
func (s *fileScope) childAncestors() []string {
	chain := make([]string, 0, len(s.ancestors)+1)
	chain = append(chain, s.ancestors...)
	return append(chain, s.path)
}

// alreadyIncluded reports whether following path from this file would
// revisit a file on the current chain or one this file already pulled in.
func (s *fileScope) alreadyIncluded(path string) bool {
	if path == s.path || slices.Contains(s.ancestors, path) {
		return true
	}
	_, ok := s.included[path]
	return ok
}

// absorb merges what a processed include contributes to this file.
func (s *fileScope) absorb(child *fileScope) {
	s.result.Merge(child.result)
	s.table.MergeLocal(child.table.Snapshot())
	s.included[child.path] = struct{}{}
	for p := range child.included {
		s.included[p] = struct{}{}
	}
}

func (s *fileScope) errorf(line int, format string, args ...any) {
	s.result.AddError(fmt.Sprintf(format, args...), s.path, line)
}

func (s *fileScope) warnf(line int, format string, args ...any) {
	s.result.AddWarning(fmt.Sprintf(format, args...), s.path, line)
}
