package source

import "path/filepath"

// Resolver locates include targets. The including file's directory is tried
// first, then each search directory in order.
type Resolver struct {
	loader     Loader
	searchDirs []string
}

// NewResolver creates a Resolver. searchDirs may be empty.
func NewResolver(loader Loader, searchDirs ...string) *Resolver {
	dirs := make([]string, len(searchDirs))
	copy(dirs, searchDirs)
	return &Resolver{loader: loader, searchDirs: dirs}
}

// Resolve returns the canonical path of name as included from the file at
// includer. When the target exists nowhere, the canonical candidate relative
// to the includer is returned with found set to false so it can be reported.
func (r *Resolver) Resolve(includer, name string) (path string, found bool, err error) {
	target := name
	if !filepath.IsAbs(name) {
		target = filepath.Join(filepath.Dir(includer), name)
	}
	primary, err := r.loader.Canonical(target)
	if err != nil {
		return "", false, err
	}
	if r.loader.Exists(primary) {
		return primary, true, nil
	}
	if filepath.IsAbs(name) {
		return primary, false, nil
	}
	for _, dir := range r.searchDirs {
		candidate, err := r.loader.Canonical(filepath.Join(dir, name))
		if err != nil {
			return "", false, err
		}
		if r.loader.Exists(candidate) {
			return candidate, true, nil
		}
	}
	return primary, false, nil
}
