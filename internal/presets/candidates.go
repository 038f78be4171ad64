package presets

import (
	"os"
	"path/filepath"
	"strings"
)

// candidates builds the ordered, de-duplicated search list for fileName.
func (r *Resolver) candidates(fileName string) []Candidate {
	raw := make([]Candidate, 0, 16)

	for _, override := range r.overridePaths() {
		raw = append(raw, Candidate{Path: expandHome(override), Source: SourceOverride})
	}

	if r.executableDir != "" {
		raw = append(raw,
			Candidate{Path: filepath.Join(r.executableDir, fileName), Source: SourceExecutableDir},
			Candidate{Path: filepath.Join(filepath.Dir(r.executableDir), fileName), Source: SourceExecutableParent},
		)
	}

	if cwd, err := r.workingDir(); err == nil && cwd != "" {
		if resolved, err := canonicalPath(cwd); err == nil {
			cwd = resolved
		}
		for dir := cwd; ; {
			raw = append(raw, Candidate{Path: filepath.Join(dir, fileName), Source: SourceWorkingDir})
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	} else if err != nil {
		r.logger.Debug().Err(err).Msg("working directory is not available, skipping its ancestors")
	}

	if r.bundledDir != "" {
		raw = append(raw, Candidate{Path: filepath.Join(r.bundledDir, fileName), Source: SourceBundled})
	}

	return dedupe(raw)
}

// dedupe drops candidates whose canonical path was already seen, keeping
// the first occurrence. A path that cannot be canonicalised is keyed by its
// cleaned absolute form instead.
func dedupe(in []Candidate) []Candidate {
	seen := make(map[string]struct{}, len(in))
	out := make([]Candidate, 0, len(in))

	for _, c := range in {
		key, _ := canonicalPath(c.Path)
		if key == "" {
			key = filepath.Clean(c.Path)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}

	return out
}

// canonicalPath returns the absolute, symlink-resolved form of p. For a path
// that does not exist yet the parent directory is resolved and the base name
// re-attached, so "/var/x/presets.json" and "/private/var/x/presets.json"
// still compare equal when /var is a symlink. On error the best form found
// so far is returned along with the error.
func canonicalPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}

	dir, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return abs, err
	}

	return filepath.Join(dir, filepath.Base(abs)), nil
}

// expandHome replaces a leading "~" with the user's home directory.
// "~user" forms are left alone.
func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, `~\`) {
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return p
	}

	return filepath.Join(home, p[1:])
}

// executableDir returns the symlink-resolved directory of the running binary,
// or "" if it cannot be determined.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(exe)
}
