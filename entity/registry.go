package entity

import (
	"sort"
	"strings"
)

// BranchRegistry maps a branch name to the abbreviated hash of the commit counting starts from.
type BranchRegistry map[string]string

func (r BranchRegistry) Lookup(branch string) (string, bool) {
	hash, ok := r[branch]
	if !ok || hash == "" {
		return "", false
	}
	return hash, true
}

// Merge returns a new registry with the entries of other taking precedence.
func (r BranchRegistry) Merge(other BranchRegistry) BranchRegistry {
	merged := make(BranchRegistry, len(r)+len(other))
	for k, v := range r {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

func (r BranchRegistry) Branches() []string {
	branches := make([]string, 0, len(r))
	for k := range r {
		branches = append(branches, k)
	}
	sort.Strings(branches)
	return branches
}

// MatchesStart reports whether a full commit hash begins with the registered prefix.
func MatchesStart(hash string, prefix string) bool {
	return prefix != "" && strings.HasPrefix(strings.ToLower(hash), strings.ToLower(prefix))
}
