package analysis

import "strings"

func hasAnySuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// filterUnused keeps the paths for which used reports false. It always
// returns a non-nil slice so an empty section encodes as [] in JSON.
func filterUnused(paths []string, used func(string) bool) []string {
	unused := make([]string, 0)
	for _, p := range paths {
		if !used(p) {
			unused = append(unused, p)
		}
	}
	return unused
}
