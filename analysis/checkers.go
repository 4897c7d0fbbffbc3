package analysis

import (
	"path"
	"strings"
)

// listedInBuildFile reports whether the build configuration of the candidate's
// root directory mentions it. Build files list paths relative to their own
// directory, so the known root prefix is stripped before the check. The check
// is literal substring containment: a fragment that happens to be a substring
// of a longer listed name registers as used. Accepted heuristic limitation.
//
// A candidate under neither known root is reported unused, while
// headerIncluded assumes the opposite for its unknown-root case. The
// asymmetry is intentional only in the sense that it is preserved; both
// callers enumerate under the two known roots, so the branch is unreachable
// from Run.
func listedInBuildFile(filePath, buildContent string) bool {
	if rel, ok := strings.CutPrefix(filePath, srcRoot+"/"); ok {
		return strings.Contains(buildContent, rel)
	}
	if rel, ok := strings.CutPrefix(filePath, testsRoot+"/"); ok {
		return strings.Contains(buildContent, rel)
	}
	return false
}

// headerIncluded reports whether the aggregate source content includes the
// header, in either the quoted or the angle-bracket form. Headers are
// referenced by their path relative to the public headers root. A header
// outside that root is assumed used, the opposite default from
// listedInBuildFile.
func headerIncluded(headerPath, aggregate string) bool {
	ref, ok := strings.CutPrefix(headerPath, includeRoot+"/")
	if !ok {
		return true
	}
	return strings.Contains(aggregate, `"`+ref+`"`) ||
		strings.Contains(aggregate, "<"+ref+">")
}

// assetReferenced reports whether any markup mentions the asset's base file
// name. Only the base name is searched, so markup can reference the asset
// under any URL prefix.
func assetReferenced(assetPath, markup string) bool {
	return strings.Contains(markup, path.Base(assetPath))
}
