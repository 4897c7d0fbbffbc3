package analysis

// Report holds the paths judged unused by each heuristic, in the order the
// sections are printed. The lists are independent of each other; a path shows
// up in at most one of them because the suffix sets do not overlap.
type Report struct {
	Sources []string `json:"sources"` // compiled sources missing from src build file
	Tests   []string `json:"tests"`   // test sources missing from tests build file
	Headers []string `json:"headers"` // public headers never included
	Assets  []string `json:"assets"`  // static assets never referenced by markup
}
