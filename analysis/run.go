package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"
)

// Fixed project layout. The scan is built around these names and offers no way
// to configure them.
const (
	srcRoot     = "src"
	testsRoot   = "tests"
	includeRoot = "include"
	uiRoot      = "ui"
	assetsRoot  = "ui/static"

	buildFileName = "CMakeLists.txt"
)

var (
	sourceSuffixes = []string{".cpp", ".c"}
	headerSuffixes = []string{".h", ".hpp"}
	codeSuffixes   = []string{".cpp", ".c", ".h", ".hpp"}
	assetSuffixes  = []string{".js", ".css"}
	markupSuffixes = []string{".html"}

	// Directories whose path contains one of these names are excluded from the
	// aggregate include scan. Substring match, so e.g. "cmake-build-debug"
	// is skipped too.
	skipDirNames = []string{"build", "node_modules"}
)

// Runner specify all configuration for running the unused file scan.
type Runner struct {
	writer    io.Writer
	errWriter io.Writer

	root string

	// DebugFlag turns on more verbose output.
	DebugFlag bool
	// JSONFlag turns on JSON output instead of the text sections.
	JSONFlag bool
}

// New creates runner for the scan rooted at the given project directory.
// The command passes ".", as the report assumes the working directory is the
// project root; tests point it at fixture trees instead.
func New(writer, errWriter io.Writer, root string) *Runner {
	return &Runner{
		writer:    writer,
		errWriter: errWriter,
		root:      root,
	}
}

func (r *Runner) writeStderr(format string, args ...any) {
	fmt.Fprintf(r.errWriter, strings.TrimSuffix(format, "\n")+"\n", args...)
}

func (r *Runner) writeDebug(format string, args ...any) {
	if r.DebugFlag {
		r.writeStderr(format, args...)
	}
}

// Run the scan and print the report sections in fixed order: compiled sources,
// test sources, public headers, web assets. Findings are observational only;
// Run returns an error only when the scan itself fails, never because of how
// many unused files it found.
func (r *Runner) Run(ctx context.Context) error {
	report := &Report{}

	var err error
	report.Sources, report.Tests, err = r.scanBuildFiles(ctx)
	if err != nil {
		return err
	}
	report.Headers, err = r.scanHeaders(ctx)
	if err != nil {
		return err
	}
	report.Assets, err = r.scanAssets(ctx)
	if err != nil {
		return err
	}

	if r.JSONFlag {
		return r.printJSON(report)
	}
	r.printText(report)

	return nil
}

// scanBuildFiles checks sources and tests against their directory's build
// file. A missing build file loads as empty content, so everything under its
// root comes back unused.
func (r *Runner) scanBuildFiles(ctx context.Context) (sources, tests []string, err error) {
	srcFiles, err := r.listFiles(ctx, srcRoot, sourceSuffixes)
	if err != nil {
		return nil, nil, err
	}
	r.writeDebug("Found %d candidate files under %s", len(srcFiles), srcRoot)

	testFiles, err := r.listFiles(ctx, testsRoot, sourceSuffixes)
	if err != nil {
		return nil, nil, err
	}
	r.writeDebug("Found %d candidate files under %s", len(testFiles), testsRoot)

	srcBuild, err := r.loadContent(path.Join(srcRoot, buildFileName))
	if err != nil {
		return nil, nil, err
	}
	r.writeDebug("Loaded %d bytes from %s", len(srcBuild), path.Join(srcRoot, buildFileName))

	testsBuild, err := r.loadContent(path.Join(testsRoot, buildFileName))
	if err != nil {
		return nil, nil, err
	}
	r.writeDebug("Loaded %d bytes from %s", len(testsBuild), path.Join(testsRoot, buildFileName))

	sources = filterUnused(srcFiles, func(p string) bool { return listedInBuildFile(p, srcBuild) })
	tests = filterUnused(testFiles, func(p string) bool { return listedInBuildFile(p, testsBuild) })
	return sources, tests, nil
}

// scanHeaders checks public headers against the concatenated text of every
// source and header in the project tree, minus the skipped directories.
func (r *Runner) scanHeaders(ctx context.Context) ([]string, error) {
	headers, err := r.listFiles(ctx, includeRoot, headerSuffixes)
	if err != nil {
		return nil, err
	}
	r.writeDebug("Found %d candidate files under %s", len(headers), includeRoot)

	aggregate, err := r.aggregateContent(ctx, ".", codeSuffixes, skipDirNames)
	if err != nil {
		return nil, err
	}
	r.writeDebug("Aggregated %d bytes of source content", len(aggregate))

	return filterUnused(headers, func(p string) bool { return headerIncluded(p, aggregate) }), nil
}

// scanAssets checks static assets against the concatenated text of all markup
// files under the UI root. Other scripts' content is not searched, so an asset
// loaded only from another script still reports as unused.
func (r *Runner) scanAssets(ctx context.Context) ([]string, error) {
	assets, err := r.listFiles(ctx, assetsRoot, assetSuffixes)
	if err != nil {
		return nil, err
	}
	r.writeDebug("Found %d candidate files under %s", len(assets), assetsRoot)

	markup, err := r.aggregateContent(ctx, uiRoot, markupSuffixes, nil)
	if err != nil {
		return nil, err
	}
	r.writeDebug("Aggregated %d bytes of markup content", len(markup))

	return filterUnused(assets, func(p string) bool { return assetReferenced(p, markup) }), nil
}

func (r *Runner) printJSON(report *Report) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "\t")
	return enc.Encode(report)
}

func (r *Runner) printText(report *Report) {
	sections := []struct {
		label string
		paths []string
	}{
		{"--- Unused C++ Source Files ---", report.Sources},
		{"--- Unused Test Files ---", report.Tests},
		{"--- Unused Headers ---", report.Headers},
		{"--- Unused Web Assets ---", report.Assets},
	}

	for i, section := range sections {
		if i > 0 {
			fmt.Fprintln(r.writer)
		}
		fmt.Fprintln(r.writer, section.label)
		for _, p := range section.paths {
			fmt.Fprintln(r.writer, p)
		}
	}
}
