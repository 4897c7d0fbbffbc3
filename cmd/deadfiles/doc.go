/*
The deadfiles command reports project files with no textual evidence of use.

	Usage: deadfiles [flags]

Run it from the project root. It scans the fixed project layout

	src/        compiled sources and src/CMakeLists.txt
	tests/      test sources and tests/CMakeLists.txt
	include/    public headers
	ui/         markup files
	ui/static/  scripts and stylesheets

and prints four sections: compiled sources and test sources missing from their
directory's CMakeLists.txt, public headers never included by any scanned
source, and static assets never referenced by any markup file.

The tool is a heuristic text search, not a dependency analyzer. It does no
parsing and builds no include graph; a file counts as used when its expected
reference fragment occurs anywhere in the searched text as a literal
substring. Expect false positives for conditionally referenced or dynamically
named files, and review every finding before deleting anything.

# Heuristics

Sources and tests: the path relative to the build file's directory must occur
in that build file. A missing build file reads as empty, so everything under
its root is reported.

Headers: the path relative to include/ must occur in the concatenated text of
all sources and headers in the project, either as "name.h" or as <name.h>.
Directories with build or node_modules in their path are not scanned.

Assets: the base file name must occur in the concatenated text of all markup
files under ui/. References from other scripts do not count, so an asset
loaded only by another script is still reported.

# Flags

The -json flag outputs the four lists as one JSON document instead of text.

The -debug flag enables verbose progress output on stderr.

# Exit status

The exit status is 0 whenever the scan completes, no matter how many unused
files were reported, and nonzero only when the scan itself fails.
*/
package main
