package analysis_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/arxeiss/deadfiles/analysis"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const projectReport = `--- Unused C++ Source Files ---
src/legacy.c
src/orphan.cpp

--- Unused Test Files ---
tests/old_test.cpp

--- Unused Headers ---
include/app/cache.h
include/app/unused.h

--- Unused Web Assets ---
ui/static/helper.js
ui/static/old.css
`

const emptyReport = "--- Unused C++ Source Files ---\n" +
	"\n--- Unused Test Files ---\n" +
	"\n--- Unused Headers ---\n" +
	"\n--- Unused Web Assets ---\n"

var _ = Describe("Runner", func() {
	var (
		stdOut *bytes.Buffer
		stdErr *bytes.Buffer
	)

	BeforeEach(func() {
		stdOut = bytes.NewBuffer(nil)
		stdErr = bytes.NewBuffer(nil)
	})

	It("reports unused files in all four sections", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "testdata/project")
		Expect(r.Run(ctx)).To(Succeed())
		Expect(stdOut.String()).To(Equal(projectReport))
		Expect(stdErr.String()).To(BeEmpty())
	})

	It("keeps files whose stripped path is a substring of a listed name", func() {
		// src/panel.cpp is not in the build file, but app_panel.cpp is listed
		// and contains panel.cpp as a substring, so it must not be reported.
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "testdata/project")
		Expect(r.Run(ctx)).To(Succeed())
		Expect(stdOut.String()).NotTo(ContainSubstring("panel.cpp"))
	})

	It("ignores references from skipped build directories", func() {
		// build/gen.cpp includes app/cache.h, but build output is outside the
		// include scan, so the header still counts as unused.
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "testdata/project")
		Expect(r.Run(ctx)).To(Succeed())
		Expect(stdOut.String()).To(ContainSubstring("include/app/cache.h\n"))
	})

	It("reports everything under a root whose build file is missing", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "testdata/nobuild")
		Expect(r.Run(ctx)).To(Succeed())
		Expect(stdOut.String()).To(Equal("--- Unused C++ Source Files ---\n" +
			"src/lonely.cpp\n" +
			"\n--- Unused Test Files ---\n" +
			"tests/solo_test.cpp\n" +
			"\n--- Unused Headers ---\n" +
			"\n--- Unused Web Assets ---\n"))
	})

	It("prints empty sections on an empty project tree", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, GinkgoT().TempDir())
		Expect(r.Run(ctx)).To(Succeed())
		Expect(stdOut.String()).To(Equal(emptyReport))
	})

	It("produces identical output across runs", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "testdata/project")
		Expect(r.Run(ctx)).To(Succeed())
		firstRun := stdOut.String()

		By("Running a second time on the unchanged tree")
		stdOut.Reset()
		stdErr.Reset()

		r = analysis.New(stdOut, stdErr, "testdata/project")
		Expect(r.Run(ctx)).To(Succeed())
		Expect(stdOut.String()).To(Equal(firstRun))
	})

	It("tolerates undecodable bytes in scanned files", func() {
		root := GinkgoT().TempDir()
		Expect(os.MkdirAll(filepath.Join(root, "src"), 0o755)).To(Succeed())
		Expect(os.MkdirAll(filepath.Join(root, "include", "app"), 0o755)).To(Succeed())

		blob := append([]byte{0xff, 0xfe, 0xfd}, []byte("\n#include \"app/keep.h\"\n")...)
		Expect(os.WriteFile(
			filepath.Join(root, "src", "CMakeLists.txt"), []byte("add_library(app blob.cpp)\n"), 0o644,
		)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(root, "src", "blob.cpp"), blob, 0o644)).To(Succeed())
		Expect(os.WriteFile(
			filepath.Join(root, "include", "app", "keep.h"), []byte("#pragma once\n"), 0o644,
		)).To(Succeed())
		Expect(os.WriteFile(
			filepath.Join(root, "include", "app", "drop.h"), []byte("#pragma once\n"), 0o644,
		)).To(Succeed())

		r := analysis.New(stdOut, stdErr, root)
		Expect(r.Run(context.Background())).To(Succeed())
		Expect(stdOut.String()).To(Equal("--- Unused C++ Source Files ---\n" +
			"\n--- Unused Test Files ---\n" +
			"\n--- Unused Headers ---\n" +
			"include/app/drop.h\n" +
			"\n--- Unused Web Assets ---\n"))
	})

	It("stops when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := analysis.New(stdOut, stdErr, "testdata/project")
		Expect(r.Run(ctx)).To(MatchError(ContainSubstring("context canceled")))
	})

	It("Handles JSON output", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "testdata/project")
		r.JSONFlag = true
		Expect(r.Run(ctx)).To(Succeed())

		expected := &analysis.Report{
			Sources: []string{"src/legacy.c", "src/orphan.cpp"},
			Tests:   []string{"tests/old_test.cpp"},
			Headers: []string{"include/app/cache.h", "include/app/unused.h"},
			Assets:  []string{"ui/static/helper.js", "ui/static/old.css"},
		}
		expectedOut, err := json.MarshalIndent(expected, "", "\t")
		Expect(err).To(Succeed())
		Expect(stdOut.Bytes()).To(MatchJSON(expectedOut))
	})

	It("Handles JSON output on an empty tree", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, GinkgoT().TempDir())
		r.JSONFlag = true
		Expect(r.Run(ctx)).To(Succeed())
		Expect(stdOut.String()).To(MatchJSON(`{"sources":[],"tests":[],"headers":[],"assets":[]}`))
	})

	It("Verify debug output", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "testdata/project")
		r.DebugFlag = true
		Expect(r.Run(ctx)).To(Succeed())

		Expect(stdOut.String()).To(Equal(projectReport))
		Expect(stdErr.String()).To(ContainSubstring("Found 5 candidate files under src\n"))
		Expect(stdErr.String()).To(ContainSubstring("Found 2 candidate files under tests\n"))
		Expect(stdErr.String()).To(ContainSubstring("Found 4 candidate files under include\n"))
		Expect(stdErr.String()).To(ContainSubstring("Found 4 candidate files under ui/static\n"))
		Expect(stdErr.String()).To(MatchRegexp(`Loaded \d+ bytes from src/CMakeLists.txt`))
		Expect(stdErr.String()).To(MatchRegexp(`Loaded \d+ bytes from tests/CMakeLists.txt`))
		Expect(stdErr.String()).To(MatchRegexp(`Aggregated \d+ bytes of source content`))
		Expect(stdErr.String()).To(MatchRegexp(`Aggregated \d+ bytes of markup content`))
	})
})
