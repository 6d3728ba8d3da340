// Package instrumentation defines the result an instrumented test run leaves
// behind: the instructions instrumented per assembly and source file, and the
// location of the hits log recorded while the tests executed.
package instrumentation

import "sort"

// Result is the root of an instrumentation run.
type Result struct {
	SourcePath string      `json:"SourcePath"`
	HitsFile   string      `json:"HitsFile"`
	Assemblies []*Assembly `json:"Assemblies"`
}

// Assembly groups the instrumented source files of a single assembly, keyed
// by source file path.
type Assembly struct {
	Name        string                 `json:"Name"`
	SourceFiles map[string]*SourceFile `json:"SourceFiles"`
}

// SourceFile holds the instructions instrumented in one source file.
type SourceFile struct {
	Instructions []Instruction `json:"Instructions"`
}

// Instruction is a single instrumented instruction. The id is unique across
// the whole result and joins the instruction with its recorded hits.
type Instruction struct {
	ID             int    `json:"Id"`
	Class          string `json:"Class"`
	MethodFullName string `json:"MethodFullName"`
	StartLine      int    `json:"StartLine"`
	EndLine        int    `json:"EndLine"`
}

// FilePaths returns the assembly's source file paths in sorted order, so that
// identical results render identical reports.
func (a *Assembly) FilePaths() []string {
	paths := make([]string, 0, len(a.SourceFiles))
	for path := range a.SourceFiles {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
