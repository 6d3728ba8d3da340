package clover

import (
	"github.com/Kantuz001/minicover/instrumentation"
	"github.com/Kantuz001/minicover/internal/hits"
	"github.com/Kantuz001/minicover/internal/metrics"
	"github.com/Kantuz001/minicover/internal/util"
	"path/filepath"
	"time"
)

// GenerateCloverReport builds the Clover report for the specified
// instrumentation result, reading the recorded hits from the result's hits
// log, and writes it to outputPath, creating missing parent directories. The
// threshold does not influence the report content, it is carried for callers
// which gate a build on the reported coverage.
func GenerateCloverReport(result *instrumentation.Result, outputPath string, threshold float64) error {
	index, err := hits.Load(result.HitsFile)
	if err != nil {
		return err
	}

	report := newCoverage(result, index, time.Now().Unix())
	return writeReport(report, outputPath)
}

// newCoverage assembles the report document. The same timestamp is stamped on
// the coverage and the project element.
func newCoverage(result *instrumentation.Result, index hits.Index, generated int64) *Coverage {
	project := Project{
		Timestamp: generated,
		Name:      result.SourcePath,
		Metrics:   newMetrics(metrics.CountProject(result, index)),
	}
	for _, assembly := range result.Assemblies {
		project.Packages = append(project.Packages, newPackage(assembly, index))
	}
	return &Coverage{Generated: generated, Clover: Version, Project: project}
}

func newPackage(assembly *instrumentation.Assembly, index hits.Index) Package {
	pkg := Package{
		Name:    assembly.Name,
		Metrics: newMetrics(metrics.CountPackage(assembly, index)),
	}
	for _, path := range assembly.FilePaths() {
		pkg.Files = append(pkg.Files, newFile(path, assembly.SourceFiles[path], index))
	}
	return pkg
}

func newFile(path string, file *instrumentation.SourceFile, index hits.Index) File {
	fileElement := File{
		Name:    filepath.Base(path),
		Path:    path,
		Metrics: newMetrics(metrics.CountFile(file, index)),
	}

	// One class element per distinct class, in order of first appearance.
	var classes []string
	instructionsByClass := map[string][]instrumentation.Instruction{}
	for _, instruction := range file.Instructions {
		if !util.Contains(classes, instruction.Class) {
			classes = append(classes, instruction.Class)
		}
		instructionsByClass[instruction.Class] = append(instructionsByClass[instruction.Class], instruction)
	}
	for _, class := range classes {
		fileElement.Classes = append(fileElement.Classes, Class{
			Name:    class,
			Metrics: newMetrics(metrics.Count(instructionsByClass[class], index)),
		})
	}

	// One line element per instruction, even when instructions share a line.
	for _, instruction := range file.Instructions {
		fileElement.Lines = append(fileElement.Lines, Line{
			Num:   instruction.StartLine,
			Count: index.Count(instruction.ID),
			Type:  "stmt",
		})
	}
	return fileElement
}

// newMetrics converts a counter into its metrics element. loc and ncloc both
// carry the line total, the instrumenter does not record comment lines.
func newMetrics(counter metrics.Counter) Metrics {
	return Metrics{
		Statements:          counter.Statements,
		CoveredStatements:   counter.CoveredStatements,
		Conditionals:        counter.Conditionals,
		CoveredConditionals: counter.CoveredConditionals,
		Methods:             counter.Methods,
		CoveredMethods:      counter.CoveredMethods,
		Elements:            counter.Elements(),
		CoveredElements:     counter.CoveredElements(),
		Loc:                 counter.Lines,
		Ncloc:               counter.Lines,
		Classes:             counter.Classes,
		Files:               counter.Files,
		Packages:            counter.Packages,
	}
}
