// Package metrics computes coverage counters over groups of instrumented
// instructions and folds them up the report levels, from class to file to
// package to project.
package metrics

import (
	"github.com/Kantuz001/minicover/instrumentation"
	"github.com/Kantuz001/minicover/internal/hits"
)

// Counter aggregates the coverage metrics of one report scope. Counters of
// nested scopes combine with Add. The element totals are always derived from
// the stored fields, never stored themselves.
type Counter struct {
	Statements          int
	CoveredStatements   int
	Conditionals        int
	CoveredConditionals int
	Methods             int
	CoveredMethods      int
	Lines               int
	Classes             int
	Files               int
	Packages            int
}

// Add returns the field wise sum of both counters.
func (c Counter) Add(other Counter) Counter {
	return Counter{
		Statements:          c.Statements + other.Statements,
		CoveredStatements:   c.CoveredStatements + other.CoveredStatements,
		Conditionals:        c.Conditionals + other.Conditionals,
		CoveredConditionals: c.CoveredConditionals + other.CoveredConditionals,
		Methods:             c.Methods + other.Methods,
		CoveredMethods:      c.CoveredMethods + other.CoveredMethods,
		Lines:               c.Lines + other.Lines,
		Classes:             c.Classes + other.Classes,
		Files:               c.Files + other.Files,
		Packages:            c.Packages + other.Packages,
	}
}

// Elements returns the total number of coverable elements in this scope.
func (c Counter) Elements() int {
	return c.Statements + c.Conditionals + c.Methods
}

// CoveredElements returns the number of covered elements in this scope.
func (c Counter) CoveredElements() int {
	return c.CoveredStatements + c.CoveredConditionals + c.CoveredMethods
}

// Percentage returns the covered statement percentage of this scope. A scope
// without statements has nothing left to cover and reports 100.
func (c Counter) Percentage() float64 {
	if c.Statements == 0 {
		return 100
	}
	return float64(c.CoveredStatements) / float64(c.Statements) * 100
}

// Count computes the counter of an arbitrary group of instructions. Every
// instruction is one statement, covered when it was executed at least once.
// Methods are counted once per distinct full name, covered methods once per
// distinct full name with at least one executed instruction. Conditionals
// stay zero, branch coverage is not recorded by the instrumenter.
func Count(instructions []instrumentation.Instruction, index hits.Index) Counter {
	counter := Counter{}
	methods := map[string]bool{}
	coveredMethods := map[string]bool{}
	for _, instruction := range instructions {
		counter.Statements++
		methods[instruction.MethodFullName] = true
		if index.Covered(instruction.ID) {
			counter.CoveredStatements++
			coveredMethods[instruction.MethodFullName] = true
		}
	}
	counter.Methods = len(methods)
	counter.CoveredMethods = len(coveredMethods)
	return counter
}

// CountFile extends Count with the file level fields: Lines is the highest
// line any instruction of the file reaches and Classes the number of distinct
// classes instrumented in it. A file without instructions yields the zero
// counter.
func CountFile(file *instrumentation.SourceFile, index hits.Index) Counter {
	counter := Count(file.Instructions, index)
	classes := map[string]bool{}
	for _, instruction := range file.Instructions {
		if instruction.EndLine > counter.Lines {
			counter.Lines = instruction.EndLine
		}
		classes[instruction.Class] = true
	}
	counter.Classes = len(classes)
	return counter
}

// CountPackage folds the file counters of the specified assembly, counting
// each file. An assembly without source files yields the zero counter.
func CountPackage(assembly *instrumentation.Assembly, index hits.Index) Counter {
	counter := Counter{}
	for _, file := range assembly.SourceFiles {
		counter = counter.Add(CountFile(file, index))
		counter.Files++
	}
	return counter
}

// CountProject folds the package counters of the whole result, counting each
// assembly. A result without assemblies yields the zero counter.
func CountProject(result *instrumentation.Result, index hits.Index) Counter {
	counter := Counter{}
	for _, assembly := range result.Assemblies {
		counter = counter.Add(CountPackage(assembly, index))
		counter.Packages++
	}
	return counter
}
