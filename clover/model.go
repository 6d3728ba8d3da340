// Package clover renders an instrumentation result and its recorded hits as
// a Clover XML coverage report.
package clover

import "encoding/xml"

// Version is the Clover schema version generated reports conform to.
const Version = "4.1.0"

type Coverage struct {
	XMLName   xml.Name `xml:"coverage"`
	Generated int64    `xml:"generated,attr"`
	Clover    string   `xml:"clover,attr"`
	Project   Project  `xml:"project"`
}

type Project struct {
	Timestamp int64     `xml:"timestamp,attr"`
	Name      string    `xml:"name,attr"`
	Metrics   Metrics   `xml:"metrics"`
	Packages  []Package `xml:"package"`
}

type Package struct {
	Name    string  `xml:"name,attr"`
	Metrics Metrics `xml:"metrics"`
	Files   []File  `xml:"file"`
}

type File struct {
	Name    string  `xml:"name,attr"`
	Path    string  `xml:"path,attr"`
	Metrics Metrics `xml:"metrics"`
	Classes []Class `xml:"class"`
	Lines   []Line  `xml:"line"`
}

type Class struct {
	Name    string  `xml:"name,attr"`
	Metrics Metrics `xml:"metrics"`
}

type Line struct {
	Num   int    `xml:"num,attr"`
	Count int    `xml:"count,attr"`
	Type  string `xml:"type,attr"`
}

// Metrics carries the aggregated counters of its enclosing element. The
// element counts are always written, even when zero. The line, class, file
// and package totals only appear on levels where they apply.
type Metrics struct {
	Statements          int `xml:"statements,attr"`
	CoveredStatements   int `xml:"coveredstatements,attr"`
	Conditionals        int `xml:"conditionals,attr"`
	CoveredConditionals int `xml:"coveredconditionals,attr"`
	Methods             int `xml:"methods,attr"`
	CoveredMethods      int `xml:"coveredmethods,attr"`
	Elements            int `xml:"elements,attr"`
	CoveredElements     int `xml:"coveredelements,attr"`
	Loc                 int `xml:"loc,attr,omitempty"`
	Ncloc               int `xml:"ncloc,attr,omitempty"`
	Classes             int `xml:"classes,attr,omitempty"`
	Files               int `xml:"files,attr,omitempty"`
	Packages            int `xml:"packages,attr,omitempty"`
}
