// Package hits indexes the hits log an instrumented test run records, one
// executed instruction id per line.
package hits

import (
	"bufio"
	"github.com/Kantuz001/minicover/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformed indicates a hits log line which is not an instruction id.
var ErrMalformed = errors.New("malformed hits log")

var (
	logger = logging.AppLogger().WithFields(log.Fields{"component": "hits"})
)

// Index maps an instruction id to the number of times it was executed.
type Index map[int]int

// Count returns how often the instruction with the specified id was executed.
// Instructions which never ran are absent from the index and count zero.
func (ix Index) Count(id int) int {
	return ix[id]
}

// Covered reports whether the instruction with the specified id was executed
// at least once. The decision is based on the recorded count, not on the id
// being present in the index.
func (ix Index) Covered(id int) bool {
	return ix[id] > 0
}

// Read parses a hits log from the specified reader. Every line holds one
// instruction id and records one execution of it. A line which does not hold
// an integer fails the whole read with ErrMalformed as cause; there is no
// partial result.
func Read(r io.Reader) (Index, error) {
	index := Index{}
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		id, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "line %d: %q is not an instruction id", lineNum, scanner.Text())
		}
		index[id]++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "unable to read hits log")
	}
	return index, nil
}

// Load reads the hits log stored at the specified path. A missing log is a
// valid state meaning no instruction was executed and yields an empty index.
func Load(path string) (Index, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debugf("no hits log at %s, reporting zero coverage", path)
			return Index{}, nil
		}
		return nil, errors.Wrapf(err, "unable to open hits log %s", path)
	}
	defer file.Close()

	index, err := Read(file)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read hits log %s", path)
	}
	return index, nil
}
