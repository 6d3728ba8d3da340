package hits

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadCountsExecutions(t *testing.T) {
	var testCases = []struct {
		name     string
		log      string
		expected Index
	}{
		{"empty log", "", Index{}},
		{"single hit", "1\n", Index{1: 1}},
		{"repeated hits", "1\n1\n2\n", Index{1: 2, 2: 1}},
		{"no trailing newline", "3\n3", Index{3: 2}},
		{"surrounding whitespace", " 7 \n\t8\n", Index{7: 1, 8: 1}},
	}

	for _, testCase := range testCases {
		index, err := Read(strings.NewReader(testCase.log))

		assert.NoError(t, err, testCase.name)
		assert.Equal(t, testCase.expected, index, testCase.name)
	}
}

func TestReadMalformedLine(t *testing.T) {
	var testCases = []struct {
		name string
		log  string
	}{
		{"not a number", "1\nabc\n"},
		{"blank line", "1\n\n2\n"},
		{"trailing garbage", "12x\n"},
	}

	for _, testCase := range testCases {
		index, err := Read(strings.NewReader(testCase.log))

		assert.Error(t, err, testCase.name)
		assert.Nil(t, index, testCase.name)
		assert.Equal(t, ErrMalformed, errors.Cause(err), testCase.name)
	}
}

func TestReadReportsLineNumber(t *testing.T) {
	_, err := Read(strings.NewReader("1\n2\nabc\n"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestCoveredChecksCount(t *testing.T) {
	index := Index{1: 0, 2: 3}

	assert.False(t, index.Covered(1))
	assert.True(t, index.Covered(2))
	assert.False(t, index.Covered(42))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverage-hits.txt")
	err := os.WriteFile(path, []byte("1\n1\n"), 0644)
	assert.NoError(t, err)

	index, err := Load(path)

	assert.NoError(t, err)
	assert.Equal(t, Index{1: 2}, index)
	assert.Equal(t, 2, index.Count(1))
	assert.Equal(t, 0, index.Count(42))
}

func TestLoadMissingLog(t *testing.T) {
	index, err := Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))

	assert.NoError(t, err)
	assert.Empty(t, index)
	assert.NotNil(t, index)
}

func TestLoadMalformedLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverage-hits.txt")
	err := os.WriteFile(path, []byte("1\nsnafu\n"), 0644)
	assert.NoError(t, err)

	index, err := Load(path)

	assert.Error(t, err)
	assert.Nil(t, index)
	assert.Equal(t, ErrMalformed, errors.Cause(err))
	assert.Contains(t, err.Error(), path)
}
