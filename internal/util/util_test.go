package util

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"runtime"
	"testing"
	"time"
)

func TestContains(t *testing.T) {
	var testCases = []struct {
		slice          []string
		element        string
		expectedResult bool
	}{
		{[]string{"App.Program", "App.Parser"}, "App.Parser", true},
		{[]string{"App.Program", "App.Parser"}, "App.Runner", false},
		{[]string{}, "App.Program", false},
		{nil, "App.Program", false},
	}

	for _, testCase := range testCases {
		actualResult := Contains(testCase.slice, testCase.element)
		assert.Equal(t, testCase.expectedResult, actualResult)
	}
}

func TestNameOfFunction(t *testing.T) {
	callPtr, _, _, ok := runtime.Caller(0)
	assert.True(t, ok)
	assert.Equal(t, "TestNameOfFunction", NameOfFunction(callPtr))
}

func TestApplyWithBackoffFailure(t *testing.T) {
	origTimeout := timeout
	defer func() {
		timeout = origTimeout
	}()
	timeout = 1 * time.Second

	var callCount = 0
	f := func() error {
		callCount++
		return errors.New("bang")
	}
	err := ApplyWithBackoff(f)

	assert.Error(t, err)
	assert.True(t, callCount > 1)
}

func TestApplyWithBackoffSuccess(t *testing.T) {
	origTimeout := timeout
	defer func() {
		timeout = origTimeout
	}()
	timeout = 10 * time.Second

	var callCount = 0
	f := func() error {
		if callCount == 3 {
			return nil
		}
		callCount++
		return errors.New("bang")
	}
	err := ApplyWithBackoff(f)

	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
}

func TestMultiErrorCollect(t *testing.T) {
	errorCollection := MultiError{}
	assert.True(t, errorCollection.Empty())

	errorCollection.Collect(nil)
	assert.True(t, errorCollection.Empty())

	errorCollection.Collect(errors.New("bang"))
	errorCollection.Collect(errors.New("boom"))
	assert.False(t, errorCollection.Empty())
	assert.Len(t, errorCollection.Errors, 2)
}
