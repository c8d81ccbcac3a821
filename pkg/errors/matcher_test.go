package errors_test

import (
	"testing"

	"github.com/absop/quickbrowse/pkg/errors"
)

func TestPatternMatcher_CaseInsensitive(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{
			name:     "uppercase permission denied",
			errorMsg: "PERMISSION DENIED",
			expected: errors.CategoryPermission,
		},
		{
			name:     "mixed case connection refused",
			errorMsg: "Connection Refused by remote host",
			expected: errors.CategoryConnection,
		},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

func TestPatternMatcher_MatchConnectionErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{
			name:     "connection refused",
			errorMsg: "dial tcp 10.0.0.5:22: connection refused",
			expected: errors.CategoryConnection,
		},
		{
			name:     "connection reset",
			errorMsg: "connection reset by peer",
			expected: errors.CategoryConnection,
		},
		{
			name:     "no route to host",
			errorMsg: "dial tcp: no route to host",
			expected: errors.CategoryConnection,
		},
		{
			name:     "timeout",
			errorMsg: "read tcp 10.0.0.5:22: i/o timeout",
			expected: errors.CategoryConnection,
		},
		{
			name:     "authentication failure",
			errorMsg: "ssh: unable to authenticate, attempted methods [none publickey]",
			expected: errors.CategoryConnection,
		},
		{
			name:     "handshake failure",
			errorMsg: "ssh: handshake failed: EOF",
			expected: errors.CategoryConnection,
		},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

func TestPatternMatcher_MatchPatternErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{
			name:     "invalid patterns",
			errorMsg: "invalid patterns: [a-",
			expected: errors.CategoryPattern,
		},
		{
			name:     "syntax error in pattern",
			errorMsg: "syntax error in pattern",
			expected: errors.CategoryPattern,
		},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

func TestPatternMatcher_MatchPathErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{
			name:     "no such file or directory",
			errorMsg: "no such file or directory: /path/to/file.txt",
			expected: errors.CategoryPath,
		},
		{
			name:     "file not found",
			errorMsg: "file not found",
			expected: errors.CategoryPath,
		},
		{
			name:     "path does not exist",
			errorMsg: "path does not exist",
			expected: errors.CategoryPath,
		},
		{
			name:     "not a directory",
			errorMsg: "open /etc/passwd/x: not a directory",
			expected: errors.CategoryPath,
		},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

func TestPatternMatcher_MatchPermissionErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{
			name:     "permission denied",
			errorMsg: "permission denied",
			expected: errors.CategoryPermission,
		},
		{
			name:     "access denied",
			errorMsg: "access denied to /path/file.txt",
			expected: errors.CategoryPermission,
		},
		{
			name:     "operation not permitted",
			errorMsg: "operation not permitted",
			expected: errors.CategoryPermission,
		},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

func TestPatternMatcher_UnknownErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
	}{
		{
			name:     "random error message",
			errorMsg: "something completely unexpected happened",
		},
		{
			name:     "generic error",
			errorMsg: "an error occurred",
		},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != errors.CategoryUnknown {
				t.Errorf("expected category %q, got %q for error: %q",
					errors.CategoryUnknown, category, testCase.errorMsg)
			}
		})
	}
}
