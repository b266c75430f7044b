// Package sqlutil provides named-parameter utilities for SQL Server
// statements. Parameter values are always bound through the driver, never
// concatenated into statement text; identifiers (sort columns, category
// tables) are not parameterizable in T-SQL and must come from compile-time
// allow-lists at the call site.
package sqlutil

import (
	"database/sql"
	"fmt"
	"regexp"
	"sort"
	"time"
)

// parameterRegex matches @name placeholders in T-SQL statement text.
// Names must start with a letter or underscore, followed by any number of
// alphanumeric characters or underscores.
var parameterRegex = regexp.MustCompile(`@([a-zA-Z_]\w*)`)

// ExtractParameters finds all @name placeholders in a statement and returns
// a deduplicated list of parameter names in order of first appearance.
func ExtractParameters(statement string) []string {
	matches := parameterRegex.FindAllStringSubmatch(statement, -1)
	seen := make(map[string]bool)
	var params []string

	for _, match := range matches {
		name := match[1]
		if !seen[name] {
			seen[name] = true
			params = append(params, name)
		}
	}

	return params
}

// ValidateParameters checks that statement placeholders and supplied values
// match exactly, and that every value is a bindable scalar.
//
// Returns an error if:
//   - an @name placeholder has no supplied value
//   - a value is supplied for a name the statement never uses
//   - a value is not a scalar (string, integer, float, bool, time, or nil)
func ValidateParameters(statement string, params map[string]any) error {
	extracted := ExtractParameters(statement)

	extractedSet := make(map[string]bool, len(extracted))
	for _, name := range extracted {
		extractedSet[name] = true
	}

	for _, name := range extracted {
		if _, ok := params[name]; !ok {
			return fmt.Errorf("parameter @%s used in statement but not supplied", name)
		}
	}

	for name, value := range params {
		if !extractedSet[name] {
			return fmt.Errorf("parameter %q supplied but not used in statement", name)
		}
		if !isScalar(value) {
			return fmt.Errorf("parameter %q has non-scalar type %T", name, value)
		}
	}

	return nil
}

// Bind converts a name → value mapping into driver-level named arguments.
// Names are emitted in sorted order so statements bind deterministically.
func Bind(params map[string]any) []any {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make([]any, 0, len(names))
	for _, name := range names {
		args = append(args, sql.Named(name, params[name]))
	}
	return args
}

func isScalar(value any) bool {
	switch value.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		time.Time:
		return true
	default:
		return false
	}
}
