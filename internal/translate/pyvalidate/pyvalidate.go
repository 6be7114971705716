// Package pyvalidate implements the Syntactic Validator (C6), Python only.
// Go has no CPython ast.parse available to it, so "parses" is approximated
// by a structural well-formedness check (balanced brackets/quotes and a
// strictly deeper indent on the line after each block header) rather than a full
// grammar parse — see the accompanying Open Question resolution in
// DESIGN.md. The repair heuristics themselves — collapsing chained
// assignments and removing duplicate client-init lines — are ported from
// _attempt_syntax_fix in the original Python source.
package pyvalidate

import (
	"regexp"
	"strings"
)

// ValidateOrRepair parses transformed (approximately); if well-formed,
// returns it unchanged. Otherwise runs a bounded repair pass and re-checks;
// if repair succeeds, returns the repaired text. Otherwise falls back to
// original. Never raises.
func ValidateOrRepair(transformed, original string) string {
	if looksWellFormed(transformed) {
		return transformed
	}

	repaired := repair(transformed)
	if looksWellFormed(repaired) {
		return repaired
	}

	return original
}

// looksWellFormed is the heuristic stand-in for ast.parse: it checks
// bracket/quote balance and that each line ending in a block-opening colon
// is followed by a more deeply indented line; indent increases elsewhere
// are not checked. It is not a real grammar check — it
// exists to catch the rewriter's own structural mistakes (an unclosed
// paren left by a partial regex substitution, a dangling colon), not to
// validate arbitrary Python.
func looksWellFormed(code string) bool {
	if !balanced(code, '(', ')') || !balanced(code, '[', ']') || !balanced(code, '{', '}') {
		return false
	}
	if strings.Count(code, `"""`)%2 != 0 {
		return false
	}
	if strings.Count(code, "'''")%2 != 0 {
		return false
	}
	return indentationIsConsistent(code)
}

func balanced(code string, open, close rune) bool {
	depth := 0
	inString := rune(0)
	for _, r := range code {
		if inString != 0 {
			if r == inString {
				inString = 0
			}
			continue
		}
		switch r {
		case '\'', '"':
			inString = r
		case open:
			depth++
		case close:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

var blockHeader = regexp.MustCompile(`:\s*(#.*)?$`)

func indentationIsConsistent(code string) bool {
	lines := strings.Split(code, "\n")
	prevIndent := 0
	expectIncrease := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if expectIncrease && indent <= prevIndent {
			return false
		}
		expectIncrease = blockHeader.MatchString(strings.TrimRight(line, " \t"))
		prevIndent = indent
	}
	return true
}

var chainedAssignment = regexp.MustCompile(`(?m)^(\s*)(\w+)\s*=\s*(\w+)\s*=\s*(.+)$`)

// repair collapses chained assignments of the form "a = b = c(...)" to
// "a = c(...)" and removes consecutive duplicate client-initialization
// lines, matching the original's "_attempt_syntax_fix" repair strategy.
func repair(code string) string {
	code = chainedAssignment.ReplaceAllString(code, "$1$2 = $4")
	return removeDuplicateConsecutiveLines(code)
}

func removeDuplicateConsecutiveLines(code string) string {
	lines := strings.Split(code, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if i > 0 && trimmed != "" && trimmed == strings.TrimSpace(lines[i-1]) && strings.Contains(trimmed, "Client()") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
