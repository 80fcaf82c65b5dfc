package oracle

import "strings"

// Comparison operators accepted by the Fusion REST "q" parameter.
const (
	OpEq   = "="
	OpGt   = ">"
	OpGe   = ">="
	OpLt   = "<"
	OpLe   = "<="
	OpLike = " LIKE "
)

// Clause is a single field comparison in the Fusion filter dialect.
type Clause struct {
	Field string
	Op    string
	Value string
}

func Eq(field, value string) Clause   { return Clause{Field: field, Op: OpEq, Value: value} }
func Ge(field, value string) Clause   { return Clause{Field: field, Op: OpGe, Value: value} }
func Le(field, value string) Clause   { return Clause{Field: field, Op: OpLe, Value: value} }
func Like(field, value string) Clause { return Clause{Field: field, Op: OpLike, Value: value} }

// BuildFilter renders clauses as a "q" expression, joined with ';'
// (logical AND). Clauses with an empty value are dropped so callers can
// pass optional filters straight through.
func BuildFilter(clauses ...Clause) string {
	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		if c.Value == "" {
			continue
		}
		parts = append(parts, c.Field+c.Op+quoteValue(c.Value))
	}
	return strings.Join(parts, ";")
}

// quoteValue quotes a literal for the filter expression. Bare numbers
// and dates pass through unquoted, the way Fusion examples write them;
// anything else is single-quoted with embedded quotes doubled.
func quoteValue(v string) string {
	if isPlainToken(v) {
		return v
	}
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}

func isPlainToken(v string) bool {
	for _, r := range v {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == ':' || r == 'T':
		default:
			return false
		}
	}
	return v != ""
}
