package typeforge

import "context"

// Dialect selects a ModelBuilder implementation and its JSON Schema export
// style. It is resolved once at the top of a compilation and threaded through
// recursive calls unchanged.
type Dialect int

const (
	// DialectModern re-emits optional fields as anyOf over the inner type and
	// null, with an explicit default. This is the default dialect.
	DialectModern Dialect = iota
	// DialectLegacy re-emits optional fields as the bare inner type, yielding
	// exact structural round-trips for schemas without composition or refs.
	DialectLegacy
)

func (d Dialect) String() string {
	switch d {
	case DialectLegacy:
		return "legacy"
	default:
		return "modern"
	}
}

// DefaultModelName names models compiled from untitled schemas.
const DefaultModelName = "DynamicModel"

type contextKey int

const _ctxKeyFailFast contextKey = iota

// WithFailFast returns a child context that marks fail-fast parsing behavior.
// It is consumed by Model implementations to stop on the first issue instead
// of collecting all of them.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current parse should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}
