package validation

import "net/http"

// =============================================================================
// Rejection Kinds
// =============================================================================

// Kind classifies why a mutation was rejected.
type Kind int

const (
	// NotFound: the entity being updated does not exist.
	NotFound Kind = iota
	// IdentityMismatch: the path identifier differs from the payload identifier.
	IdentityMismatch
	// Conflict: a unique field (email, SKU) is already taken.
	Conflict
	// InvalidFormat: a field fails its format predicate.
	InvalidFormat
	// ReferentialInvalid: an order references a missing customer or product.
	ReferentialInvalid
)

// String returns the machine-readable code of the kind.
func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case IdentityMismatch:
		return "identity_mismatch"
	case Conflict:
		return "conflict"
	case InvalidFormat:
		return "invalid_format"
	case ReferentialInvalid:
		return "referential_invalid"
	default:
		return "unknown"
	}
}

// StatusCode maps the kind to its HTTP status.
func (k Kind) StatusCode() int {
	switch k {
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// =============================================================================
// Rejection
// =============================================================================

// Rejection is the single reason a gate refused a mutation.
type Rejection struct {
	Kind    Kind
	Check   string // Name of the check that failed (e.g., "email_unique")
	Field   string // Offending payload field, empty for identity/existence
	Message string
}

// Error implements the error interface.
func (r *Rejection) Error() string {
	return r.Message
}

// StatusCode returns the HTTP status for the rejection.
func (r *Rejection) StatusCode() int {
	return r.Kind.StatusCode()
}

func notFound(entity string) *Rejection {
	return &Rejection{
		Kind:    NotFound,
		Message: "no " + entity + " with that id exists",
	}
}

func identityMismatch(entity string) *Rejection {
	return &Rejection{
		Kind:    IdentityMismatch,
		Field:   "id",
		Message: "id in path does not match " + entity + " being altered",
	}
}

func conflict(field, message string) *Rejection {
	return &Rejection{Kind: Conflict, Field: field, Message: message}
}

func invalidFormat(field, message string) *Rejection {
	return &Rejection{Kind: InvalidFormat, Field: field, Message: message}
}

func referentialInvalid(field, message string) *Rejection {
	return &Rejection{Kind: ReferentialInvalid, Field: field, Message: message}
}
