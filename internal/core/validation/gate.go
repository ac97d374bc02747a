package validation

import "github.com/artpar/gardencenter/internal/core/domain"

// =============================================================================
// Mode
// =============================================================================

// Mode is the kind of mutation being gated.
type Mode int

const (
	Create Mode = iota
	Update
)

func (m Mode) String() string {
	if m == Update {
		return "update"
	}
	return "create"
}

// =============================================================================
// Gate
// =============================================================================

// Check is one named step of a gate. Run returns nil when the step passes.
type Check struct {
	Name string
	Run  func() *Rejection
}

// Decision is the outcome of a gate.
type Decision struct {
	Rejection *Rejection
}

// Accepted reports whether every check passed.
func (d Decision) Accepted() bool {
	return d.Rejection == nil
}

// Gate runs checks in order and stops at the first rejection. Later checks
// are not evaluated, so a check may rely on every earlier one having passed.
func Gate(checks []Check) Decision {
	for _, c := range checks {
		if r := c.Run(); r != nil {
			r.Check = c.Name
			return Decision{Rejection: r}
		}
	}
	return Decision{}
}

// updatePrefix returns the identity and existence checks that run ahead of
// every update. It returns nil for creates.
func updatePrefix[E domain.Entity](mode Mode, entity string, pathID int64, payload E, existing []E) []Check {
	if mode != Update {
		return nil
	}
	return []Check{
		{
			Name: "identity",
			Run: func() *Rejection {
				if !IdentityMatches(pathID, payload) {
					return identityMismatch(entity)
				}
				return nil
			},
		},
		{
			Name: "exists",
			Run: func() *Rejection {
				if !Exists(pathID, existing) {
					return notFound(entity)
				}
				return nil
			},
		},
	}
}

// mustPass builds a check that rejects with r() when ok() is false.
func mustPass(name string, ok func() bool, r func() *Rejection) Check {
	return Check{
		Name: name,
		Run: func() *Rejection {
			if ok() {
				return nil
			}
			return r()
		},
	}
}
