// Package filter narrows in-memory entity collections by optional criteria.
//
// All functions are pure. They never mutate their input and they keep the
// input order. Every set criterion must match exactly (logical AND); an
// unset criterion is ignored, so empty criteria return the input unchanged.
//
// Criteria use domain.Optional. The HTTP layer builds them with domain.Text
// and domain.Positive, which treat "" and non-positive numbers as absent.
// A literal zero price or quantity therefore cannot be filtered for.
package filter
