package validation

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_StatusCode(t *testing.T) {
	tests := []struct {
		kind     Kind
		wantCode int
		wantName string
	}{
		{kind: NotFound, wantCode: http.StatusNotFound, wantName: "not_found"},
		{kind: IdentityMismatch, wantCode: http.StatusBadRequest, wantName: "identity_mismatch"},
		{kind: Conflict, wantCode: http.StatusConflict, wantName: "conflict"},
		{kind: InvalidFormat, wantCode: http.StatusBadRequest, wantName: "invalid_format"},
		{kind: ReferentialInvalid, wantCode: http.StatusBadRequest, wantName: "referential_invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.kind.StatusCode())
			assert.Equal(t, tt.wantName, tt.kind.String())
		})
	}
}

func TestRejection_Implements_error(t *testing.T) {
	var err error = invalidFormat("email", "email must be in proper email format")
	assert.EqualError(t, err, "email must be in proper email format")
}

func TestRejection_StatusCodeFollowsKind(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, notFound("order").StatusCode())
	assert.Equal(t, http.StatusConflict, conflict("sku", "taken").StatusCode())
	assert.Equal(t, http.StatusBadRequest, referentialInvalid("customerId", "missing").StatusCode())
}
