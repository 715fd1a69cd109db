package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindDuplicate, KindOf(Duplicate("exists")))
	assert.Equal(t, KindForbidden, KindOf(Forbidden("no")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))

	wrapped := fmt.Errorf("handler: %w", NotFound("missing"))
	assert.Equal(t, KindNotFound, KindOf(wrapped), "kind survives wrapping")
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused on 10.0.0.5")
	err := Internal(cause)

	assert.Equal(t, "internal server error", MessageOf(err), "cause must not reach clients")
	assert.ErrorIs(t, err, cause, "cause still unwraps for logging")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindDuplicate, http.StatusConflict},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.kind), string(tt.kind))
	}
}
