package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(BadRequest("missing field")))
	assert.Equal(t, http.StatusUnauthorized, Status(Unauthorized("bad credentials")))
	assert.Equal(t, http.StatusForbidden, Status(Forbidden("no access")))
	assert.Equal(t, http.StatusNotFound, Status(NotFound("no such row")))
	assert.Equal(t, http.StatusConflict, Status(Conflict("duplicate")))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, Status(nil))
}

func TestStatusSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("create supplier: %w", Conflict("supplier with this name already exists"))
	assert.Equal(t, http.StatusConflict, Status(err))
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestMessageFormatting(t *testing.T) {
	err := NotFound("barang %d not found", 7)
	assert.Equal(t, "not found: barang 7 not found", err.Error())
}
