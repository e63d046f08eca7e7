package sl

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	attr := Err(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, slog.KindString, attr.Value.Kind())
	assert.Equal(t, "boom", attr.Value.String())
}

func TestOp(t *testing.T) {
	attr := Op("handlers.checkout")
	assert.Equal(t, "op", attr.Key)
	assert.Equal(t, "handlers.checkout", attr.Value.String())
}
