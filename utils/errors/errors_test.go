package errors_test

import (
	"fmt"
	"testing"

	errorsmod "cosmossdk.io/errors"
	errors2 "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/dorafactory/maci-demo/utils/errors"
)

func TestKeyVals(t *testing.T) {
	var err error = errors.With(errors2.New("test"), "key", "val")
	err = errors2.Wrap(err, "wrapped")

	assert.EqualValues(t, []interface{}{"key", "val"}, errors.KeyVals(err))
}

func TestKeyVals_Nested(t *testing.T) {
	var err error = errors.With(errors2.New("test"), "inner", 1)
	err = fmt.Errorf("context: %w", err)
	err = errors.With(err, "outer", 2)

	assert.EqualValues(t, []interface{}{"outer", 2, "inner", 1}, errors.KeyVals(err))
	assert.Nil(t, errors.With(nil, "key", "val"))
}

func TestIs(t *testing.T) {
	registered := errorsmod.Register("errors_test", 2, "registered")

	assert.True(t, errors.Is[*errorsmod.Error](errorsmod.Wrap(registered, "wrapped")))
	assert.False(t, errors.Is[*errorsmod.Error](errors2.New("plain")))
}
