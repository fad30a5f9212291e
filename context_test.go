package rowpoly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowpoly/rowpoly/builtins"
	"github.com/rowpoly/rowpoly/construct"
	"github.com/rowpoly/rowpoly/ir"
)

func TestContextResetPreservesBuiltinsAcrossRuns(t *testing.T) {
	ctx := NewContext()
	ctx.SetBuiltins(builtins.Default())

	_, _, err := Infer(ctx, construct.Builtin(ir.Add))
	require.NoError(t, err)

	ctx.Reset()

	_, _, err = Infer(ctx, construct.Builtin(ir.Add))
	require.NoError(t, err, "a builtin table set before Reset should still be usable after it")
}

func TestContextResetAdvancesUniqueCounter(t *testing.T) {
	ctx := NewContext()
	before := ctx.Supply().NextUnique()
	ctx.Supply().FreshCell()
	ctx.Supply().FreshCell()

	ctx.Reset()

	assert.Greater(t, ctx.Supply().NextUnique(), before, "Reset must not rewind the unique counter")
}

func TestContextWithoutBuiltinsRejectsBuiltinTerm(t *testing.T) {
	ctx := NewContext()
	_, _, err := Infer(ctx, construct.Builtin(ir.Add))
	require.Error(t, err)
	var us *UnsupportedError
	assert.ErrorAs(t, err, &us)
}
