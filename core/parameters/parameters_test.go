package parameters

import (
	"testing"

	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/bidi"
)

func TestRegisterDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.core")
	defer teardown()
	//
	regs := NewLayoutRegisters()
	assert.False(t, regs.B(P_QUIRKS))
	assert.Equal(t, 512, regs.N(P_MAXDEPTH))
	assert.Equal(t, 16*dimen.PX, regs.D(P_LINEHEIGHT))
	assert.Equal(t, bidi.LeftToRight, regs.Direction())
}

func TestRegisterGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.core")
	defer teardown()
	//
	regs := NewLayoutRegisters()
	regs.Begingroup()
	regs.Push(P_QUIRKS, true)
	regs.Begingroup()
	regs.Push(P_DIRECTION, bidi.RightToLeft)
	assert.True(t, regs.B(P_QUIRKS), "quirks must be visible in nested group")
	assert.Equal(t, bidi.RightToLeft, regs.Direction())
	regs.Endgroup()
	assert.Equal(t, bidi.LeftToRight, regs.Direction())
	assert.True(t, regs.B(P_QUIRKS))
	regs.Endgroup()
	assert.False(t, regs.B(P_QUIRKS))
	regs.Endgroup() // unbalanced, ignored
	regs.Push(P_EM, 10*dimen.PX)
	assert.Equal(t, 10*dimen.PX, regs.D(P_EM))
}
