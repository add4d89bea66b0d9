package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasPermit2PrefixMatchesExactPrefix(t *testing.T) {
	require.True(t, HasPermit2Prefix(permit2BytecodePrefix))
	require.True(t, HasPermit2Prefix("0x"+permit2BytecodePrefix))
	require.True(t, HasPermit2Prefix("0X"+permit2BytecodePrefix))
	require.True(t, HasPermit2Prefix(permit2BytecodePrefix+"deadbeef"), "bytecode longer than the prefix still matches")
}

func TestHasPermit2PrefixRejectsMismatch(t *testing.T) {
	require.False(t, HasPermit2Prefix("0xdeadbeef"))
	require.False(t, HasPermit2Prefix(""))
	require.False(t, HasPermit2Prefix(permit2BytecodePrefix[:len(permit2BytecodePrefix)-1]), "a truncated prefix must not match")
}
