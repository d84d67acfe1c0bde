package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRescodeType(t *testing.T) {
	cases := []struct {
		code Rescode
		want Rescodetype
	}{
		{ResOk, ResponseOk},
		{ResWrnLargeBound, ResponseWrn},
		{Rescode(999), ResponseWrn},
		{ResErrLicense, ResponseErr},
		{Rescode(9999), ResponseErr},
		{ResTrmMaxIterations, ResponseTrm},
		{ResTrmUserCallback, ResponseTrm},
		{Rescode(19999), ResponseTrm},
		{Rescode(20000), ResponseUnk},
		{Rescode(-1), ResponseUnk},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.code.Type(), "code %d", int32(tc.code))
	}
}

func TestRescodeSymbol(t *testing.T) {
	assert.Equal(t, "MSK_RES_OK", ResOk.Symbol())
	assert.Equal(t, "MSK_RES_ERR_LICENSE", ResErrLicense.Symbol())
	assert.Equal(t, "MSK_RES_TRM_USER_CALLBACK", ResTrmUserCallback.Symbol())
	assert.Equal(t, "", Rescode(424242).Symbol())
}

func TestRescodeRegistryAgrees(t *testing.T) {
	// Every registered code must stringify to its member name and classify
	// consistently with its value range.
	for _, m := range Rescodes.Members() {
		code := Rescode(m.Value)
		require.Equal(t, m.Name, code.String())
		require.NotEqual(t, ResponseUnk, code.Type(), "member %s", m.Name)
	}
}

func TestRescodePredicates(t *testing.T) {
	assert.True(t, ResWrnZeroAij.IsWarning())
	assert.False(t, ResWrnZeroAij.IsError())
	assert.True(t, ResErrFileOpen.IsError())
	assert.False(t, ResOk.IsError())
}
