package types_test

import (
	"testing"

	"github.com/arthur-debert/hostboi/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestMutationResult_Changed(t *testing.T) {
	assert.False(t, (&types.MutationResult{}).Changed())
	assert.True(t, (&types.MutationResult{
		Changes: []types.LineChange{{Line: 3, Before: "#a", After: "a"}},
	}).Changed())
}
