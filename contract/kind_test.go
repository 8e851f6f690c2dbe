package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-ioerror/contract"
)

func TestKinds_DeclarationOrder(t *testing.T) {
	t.Parallel()

	kinds := contract.Kinds()
	require.Len(t, kinds, 20)
	assert.Equal(t, contract.KindOther, kinds[0])
	assert.Equal(t, contract.KindWriteZero, kinds[len(kinds)-1])

	for i, k := range kinds {
		assert.Equal(t, contract.Kind(i), k)
		assert.True(t, k.Valid())
	}
}

func TestKindString_UniqueAndStable(t *testing.T) {
	t.Parallel()

	seen := map[string]contract.Kind{}
	for _, k := range contract.Kinds() {
		s := k.String()
		require.NotEmpty(t, s)

		if prev, dup := seen[s]; dup {
			t.Fatalf("kinds %d and %d share description %q", prev, k, s)
		}

		seen[s] = k
	}

	assert.Equal(t, "other error", contract.KindOther.String())
	assert.Equal(t, "invalid data", contract.KindInvalidData.String())
	assert.Equal(t, "unexpected end of file", contract.KindUnexpectedEOF.String())
}

func TestKindString_Unknown(t *testing.T) {
	t.Parallel()

	k := contract.Kind(200)
	assert.False(t, k.Valid())
	assert.Equal(t, "Kind(200)", k.String())
}
