package courts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	t.Run("Known ids", func(t *testing.T) {
		ct, ok := Lookup(1)
		assert.True(t, ok)
		assert.Equal(t, "Saibro", ct.Cobertura)
		assert.Equal(t, "Oficial Simples", ct.Tamanho)
		assert.Equal(t, "75.00", ct.Preco.String())

		ct, ok = Lookup(2)
		assert.True(t, ok)
		assert.Equal(t, "90.00", ct.Preco.String())

		ct, ok = Lookup(3)
		assert.True(t, ok)
		assert.Equal(t, "90.00", ct.Preco.String())
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, ok := Lookup(42)
		assert.False(t, ok)
	})
}

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, 3)

	// Mutating the returned slice must not touch the table.
	all[0].Cobertura = "changed"
	ct, _ := Lookup(1)
	assert.Equal(t, "Saibro", ct.Cobertura)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "ID 1 (Saibro - Oficial Simples)", Label(1))
	assert.Equal(t, "ID 2 (Sintético - Oficial Dupla)", Label(2))
	assert.Equal(t, "Quadra ID 99 (Não listada)", Label(99))
}

func TestOptionLabel(t *testing.T) {
	ct, _ := Lookup(1)
	assert.Equal(t, "Saibro / Oficial Simples - R$ 75.00", ct.OptionLabel())
}
