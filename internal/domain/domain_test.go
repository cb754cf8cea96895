package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientUnmarshal(t *testing.T) {
	t.Run("Uppercase ID key", func(t *testing.T) {
		var c Client
		err := json.Unmarshal([]byte(`{"ID": 7, "nome": "João Silva", "telefone": "(11) 99999-9999"}`), &c)
		require.NoError(t, err)
		assert.Equal(t, int64(7), c.ID)
		assert.Equal(t, "João Silva", c.Nome)
		assert.Equal(t, "(11) 99999-9999", c.Telefone)
	})

	t.Run("Snake case id key", func(t *testing.T) {
		var c Client
		err := json.Unmarshal([]byte(`{"id_cliente": 12, "nome": "Maria", "telefone": "123"}`), &c)
		require.NoError(t, err)
		assert.Equal(t, int64(12), c.ID)
	})

	t.Run("Both keys present prefers ID", func(t *testing.T) {
		var c Client
		err := json.Unmarshal([]byte(`{"ID": 3, "id_cliente": 4, "nome": "x", "telefone": "y"}`), &c)
		require.NoError(t, err)
		assert.Equal(t, int64(3), c.ID)
	})
}

func TestPreco(t *testing.T) {
	t.Run("Parse two decimal text", func(t *testing.T) {
		p, err := ParsePreco("90.00")
		require.NoError(t, err)
		assert.Equal(t, Preco(9000), p)
	})

	t.Run("Parse bare integer text", func(t *testing.T) {
		p, err := ParsePreco("75")
		require.NoError(t, err)
		assert.Equal(t, Preco(7500), p)
	})

	t.Run("Parse garbage", func(t *testing.T) {
		_, err := ParsePreco("abc")
		assert.Error(t, err)
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "140.00", Preco(14000).String())
		assert.Equal(t, "0.00", Preco(0).String())
		assert.Equal(t, "75.50", Preco(7550).String())
	})

	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, Preco(14000), Preco(9000).Add(5000))
	})

	t.Run("Unmarshal number", func(t *testing.T) {
		var p Preco
		require.NoError(t, json.Unmarshal([]byte(`90.5`), &p))
		assert.Equal(t, Preco(9050), p)
	})

	t.Run("Unmarshal numeric string", func(t *testing.T) {
		var p Preco
		require.NoError(t, json.Unmarshal([]byte(`"75.00"`), &p))
		assert.Equal(t, Preco(7500), p)
	})

	t.Run("Unmarshal invalid", func(t *testing.T) {
		var p Preco
		assert.Error(t, json.Unmarshal([]byte(`true`), &p))
	})

	t.Run("Marshal emits a number", func(t *testing.T) {
		out, err := json.Marshal(Preco(9000))
		require.NoError(t, err)
		assert.Equal(t, "90.00", string(out))
	})
}

func TestRentalUnmarshal(t *testing.T) {
	raw := `{"id_locacao": 5, "idQuadra": 2, "idCliente": 7, "dataLocacao": "2025-12-16T00:00:00", "preco": "90.00"}`
	var r Rental
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	assert.Equal(t, int64(5), r.ID)
	assert.Equal(t, int64(2), r.IDQuadra)
	assert.Equal(t, int64(7), r.IDCliente)
	assert.Equal(t, "2025-12-16T00:00:00", r.DataLocacao)
	assert.Equal(t, Preco(9000), r.Preco)
}

func TestRentalPayloadMarshal(t *testing.T) {
	payload := RentalPayload{IDQuadra: 2, IDCliente: 7, DataLocacao: "2025-12-17", Preco: 14000}
	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"idQuadra": 2, "idCliente": 7, "dataLocacao": "2025-12-17", "preco": 140.00}`, string(out))
}

func TestDateForInput(t *testing.T) {
	assert.Equal(t, "2025-12-16", DateForInput("2025-12-16T00:00:00"))
	assert.Equal(t, "2025-12-16", DateForInput("2025-12-16"))
	assert.Equal(t, "", DateForInput(""))
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "16/12/2025", FormatDisplayDate("2025-12-16"))
	assert.Equal(t, "16/12/2025", FormatDisplayDate("2025-12-16T10:30:00"))
	assert.Equal(t, "not-a-date", FormatDisplayDate("not-a-date"))
	assert.Equal(t, "", FormatDisplayDate(""))
}

func TestValidDate(t *testing.T) {
	assert.NoError(t, ValidDate("2025-12-16"))
	assert.Error(t, ValidDate("16/12/2025"))
	assert.Error(t, ValidDate("2025-13-01"))
}
