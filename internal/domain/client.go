package domain

import "encoding/json"

// Client is a registered customer of the court rental system.
//
// The booking API historically exposed the client identifier under two key
// spellings ("ID" and "id_cliente"); decoding tolerates both and maps them to
// the single canonical ID field. Marshalling always emits "id_cliente".
type Client struct {
	ID       int64  `json:"id_cliente"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
}

// UnmarshalJSON decodes a client record, accepting the identifier under
// either of the two key spellings the backend has used.
func (c *Client) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        int64  `json:"ID"`
		IDCliente int64  `json:"id_cliente"`
		Nome      string `json:"nome"`
		Telefone  string `json:"telefone"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.ID = raw.ID
	if c.ID == 0 {
		c.ID = raw.IDCliente
	}
	c.Nome = raw.Nome
	c.Telefone = raw.Telefone
	return nil
}

// NewClientPayload is the request body for registering a client.
type NewClientPayload struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
}
