package domain

// Rental is a booking of a court for one date by one client.
//
// DataLocacao carries the calendar date as received from the backend, either
// bare yyyy-mm-dd or with a time suffix. Use DateForInput before comparing or
// editing it.
type Rental struct {
	ID          int64  `json:"id_locacao"`
	IDQuadra    int64  `json:"idQuadra"`
	IDCliente   int64  `json:"idCliente"`
	DataLocacao string `json:"dataLocacao"`
	Preco       Preco  `json:"preco"`
}

// RentalPayload is the request body for creating or updating a rental.
type RentalPayload struct {
	IDQuadra    int64  `json:"idQuadra"`
	IDCliente   int64  `json:"idCliente"`
	DataLocacao string `json:"dataLocacao"`
	Preco       Preco  `json:"preco"`
}
