// Package courts holds the fixed court-type table. The three entries are
// compile-time constants of the product, not data managed at runtime.
package courts

import (
	"fmt"

	"futmanager/internal/domain"
)

// CourtType is one of the fixed combinations of surface covering, size class
// and base price a rental can be booked for.
type CourtType struct {
	ID        int64
	Cobertura string
	Tamanho   string
	Preco     domain.Preco
}

var table = [...]CourtType{
	{ID: 1, Cobertura: "Saibro", Tamanho: "Oficial Simples", Preco: 7500},
	{ID: 2, Cobertura: "Sintético", Tamanho: "Oficial Dupla", Preco: 9000},
	{ID: 3, Cobertura: "Sintético", Tamanho: "Oficial Dupla", Preco: 9000},
}

// Lookup returns the court type with the given id.
func Lookup(id int64) (CourtType, bool) {
	for _, ct := range table {
		if ct.ID == id {
			return ct, true
		}
	}
	return CourtType{}, false
}

// All returns the court-type table in id order. The slice is a copy; the
// table itself is immutable.
func All() []CourtType {
	out := make([]CourtType, len(table))
	copy(out, table[:])
	return out
}

// Label renders a court type as the human-readable form used in rental
// listings. Unknown ids get an explicit "not listed" fallback instead of an
// empty label.
func Label(id int64) string {
	ct, ok := Lookup(id)
	if !ok {
		return fmt.Sprintf("Quadra ID %d (Não listada)", id)
	}
	return fmt.Sprintf("ID %d (%s - %s)", ct.ID, ct.Cobertura, ct.Tamanho)
}

// OptionLabel renders a court type as shown in the booking form selector.
func (ct CourtType) OptionLabel() string {
	return fmt.Sprintf("%s / %s - R$ %s", ct.Cobertura, ct.Tamanho, ct.Preco)
}
