package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Preco is a price in integer centavos. Keeping money integral makes the
// "price still equals its original value" comparison of the booking form
// exact instead of a float equality check.
type Preco int64

// ParsePreco converts two-decimal price text (e.g. "90.00") into centavos.
func ParsePreco(text string) (Preco, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", text, err)
	}
	return Preco(math.Round(f * 100)), nil
}

// Add returns the price increased by the given amount.
func (p Preco) Add(amount Preco) Preco {
	return p + amount
}

// Float returns the price in reais.
func (p Preco) Float() float64 {
	return float64(p) / 100
}

// String formats the price with two decimal places, e.g. "90.00".
func (p Preco) String() string {
	return strconv.FormatFloat(p.Float(), 'f', 2, 64)
}

// MarshalJSON emits the price as a JSON number in reais.
func (p Preco) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalJSON accepts the price as a JSON number or as a numeric string,
// both of which the backend has been seen to produce.
func (p *Preco) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*p = Preco(math.Round(v * 100))
		return nil
	case string:
		parsed, err := ParsePreco(v)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	default:
		return fmt.Errorf("invalid price value %s", data)
	}
}
