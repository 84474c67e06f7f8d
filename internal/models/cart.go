package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ProductID is an opaque catalog identifier. The catalog issues both numeric
// and document-store ids, so JSON input may carry either form; both normalize
// to the same canonical string so composite-key comparison never depends on
// the wire type.
type ProductID string

func (p *ProductID) UnmarshalJSON(data []byte) error {

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = ProductID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("product id must be a string or a number: %w", err)
	}

	*p = ProductID(n.String())

	return nil
}

// Price carries either a pre-formatted currency label ("$22.5") or a plain
// number. The raw label is preserved for display; arithmetic always goes
// through Amount.
type Price struct {
	raw    string
	amount float64
}

func NewPrice(amount float64) Price {
	return Price{amount: amount}
}

func ParsePrice(label string) Price {
	return Price{raw: label, amount: parseCurrency(label)}
}

// Amount returns the numeric value of the price.
func (p Price) Amount() float64 {
	return p.amount
}

func (p Price) String() string {
	if p.raw != "" {
		return p.raw
	}

	return strconv.FormatFloat(p.amount, 'f', -1, 64)
}

func (p *Price) UnmarshalJSON(data []byte) error {

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = ParsePrice(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("price must be a string or a number: %w", err)
	}

	*p = NewPrice(f)

	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p.raw != "" {
		return json.Marshal(p.raw)
	}

	return json.Marshal(p.amount)
}

// parseCurrency strips every character that is not a digit or a decimal
// point before parsing. Unparseable labels come back as zero rather than an
// error; a bad label must never break totals.
func parseCurrency(label string) float64 {

	var b strings.Builder

	for _, r := range label {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	amount, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}

	return amount
}

// CartKey is the composite key identifying a cart line. Two lines with the
// same product id but different variants (one present, one absent) are
// distinct.
type CartKey struct {
	ID      ProductID
	Variant string
}

type CartItem struct {
	ID       ProductID  `json:"id"`
	Name     string     `json:"name"`
	Price    Price      `json:"price"`
	Image    string     `json:"image,omitempty"`
	Quantity int        `json:"quantity"`
	Variant  string     `json:"variant,omitempty"`
	AddedAt  *time.Time `json:"added_at,omitempty"`
}

func (i CartItem) Key() CartKey {
	return CartKey{ID: i.ID, Variant: i.Variant}
}

type AddCartItemRequest struct {
	ID       ProductID `json:"id" validate:"required"`
	Name     string    `json:"name" validate:"required"`
	Price    Price     `json:"price"`
	Image    string    `json:"image,omitempty"`
	Quantity int       `json:"quantity" validate:"required,min=1"`
	Variant  string    `json:"variant,omitempty"`
}

type UpdateCartQuantityRequest struct {
	ID       ProductID `json:"id" validate:"required"`
	Quantity int       `json:"quantity"`
	Variant  string    `json:"variant,omitempty"`
}

type RemoveCartItemRequest struct {
	ID      ProductID `json:"id" validate:"required"`
	Variant string    `json:"variant,omitempty"`
}

// CartView is the cart state handed back to the storefront.
type CartView struct {
	Items      []CartItem `json:"items"`
	Scope      string     `json:"scope"`
	Count      int        `json:"count"`
	Total      float64    `json:"total"`
	DrawerOpen bool       `json:"drawer_open"`
	Loading    bool       `json:"loading"`
}
