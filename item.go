package cardbox

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Item is a batch of identical cards currently held in inventory, bought at a
// single recorded unit price.
type Item struct {
	ID            int64  `field:"id"`
	Category      string `field:"category"` // Sport or game, e.g. "Baseball" or "Pokemon".
	Name          string `field:"name"`
	Set           string `field:"set"`
	Number        string `field:"number"` // Card number within the set, not part of the Key.
	Condition     string `field:"condition"`
	PurchasePrice Money  `field:"purchase-price" validate:"gte=0"` // per unit
	MarketValue   Money  `field:"market-value" validate:"gte=0"`   // per unit
	Quantity      int    `field:"quantity" validate:"gt=0"`
}

// Key identifies items that are duplicates of each other.
//
// The card number is deliberately not part of it: two copies in the same
// category, set and condition with the same name are merged.
type Key struct {
	Category  string
	Name      string
	Set       string
	Condition string
}

// Key returns the duplicate detection key of the item.
func (it Item) Key() Key {
	return Key{Category: it.Category, Name: it.Name, Set: it.Set, Condition: it.Condition}
}

// CostBasis is the total purchase price of the batch.
func (it Item) CostBasis() Money { return it.PurchasePrice.Mul(it.Quantity) }

// MarketTotal is the total market value of the batch.
func (it Item) MarketTotal() Money { return it.MarketValue.Mul(it.Quantity) }

// PotentialProfit is (market value - purchase price) * quantity.
func (it Item) PotentialProfit() Money {
	return it.MarketValue.Sub(it.PurchasePrice).Mul(it.Quantity)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string { return f.Tag.Get("field") })
	// Money is compared as a number; the sign is all that is validated.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if m, ok := field.Interface().(Money); ok {
			return m.AsFloat()
		}
		return nil
	}, Money{})
	return v
}

// Validate checks the numeric invariants of an item: non-negative prices and
// a positive quantity.
func (it Item) Validate() error {
	err := validate.Struct(it)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "gt":
		return invalid(fe.Field(), "must be greater than %s, got %v", fe.Param(), fe.Value())
	case "gte":
		return invalid(fe.Field(), "must not be negative, got %v", fe.Value())
	default:
		return invalid(fe.Field(), "failed %q check", fe.Tag())
	}
}

// Field names an editable attribute of an Item.
type Field int

const (
	FieldCategory Field = iota
	FieldName
	FieldSet
	FieldNumber
	FieldCondition
	FieldPurchasePrice
	FieldMarketValue
	FieldQuantity
)

var fieldNames = [...]string{"category", "name", "set", "number", "condition", "purchase-price", "market-value", "quantity"}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

// Fields returns every editable field, in display order.
func Fields() []Field {
	fields := make([]Field, len(fieldNames))
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// ParseField parses a field name as printed by Field.String.
func ParseField(s string) (Field, error) {
	for i, name := range fieldNames {
		if name == s {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("unknown field: %q", s)
}
