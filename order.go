package cardbox

import "fmt"

// InventoryOrder defines how inventory listings are sorted.
type InventoryOrder int

const (
	// ByName sorts items alphabetically by name (A-Z).
	ByName InventoryOrder = iota
	// ByMarketValue sorts items by unit market value, highest first.
	ByMarketValue
	// ByPotentialProfit sorts items by (market value - purchase price) * quantity, highest first.
	ByPotentialProfit
	// ByNewest sorts items by order of entry, newest first.
	ByNewest
	// ByCategory sorts items by category (A-Z).
	ByCategory
)

func (o InventoryOrder) String() string {
	switch o {
	case ByName:
		return "name"
	case ByMarketValue:
		return "value"
	case ByPotentialProfit:
		return "profit"
	case ByNewest:
		return "newest"
	case ByCategory:
		return "category"
	default:
		return "unknown"
	}
}

// ParseInventoryOrder parses a string into an InventoryOrder.
func ParseInventoryOrder(s string) (InventoryOrder, error) {
	switch s {
	case "name", "":
		return ByName, nil
	case "value":
		return ByMarketValue, nil
	case "profit":
		return ByPotentialProfit, nil
	case "newest":
		return ByNewest, nil
	case "category":
		return ByCategory, nil
	default:
		return 0, fmt.Errorf("unknown inventory order: %q", s)
	}
}

// SalesOrder defines how the sales log is sorted.
type SalesOrder int

const (
	// ByProfit sorts sales by realized profit, highest first.
	ByProfit SalesOrder = iota
	// BySaleName sorts sales alphabetically by card name (A-Z).
	BySaleName
	// ByLatest sorts sales by order of recording, newest first.
	ByLatest
)

func (o SalesOrder) String() string {
	switch o {
	case ByProfit:
		return "profit"
	case BySaleName:
		return "name"
	case ByLatest:
		return "newest"
	default:
		return "unknown"
	}
}

// ParseSalesOrder parses a string into a SalesOrder.
func ParseSalesOrder(s string) (SalesOrder, error) {
	switch s {
	case "profit", "":
		return ByProfit, nil
	case "name":
		return BySaleName, nil
	case "newest":
		return ByLatest, nil
	default:
		return 0, fmt.Errorf("unknown sales order: %q", s)
	}
}
