package renderer

import (
	"strings"

	"github.com/etnz/cardbox"
)

// cell escapes text for use in a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// orDash returns s, or "-" if it is empty.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// card is the display name of a card: name, set and number.
func card(name, set, number string) string {
	s := name
	if set != "" {
		s += " (" + set + ")"
	}
	if number != "" {
		s += " #" + strings.TrimPrefix(number, "#")
	}
	return s
}

func itemCard(it cardbox.Item) string { return card(it.Name, it.Set, it.Number) }
func saleCard(s cardbox.Sale) string  { return card(s.Name, s.Set, s.Number) }
