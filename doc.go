// Package cardbox keeps track of a trading card collection: the cards held
// in inventory, the sales made from it, and the totals of both.
//
// The core functionalities include:
//   - Inventory: items are batches of identical cards. Adding a card that
//     matches an existing item (same category, name, set and condition)
//     merges the quantities.
//   - Sales: selling units of an item records an immutable Sale and takes the
//     units out of the inventory, atomically.
//   - Bulk import and export in a simple 8 columns CSV format.
//   - Analysis: cost basis, market value, potential and realized profit.
//
// Persistence is behind the Store interface, implemented on SQLite by the
// store package. The Collection type gathers every operation the `cbx`
// command-line tool needs.
package cardbox
