// Package inventory provides the types and functions to track shoe stock
// records kept in a plain comma-separated text file.
//
// The core functionalities include:
//   - Records: one stock line item (country, code, product, cost, quantity)
//     with exact decimal cost arithmetic.
//   - Store: the ordered, in-memory collection of records for a session.
//   - Persistence: decoding the inventory file and appending restock lines to
//     it, always in the same human-readable field order.
//
// This package serves as the foundational logic for the `inv` command-line
// tool.
package inventory
