// Package cli implements the interactive FoodCourt terminal client: a
// read-eval-print loop over the session, cart, catalog, checkout, order and
// back-office services. All remote errors are converted to user-facing
// messages here; nothing below this layer prints.
package cli
