// Package variant implements label matching for product variants.
//
// A product stores its variant labels as one flat, ordered list in which
// sentinel separator labels partition the list into dimensions (e.g. sizes,
// then a separator, then colors). This package owns the separator sentinel,
// the dimension partitioning logic, and the label equality check used
// everywhere stock has to be located by label.
package variant
