// Package catalog implements the product catalog feature.
//
// It exposes the HTTP surface for creating, updating and reading products:
// catalog entries describing one sellable design, its variant dimensions and
// the remaining stock per label. All writes go through the ledger core,
// which enforces label/quantity parity and per-dimension stock consistency.
//
// # Components
//
//   - Service: Validates and forwards catalog operations to the ledger.
//   - Handler: Exposes the HTTP endpoints.
//   - Feature: Registers the module with the application loader.
//
// # HTTP Endpoints
//
//   - POST /products : create a product.
//   - PUT /products/:id : replace name, labels and stock wholesale.
//   - GET /products/:id : read a product.
//   - GET /products/next-id : read the id the next product will receive.
package catalog
