// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// defines the configuration structure: the HTTP port, the operator API key
// guarding mutating routes, and the operator identity that owns newly minted
// item identifiers.
//
// The operator is a single composite capability: whoever presents the API
// key acts as both catalog owner and trusted verifier. Splitting those into
// two independent identities would make every mutating call unsatisfiable,
// so the roles are deliberately fused.
package server
