// Package heuristics derives PSER project metadata from a feature's
// name, description, geometry and structured-data attributes.
//
// Each field has its own resolver with a ranked list of candidate
// attribute keys and a documented fallback chain. Resolvers never fail:
// an unresolved field yields its sentinel value.
package heuristics
