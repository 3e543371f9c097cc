// Package domain defines the core business entities for kmlpser.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: Opaque bytes handed to a decoder
//   - Placemark: One decoded placemark element before feature construction
//   - Feature: A parsed geographic element with ordered (lat, lng) pairs
//   - Document: The ordered features of one parsed file plus its raw text
//   - AnalysisResult: The metadata derived for one selected feature
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
