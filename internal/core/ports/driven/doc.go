// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Decoder: Extracts placemarks from markup of one format (KML, KMZ)
//   - DecoderRegistry: Selects the decoder for a MIME type
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - DocumentStore: Session-scoped document retention. Without it, parsed
//     documents cannot be looked up by ID.
//   - ConfigStore: Application configuration. Without it, defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or decoder package
package driven
