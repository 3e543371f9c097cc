// Package decoders provides implementations of the Decoder interface
// for geographic markup formats. Each decoder knows how to extract
// placemarks from a specific MIME type.
//
// Decoders are registered with the DecoderRegistry at startup.
package decoders
