// Package kml decodes KML markup into placemarks.
//
// The document is streamed with encoding/xml. Each Placemark element is
// collected into a small element tree so that the first name, description
// and coordinates descendants and every SimpleData and Data entry can be
// read with text-content semantics (all nested character data, CDATA
// included). The exact source bytes of each placemark are kept as its
// markup. Elements are matched on local name, so prefixed KML
// (kml:Placemark) decodes the same as the default namespace.
//
// Documents declaring a non UTF-8 encoding are transcoded first.
package kml
