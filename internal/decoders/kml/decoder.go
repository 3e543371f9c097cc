package kml

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.Decoder = (*Decoder)(nil)

// Element names, matched on the local name so namespace prefixes are ignored.
const (
	elemPlacemark   = "Placemark"
	elemName        = "name"
	elemDescription = "description"
	elemCoordinates = "coordinates"
	elemSimpleData  = "SimpleData"
	elemData        = "Data"
	elemValue       = "value"
	attrName        = "name"
)

// Decoder handles KML documents.
type Decoder struct{}

// New creates a new KML decoder.
func New() *Decoder {
	return &Decoder{}
}

// SupportedMIMETypes returns the MIME types this decoder handles.
func (d *Decoder) SupportedMIMETypes() []string {
	return []string{
		domain.MIMETypeKML,
		"application/xml",
		"text/xml",
	}
}

// Priority returns the selection priority.
func (d *Decoder) Priority() int {
	return 50
}

// Decode extracts every placemark in document order.
func (d *Decoder) Decode(ctx context.Context, raw *domain.RawDocument) ([]domain.Placemark, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	return DecodeBytes(ctx, raw.Content)
}

// DecodeBytes extracts placemarks from KML markup.
func DecodeBytes(ctx context.Context, content []byte) ([]domain.Placemark, error) {
	content, err := toUTF8(content)
	if err != nil {
		return nil, err
	}

	dec := xml.NewDecoder(bytes.NewReader(content))
	dec.CharsetReader = passthrough

	var (
		placemarks []domain.Placemark
		stack      []*node
		root       *node
		sawElement bool
	)

	for {
		offset := dec.InputOffset()
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &domain.ParseError{Reason: "malformed markup", Err: err}
		}

		switch el := tok.(type) {
		case xml.StartElement:
			sawElement = true
			if root == nil && el.Name.Local != elemPlacemark {
				continue
			}
			n := &node{name: el.Name.Local, attrs: attributes(el.Attr), start: offset}
			if root == nil {
				root = n
			} else {
				stack[len(stack)-1].children = append(stack[len(stack)-1].children, n)
			}
			stack = append(stack, n)

		case xml.CharData:
			for _, n := range stack {
				n.text.Write(el)
			}

		case xml.EndElement:
			if root == nil {
				continue
			}
			n := stack[len(stack)-1]
			n.end = dec.InputOffset()
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				continue
			}

			placemarks = appendPlacemarks(placemarks, root, content)
			root = nil
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}

	if !sawElement {
		return nil, &domain.ParseError{Reason: "document contains no elements"}
	}
	return placemarks, nil
}

// appendPlacemarks adds root and any placemarks nested inside it, in document order.
func appendPlacemarks(out []domain.Placemark, root *node, content []byte) []domain.Placemark {
	out = append(out, toPlacemark(root, content))
	root.walk(func(n *node) {
		if n.name == elemPlacemark {
			out = append(out, toPlacemark(n, content))
		}
	})
	return out
}

func toPlacemark(n *node, content []byte) domain.Placemark {
	pm := domain.Placemark{
		Markup: string(content[n.start:n.end]),
	}
	if el := n.find(elemName); el != nil {
		pm.Name = el.text.String()
	}
	if el := n.find(elemDescription); el != nil {
		pm.Description = el.text.String()
	}
	if el := n.find(elemCoordinates); el != nil {
		pm.Coordinates = el.text.String()
		pm.HasCoordinates = true
	}

	n.walk(func(c *node) {
		switch c.name {
		case elemSimpleData:
			if key, ok := c.attrs[attrName]; ok {
				pm.Data = append(pm.Data, domain.DataEntry{Key: key, Value: c.text.String()})
			}
		case elemData:
			key, ok := c.attrs[attrName]
			if !ok {
				return
			}
			var value string
			if v := c.find(elemValue); v != nil {
				value = v.text.String()
			}
			pm.Data = append(pm.Data, domain.DataEntry{Key: key, Value: value})
		}
	})
	return pm
}

func attributes(attrs []xml.Attr) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name.Local] = a.Value
	}
	return m
}

// toUTF8 transcodes content declared in a non UTF-8 encoding.
func toUTF8(content []byte) ([]byte, error) {
	label := declaredEncoding(content)
	if label == "" {
		return content, nil
	}

	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		return nil, &domain.ParseError{Reason: "unsupported encoding " + strings.ToLower(label), Err: err}
	}
	out, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return nil, &domain.ParseError{Reason: "invalid " + strings.ToLower(label) + " content", Err: err}
	}
	return out, nil
}

// declaredEncoding returns the encoding named by the XML declaration when
// it is not UTF-8.
func declaredEncoding(content []byte) string {
	var label string
	dec := xml.NewDecoder(bytes.NewReader(content))
	dec.CharsetReader = func(l string, r io.Reader) (io.Reader, error) {
		label = l
		return r, nil
	}
	_, _ = dec.Token()
	return label
}

// passthrough accepts any declared charset once content is UTF-8.
func passthrough(_ string, r io.Reader) (io.Reader, error) {
	return r, nil
}
