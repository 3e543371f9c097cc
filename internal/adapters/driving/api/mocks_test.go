package api

import (
	"context"
	"errors"

	"github.com/custodia-labs/kmlpser/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/core/services"
	"github.com/custodia-labs/kmlpser/internal/decoders/kml"
	"github.com/custodia-labs/kmlpser/internal/decoders/kmz"
)

const sampleKML = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark>
      <name>Tower 7</name>
      <ExtendedData>
        <Data name="Project_Code"><value>PSER-1001</value></Data>
        <Data name="Status"><value>Completed</value></Data>
      </ExtendedData>
      <Point><coordinates>121.0,14.5,0</coordinates></Point>
    </Placemark>
    <Placemark>
      <name>Line ABC-4567</name>
      <LineString><coordinates>120.0,14.0 121.0,14.0</coordinates></LineString>
    </Placemark>
  </Document>
</kml>`

// realPorts wires the production services over an in-memory store.
func realPorts() *Ports {
	registry := services.NewDecoderRegistry(kml.New(), kmz.New())
	parser := services.NewParserService(registry, memory.NewDocumentStore(memory.DefaultMaxDocuments))
	return &Ports{
		Parser:    parser,
		Documents: parser,
		Analyzer:  services.NewAnalyzerService(),
	}
}

var errBoom = errors.New("boom")

// failingParser fails every call with err.
type failingParser struct {
	err error
}

func (p failingParser) Parse(context.Context, domain.RawDocument) (*domain.Document, error) {
	return nil, p.err
}

func (p failingParser) Get(context.Context, string) (*domain.Document, error) {
	return nil, p.err
}

func (p failingParser) List(context.Context) ([]domain.DocumentSummary, error) {
	return nil, p.err
}
