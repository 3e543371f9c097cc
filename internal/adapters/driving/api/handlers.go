package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/geojson"
	"github.com/custodia-labs/kmlpser/internal/logger"
)

// Error titles returned in the "error" member.
const (
	errParse    = "Failed to parse KML"
	errAnalyze  = "Failed to analyze feature"
	errNotFound = "Not found"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// zipMagic starts every KMZ archive.
var zipMagic = []byte("PK\x03\x04")

func writeJSON(w http.ResponseWriter, status int, v any) {
	writeJSONType(w, status, "application/json", v)
}

func writeJSONType(w http.ResponseWriter, status int, contentType string, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, title, message string) {
	writeJSON(w, status, errorResponse{Error: title, Message: message})
}

// readBody reads at most limit bytes. The bool is false when the body is too large.
func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, bool, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, false, err
		}
		return nil, true, err
	}
	return body, true, nil
}

// uploadMIMEType decides how an upload is decoded: ?format wins, then a
// KML or KMZ Content-Type, then the zip signature.
func uploadMIMEType(r *http.Request, body []byte) string {
	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "kmz":
		return domain.MIMETypeKMZ
	case "kml":
		return domain.MIMETypeKML
	}

	contentType := strings.ToLower(r.Header.Get("Content-Type"))
	if strings.Contains(contentType, "kml") || strings.Contains(contentType, "kmz") ||
		strings.Contains(contentType, "xml") {
		return contentType
	}
	if bytes.HasPrefix(body, zipMagic) {
		return domain.MIMETypeKMZ
	}
	return domain.MIMETypeKML
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	body, ok, err := readBody(w, r, s.cfg.MaxBodyBytes)
	if !ok {
		writeError(w, http.StatusRequestEntityTooLarge, errParse, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, errParse, err.Error())
		return
	}

	uri := r.URL.Query().Get("name")
	if uri == "" {
		uri = "upload"
	}

	doc, err := s.ports.Parser.Parse(r.Context(), domain.RawDocument{
		URI:      uri,
		MIMEType: uploadMIMEType(r, body),
		Content:  body,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedType):
			writeError(w, http.StatusUnsupportedMediaType, errParse, err.Error())
		case errors.Is(err, domain.ErrParse):
			writeError(w, http.StatusUnprocessableEntity, errParse, err.Error())
		default:
			logger.Error("Parse %s: %v", uri, err)
			writeError(w, http.StatusInternalServerError, errParse, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// handleAnalyze reports every failure, including unreadable bodies, as 500.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, _, err := readBody(w, r, s.cfg.MaxBodyBytes)
	if err != nil {
		writeError(w, http.StatusInternalServerError, errAnalyze, err.Error())
		return
	}

	var req domain.AnalyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusInternalServerError, errAnalyze, err.Error())
		return
	}

	result, err := s.ports.Analyzer.Analyze(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, errAnalyze, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.ports.Documents.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list documents", err.Error())
		return
	}
	if summaries == nil {
		summaries = []domain.DocumentSummary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

// document resolves the {id} path value, writing the error response on failure.
func (s *Server) document(w http.ResponseWriter, r *http.Request) (*domain.Document, bool) {
	id := r.PathValue("id")
	doc, err := s.ports.Documents.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, errNotFound, "document "+id+" not found")
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to load document", err.Error())
		}
		return nil, false
	}
	return doc, true
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.document(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleGeoJSON(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.document(w, r)
	if !ok {
		return
	}
	writeJSONType(w, http.StatusOK, "application/geo+json", geojson.FromDocument(doc))
}

func (s *Server) handleFeatureAnalysis(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.document(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errAnalyze, "feature index must be an integer")
		return
	}
	feature, err := doc.Feature(index)
	if err != nil {
		writeError(w, http.StatusNotFound, errNotFound, "feature "+strconv.Itoa(index)+" not found")
		return
	}

	result, err := s.ports.Analyzer.Analyze(r.Context(), domain.AnalyzeRequest{
		Feature:         feature,
		DocumentContext: doc.RawText,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, errAnalyze, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
