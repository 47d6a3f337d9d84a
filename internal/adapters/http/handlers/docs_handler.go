package handlers

import "net/http"

// DocsHandler serves the OpenAPI document.
type DocsHandler struct {
	doc []byte
}

// NewDocsHandler creates a DocsHandler serving the given YAML document.
func NewDocsHandler(doc []byte) *DocsHandler {
	return &DocsHandler{doc: doc}
}

// OpenAPI handles GET /api/docs/openapi.yaml.
func (h *DocsHandler) OpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.doc)
}
