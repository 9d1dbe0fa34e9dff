package handler

import (
	"log/slog"
	"net/http"
	"sync"

	"sigs.k8s.io/yaml"

	"github.com/cedab23/blueprints/internal/api/middleware"
	"github.com/cedab23/blueprints/internal/api/response"
)

// OpenAPIHandler serves the blueprints API document as JSON.
type OpenAPIHandler struct {
	document func() ([]byte, error)
}

// NewOpenAPIHandler returns a handler for the given YAML document. The JSON
// form is produced once, on the first request.
func NewOpenAPIHandler(yamlDoc []byte) *OpenAPIHandler {
	return &OpenAPIHandler{
		document: sync.OnceValues(func() ([]byte, error) {
			return yaml.YAMLToJSON(yamlDoc)
		}),
	}
}

// ServeHTTP handles GET /openapi.json.
func (h *OpenAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	doc, err := h.document()
	if err != nil {
		slog.Error("openapi document is not valid YAML", "error", err, "requestId", middleware.GetRequestID(r.Context()))
		response.Err(w, http.StatusInternalServerError, "Could not render API document", "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		slog.Debug("writing openapi document", "error", err)
	}
}
