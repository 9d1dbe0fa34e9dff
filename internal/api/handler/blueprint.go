package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cedab23/blueprints/internal/api/middleware"
	"github.com/cedab23/blueprints/internal/api/response"
	"github.com/cedab23/blueprints/internal/api/validation"
	"github.com/cedab23/blueprints/internal/blueprint"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// pointPayload is the API representation of a point.
type pointPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// createBlueprintRequest is the request body for POST /blueprints.
type createBlueprintRequest struct {
	Author string         `json:"author"`
	Name   string         `json:"name"`
	Points []pointPayload `json:"points"`
}

// appendPointRequest is the request body for PUT /blueprints/{author}/{name}/points.
type appendPointRequest struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

// blueprintResponse is the API representation of a blueprint.
type blueprintResponse struct {
	Author string         `json:"author"`
	Name   string         `json:"name"`
	Points []pointPayload `json:"points"`
}

func toBlueprintResponse(bp *blueprint.Blueprint) blueprintResponse {
	points := make([]pointPayload, 0, len(bp.Points))
	for _, p := range bp.Points {
		points = append(points, pointPayload{X: p.X, Y: p.Y})
	}
	return blueprintResponse{
		Author: bp.Author,
		Name:   bp.Name,
		Points: points,
	}
}

func toBlueprintResponses(blueprints []blueprint.Blueprint) []blueprintResponse {
	items := make([]blueprintResponse, 0, len(blueprints))
	for i := range blueprints {
		items = append(items, toBlueprintResponse(&blueprints[i]))
	}
	return items
}

// BlueprintHandler handles the blueprint endpoints.
type BlueprintHandler struct {
	store blueprint.Store
}

// NewBlueprintHandler creates a new BlueprintHandler.
func NewBlueprintHandler(store blueprint.Store) *BlueprintHandler {
	return &BlueprintHandler{store: store}
}

// List handles GET /blueprints.
func (h *BlueprintHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	blueprints, err := h.store.List(r.Context())
	if err != nil {
		slog.Error("failed to list blueprints", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "Could not fetch blueprints", err.Error())
		return
	}

	response.Success(w, http.StatusOK, toBlueprintResponses(blueprints), "All blueprints successfully fetched")
}

// ListByAuthor handles GET /blueprints/{author}.
func (h *BlueprintHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	author := pathParam(r, "author")

	blueprints, err := h.store.ListByAuthor(r.Context(), author)
	if err != nil {
		if errors.Is(err, blueprint.ErrBlueprintNotFound) {
			response.Err(w, http.StatusNotFound, "Could not find any blueprint by author: "+author, err.Error())
			return
		}
		slog.Error("failed to list blueprints by author", "error", err, "author", author, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "Could not fetch blueprints by author: "+author, err.Error())
		return
	}

	response.Success(w, http.StatusOK, toBlueprintResponses(blueprints), "Blueprint was found by author: "+author)
}

// Get handles GET /blueprints/{author}/{name}.
func (h *BlueprintHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	author := pathParam(r, "author")
	name := pathParam(r, "name")

	bp, err := h.store.Get(r.Context(), author, name)
	if err != nil {
		if errors.Is(err, blueprint.ErrBlueprintNotFound) {
			response.Err(w, http.StatusNotFound, fmt.Sprintf("Could not find any blueprint by author: %s and name: %s", author, name), err.Error())
			return
		}
		slog.Error("failed to get blueprint", "error", err, "author", author, "name", name, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "Could not fetch blueprint", err.Error())
		return
	}

	response.Success(w, http.StatusOK, toBlueprintResponse(bp), fmt.Sprintf("Blueprint was found by author: %s and name: %s", author, name))
}

// Create handles POST /blueprints.
func (h *BlueprintHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req createBlueprintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "Request body must be valid JSON", err.Error())
		return
	}

	req.Author = strings.TrimSpace(req.Author)
	req.Name = strings.TrimSpace(req.Name)

	coords := make([]validation.Coordinate, 0, len(req.Points))
	for _, p := range req.Points {
		coords = append(coords, validation.Coordinate{X: p.X, Y: p.Y})
	}
	fieldErrors := validation.ValidateCreateBlueprintRequest(validation.CreateBlueprintRequest{
		Author: req.Author,
		Name:   req.Name,
		Points: coords,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "Input validation failed", "validation error", fieldErrors)
		return
	}

	bp := &blueprint.Blueprint{
		Author: req.Author,
		Name:   req.Name,
		Points: make([]blueprint.Point, 0, len(req.Points)),
	}
	for _, p := range req.Points {
		bp.Points = append(bp.Points, blueprint.Point{X: p.X, Y: p.Y})
	}

	if err := h.store.Create(r.Context(), bp); err != nil {
		if !errors.Is(err, blueprint.ErrDuplicateBlueprint) {
			slog.Error("failed to create blueprint", "error", err, "author", bp.Author, "name", bp.Name, "requestId", requestID)
		}
		response.Err(w, http.StatusForbidden, "Could not create blueprint", err.Error())
		return
	}

	response.Success(w, http.StatusCreated, nil, "Blueprint was created")
}

// AppendPoint handles PUT /blueprints/{author}/{name}/points.
func (h *BlueprintHandler) AppendPoint(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	author := pathParam(r, "author")
	name := pathParam(r, "name")

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req appendPointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "Request body must be valid JSON", err.Error())
		return
	}

	fieldErrors := validation.ValidateAppendPointRequest(validation.AppendPointRequest{X: req.X, Y: req.Y})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "Input validation failed", "validation error", fieldErrors)
		return
	}

	err := h.store.AppendPoint(r.Context(), author, name, blueprint.Point{X: *req.X, Y: *req.Y})
	if err != nil {
		if errors.Is(err, blueprint.ErrBlueprintNotFound) {
			response.Err(w, http.StatusNotFound, "Could not find name and author to add point", err.Error())
			return
		}
		slog.Error("failed to append point", "error", err, "author", author, "name", name, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "Could not add point", err.Error())
		return
	}

	response.Success(w, http.StatusAccepted, nil, "Point was added successfully")
}

// pathParam returns a decoded URL parameter. chi routes on r.URL.RawPath
// when it is set, and only then are the captured values still escaped.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}
