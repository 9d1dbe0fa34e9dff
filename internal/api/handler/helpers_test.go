package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/cedab23/blueprints/internal/blueprint"
)

// mockStore implements blueprint.Store with overridable functions.
type mockStore struct {
	createFn       func(ctx context.Context, bp *blueprint.Blueprint) error
	appendPointFn  func(ctx context.Context, author, name string, p blueprint.Point) error
	getFn          func(ctx context.Context, author, name string) (*blueprint.Blueprint, error)
	listByAuthorFn func(ctx context.Context, author string) ([]blueprint.Blueprint, error)
	listFn         func(ctx context.Context) ([]blueprint.Blueprint, error)
}

func (m *mockStore) Create(ctx context.Context, bp *blueprint.Blueprint) error {
	if m.createFn != nil {
		return m.createFn(ctx, bp)
	}
	return nil
}

func (m *mockStore) AppendPoint(ctx context.Context, author, name string, p blueprint.Point) error {
	if m.appendPointFn != nil {
		return m.appendPointFn(ctx, author, name, p)
	}
	return nil
}

func (m *mockStore) Get(ctx context.Context, author, name string) (*blueprint.Blueprint, error) {
	if m.getFn != nil {
		return m.getFn(ctx, author, name)
	}
	return nil, blueprint.ErrBlueprintNotFound
}

func (m *mockStore) ListByAuthor(ctx context.Context, author string) ([]blueprint.Blueprint, error) {
	if m.listByAuthorFn != nil {
		return m.listByAuthorFn(ctx, author)
	}
	return nil, blueprint.ErrBlueprintNotFound
}

func (m *mockStore) List(ctx context.Context) ([]blueprint.Blueprint, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []blueprint.Blueprint{}, nil
}

func makeChiRequest(method, path string, body []byte, params map[string]string) (*http.Request, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req, w
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err, "failed to parse response body")
	return env
}
