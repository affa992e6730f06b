package graph

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineaview-labs/lineaview/internal/lineage"
	"github.com/lineaview-labs/lineaview/pkg/geo"
)

func testRouter() (*chi.Mux, *lineage.Store) {
	store := lineage.NewStore(&lineage.Snapshot{
		Nodes: []lineage.Node{
			{ID: "raw", Name: "raw", Kind: lineage.KindSource, Position: &geo.Point{}, Columns: []string{"id"}},
			{ID: "stg", Name: "stg", Kind: lineage.KindTransform, Position: &geo.Point{X: 400}, Columns: []string{"id"}},
		},
		Edges: []lineage.Edge{
			{From: lineage.ColumnRef{Table: "raw", Column: "id"}, To: lineage.ColumnRef{Table: "stg", Column: "id"}},
		},
	})

	r := chi.NewRouter()
	SetupRoutes(r, store)
	return r, store
}

func TestGraphEndpoint(t *testing.T) {
	r, _ := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lineage/graph", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var snap lineage.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Len(t, snap.Nodes, 2)
	assert.Len(t, snap.Edges, 1)
}

func TestImpactEndpoint(t *testing.T) {
	r, _ := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lineage/impact/raw", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ImpactResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "raw", resp.Table)
	assert.Empty(t, resp.Upstream)
	assert.Equal(t, []string{"stg"}, resp.Downstream)
	assert.Equal(t, 1, resp.TotalImpacted)
}

func TestImpactUnknownTable(t *testing.T) {
	r, _ := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lineage/impact/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
