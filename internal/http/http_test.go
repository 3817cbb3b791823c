package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const person = `shapes:
  - targetNode: Person
    properties:
      - name: age
        datatype: int
`

func serve(t *testing.T, cfg *Config, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	NewHandler(cfg).ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var out struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out.Error
}

func TestShacl(t *testing.T) {
	rec := serve(t, nil, http.MethodPost, "/api/v1/shacl", person)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/turtle", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "sh:targetNode pg:Person")
	require.Contains(t, rec.Body.String(), "sh:datatype xsd:int")

	// created and creator are missing
	require.Equal(t, "2", rec.Header().Get(headerDiagnostics))
	require.Len(t, rec.Header().Values(headerDiagnostic), 2)
}

func TestShaclFormats(t *testing.T) {
	rec := serve(t, nil, http.MethodPost, "/api/v1/shacl?format=nquads", person)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/n-quads", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "<http://www.w3.org/ns/shacl#targetNode> <urn:pg:1.0:Person>")

	rec = serve(t, nil, http.MethodPost, "/api/v1/shacl?format=jsonld", person)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, json.Valid(rec.Body.Bytes()))

	rec = serve(t, nil, http.MethodPost, "/api/v1/shacl?format=yaml", person)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Unknown graph format.", errorMessage(t, rec))
}

func TestParseError(t *testing.T) {
	rec := serve(t, nil, http.MethodPost, "/api/v1/shacl", "shapes: [")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, errorMessage(t, rec), "parse")
	require.Empty(t, rec.Header().Get(headerDiagnostics))

	rec = serve(t, nil, http.MethodPost, "/api/v1/pgdl", "this is not turtle {")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotEmpty(t, errorMessage(t, rec))
}

func TestRoundTrip(t *testing.T) {
	rec := serve(t, nil, http.MethodPost, "/api/v1/shacl", person)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, nil, http.MethodPost, "/api/v1/pgdl", rec.Body.String())
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	out := rec.Body.String()
	require.Contains(t, out, "targetNode: Person")
	require.Contains(t, out, "name: age")
	require.Contains(t, out, "datatype: int")
}

func TestGraphQL(t *testing.T) {
	rec := serve(t, nil, http.MethodPost, "/api/v1/graphql", person)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "type Person")
	require.Contains(t, rec.Body.String(), "age: Int")
}

func TestConvert(t *testing.T) {
	rec := serve(t, nil, http.MethodPost, "/api/v1/convert/json", person)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"shapes":[{"targetNode":"Person","properties":[{"name":"age","datatype":"int"}]}]}`, rec.Body.String())

	rec = serve(t, nil, http.MethodPost, "/api/v1/convert/cbor", person)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/cbor", rec.Header().Get("Content-Type"))

	rec = serve(t, nil, http.MethodPost, "/api/v1/convert/docx", person)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFormats(t *testing.T) {
	rec := serve(t, nil, http.MethodGet, "/api/v1/formats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out []formatInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	var names []string
	for _, f := range out {
		names = append(names, f.Name)
	}
	require.Contains(t, names, "turtle")
	require.Contains(t, names, "graphql")
}

func TestMaxBody(t *testing.T) {
	rec := serve(t, &Config{MaxBody: 8}, http.MethodPost, "/api/v1/shacl", person)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHealthAndCORS(t *testing.T) {
	rec := serve(t, nil, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/shacl", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	NewHandler(nil).ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "http://example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics(t *testing.T) {
	rec := serve(t, nil, http.MethodPost, "/api/v1/shacl", person)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, nil, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	require.Contains(t, out, `pgdl_conversions_total{direction="pgdl-to-shacl",result="ok"}`)
	require.Contains(t, out, `pgdl_diagnostics_total{kind="missing field"}`)
}

func TestCache(t *testing.T) {
	h := NewHandler(&Config{CacheSize: 4})
	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shacl", strings.NewReader(person))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}
	first := do()
	require.Equal(t, http.StatusOK, first.Code)
	second := do()
	require.Equal(t, http.StatusOK, second.Code)
	require.Equal(t, first.Body.String(), second.Body.String())
	require.Equal(t, first.Header().Get(headerDiagnostics), second.Header().Get(headerDiagnostics))
	require.Equal(t, "text/turtle", second.Header().Get("Content-Type"))

	key := cacheKey(dirToShacl, "turtle", []byte(person))
	api := &API{config: &Config{}}
	require.False(t, api.serveCached(httptest.NewRecorder(), key))
	require.NotEqual(t, key, cacheKey(dirConvert, "turtle", []byte(person)))
}
