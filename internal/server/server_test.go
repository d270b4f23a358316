package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-atlas/internal/catalog"
	"github.com/pdiddy/paper-atlas/internal/query"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

const fixtureDoc = `authors,title,journal,year,abstract,study_type,sample_size,country_region
Smith,Social Media and Politics,Journal of Communication,2019,Media exposure and political attitudes,Survey,1200,Germany
Chen,Echo Chambers Online,Political Psychology,2021,Polarization in online media politics,Experiment,300,USA
`

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := catalog.NewStore()
	require.Equal(t, 2, store.LoadText(fixtureDoc))

	srv := New(store, query.NewEngine(store, nil), zap.NewNop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, dst any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
	return resp
}

func TestPapersEndpoint(t *testing.T) {
	ts := testServer(t)

	var papers []types.PaperRecord
	resp := getJSON(t, ts.URL+"/api/papers", &papers)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, papers, 2)
	assert.Equal(t, "paper_001", papers[0].ID)
}

func TestSearchEndpoint(t *testing.T) {
	ts := testServer(t)

	var results []types.PaperRecord
	getJSON(t, ts.URL+"/api/search?q=polarization", &results)
	require.Len(t, results, 1)
	assert.Equal(t, "paper_002", results[0].ID)
}

func TestSearchEndpointFilters(t *testing.T) {
	ts := testServer(t)

	var results []types.PaperRecord
	getJSON(t, ts.URL+"/api/search?year=2020&methodology=Experiment", &results)
	require.Len(t, results, 1)
	assert.Equal(t, "paper_002", results[0].ID)
}

func TestSearchEndpointEmptyResultIsArray(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/api/search?q=zzzznotfound")
	require.NoError(t, err)
	defer resp.Body.Close()

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.JSONEq(t, "[]", string(raw), "empty result must render as [], not null")
}

func TestPaperEndpoint(t *testing.T) {
	ts := testServer(t)

	var paper types.PaperRecord
	resp := getJSON(t, ts.URL+"/api/paper/paper_001", &paper)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Social Media and Politics", paper.Title)
}

func TestPaperEndpointNotFound(t *testing.T) {
	ts := testServer(t)

	var body map[string]string
	resp := getJSON(t, ts.URL+"/api/paper/paper_999", &body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Paper not found", body["error"])
}

func TestStatisticsEndpoint(t *testing.T) {
	ts := testServer(t)

	var stats types.Statistics
	getJSON(t, ts.URL+"/api/statistics", &stats)
	assert.Equal(t, 2, stats.TotalPapers)
	assert.Equal(t, 1500, stats.TotalStudies)
	assert.Equal(t, 2, stats.TotalCountries)
}

func TestCompareEndpoint(t *testing.T) {
	ts := testServer(t)

	var papers []types.PaperRecord
	getJSON(t, ts.URL+"/api/compare?ids=paper_002,paper_999,paper_001", &papers)
	// Unknown ids are dropped; order follows the ids parameter.
	require.Len(t, papers, 2)
	assert.Equal(t, "paper_002", papers[0].ID)
	assert.Equal(t, "paper_001", papers[1].ID)
}
