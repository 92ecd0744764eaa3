package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"company-graph/backend/internal/chart"
	"company-graph/backend/internal/graph"
	"company-graph/backend/internal/metadata"
	"company-graph/backend/internal/records"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := records.NewDefaultStore()
	md := metadata.NewService(store, chart.NewRenderer(chart.DefaultOptions))
	return NewServer(graph.Build(store), md, zap.NewNop()).Router()
}

func postSearch(router *gin.Engine, company string) *httptest.ResponseRecorder {
	form := url.Values{"company": {company}}
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSearch_KnownCompany(t *testing.T) {
	router := newTestRouter(t)

	w := postSearch(router, "Tech Innovators Inc")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{"Retail Solutions LLC", "SmartHome Devices Co"}, resp.CurrentCustomers)
	assert.ElementsMatch(t, []string{
		"AgriTech Partners",
		"FinTech Global",
		"Green Energy Corp",
		"HealthWorks Ltd",
	}, resp.PotentialCustomers)
}

func TestSearch_PureBuyerHasEmptyCustomerList(t *testing.T) {
	router := newTestRouter(t)

	w := postSearch(router, "Retail Solutions LLC")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"current_customers":[]`)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.PotentialCustomers, 6)
}

func TestSearch_UnknownCompany(t *testing.T) {
	router := newTestRouter(t)

	w := postSearch(router, "Nonexistent Co")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Company not found"}`, w.Body.String())
}

func TestSearch_MissingField(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "missing form field: company"}`, w.Body.String())
}

func TestSearch_EmptyCompanyIsNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := postSearch(router, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Company not found"}`, w.Body.String())
}

func TestSearch_Idempotent(t *testing.T) {
	router := newTestRouter(t)

	first := postSearch(router, "Green Energy Corp").Body.String()
	second := postSearch(router, "Green Energy Corp").Body.String()
	assert.Equal(t, first, second)
}

func TestMetadata_KnownCompany(t *testing.T) {
	router := newTestRouter(t)

	w := get(router, "/metadata/Tech%20Innovators%20Inc")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Company    string                   `json:"company"`
		Financials []map[string]interface{} `json:"financials"`
		ESG        map[string]interface{}   `json:"esg"`
		Chart      string                   `json:"chart"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Tech Innovators Inc", resp.Company)
	require.Len(t, resp.Financials, 3)
	years := []float64{}
	for _, row := range resp.Financials {
		years = append(years, row["Year"].(float64))
	}
	assert.ElementsMatch(t, []float64{2021, 2022, 2023}, years)
	assert.Contains(t, resp.Financials[0], "R&D_Expenditure")
	assert.Contains(t, resp.ESG, "Overall_ESG_Score")
	assert.Contains(t, resp.ESG, "CO2_Emissions (tons)")

	require.NotEmpty(t, resp.Chart)
	raw, err := base64.StdEncoding.DecodeString(resp.Chart)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	assert.NoError(t, err)
}

func TestMetadata_SalesOnlyCompany(t *testing.T) {
	router := newTestRouter(t)

	w := get(router, "/metadata/Retail%20Solutions%20LLC")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Company data not found"}`, w.Body.String())
}

func TestMetadata_UnknownCompany(t *testing.T) {
	router := newTestRouter(t)

	w := get(router, "/metadata/Nonexistent%20Co")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Company data not found"}`, w.Body.String())
}

type failingMetadata struct{}

func (failingMetadata) Get(string) (*metadata.CompanyMetadata, error) {
	return nil, errors.New("renderer exploded")
}

func TestMetadata_UnexpectedError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewServer(graph.Build(records.NewDefaultStore()), failingMetadata{}, zap.NewNop()).Router()

	w := get(router, "/metadata/Tech%20Innovators%20Inc")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, w.Body.String())
}

func TestIndex_RendersSearchForm(t *testing.T) {
	router := newTestRouter(t)

	w := get(router, "/")
	require.Equal(t, http.StatusOK, w.Code)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)

	form := doc.Find("form#search-form")
	require.Equal(t, 1, form.Length())
	assert.Equal(t, "/search", form.AttrOr("action", ""))
	assert.Equal(t, "post", form.AttrOr("method", ""))
	assert.Equal(t, 1, form.Find(`input[name="company"]`).Length())

	var options []string
	doc.Find("datalist#companies option").Each(func(_ int, s *goquery.Selection) {
		options = append(options, s.AttrOr("value", ""))
	})
	assert.Len(t, options, 7)
	assert.Contains(t, options, "Tech Innovators Inc")
}

func TestCompanies(t *testing.T) {
	router := newTestRouter(t)

	w := get(router, "/companies")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["companies"], 7)
	assert.Equal(t, "AgriTech Partners", resp["companies"][0])
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := get(router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	postSearch(router, "Nonexistent Co")
	w := get(router, "/metrics")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "company_graph_http_requests_total")
}
