package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fortelabs/pcsets/analysis"
	"github.com/fortelabs/pcsets/cmd"
	"github.com/fortelabs/pcsets/model"
)

var router = cmd.NewRouter()

func doRequest(method, path string, body io.Reader) *http.Response {
	req := httptest.NewRequest(method, path, body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Result()
}

func createAnalyzeReqBody(pcs []int) io.Reader {
	data, err := json.Marshal(model.AnalyzeRequestBody{PitchClasses: pcs})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestAnalyzeMajorTriadE2E(t *testing.T) {
	resp := doRequest(http.MethodPost, "/analyze", createAnalyzeReqBody([]int{0, 4, 7}))

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var report analysis.Analysis
	err := json.NewDecoder(resp.Body).Decode(&report)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal([]int{0, 4, 7}, report.PitchClasses)
	assert.Equal("3-11", report.ForteNumber)
	assert.Equal([]int{0, 4, 7}, report.PrimeForm)
	assert.Equal([6]int{0, 0, 1, 1, 1, 0}, report.IntervalVector)
	assert.Equal(9, report.Complement.Cardinality)
	assert.Len(report.Transpositions, 12)
	assert.Len(report.Rotations, 3)
}

func TestAnalyzeRejectsOutOfRangeE2E(t *testing.T) {
	resp := doRequest(http.MethodPost, "/analyze", createAnalyzeReqBody([]int{0, 4, 12}))

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)

	var errResp model.ErrorResponse
	json.NewDecoder(resp.Body).Decode(&errResp)
	assert.Contains(errResp.Error, "between 0 and 11")
}

func TestCompareTriadsE2E(t *testing.T) {
	data, _ := json.Marshal(model.CompareRequestBody{
		Set1: []int{0, 4, 7},
		Set2: []int{0, 3, 7},
	})
	resp := doRequest(http.MethodPost, "/compare", bytes.NewReader(data))

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var report analysis.Comparison
	err := json.NewDecoder(resp.Body).Decode(&report)
	if err != nil {
		panic(err.Error())
	}

	assert.True(report.SameForteNumber)
	assert.True(report.SameIntervalVector)
	assert.False(report.SamePrimeForm)
	assert.Equal([]int{0, 7}, report.Intersection)
	assert.Equal([]int{0, 3, 4, 7}, report.Union)
}

func TestGetSetE2E(t *testing.T) {
	resp := doRequest(http.MethodGet, "/sets/4-9", nil)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var body struct {
		model.CatalogEntry
		SimilarSets []string `json:"similar_sets"`
		ZPartner    string   `json:"z_partner"`
	}
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal("4-9", body.ForteNumber)
	assert.Equal([]int{0, 1, 3, 7}, body.PrimeForm)
	assert.Equal("4-11", body.ZPartner)
}

func TestGetSetNotFoundE2E(t *testing.T) {
	resp := doRequest(http.MethodGet, "/sets/3-99", nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestGetSimilarE2E(t *testing.T) {
	resp := doRequest(http.MethodGet, "/sets/6-4/similar", nil)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var similar []string
	json.NewDecoder(resp.Body).Decode(&similar)
	assert.Equal([]string{"6-3", "6-24"}, similar)
}

func TestGetCardinalityE2E(t *testing.T) {
	resp := doRequest(http.MethodGet, "/cardinality/3", nil)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var entries []model.CatalogEntry
	json.NewDecoder(resp.Body).Decode(&entries)
	assert.Len(entries, 13)

	resp = doRequest(http.MethodGet, "/cardinality/13", nil)
	assert.Equal(400, resp.StatusCode)
}

func TestGetExamplesE2E(t *testing.T) {
	resp := doRequest(http.MethodGet, "/examples?composer=beethoven", nil)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var body []struct {
		Name     string `json:"name"`
		Composer string `json:"composer"`
	}
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Len(body, 2)
	for _, ex := range body {
		assert.Equal("Beethoven", ex.Composer)
	}
}
