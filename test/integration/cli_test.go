package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rpgo/card-optimizer/internal/calculation"
	"github.com/rpgo/card-optimizer/internal/config"
	"github.com/rpgo/card-optimizer/internal/domain"
	"github.com/rpgo/card-optimizer/internal/repository"
	"github.com/rpgo/card-optimizer/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRoundTrip(t *testing.T) {
	body, err := os.ReadFile("../testdata/example_request.json")
	require.NoError(t, err)

	cache, err := repository.NewMemoryCache(16, time.Minute)
	require.NoError(t, err)
	settings := config.DefaultSettings()
	srv := server.New(settings, calculation.NewCalculationEngine(), cache, nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/cards", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary domain.AllocationSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, domain.StatusOptimal, summary.Solution)

	resp2, err := http.Post(ts.URL+"/cards/12", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var report domain.ComparisonReport
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&report))
	require.Len(t, report.Progress, 2)
	assert.Len(t, report.Progress[0].Projection, 13)
}

func TestExampleRequestMatchesTestdata(t *testing.T) {
	example := config.NewInputParser().CreateExampleRequest()
	fromFile := loadExample(t)

	require.Len(t, fromFile.Cards, len(example.Cards))
	assert.True(t, example.Budget.Equal(fromFile.Budget))
	for i := range example.Cards {
		assert.Equal(t, example.Cards[i].Nickname, fromFile.Cards[i].Nickname)
		assert.True(t, example.Cards[i].Balance.Equal(fromFile.Cards[i].Balance))
	}
}
