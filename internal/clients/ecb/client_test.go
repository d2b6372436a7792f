package ecb_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vorsorgeapp/pension_backend/internal/clients/ecb"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const sdmxPayload = `{
	"dataSets": [
		{
			"series": {
				"0:0:0:0:0": {
					"observations": {
						"1": [1.0905],
						"0": [1.0876]
					}
				}
			}
		}
	],
	"structure": {
		"dimensions": {
			"observation": [
				{
					"id": "TIME_PERIOD",
					"values": [
						{"id": "2024-01-15"},
						{"id": "2024-01-16"}
					]
				}
			]
		}
	}
}`

func fetchWindow() (time.Time, time.Time) {
	return time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)
}

func TestFetchRates_ParsesAndSortsObservations(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"startPeriod": r.URL.Query().Get("startPeriod"),
			"endPeriod":   r.URL.Query().Get("endPeriod"),
			"format":      r.URL.Query().Get("format"),
			"detail":      r.URL.Query().Get("detail"),
		}
		w.Write([]byte(sdmxPayload))
	}))
	defer server.Close()

	client := ecb.NewClient(server.URL, testLogger)
	start, end := fetchWindow()
	obs, err := client.FetchRates(context.Background(), "USD", start, end)

	require.NoError(t, err)
	require.Len(t, obs, 2)

	assert.Equal(t, "/service/data/EXR/D.USD.EUR.SP00.A", gotPath)
	assert.Equal(t, "2024-01-15", gotQuery["startPeriod"])
	assert.Equal(t, "2024-01-16", gotQuery["endPeriod"])
	assert.Equal(t, "jsondata", gotQuery["format"])
	assert.Equal(t, "dataonly", gotQuery["detail"])

	// Observations come back ascending even though the map order is random.
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), obs[0].Date)
	assert.True(t, obs[0].Rate.Equal(decimal.NewFromFloat(1.0876)))
	assert.Equal(t, time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC), obs[1].Date)
	assert.True(t, obs[1].Rate.Equal(decimal.NewFromFloat(1.0905)))
}

func TestFetchRates_NotFoundMeansNoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := ecb.NewClient(server.URL, testLogger)
	start, end := fetchWindow()
	obs, err := client.FetchRates(context.Background(), "USD", start, end)

	require.NoError(t, err)
	assert.Empty(t, obs)
}

func TestFetchRates_EmptyBodyMeansNoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 with no body, as the SDW answers for some empty ranges.
	}))
	defer server.Close()

	client := ecb.NewClient(server.URL, testLogger)
	start, end := fetchWindow()
	obs, err := client.FetchRates(context.Background(), "USD", start, end)

	require.NoError(t, err)
	assert.Empty(t, obs)
}

func TestFetchRates_ServerErrorIsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := ecb.NewClient(server.URL, testLogger)
	start, end := fetchWindow()
	_, err := client.FetchRates(context.Background(), "USD", start, end)

	require.Error(t, err)
	var fetchErr *ecb.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
	assert.Equal(t, "USD", fetchErr.Currency)
}

func TestFetchRates_MalformedPayloadIsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dataSets": [`))
	}))
	defer server.Close()

	client := ecb.NewClient(server.URL, testLogger)
	start, end := fetchWindow()
	_, err := client.FetchRates(context.Background(), "USD", start, end)

	require.Error(t, err)
	var fetchErr *ecb.FetchError
	assert.True(t, errors.As(err, &fetchErr))
}

func TestFetchRates_MissingTimePeriodDimensionIsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"dataSets": [{"series": {"0:0:0:0:0": {"observations": {"0": [1.1]}}}}],
			"structure": {"dimensions": {"observation": [{"id": "CURRENCY", "values": [{"id": "USD"}]}]}}
		}`))
	}))
	defer server.Close()

	client := ecb.NewClient(server.URL, testLogger)
	start, end := fetchWindow()
	_, err := client.FetchRates(context.Background(), "USD", start, end)

	var fetchErr *ecb.FetchError
	require.True(t, errors.As(err, &fetchErr))
}

func TestFetchRates_SkipsUnvaluedObservations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"dataSets": [
				{
					"series": {
						"0:0:0:0:0": {
							"observations": {
								"0": [1.0876],
								"1": [null]
							}
						}
					}
				}
			],
			"structure": {
				"dimensions": {
					"observation": [
						{
							"id": "TIME_PERIOD",
							"values": [{"id": "2024-01-15"}, {"id": "2024-01-16"}]
						}
					]
				}
			}
		}`))
	}))
	defer server.Close()

	client := ecb.NewClient(server.URL, testLogger)
	start, end := fetchWindow()
	obs, err := client.FetchRates(context.Background(), "USD", start, end)

	require.NoError(t, err)
	require.Len(t, obs, 1)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), obs[0].Date)
}
