package ecb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
)

// DefaultBaseURL is the ECB Statistical Data Warehouse REST endpoint.
const DefaultBaseURL = "https://data-api.ecb.europa.eu"

const requestTimeout = 30 * time.Second

// FetchError marks a transient fetch failure: network fault, non-success
// status, or a payload the SDMX parser could not make sense of. Callers may
// retry any error of this type.
type FetchError struct {
	Currency   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("ecb fetch for %s failed with status %d: %v", e.Currency, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("ecb fetch for %s failed: %v", e.Currency, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client fetches daily reference rates against the euro from the ECB SDW.
// It implements the clients.RateFetcher port.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an ECB client. baseURL may be empty to use the public API;
// tests and operators can point it elsewhere.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// sdmxResponse is the subset of the SDMX-JSON payload the client reads:
// one series of observations, indexed into the TIME_PERIOD dimension values.
type sdmxResponse struct {
	DataSets []struct {
		Series map[string]struct {
			Observations map[string][]*float64 `json:"observations"`
		} `json:"series"`
	} `json:"dataSets"`
	Structure struct {
		Dimensions struct {
			Observation []struct {
				ID     string `json:"id"`
				Values []struct {
					ID string `json:"id"`
				} `json:"values"`
			} `json:"observation"`
		} `json:"dimensions"`
	} `json:"structure"`
}

// FetchRates returns all daily observations for the currency against the euro
// within [start, end]. A 404 from the SDW means the range holds no data and
// yields an empty result, not an error; every other failure is a *FetchError.
func (c *Client) FetchRates(ctx context.Context, currency string, start, end time.Time) ([]domain.RateObservation, error) {
	endpoint := fmt.Sprintf("%s/service/data/EXR/D.%s.EUR.SP00.A", c.baseURL, url.PathEscape(currency))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{Currency: currency, Err: err}
	}

	q := req.URL.Query()
	q.Set("startPeriod", start.Format(time.DateOnly))
	q.Set("endPeriod", end.Format(time.DateOnly))
	q.Set("format", "jsondata")
	q.Set("detail", "dataonly")
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Currency: currency, Err: err}
	}
	defer resp.Body.Close()

	// The SDW answers 404 (or 200 with an empty body) for ranges it has no
	// data for, weekends and future dates included.
	if resp.StatusCode == http.StatusNotFound {
		return []domain.RateObservation{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &FetchError{
			Currency:   currency,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response: %s", string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Currency: currency, Err: err}
	}
	if len(body) == 0 {
		return []domain.RateObservation{}, nil
	}

	var parsed sdmxResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &FetchError{Currency: currency, Err: fmt.Errorf("malformed SDMX payload: %w", err)}
	}

	return c.observations(currency, parsed)
}

// observations flattens the SDMX series into (date, rate) pairs.
func (c *Client) observations(currency string, parsed sdmxResponse) ([]domain.RateObservation, error) {
	if len(parsed.DataSets) == 0 {
		return []domain.RateObservation{}, nil
	}

	var periods []string
	for _, dim := range parsed.Structure.Dimensions.Observation {
		if dim.ID == "TIME_PERIOD" {
			for _, v := range dim.Values {
				periods = append(periods, v.ID)
			}
		}
	}
	if periods == nil {
		return nil, &FetchError{Currency: currency, Err: fmt.Errorf("SDMX payload has no TIME_PERIOD dimension")}
	}

	var observations []domain.RateObservation
	for _, series := range parsed.DataSets[0].Series {
		for idxStr, values := range series.Observations {
			var idx int
			if _, err := fmt.Sscanf(idxStr, "%d", &idx); err != nil || idx < 0 || idx >= len(periods) {
				return nil, &FetchError{Currency: currency, Err: fmt.Errorf("observation index %q out of range", idxStr)}
			}
			if len(values) == 0 || values[0] == nil {
				// Observation slot present but unvalued (holiday); skip it.
				c.logger.Debug("Skipping unvalued observation", slog.String("currency", currency), slog.String("period", periods[idx]))
				continue
			}
			date, err := time.Parse(time.DateOnly, periods[idx])
			if err != nil {
				return nil, &FetchError{Currency: currency, Err: fmt.Errorf("malformed TIME_PERIOD %q: %w", periods[idx], err)}
			}
			observations = append(observations, domain.RateObservation{
				Date: date,
				Rate: decimal.NewFromFloat(*values[0]),
			})
		}
	}

	if observations == nil {
		return []domain.RateObservation{}, nil
	}
	// Map iteration order is random; callers expect ascending dates.
	sort.Slice(observations, func(i, j int) bool {
		return observations[i].Date.Before(observations[j].Date)
	})
	return observations, nil
}
