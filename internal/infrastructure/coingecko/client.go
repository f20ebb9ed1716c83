package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// Client is a minimal CoinGecko REST client covering the two endpoints the
// screener needs: per-coin market rows and the 7-day price series.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// MarketRow is one row of /coins/markets. Percentage fields are pointers:
// CoinGecko returns null for thin markets and a null must stay "unknown"
// rather than decode to 0.
type MarketRow struct {
	ID           string   `json:"id"`
	Symbol       string   `json:"symbol"`
	CurrentPrice *float64 `json:"current_price"`
	Change24h    *float64 `json:"price_change_percentage_24h_in_currency"`
	Change7d     *float64 `json:"price_change_percentage_7d_in_currency"`
}

type marketChart struct {
	Prices [][]float64 `json:"prices"` // [timestamp_ms, price] pairs, chronological
}

// ListMarkets returns current price and 24h/7d changes for the given coin ids.
func (c *Client) ListMarkets(ctx context.Context, ids []string) ([]MarketRow, error) {
	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("ids", strings.Join(ids, ","))
	q.Set("price_change_percentage", "24h,7d")

	var rows []MarketRow
	if err := c.getJSON(ctx, "/coins/markets?"+q.Encode(), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// MarketChart returns the chronological 7-day price series for one coin.
func (c *Client) MarketChart(ctx context.Context, id string) ([]float64, error) {
	path := fmt.Sprintf("/coins/%s/market_chart?vs_currency=usd&days=7", url.PathEscape(id))

	var chart marketChart
	if err := c.getJSON(ctx, path, &chart); err != nil {
		return nil, err
	}

	series := make([]float64, 0, len(chart.Prices))
	for _, point := range chart.Prices {
		if len(point) < 2 {
			continue
		}
		series = append(series, point[1])
	}
	return series, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("coingecko API error: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
