package rainforest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"KasumiAI/app/api/suggestion/internal/engine/types"
	"KasumiAI/app/common/consts/biz"
	"KasumiAI/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type Conf struct {
	BaseUrl      string        `json:",default=https://api.rainforestapi.com/request"`
	APIKey       string        `json:",optional"`
	AmazonDomain string        `json:",default=amazon.co.jp"`
	Timeout      time.Duration `json:",default=15s"`
}

// Client wraps the Rainforest product search API. One call per pipeline
// stage, no retry: an upstream failure propagates immediately.
type Client struct {
	cfg    Conf
	client *http.Client
}

func NewClient(cfg Conf) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Configured reports whether the upstream credential is present. A missing
// key is a configuration error and must abort before any pipeline work.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// rawProduct tolerates any field being absent from the upstream payload.
type rawProduct struct {
	Position     int          `json:"position"`
	Title        string       `json:"title"`
	Asin         string       `json:"asin"`
	Link         string       `json:"link"`
	Image        string       `json:"image"`
	Rating       float64      `json:"rating"`
	RatingsTotal int64        `json:"ratings_total"`
	Price        *types.Price `json:"price"`
	IsPrime      bool         `json:"is_prime"`
}

type searchResponse struct {
	SearchResults []rawProduct `json:"search_results"`
}

func (c *Client) Search(ctx context.Context, term string, maxResults int) ([]types.Product, error) {
	log := logx.WithContext(ctx)

	if !c.Configured() {
		return nil, errors.New(int(errno.ConfigError), "rainforest api key is not configured")
	}
	if maxResults <= 0 {
		maxResults = biz.SearchResultBudget
	}

	params := url.Values{}
	params.Set("api_key", c.cfg.APIKey)
	params.Set("type", "search")
	params.Set("amazon_domain", c.cfg.AmazonDomain)
	params.Set("search_term", term)
	params.Set("max_page", strconv.Itoa(pageCount(maxResults)))
	params.Set("include_fields", "search_results")
	params.Set("sort_by", "average_review")

	reqUrl := c.cfg.BaseUrl + "?" + params.Encode()
	log.Infof("rainforest search request: %s", redactKey(reqUrl, c.cfg.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return nil, errors.New(int(errno.CatalogSearchError), fmt.Sprintf("build catalog request: %v", err))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.New(int(errno.CatalogSearchError), fmt.Sprintf("catalog request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Errorf("rainforest search error: status=%d body=%s", resp.StatusCode, string(body))
		return nil, errors.New(int(errno.CatalogSearchError),
			fmt.Sprintf("catalog search error: %d - %s", resp.StatusCode, string(body)))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.New(int(errno.CatalogSearchError), fmt.Sprintf("decode catalog response: %v", err))
	}

	products := make([]types.Product, 0, len(payload.SearchResults))
	for _, raw := range payload.SearchResults {
		products = append(products, normalize(raw))
	}
	if len(products) > maxResults {
		products = products[:maxResults]
	}

	log.Infof("rainforest search done: term=%q results=%d", term, len(products))
	return products, nil
}

// pageCount derives how many upstream pages cover maxResults given the
// fixed per-page yield of the catalog API.
func pageCount(maxResults int) int {
	pages := (maxResults + biz.CatalogPageSize - 1) / biz.CatalogPageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// normalize fills the documented placeholders so no field is ever left
// undefined, whatever the upstream omitted.
func normalize(raw rawProduct) types.Product {
	p := types.Product{
		Position:     raw.Position,
		Title:        raw.Title,
		Asin:         raw.Asin,
		Link:         raw.Link,
		Image:        raw.Image,
		Rating:       raw.Rating,
		RatingsTotal: raw.RatingsTotal,
		IsPrime:      raw.IsPrime,
	}
	if raw.Title == "" {
		p.Title = "タイトル不明"
	}
	if raw.Price != nil {
		p.Price = *raw.Price
	} else {
		p.Price = types.UnknownPrice()
	}
	return p
}

func redactKey(u, key string) string {
	if key == "" {
		return u
	}
	replaced := url.Values{}
	parsed, err := url.Parse(u)
	if err != nil {
		return u
	}
	for k, vs := range parsed.Query() {
		for _, v := range vs {
			if k == "api_key" {
				v = "***"
			}
			replaced.Add(k, v)
		}
	}
	parsed.RawQuery = replaced.Encode()
	return parsed.String()
}
