package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/samber/mo"

	"profilecoach/models"
)

const defaultBaseURL = "https://api.apify.com"

// ApifyClient implements clients.ProfileScraperClient by running a scraping
// actor synchronously and reading the first item of its dataset.
type ApifyClient struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
	actorID    string
	liAtCookie string
}

type cookieParam struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type actorRunInput struct {
	URL    string        `json:"url"`
	Cookie []cookieParam `json:"cookie"`
}

// NewApifyClient creates a new Apify scraper client. liAtCookie is optional;
// when present it is forwarded to the actor for authenticated scraping.
func NewApifyClient(apiToken, actorID, liAtCookie string) *ApifyClient {
	return &ApifyClient{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    defaultBaseURL,
		apiToken:   apiToken,
		actorID:    actorID,
		liAtCookie: liAtCookie,
	}
}

// FetchProfile runs the scraping actor for the given profile URL. An empty
// dataset is an ordinary not-found and returns None without an error.
func (c *ApifyClient) FetchProfile(
	ctx context.Context,
	profileURL string,
) (mo.Option[*models.ProfileRecord], error) {
	if profileURL == "" {
		return mo.None[*models.ProfileRecord](), nil
	}

	runInput := actorRunInput{
		URL:    profileURL,
		Cookie: []cookieParam{},
	}
	if c.liAtCookie != "" {
		runInput.Cookie = []cookieParam{{Name: "li_at", Value: c.liAtCookie}}
	}

	jsonBody, err := json.Marshal(runInput)
	if err != nil {
		return mo.None[*models.ProfileRecord](), fmt.Errorf("failed to marshal run input: %w", err)
	}

	endpoint := fmt.Sprintf(
		"%s/v2/acts/%s/run-sync-get-dataset-items",
		c.baseURL,
		url.PathEscape(c.actorID),
	)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return mo.None[*models.ProfileRecord](), fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	log.Printf("🔍 Running scraper actor %s for profile URL: %s", c.actorID, profileURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return mo.None[*models.ProfileRecord](), fmt.Errorf("failed to run scraper actor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return mo.None[*models.ProfileRecord](), fmt.Errorf(
			"scraper actor run failed: status %d, body: %s",
			resp.StatusCode,
			string(body),
		)
	}

	var items []models.ProfileRecord
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return mo.None[*models.ProfileRecord](), fmt.Errorf("failed to decode dataset items: %w", err)
	}

	if len(items) == 0 {
		log.Printf("⚠️ Scraper actor returned no dataset items for: %s", profileURL)
		return mo.None[*models.ProfileRecord](), nil
	}

	record := items[0]
	log.Printf("✅ Scraped profile record (name: %q)", record.Name)
	return mo.Some(&record), nil
}
