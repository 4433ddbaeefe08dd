// Package liftingcast ingests live meet data from the liftingcast.com API and
// reduces it to the canonical schema.
package liftingcast

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const userAgent = "PowerTrack/1.2"

// Doc is one document from a meet payload. The API returns a flat list of
// heterogeneous documents; the _id prefix tells them apart (meet id itself,
// d=division, l=lifter, a=attempt).
type Doc struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Date       string `json:"date"`
	DateFormat string `json:"dateFormat"`
	Federation string `json:"federation"`
	Units      string `json:"units"`
	CreateDate string `json:"createDate"`

	// Lifter fields
	Gender     string        `json:"gender"`
	BodyWeight flexFloat     `json:"bodyWeight"`
	Divisions  []DivisionRef `json:"divisions"`

	// Division fields
	WeightClasses map[string]WeightClass `json:"weightClasses"`

	// Attempt fields
	LifterID      string     `json:"lifterId"`
	LiftName      string     `json:"liftName"`
	AttemptNumber flexString `json:"attemptNumber"`
	Weight        flexFloat  `json:"weight"`
	Result        string     `json:"result"`
}

// DivisionRef is a lifter's entry into one division.
type DivisionRef struct {
	DivisionID    string `json:"divisionId"`
	WeightClassID string `json:"declaredAwardsWeightClassId"`
	RawOrEquipped string `json:"rawOrEquipped"`
}

// WeightClass is one named class inside a division document.
type WeightClass struct {
	Name string `json:"name"`
}

// flexFloat decodes a JSON number or a numeric string. Anything else,
// including null, leaves it invalid; meet payloads are messy and a bad cell
// means "missing", never an error.
type flexFloat struct {
	Value float64
	Valid bool
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	f.Value = v
	f.Valid = true
	return nil
}

// flexString decodes a JSON string or number into its string form, so attempt
// numbers survive being sent either way.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	*f = flexString(strings.Trim(s, `"`))
	return nil
}

// Client talks to the LiftingCast API. One GET per operation, caller-supplied
// timeout via the injected http.Client, no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a LiftingCast API client against the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ParseMeetID resolves a meet reference into a bare meet id. It accepts
// either the id itself or any liftingcast.com URL containing /meets/<id>.
func ParseMeetID(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", fmt.Errorf("meet identifier is empty")
	}

	if !strings.Contains(value, "liftingcast.com") {
		return value, nil
	}

	parsed, err := url.Parse(value)
	if err != nil {
		return "", fmt.Errorf("could not determine meet ID from URL: %w", err)
	}
	parts := strings.FieldsFunc(parsed.Path, func(r rune) bool { return r == '/' })
	for i, part := range parts {
		if part == "meets" && i+1 < len(parts) {
			return parts[i+1], nil
		}
	}
	return "", fmt.Errorf("could not determine meet ID from URL %q", raw)
}

// FetchMeetDocs pulls the full document list for one meet. All failures come
// back as *IngestError: network problems, 404 (carrying the meet id), other
// non-2xx statuses, and payloads where docs is missing or not a list.
func (c *Client) FetchMeetDocs(ctx context.Context, meetID string) ([]Doc, error) {
	return c.fetchDocs(ctx, c.baseURL+"/api/meets/"+url.PathEscape(meetID), meetID)
}

// FetchFeedDocs pulls the public meet list from the home feed.
func (c *Client) FetchFeedDocs(ctx context.Context) ([]Doc, error) {
	return c.fetchDocs(ctx, c.baseURL+"/api/meets", "")
}

func (c *Client) fetchDocs(ctx context.Context, endpoint, meetID string) ([]Doc, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, newNetworkError(err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound && meetID != "" {
		return nil, newNotFoundError(meetID)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(meetID, resp.StatusCode)
	}

	var payload struct {
		Docs json.RawMessage `json:"docs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, newPayloadError(meetID, err)
	}

	var docs []Doc
	if err := json.Unmarshal(payload.Docs, &docs); err != nil {
		return nil, newPayloadError(meetID, err)
	}
	if docs == nil {
		return nil, newPayloadError(meetID, fmt.Errorf("docs is missing or not a list"))
	}
	return docs, nil
}
