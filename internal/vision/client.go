package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"filmvault/internal/services"
)

const detectionType = "TEXT_DETECTION"

// Extractor defines the OCR operation used by the scan pipeline.
type Extractor interface {
	ExtractText(ctx context.Context, imageData []byte) (*Extraction, error)
}

// Client calls the Vision images:annotate endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Extractor = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a Vision client. A missing or placeholder API key is a
// configuration error detected here, before any call is issued.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" || strings.HasPrefix(apiKey, "your_") {
		return nil, services.Wrap(services.ErrConfiguration, "vision", "new", "api key missing; set vision.api_key or VISION_API_KEY", nil)
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, services.Wrap(services.ErrConfiguration, "vision", "new", "base url required", nil)
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// ExtractText runs text detection over the supplied encoded image and
// normalizes the engine response. The input is never mutated.
func (c *Client) ExtractText(ctx context.Context, imageData []byte) (*Extraction, error) {
	if len(imageData) == 0 {
		return nil, services.Wrap(services.ErrImageDecode, "vision", "annotate", "empty image payload", nil)
	}

	payload := annotateRequest{
		Requests: []annotateImageRequest{{
			Image: annotateImage{Content: base64.StdEncoding.EncodeToString(imageData)},
			Feature: []annotateFeature{{
				Type:       detectionType,
				MaxResults: 1,
			}},
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal annotate request: %w", err)
	}

	endpoint, err := url.Parse(c.baseURL + "/images:annotate")
	if err != nil {
		return nil, fmt.Errorf("parse vision url: %w", err)
	}
	params := url.Values{}
	params.Set("key", c.apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, services.Wrap(services.ErrExternalService, "vision", "annotate", fmt.Sprintf("execute request (latency=%v)", latency), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.classifyStatus(resp)
	}

	var decoded annotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, services.Wrap(services.ErrNoText, "vision", "annotate", "malformed engine response", err)
	}
	if len(decoded.Responses) == 0 {
		return nil, services.Wrap(services.ErrNoText, "vision", "annotate", "empty engine response", nil)
	}

	result := decoded.Responses[0]
	if result.Error != nil {
		return nil, services.Wrap(services.ErrExternalService, "vision", "annotate", result.Error.Message, nil)
	}

	extraction := normalize(result)
	if strings.TrimSpace(extraction.FullText) == "" && len(extraction.Fragments) == 0 {
		return nil, services.Wrap(services.ErrNoText, "vision", "annotate", "no text found in image", nil)
	}
	return extraction, nil
}

// normalize splits the engine's annotation list into the synthetic full-text
// element and the per-fragment annotations. Element 0, when present, is
// always the whole-image transcription.
func normalize(result annotateResult) *Extraction {
	extraction := &Extraction{}
	if result.FullTextAnnotation != nil {
		extraction.FullText = strings.TrimSpace(result.FullTextAnnotation.Text)
	}
	if len(result.TextAnnotations) == 0 {
		return extraction
	}
	if extraction.FullText == "" {
		extraction.FullText = strings.TrimSpace(result.TextAnnotations[0].Description)
	}
	if len(result.TextAnnotations) > 1 {
		extraction.Fragments = append(extraction.Fragments, result.TextAnnotations[1:]...)
	}
	return extraction
}

func (c *Client) classifyStatus(resp *http.Response) error {
	var detail struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&detail)
	message := strings.TrimSpace(detail.Error.Message)
	if message == "" {
		message = fmt.Sprintf("vision annotate returned %d", resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return services.Wrap(services.ErrImageDecode, "vision", "annotate", message, nil)
	case http.StatusUnauthorized, http.StatusForbidden:
		return services.Wrap(services.ErrConfiguration, "vision", "annotate", message, nil)
	case http.StatusTooManyRequests:
		return services.Wrap(services.ErrRateLimited, "vision", "annotate", message, nil)
	default:
		return services.Wrap(services.ErrExternalService, "vision", "annotate", message, nil)
	}
}
