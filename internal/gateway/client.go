// Package gateway is the HTTP client for the Elite Prep backend. It
// converts completed drafts and questionnaire answers into the service's
// wire shapes and maps transport and validation failures back into the
// error categories the screens act on.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/jmaydwell1/eliteprep/internal/draft"
	"github.com/jmaydwell1/eliteprep/internal/types"
)

// DefaultTimeout bounds each one-shot request.
const DefaultTimeout = 30 * time.Second

// Client talks to the backend REST API. The base URL is fixed at
// construction; it is a deployment concern, not user-configurable.
type Client struct {
	baseURL string
	http    *http.Client

	mu       sync.Mutex
	inflight map[string]bool
}

// NewClient creates a client for the given base URL. A zero timeout gets
// the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: timeout},
		inflight: make(map[string]bool),
	}
}

// begin latches an operation so a double-tap cannot put two identical
// mutating calls in flight. Returns ErrInFlight if already latched.
func (c *Client) begin(op string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight[op] {
		return ErrInFlight
	}
	c.inflight[op] = true
	return nil
}

func (c *Client) end(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, op)
}

// Register creates an account. On success the returned email becomes the
// session's identity field.
func (c *Client) Register(ctx context.Context, email, password string) (*types.AuthResponse, error) {
	if err := c.begin("register"); err != nil {
		return nil, err
	}
	defer c.end("register")

	var resp types.AuthResponse
	if err := c.postJSON(ctx, "/register", types.Credentials{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.Email == "" {
		resp.Email = email
	}
	return &resp, nil
}

// Login authenticates an existing account.
func (c *Client) Login(ctx context.Context, email, password string) (*types.AuthResponse, error) {
	if err := c.begin("login"); err != nil {
		return nil, err
	}
	defer c.end("login")

	var resp types.AuthResponse
	if err := c.postJSON(ctx, "/login", types.Credentials{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.Email == "" {
		resp.Email = email
	}
	return &resp, nil
}

// SubmitProfile posts the completed onboarding draft. The full required
// field set must be satisfied; handicap is serialized as an integer.
func (c *Client) SubmitProfile(ctx context.Context, d draft.Draft) (*types.Ack, error) {
	if missing := d.Missing(draft.RequiredProfileFields); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrPrerequisite, missing)
	}
	if err := c.begin("onboarding"); err != nil {
		return nil, err
	}
	defer c.end("onboarding")

	var ack types.Ack
	if err := c.postJSON(ctx, "/onboarding", d.Profile(), &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// SliderAnswers carries the raw questionnaire slider readings. Values are
// rounded to the nearest integer before sending.
type SliderAnswers struct {
	Focus      float64
	Confidence float64
	Anxiety    float64
	Enjoyment  float64
	Burnout    float64
	Effort     float64
	Motivation float64
}

// SubmitQuestionnaire posts a baseline check-in. Fails fast with
// ErrPrerequisite when no identity email is established; no network I/O
// is attempted in that case.
func (c *Client) SubmitQuestionnaire(ctx context.Context, email string, answers SliderAnswers) (*types.Ack, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email", ErrPrerequisite)
	}
	if err := c.begin("performance-trends"); err != nil {
		return nil, err
	}
	defer c.end("performance-trends")

	body := types.QuestionnaireSubmission{
		Email:      email,
		Focus:      roundAnswer(answers.Focus),
		Confidence: roundAnswer(answers.Confidence),
		Anxiety:    roundAnswer(answers.Anxiety),
		Enjoyment:  roundAnswer(answers.Enjoyment),
		Burnout:    roundAnswer(answers.Burnout),
		Effort:     roundAnswer(answers.Effort),
		Motivation: roundAnswer(answers.Motivation),
	}
	var ack types.Ack
	if err := c.postJSON(ctx, "/performance-trends", body, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

func roundAnswer(v float64) int {
	return int(math.Round(v))
}

// PerformanceAverages fetches the per-trait averages for the Home screen.
// A 404 is discriminated by its detail string into ErrUserNotFound or
// ErrNoData; any other failure surfaces as a transport or server error.
func (c *Client) PerformanceAverages(ctx context.Context, email string) (*types.PerformanceAverages, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email", ErrPrerequisite)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/performance-averages/"+url.PathEscape(email), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		detail := decodeDetailString(resp)
		switch detail {
		case types.DetailUserNotFound:
			return nil, ErrUserNotFound
		case types.DetailNoData:
			return nil, ErrNoData
		}
		return nil, &ServerError{Status: resp.StatusCode, Detail: detail}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}

	var averages types.PerformanceAverages
	if err := json.NewDecoder(resp.Body).Decode(&averages); err != nil {
		return nil, fmt.Errorf("decode averages: %w", err)
	}
	return &averages, nil
}

// Generate sends a free-text prompt to the AI coach endpoint.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	var resp types.GenerateResponse
	if err := c.postJSON(ctx, "/generate", types.GenerateRequest{Prompt: prompt}, &resp); err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// postJSON posts a JSON body and decodes a 2xx response into out.
// Non-2xx responses are mapped into the gateway error taxonomy.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// errorFromResponse maps a non-2xx response into the error taxonomy:
// 422 detail arrays become a joined ValidationError, 500 becomes a generic
// ServerError, and everything else carries the server's detail string.
func (c *Client) errorFromResponse(resp *http.Response) error {
	if resp.StatusCode == http.StatusUnprocessableEntity {
		var body struct {
			Detail []types.FieldDetail `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && len(body.Detail) > 0 {
			msgs := make([]string, 0, len(body.Detail))
			for _, d := range body.Detail {
				msgs = append(msgs, d.Msg)
			}
			return &ValidationError{Messages: msgs}
		}
		return &ValidationError{}
	}

	if resp.StatusCode == http.StatusInternalServerError {
		return &ServerError{Status: resp.StatusCode}
	}

	return &ServerError{Status: resp.StatusCode, Detail: decodeDetailString(resp)}
}

// decodeDetailString extracts the {"detail": "..."} string from an error
// body, returning "" when the body has some other shape.
func decodeDetailString(resp *http.Response) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ""
	}
	return body.Detail
}
