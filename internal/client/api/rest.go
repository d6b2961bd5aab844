package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lucasdmesquita/consertos-cli/internal/client/models"
	"github.com/lucasdmesquita/consertos-cli/internal/logging"
)

// RESTClient talks to the backend's /consertos resource over HTTP/JSON with
// Basic authentication. A 401 on any call invalidates the credential source
// before the error is returned, so the caller can redirect to login.
type RESTClient struct {
	baseURL string
	http    *http.Client
	creds   CredentialSource
	log     logging.Logger
}

func NewRESTClient(baseURL string, timeout time.Duration, creds CredentialSource, log logging.Logger) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		log:     log.With("component", "api"),
	}
}

// backendMessage is the error body shape Spring produces on rejections.
type backendMessage struct {
	Message string `json:"message"`
}

func (c *RESTClient) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}

// do sends the request with the stored credential attached and decodes a
// successful JSON response into out (out may be nil for empty responses).
func (c *RESTClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	if cred, ok := c.creds.Credential(); ok {
		req.Header.Set("Authorization", "Basic "+cred)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(ctx, resp); err != nil {
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// checkStatus maps non-success responses to the typed errors. A 401 tears the
// stored session down as a side effect.
func (c *RESTClient) checkStatus(ctx context.Context, resp *http.Response) error {
	switch {
	case resp.StatusCode < 400:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		c.log.Warn(ctx, "credential rejected, clearing session")
		c.creds.Invalidate(ctx)
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		var bm backendMessage
		_ = json.NewDecoder(resp.Body).Decode(&bm)
		return &BackendError{Status: resp.StatusCode, Message: bm.Message}
	}
}

func pageQuery(marca, modelo string, page, size int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if marca != "" {
		q.Set("marca", marca)
	}
	if modelo != "" {
		q.Set("modelo", modelo)
	}
	return q
}

func (c *RESTClient) List(ctx context.Context, page, size int) (*models.ConsertoPage, error) {
	return c.Search(ctx, "", "", page, size)
}

func (c *RESTClient) Search(ctx context.Context, marca, modelo string, page, size int) (*models.ConsertoPage, error) {
	var out models.ConsertoPage
	if err := c.do(ctx, http.MethodGet, "/consertos", pageQuery(marca, modelo, page, size), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) Get(ctx context.Context, id int64) (*models.Conserto, error) {
	var out models.Conserto
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/consertos/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) Create(ctx context.Context, req *models.ConsertoRequest) (*models.Conserto, error) {
	var out models.Conserto
	if err := c.do(ctx, http.MethodPost, "/consertos", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) Update(ctx context.Context, id int64, req *models.ConsertoRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/consertos/%d", id), nil, req, nil)
}

func (c *RESTClient) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/consertos/%d", id), nil, nil, nil)
}

func (c *RESTClient) Resumo(ctx context.Context) ([]models.ConsertoResumo, error) {
	var out []models.ConsertoResumo
	if err := c.do(ctx, http.MethodGet, "/consertos/resumo", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Probe issues the lightweight read call used to test a candidate credential
// before it is committed to the session store. Unlike do, a 401 here does not
// invalidate anything: the candidate was never stored.
func (c *RESTClient) Probe(ctx context.Context, credential string) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/consertos", pageQuery("", "", 0, 1), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Basic "+credential)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode < 400:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		var bm backendMessage
		_ = json.NewDecoder(resp.Body).Decode(&bm)
		return &BackendError{Status: resp.StatusCode, Message: bm.Message}
	}
}
