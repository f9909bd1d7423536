package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Pantaleaogc/gvero-sdk/session"
)

// Error is a non-2xx endpoint response.
type Error struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("auth endpoint returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("auth endpoint returned %d", e.Status)
}

// Options overrides the endpoint paths. Zero values select the defaults.
type Options struct {
	LoginPath  string
	LogoutPath string
	VerifyPath string
}

const (
	defaultLoginPath  = "/auth/login"
	defaultLogoutPath = "/auth/logout"
	defaultVerifyPath = "/auth/verify"
)

// Client calls the gvero authentication endpoint.
type Client struct {
	baseURL    string
	httpc      *http.Client
	loginPath  string
	logoutPath string
	verifyPath string
}

// New creates an endpoint client. The http.Client is used as given — wrap its
// transport to attach credentials. A nil client falls back to
// http.DefaultClient.
func New(baseURL string, httpc *http.Client, opts Options) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpc:      httpc,
		loginPath:  opts.LoginPath,
		logoutPath: opts.LogoutPath,
		verifyPath: opts.VerifyPath,
	}
	if c.loginPath == "" {
		c.loginPath = defaultLoginPath
	}
	if c.logoutPath == "" {
		c.logoutPath = defaultLogoutPath
	}
	if c.verifyPath == "" {
		c.verifyPath = defaultVerifyPath
	}
	return c
}

// LoginResult is the success payload of POST /auth/login.
type LoginResult struct {
	Token string           `json:"token"`
	User  session.Identity `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorBody struct {
	Message string `json:"message"`
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	result := &LoginResult{}
	err := c.do(ctx, http.MethodPost, c.loginPath, loginRequest{Email: email, Password: password}, result)
	if err != nil {
		return nil, err
	}
	if result.Token == "" {
		return nil, errors.New("login response missing token")
	}
	return result, nil
}

// Logout notifies the endpoint that the session is ending. The response body
// is ignored.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, c.logoutPath, struct{}{}, nil)
}

// Verify revalidates the current credential and returns the authoritative
// identity. The credential itself is attached by the transport layer.
func (c *Client) Verify(ctx context.Context) (*session.Identity, error) {
	identity := &session.Identity{}
	if err := c.do(ctx, http.MethodGet, c.verifyPath, nil, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	endpointErr := &Error{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
		var parsed errorBody
		if json.Unmarshal(data, &parsed) == nil {
			endpointErr.Message = parsed.Message
		}
	}
	if endpointErr.Message == "" {
		endpointErr.Message = http.StatusText(resp.StatusCode)
	}
	return endpointErr
}
