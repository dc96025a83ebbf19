package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/sandevgo/grubbot/internal/core"
)

const (
	defaultBaseURL = "https://i.instagram.com/api/v1"

	// UserAgent is the Android build fingerprint the private API expects.
	UserAgent = "Instagram 76.0.0.15.395 Android (24/7.0; 640dpi; 1440x2560; samsung; SM-G930F; herolte; samsungexynos8890; en_US; 138226743)"

	requestTimeout = 30 * time.Second
)

// Client talks to the Instagram private DM API. It is a dumb transport:
// retry and session policy live in the session manager.
type Client struct {
	baseURL string
	ua      string
	http    *http.Client
}

func NewClient() *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: defaultBaseURL,
		ua:      UserAgent,
		http: &http.Client{
			Timeout: requestTimeout,
			Jar:     jar,
		},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a fake server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

func (c *Client) Login(ctx context.Context, identity core.Identity) error {
	form := url.Values{
		"username":  {identity.Username},
		"password":  {identity.Password},
		"device_id": {identity.DeviceID},
		"guid":      {identity.ClientUUID},
	}

	if identity.UserAgent != "" {
		c.ua = identity.UserAgent
	}

	body, err := c.do(ctx, http.MethodPost, "/accounts/login/", form)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	var resp struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("login: %w: malformed response: %v", core.ErrNetwork, err)
	}
	if resp.Status != "ok" {
		return fmt.Errorf("login: %w: status %q", core.ErrAuth, resp.Status)
	}
	return nil
}

func (c *Client) CurrentUser(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, "/accounts/current_user/", nil)
	if err != nil {
		return "", fmt.Errorf("current user: %w", err)
	}

	var resp struct {
		User struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("current user: %w: malformed response: %v", core.ErrNetwork, err)
	}
	if resp.User.Username == "" {
		return "", fmt.Errorf("current user: %w: empty identity", core.ErrAuth)
	}
	return resp.User.Username, nil
}

func (c *Client) ListThreads(ctx context.Context) ([]core.Thread, error) {
	body, err := c.do(ctx, http.MethodGet, "/direct_v2/inbox/", nil)
	if err != nil {
		return nil, fmt.Errorf("list threads: %w", err)
	}

	var resp struct {
		Inbox struct {
			Threads []struct {
				ThreadID string `json:"thread_id"`
				Users    []struct {
					PK       json.Number `json:"pk"`
					Username string      `json:"username"`
				} `json:"users"`
			} `json:"threads"`
		} `json:"inbox"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("list threads: %w: malformed response: %v", core.ErrNetwork, err)
	}

	threads := make([]core.Thread, 0, len(resp.Inbox.Threads))
	for _, t := range resp.Inbox.Threads {
		thread := core.Thread{ID: t.ThreadID}
		for _, u := range t.Users {
			thread.Users = append(thread.Users, core.ThreadUser{ID: u.PK.String(), Username: u.Username})
		}
		threads = append(threads, thread)
	}
	return threads, nil
}

func (c *Client) ListItems(ctx context.Context, threadID string) ([]core.InboxItem, error) {
	path := fmt.Sprintf("/direct_v2/threads/%s/", url.PathEscape(threadID))
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	var resp struct {
		Thread struct {
			Items []struct {
				ItemID   string      `json:"item_id"`
				UserID   json.Number `json:"user_id"`
				ItemType string      `json:"item_type"`
				Text     string      `json:"text"`
			} `json:"items"`
		} `json:"thread"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("list items: %w: malformed response: %v", core.ErrNetwork, err)
	}

	items := make([]core.InboxItem, 0, len(resp.Thread.Items))
	for _, it := range resp.Thread.Items {
		items = append(items, core.InboxItem{
			ID:       it.ItemID,
			ThreadID: threadID,
			UserID:   it.UserID.String(),
			Kind:     it.ItemType,
			Text:     it.Text,
		})
	}
	return items, nil
}

func (c *Client) SendText(ctx context.Context, threadID, text string) error {
	form := url.Values{
		"thread_ids": {fmt.Sprintf("[%s]", threadID)},
		"text":       {text},
	}

	if _, err := c.do(ctx, http.MethodPost, "/direct_v2/threads/broadcast/text/", form); err != nil {
		return fmt.Errorf("send text: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values) ([]byte, error) {
	var reqBody io.Reader
	if form != nil {
		reqBody = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrNetwork, err)
	}
	req.Header.Set("User-Agent", c.ua)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", core.ErrNetwork, err)
	}

	if err := mapStatus(resp.StatusCode, body); err != nil {
		return nil, err
	}
	return body, nil
}

// mapStatus translates HTTP outcomes into the domain error taxonomy.
func mapStatus(status int, body []byte) error {
	switch {
	case status < 400:
		return nil
	case status == http.StatusTooManyRequests:
		return core.ErrRateLimited
	case strings.Contains(string(body), "challenge_required"):
		return core.ErrChallengeRequired
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", core.ErrAuth, status)
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: status %d", core.ErrAuth, status)
	default:
		return fmt.Errorf("%w: status %d", core.ErrNetwork, status)
	}
}
