package postapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"zola-posts/errs"
	"zola-posts/httpclient"
	"zola-posts/models"
)

var errNullBody = errors.New("response body is null")

// Client is a thin client for the posts API.
//
//	GET <base>       list of posts without content
//	GET <base>/<id>  one post with content
//
// Requests are never retried.
type Client struct {
	base *httpclient.BaseClient
}

// New returns a client rooted at baseURL. httpClient may be nil.
func New(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		base: httpclient.NewBaseClientWithClient(httpClient, baseURL),
	}
}

// BaseURL returns the list endpoint URL.
func (c *Client) BaseURL() string {
	return c.base.BaseURL
}

// ListPosts fetches the summary list of all posts.
func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.getJSON(ctx, "", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches one post including its content.
func (c *Client) GetPost(ctx context.Context, id int) (models.Post, error) {
	var post models.Post
	if err := c.getJSON(ctx, strconv.Itoa(id), &post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (c *Client) getJSON(ctx context.Context, relPath string, out any) error {
	req, err := c.base.NewRequest(ctx, http.MethodGet, relPath, nil)
	if err != nil {
		return errs.NewFetchError(c.base.BaseURL+relPath, err)
	}
	target := req.URL.String()

	resp, err := c.base.Do(req)
	if err != nil {
		return errs.NewFetchError(target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return errs.NewStatusError(target, resp.StatusCode, string(b))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewFetchError(target, err)
	}
	// json.Unmarshal accepts null for a slice and leaves it nil
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return errs.NewDecodeError(target, errNullBody)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errs.NewDecodeError(target, err)
	}
	return nil
}
