package jenkins

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"linenotify/internal/domain/model"
	"linenotify/internal/domain/ports"
)

const maxLogBytes = 8 << 20

// Build is the subset of a Jenkins build's JSON API this package reads.
type Build struct {
	Number        int       `json:"number"`
	Result        string    `json:"result"`
	URL           string    `json:"url"`
	PreviousBuild *BuildRef `json:"previousBuild"`
}

// BuildRef is a build referenced from another build.
type BuildRef struct {
	Number int    `json:"number"`
	Result string `json:"result"`
}

// Client implements read access to the Jenkins JSON API.
type Client struct {
	baseURL    string
	user       string
	apiToken   string
	httpClient *http.Client
	logger     ports.Logger
}

// New creates a new Jenkins client.
func New(baseURL, user, apiToken string, timeout time.Duration, logger ports.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		user:       user,
		apiToken:   apiToken,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// JobURL returns the absolute URL of a job. Folder jobs are written as
// "folder/job".
func (c *Client) JobURL(job string) string {
	return c.baseURL + "/" + jobPath(job) + "/"
}

// LastCompletedBuild returns the job's most recent finished build, or nil when
// the job has never completed one.
func (c *Client) LastCompletedBuild(ctx context.Context, job string) (*Build, error) {
	resp, err := c.get(ctx, c.JobURL(job)+"lastCompletedBuild/api/json?tree=number,result,url,previousBuild[number,result]")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	var b Build
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &b, nil
}

// ConsoleLines returns the plain-text console output of a build, with
// Jenkins console annotations removed.
func (c *Client) ConsoleLines(ctx context.Context, buildURL string) ([]string, error) {
	resp, err := c.get(ctx, strings.TrimRight(buildURL, "/")+"/logText/progressiveHtml")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogBytes))
	if err != nil {
		return nil, fmt.Errorf("read console: %w", err)
	}

	text := strings.TrimRight(htmlToText(string(data)), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"), nil
}

func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.user != "" {
		req.SetBasicAuth(c.user, c.apiToken)
	}
	if c.logger != nil {
		c.logger.Debug(ctx, "jenkins request", "url", endpoint)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	return resp, nil
}

// BuildLog is the console of a single build, usable as a ports.LogSource.
type BuildLog struct {
	client   *Client
	buildURL string
}

var _ ports.LogSource = BuildLog{}

// Log returns the console of the build at buildURL.
func (c *Client) Log(buildURL string) BuildLog {
	return BuildLog{client: c, buildURL: buildURL}
}

// LogTail returns the last maxLines console lines.
func (l BuildLog) LogTail(ctx context.Context, maxLines int) ([]string, error) {
	lines, err := l.client.ConsoleLines(ctx, l.buildURL)
	if err != nil {
		return nil, err
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines, nil
}

func jobPath(job string) string {
	parts := strings.Split(strings.Trim(job, "/"), "/")
	for i, p := range parts {
		parts[i] = "job/" + url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

// ParseResult converts the Jenkins result to the domain value.
func (b *Build) ParseResult() model.Result {
	return model.ParseResult(b.Result)
}

// PreviousResult is the result of the build before b. It is absent when there
// is no previous build or it has not finished.
func (b *Build) PreviousResult() model.Result {
	if b.PreviousBuild == nil {
		return ""
	}
	return model.ParseResult(b.PreviousBuild.Result)
}

func htmlToText(input string) string {
	if input == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return builder.String()
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "br" {
			builder.WriteRune('\n')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}
}
