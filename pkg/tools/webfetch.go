package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	readability "github.com/go-shiori/go-readability"

	"github.com/loomchat/companion/pkg/config"
	"github.com/loomchat/companion/pkg/models"
)

// WebFetchToolName is the registry name of the URL fetch tool.
const WebFetchToolName = "web_fetch"

const fetchUserAgent = "companion-agent/1.0"

// blockedSuffixes are hostname suffixes that always resolve inside the
// deployment perimeter.
var blockedSuffixes = []string{
	".local",
	".localhost",
	".internal",
	".intranet",
	".lan",
	".corp",
	".home",
}

// reservedNets covers address ranges the stdlib IP predicates miss.
var reservedNets = func() []*net.IPNet {
	cidrs := []string{
		"0.0.0.0/8",
		"100.64.0.0/10",
		"192.0.0.0/24",
		"198.18.0.0/15",
		"240.0.0.0/4",
		"::/128",
		"64:ff9b::/96",
		"2001:db8::/32",
	}
	nets := make([]*net.IPNet, 0, len(cidrs))
	for _, c := range cidrs {
		_, n, err := net.ParseCIDR(c)
		if err != nil {
			panic(err)
		}
		nets = append(nets, n)
	}
	return nets
}()

var webFetchSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"url": {
			"type": "string",
			"description": "The HTTP or HTTPS URL to fetch"
		}
	},
	"required": ["url"],
	"additionalProperties": false
}`)

type webFetchInput struct {
	URL string `json:"url"`
}

// Fetcher fetches public web pages with SSRF protection and readability
// extraction.
type Fetcher struct {
	client       *http.Client
	maxBodyBytes int64
}

// NewFetcher builds the guarded HTTP client. Every redirect hop is
// re-validated and the dialer rejects connections to internal addresses even
// when DNS answers change between validation and connect.
func NewFetcher(cfg config.AgentConfig) *Fetcher {
	dialer := &net.Dialer{
		Timeout: 10 * time.Second,
		Control: func(network, address string, _ syscall.RawConn) error {
			host, _, err := net.SplitHostPort(address)
			if err != nil {
				return fmt.Errorf("invalid dial address %q: %w", address, err)
			}
			ip := net.ParseIP(host)
			if ip == nil || isDisallowedIP(ip) {
				return fmt.Errorf("connection to %s refused", host)
			}
			return nil
		},
	}
	maxRedirects := cfg.FetchMaxRedirects
	return &Fetcher{
		maxBodyBytes: cfg.FetchMaxBodyBytes,
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext:           dialer.DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 15 * time.Second,
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) > maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return validateFetchURL(req.Context(), req.URL)
			},
		},
	}
}

// NewWebFetchTool exposes the fetcher through the tool contract.
func NewWebFetchTool(cfg config.AgentConfig) *Tool {
	f := NewFetcher(cfg)
	return &Tool{
		Name:           WebFetchToolName,
		Description:    "Fetch a public web page by URL and return its readable text content. Use for links shared in the conversation or found via search.",
		InputSchema:    webFetchSchema,
		ExecutionPhase: PhaseNormal,
		Execute: func(ctx context.Context, input json.RawMessage) (*Result, error) {
			var in webFetchInput
			if err := json.Unmarshal(input, &in); err != nil {
				return nil, fmt.Errorf("invalid web_fetch input: %w", err)
			}
			return f.Fetch(ctx, in.URL)
		},
		Trace: Trace{
			StepType: "tool_call",
			FormatContent: func(input map[string]any, result *Result) string {
				u, _ := input["url"].(string)
				title := ""
				if len(result.Sources) > 0 {
					title = result.Sources[0].Title
				}
				if title != "" {
					return fmt.Sprintf("Fetched %s (%s)", u, title)
				}
				return fmt.Sprintf("Fetched %s", u)
			},
		},
	}
}

// Fetch validates, retrieves, and extracts one URL.
func (f *Fetcher) Fetch(ctx context.Context, raw string) (*Result, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if err := validateFetchURL(ctx, u); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", fetchUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	finalURL := resp.Request.URL

	if strings.Contains(contentType, "text/html") || strings.Contains(contentType, "application/xhtml") {
		article, err := readability.FromReader(strings.NewReader(string(body)), finalURL)
		if err != nil {
			// Fall back to the raw body when extraction fails.
			return &Result{
				Output:  string(body),
				Sources: []models.Source{{URL: finalURL.String()}},
			}, nil
		}
		return &Result{
			Output:  article.TextContent,
			Sources: []models.Source{{URL: finalURL.String(), Title: article.Title}},
		}, nil
	}

	return &Result{
		Output:  string(body),
		Sources: []models.Source{{URL: finalURL.String()}},
	}, nil
}

// validateFetchURL enforces the SSRF policy: HTTP(S) only, no internal
// hostnames, and no resolved address inside loopback, private, link-local,
// multicast, or reserved ranges. DNS failures fail closed.
func validateFetchURL(ctx context.Context, u *url.URL) error {
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return fmt.Errorf("URL has no host")
	}
	if host == "localhost" {
		return fmt.Errorf("hostname %q is not allowed", host)
	}
	for _, suffix := range blockedSuffixes {
		if strings.HasSuffix(host, suffix) {
			return fmt.Errorf("hostname %q is not allowed", host)
		}
	}

	if ip := net.ParseIP(strings.Trim(host, "[]")); ip != nil {
		if isDisallowedIP(ip) {
			return fmt.Errorf("address %s is not allowed", ip)
		}
		return nil
	}

	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", host, err)
	}
	if len(addrs) == 0 {
		return fmt.Errorf("hostname %q did not resolve", host)
	}
	for _, addr := range addrs {
		if isDisallowedIP(addr.IP) {
			return fmt.Errorf("hostname %q resolves to disallowed address %s", host, addr.IP)
		}
	}
	return nil
}

// isDisallowedIP reports whether an address must never be fetched. To4
// normalizes IPv4-mapped IPv6 addresses first so ::ffff:10.0.0.1 is caught.
func isDisallowedIP(ip net.IP) bool {
	if v4 := ip.To4(); v4 != nil {
		ip = v4
	}
	if ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() || ip.IsMulticast() ||
		ip.IsInterfaceLocalMulticast() {
		return true
	}
	for _, n := range reservedNets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}
