package httpfetch

import (
	"fmt"
	"net/http"
	"net/url"
	"sync"
)

// ProxyRotator hands out outbound proxies in round-robin order.
type ProxyRotator struct {
	proxies []*url.URL
	mu      sync.Mutex
	index   int
}

// NewProxyRotator parses the given proxy URLs. Only http, https and socks5 schemes are accepted.
func NewProxyRotator(raw []string) (*ProxyRotator, error) {
	r := &ProxyRotator{}
	for _, p := range raw {
		u, err := url.Parse(p)
		if err != nil {
			return nil, fmt.Errorf("parse proxy %q: %w", p, err)
		}
		switch u.Scheme {
		case "http", "https", "socks5":
		default:
			return nil, fmt.Errorf("unsupported proxy scheme %q in %q", u.Scheme, p)
		}
		if u.Host == "" {
			return nil, fmt.Errorf("proxy %q has no host", p)
		}
		r.proxies = append(r.proxies, u)
	}
	return r, nil
}

// Len returns the number of configured proxies.
func (r *ProxyRotator) Len() int {
	return len(r.proxies)
}

// Next returns the next proxy, or nil when none are configured.
func (r *ProxyRotator) Next() *url.URL {
	if len(r.proxies) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.proxies[r.index]
	r.index = (r.index + 1) % len(r.proxies)
	return p
}

// Proxy satisfies http.Transport.Proxy.
func (r *ProxyRotator) Proxy(_ *http.Request) (*url.URL, error) {
	return r.Next(), nil
}
