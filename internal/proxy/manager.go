package proxy

import (
	"fmt"
	"net/http"
	"net/url"
	"sync"
)

// Manager rotates outbound requests over a list of proxies.
type Manager struct {
	proxies    []*url.URL
	mu         sync.Mutex
	proxyIndex int
}

// NewManager parses the given proxy URLs. An empty list means direct
// connections (or whatever HTTP_PROXY says).
func NewManager(rawURLs []string) (*Manager, error) {
	m := &Manager{}
	for _, raw := range rawURLs {
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			return nil, fmt.Errorf("invalid proxy url %q", raw)
		}
		m.proxies = append(m.proxies, u)
	}
	return m, nil
}

// Len returns the number of configured proxies.
func (m *Manager) Len() int {
	return len(m.proxies)
}

// GetProxy returns a proxy URL from the list, rotating sequentially.
func (m *Manager) GetProxy() *url.URL {
	if len(m.proxies) == 0 {
		return nil // No proxy
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	proxy := m.proxies[m.proxyIndex]
	m.proxyIndex = (m.proxyIndex + 1) % len(m.proxies)
	return proxy
}

// ProxyFunc plugs the rotation into an http.Transport.
func (m *Manager) ProxyFunc() func(*http.Request) (*url.URL, error) {
	if len(m.proxies) == 0 {
		return http.ProxyFromEnvironment
	}
	return func(*http.Request) (*url.URL, error) {
		return m.GetProxy(), nil
	}
}
