package ratelimit

import (
	"strings"
)

// MatchEndpoint picks the endpoint override for a request path and method.
// Exact path matches win; patterns ending in "/" match by prefix, so "/kits/"
// covers "/kits/{id}" and everything beneath it. Returns nil when no override
// applies. The health check is always unlimited.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{} // zero limit marks it unlimited
	}

	var prefixMatch *EndpointConfig
	for i := range configs {
		config := &configs[i]
		if config.Method != method {
			continue
		}
		if config.Path == path {
			return config
		}
		if prefixMatch == nil && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			prefixMatch = config
		}
	}
	return prefixMatch
}
