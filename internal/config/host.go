package config

// HostConfig holds host-specific crawl configuration.
// This allows customizing behavior for individual sites, e.g. sending an
// auth header to a staging host or skipping its admin paths.
type HostConfig struct {
	// UserAgent overrides the global User-Agent for this host.
	UserAgent string `yaml:"userAgent,omitempty"`

	// Headers are custom HTTP headers to include in requests to this host.
	Headers map[string]string `yaml:"headers,omitempty"`

	// Depth overrides the global maximum depth for crawls seeded at
	// this host. If zero, the global MaxDepth is used.
	Depth int `yaml:"depth,omitempty"`

	// IgnorePatterns are URL path patterns to skip during crawling.
	// Patterns are matched against the URL path using glob syntax.
	IgnorePatterns []string `yaml:"ignorePatterns,omitempty"`

	// FollowPatterns are URL path patterns to follow during crawling.
	// If specified, only paths matching these patterns are crawled.
	FollowPatterns []string `yaml:"followPatterns,omitempty"`
}

// File represents the structure of the .wordcrawl configuration file.
type File struct {
	// Hosts maps hostnames to their specific configurations.
	// Keys are bare hostnames without the scheme (e.g. "example.com").
	Hosts map[string]HostConfig `yaml:"hosts,omitempty"`

	// Defaults contains default host configuration applied to all hosts
	// unless overridden in the host-specific configuration.
	Defaults HostConfig `yaml:"defaults,omitempty"`
}

// GetHostConfig returns the configuration for a specific host,
// merging the host-specific configuration with the defaults.
func (cf *File) GetHostConfig(host string) HostConfig {
	result := cf.Defaults

	if hc, ok := cf.Hosts[host]; ok {
		if hc.UserAgent != "" {
			result.UserAgent = hc.UserAgent
		}
		if hc.Depth != 0 {
			result.Depth = hc.Depth
		}
		if len(hc.Headers) > 0 {
			if result.Headers == nil {
				result.Headers = make(map[string]string)
			}
			for k, v := range hc.Headers {
				result.Headers[k] = v
			}
		}
		if len(hc.IgnorePatterns) > 0 {
			result.IgnorePatterns = hc.IgnorePatterns
		}
		if len(hc.FollowPatterns) > 0 {
			result.FollowPatterns = hc.FollowPatterns
		}
	}

	return result
}
