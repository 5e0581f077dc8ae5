// Package config holds all configuration for wordcrawl.
//
// Configuration comes from two places:
//   - CLI flags, collected into the flat Config struct
//   - An optional .wordcrawl YAML file with per-host overrides
//     (headers, user agent, depth, URL patterns)
//
// Design decision: Configuration is populated once at startup and passed
// through the application via dependency injection rather than global
// state. Validation happens in one place (Config.Validate) so the engine
// can fail fast on an invalid configuration before the crawl loop starts.
package config
