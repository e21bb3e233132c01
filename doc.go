// Package config loads SuiteCRM client connection configuration from one of
// two interchangeable sources, process environment variables or a JSON file,
// into a single validated, immutable [Config] record.
//
// A caller picks one source adapter ([EnvParser] or [JSONParser]), calls its
// ParseConfig method once, and hands the resulting record to the API client.
// Both adapters implement the [Parser] contract and memoize their first
// successful result; repeated calls are cheap and stable. Adapters carry no
// other state and are not safe for concurrent use.
package config
