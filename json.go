package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/go-suitecrm/config/logger"
)

// fileConfig is the JSON shadow of the record. Keys are snake_case; any
// other spelling counts as an unknown key.
type fileConfig struct {
	URL           string              `json:"url"`
	ClientID      string              `json:"client_id"`
	ClientSecret  string              `json:"client_secret"`
	CustomModules []map[string]string `json:"custom_modules"`
}

// JSONParser reads the connection configuration from a JSON file. The file
// must hold a single top-level object with the required string keys "url",
// "client_id", and "client_secret", plus the optional key "custom_modules"
// holding an array of flat string-keyed objects.
//
// The file is read and syntax-checked eagerly at construction time;
// ParseConfig only maps the retained document onto the record. The parser
// performs no network or environment access.
type JSONParser struct {
	raw    []byte
	parsed *Config
	log    *logger.Logger
}

// NewJSONParser reads and decodes the file at path.
//
// An open or read failure propagates the wrapped filesystem error,
// matchable with errors.Is against fs.ErrNotExist and friends. Content
// that is not a JSON object, or that decodes to an empty document, yields
// an error wrapping [ErrUnreadableSource]. A nil log disables logging.
func NewJSONParser(path string, log *logger.Logger) (*JSONParser, error) {
	if log == nil {
		log = logger.Nop()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("config file read failed")
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("config file decode failed")
		return nil, fmt.Errorf("%w: %w", ErrUnreadableSource, err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("%w: empty document in %s", ErrUnreadableSource, path)
	}

	log.Debug().Str("path", path).Int("keys", len(doc)).Msg("config file loaded")
	return &JSONParser{raw: raw, log: log}, nil
}

// ParseConfig maps the decoded document onto the record. The first
// successful call caches the record; later calls return the same record
// without touching the document again. Unknown keys and missing required
// keys yield an error wrapping [ErrSchemaMismatch]; the cache stays empty
// on any failure.
func (p *JSONParser) ParseConfig() (*Config, error) {
	if p.parsed != nil {
		p.log.Debug().Msg("json config already parsed, returning cached record")
		return p.parsed, nil
	}

	dec := json.NewDecoder(bytes.NewReader(p.raw))
	dec.DisallowUnknownFields()

	var fc fileConfig
	if err := dec.Decode(&fc); err != nil {
		p.log.Debug().Err(err).Msg("json config decode failed")
		return nil, fmt.Errorf("%w: %w", ErrSchemaMismatch, err)
	}

	cfg, err := New(fc.URL, fc.ClientID, fc.ClientSecret, fc.CustomModules...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaMismatch, err)
	}

	p.parsed = cfg
	p.log.Debug().Str("url", cfg.URL).Int("custom_modules", len(cfg.CustomModules)).Msg("json config parsed")
	return p.parsed, nil
}

// Parsed returns the cached record, if any.
func (p *JSONParser) Parsed() (*Config, bool) {
	return p.parsed, p.parsed != nil
}
