package es

import (
	"errors"

	"github.com/elastic/go-elasticsearch/v8"
)

const sourceName = "es"

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

// newClient builds a typed client for the articles index. Transport retries
// are off; a failed request surfaces as FetchFailed and only an explicit
// page Retry fetches again.
func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	if config.IndexName == "" {
		return nil, errors.New("elasticsearch index name is required")
	}

	cfg := elasticsearch.Config{
		Addresses:    config.Addresses,
		DisableRetry: true,
	}
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}
