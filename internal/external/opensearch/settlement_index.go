// Package opensearch indexes settled payments so support can search them by
// order, provider or transaction id.
package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"StorefrontPayments/internal/messaging"
	"StorefrontPayments/pkg/health"

	"github.com/opensearch-project/opensearch-go"
)

type SettlementIndex struct {
	client *opensearch.Client
	index  string
}

var _ messaging.Publisher = (*SettlementIndex)(nil)

func NewSettlementIndex(ctx context.Context, urls []string, index string) (*SettlementIndex, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	client, err := opensearch.NewClient(opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{MaxIdleConnsPerHost: 10},
	})
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	s := &SettlementIndex{client: client, index: index}
	if err := s.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

var indexMapping = map[string]any{
	"mappings": map[string]any{
		"properties": map[string]any{
			"event_id":     map[string]any{"type": "keyword"},
			"order_id":     map[string]any{"type": "keyword"},
			"type":         map[string]any{"type": "keyword"},
			"published_at": map[string]any{"type": "date"},
			"payload": map[string]any{
				"properties": map[string]any{
					"order_number":   map[string]any{"type": "keyword"},
					"payment_id":     map[string]any{"type": "keyword"},
					"provider":       map[string]any{"type": "keyword"},
					"status":         map[string]any{"type": "keyword"},
					"amount":         map[string]any{"type": "scaled_float", "scaling_factor": 100},
					"currency":       map[string]any{"type": "keyword"},
					"transaction_id": map[string]any{"type": "keyword"},
					"settled_at":     map[string]any{"type": "date"},
				},
			},
		},
	},
}

func (s *SettlementIndex) ensureIndex(ctx context.Context) error {
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, err := json.Marshal(indexMapping)
	if err != nil {
		return err
	}
	cr, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(body)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

type settlementDoc struct {
	EventID     string          `json:"event_id"`
	OrderID     string          `json:"order_id"`
	Type        string          `json:"type"`
	Payload     json.RawMessage `json:"payload"`
	PublishedAt time.Time       `json:"published_at"`
}

// Publish indexes the envelope under its event id, so a retried publish overwrites instead of duplicating.
func (s *SettlementIndex) Publish(ctx context.Context, env messaging.Envelope) error {
	doc, err := json.Marshal(settlementDoc{
		EventID:     env.EventID,
		OrderID:     env.Key,
		Type:        env.Type,
		Payload:     env.Payload,
		PublishedAt: env.Timestamp.UTC(),
	})
	if err != nil {
		return err
	}

	res, err := s.client.Index(
		s.index,
		bytes.NewReader(doc),
		s.client.Index.WithDocumentID(env.EventID),
		s.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}

func (s *SettlementIndex) Checker() health.Checker {
	return health.NewCheck("opensearch", func(ctx context.Context) health.Result {
		res, err := s.client.Ping(s.client.Ping.WithContext(ctx))
		if err != nil {
			return health.Result{Status: health.StatusDown, Message: err.Error()}
		}
		defer res.Body.Close()
		if res.IsError() {
			return health.Result{Status: health.StatusDown, Message: res.Status()}
		}
		return health.Result{Status: health.StatusUp}
	})
}

func (s *SettlementIndex) Close() error {
	return nil
}
