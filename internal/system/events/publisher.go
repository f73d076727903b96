/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package events publishes domain events of the server to NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/formflow/formflow/internal/system/config"
	"github.com/formflow/formflow/internal/system/log"
)

// Event types published by the server.
const (
	EventFlowUpdated       = "flow.updated"
	EventFormPublished     = "form.published"
	EventFormDeleted       = "form.deleted"
	EventResponseRecorded  = "response.recorded"
	EventFormViewRecorded  = "response.viewed"
	publisherComponentName = "EventPublisher"
)

// Event is the envelope published for every domain event.
type Event struct {
	Type       string      `json:"type"`
	FormID     string      `json:"formId"`
	OccurredAt time.Time   `json:"occurredAt"`
	Data       interface{} `json:"data,omitempty"`
}

// PublisherInterface defines the interface for publishing domain events.
// Publishing is best effort; failures are logged and never fail the caller.
type PublisherInterface interface {
	Publish(ctx context.Context, eventType, formID string, data interface{})
	Close()
}

// natsConn is the subset of *nats.Conn used by the publisher.
type natsConn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

type natsPublisher struct {
	conn          natsConn
	subjectPrefix string
	now           func() time.Time
}

type noopPublisher struct{}

var (
	publisher PublisherInterface = noopPublisher{}
	mu        sync.RWMutex
)

// Initialize connects to NATS when events are enabled and installs the resulting publisher.
func Initialize(cfg config.EventsConfig) (PublisherInterface, error) {
	if !cfg.Enabled {
		return GetPublisher(), nil
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, publisherComponentName))

	conn, err := nats.Connect(cfg.URL,
		nats.Name("formflow"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("Disconnected from NATS", log.Error(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("Reconnected to NATS", log.String("url", c.ConnectedUrlRedacted()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	p := newNATSPublisher(conn, cfg.SubjectPrefix)
	mu.Lock()
	publisher = p
	mu.Unlock()

	logger.Info("Connected to NATS", log.String("url", conn.ConnectedUrlRedacted()))
	return p, nil
}

// GetPublisher returns the installed publisher, a no-op one when events are disabled.
func GetPublisher() PublisherInterface {
	mu.RLock()
	defer mu.RUnlock()
	return publisher
}

func newNATSPublisher(conn natsConn, subjectPrefix string) *natsPublisher {
	return &natsPublisher{
		conn:          conn,
		subjectPrefix: subjectPrefix,
		now:           time.Now,
	}
}

// Subject returns the subject an event type is published on.
func (p *natsPublisher) Subject(eventType string) string {
	if p.subjectPrefix == "" {
		return eventType
	}
	return p.subjectPrefix + "." + eventType
}

// Publish encodes and publishes the event.
func (p *natsPublisher) Publish(ctx context.Context, eventType, formID string, data interface{}) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, publisherComponentName))

	if ctx.Err() != nil {
		logger.Debug("Skipping event publish for finished request", log.String("type", eventType))
		return
	}

	payload, err := json.Marshal(Event{
		Type:       eventType,
		FormID:     formID,
		OccurredAt: p.now().UTC(),
		Data:       data,
	})
	if err != nil {
		logger.Error("Failed to encode event", log.String("type", eventType), log.Error(err))
		return
	}

	if err := p.conn.Publish(p.Subject(eventType), payload); err != nil {
		logger.Error("Failed to publish event", log.String("type", eventType),
			log.String(log.LoggerKeyFormID, formID), log.Error(err))
	}
}

// Close drains the connection, flushing buffered events.
func (p *natsPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		log.GetLogger().Error("Failed to drain NATS connection",
			log.String(log.LoggerKeyComponentName, publisherComponentName), log.Error(err))
	}
}

func (noopPublisher) Publish(ctx context.Context, eventType, formID string, data interface{}) {}

func (noopPublisher) Close() {}
