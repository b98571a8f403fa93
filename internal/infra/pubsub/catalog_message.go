package pubsub

import (
	"encoding/json"
	"sort"

	"mallconsole/config"
	"mallconsole/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultCatalogTopic = "catalog-events"

// Attribute keys set on every catalog message.
const (
	attrEventType  = "event_type"
	attrCollection = "collection"
	attrDocumentID = "document_id"
	attrRequestID  = "request_id"
)

// catalogMessage is the encoded form of a CatalogEvent shared by every publisher.
type catalogMessage struct {
	eventType   string
	data        []byte
	attributes  map[string]string
	orderingKey string
}

// newCatalogMessage encodes event. Changes to one document share an ordering
// key so a subscriber sees them in the order they were written.
func newCatalogMessage(event *service.CatalogEvent) (*catalogMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode catalog event")
	}

	eventType := "catalog." + event.Collection + "." + string(event.Action)
	attributes := map[string]string{
		attrEventType:  eventType,
		attrCollection: event.Collection,
		attrDocumentID: event.DocumentID,
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return &catalogMessage{
		eventType:   eventType,
		data:        data,
		attributes:  attributes,
		orderingKey: event.Collection + "/" + event.DocumentID,
	}, nil
}

// topicRouter sends each collection to its own topic when one is configured.
type topicRouter struct {
	fallback     string
	byCollection map[string]string
}

func newTopicRouter(cfg *config.PubSubConfig) topicRouter {
	r := topicRouter{fallback: cfg.TopicID, byCollection: map[string]string{}}
	if r.fallback == "" {
		r.fallback = defaultCatalogTopic
	}
	for collection, topic := range cfg.Topics {
		if topic != "" {
			r.byCollection[collection] = topic
		}
	}

	return r
}

func (r topicRouter) topic(collection string) string {
	if topic, ok := r.byCollection[collection]; ok {
		return topic
	}

	return r.fallback
}

// topics lists every distinct topic the router can return, sorted.
func (r topicRouter) topics() []string {
	seen := map[string]bool{r.fallback: true}
	out := []string{r.fallback}
	for _, topic := range r.byCollection {
		if !seen[topic] {
			seen[topic] = true
			out = append(out, topic)
		}
	}
	sort.Strings(out)

	return out
}
