package impl

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	deliverycontext "mallconsole/internal/delivery/context"
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/domain/repository"
	"mallconsole/internal/domain/service"
	"mallconsole/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// inputDateLayout is the value format of an HTML date input.
const inputDateLayout = "2006-01-02"

//nolint:gochecknoglobals
var formValidator = validator.New(validator.WithRequiredStructEnabled())

// documentCollection holds the plumbing shared by the shop, product and offer services.
type documentCollection[T any] struct {
	name      string
	resource  string
	store     repository.DocumentStore
	publisher service.EventPublisher
	logger    *slog.Logger
	// preset runs on a fresh entity before decoding so absent fields keep their defaults.
	preset func(*T)
	setID  func(*T, string)
}

func (c *documentCollection[T]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

func (c *documentCollection[T]) list(ctx context.Context) ([]*T, error) {
	docs, err := c.store.List(ctx, c.name)
	if err != nil {
		c.log(ctx).Error("Failed to list documents", slog.String("collection", c.name), slog.Any("error", err))

		return nil, domainerrors.NewRemoteError(err)
	}

	return c.decodeAll(docs)
}

func (c *documentCollection[T]) get(ctx context.Context, id string) (*T, error) {
	doc, err := c.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	return c.decode(*doc)
}

func (c *documentCollection[T]) fetch(ctx context.Context, id string) (*repository.Document, error) {
	doc, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, domainerrors.NewNotFoundError(c.resource)
		}
		c.log(ctx).Error("Failed to get document", slog.String("collection", c.name), slog.String("id", id), slog.Any("error", err))

		return nil, domainerrors.NewRemoteError(err)
	}

	return doc, nil
}

func (c *documentCollection[T]) query(ctx context.Context, filters ...repository.Filter) ([]*T, error) {
	docs, err := c.store.Query(ctx, c.name, filters...)
	if err != nil {
		c.log(ctx).Error("Failed to query documents", slog.String("collection", c.name), slog.Any("error", err))

		return nil, domainerrors.NewRemoteError(err)
	}

	return c.decodeAll(docs)
}

func (c *documentCollection[T]) add(ctx context.Context, fields map[string]any) (string, error) {
	id, err := c.store.Add(ctx, c.name, fields)
	if err != nil {
		c.log(ctx).Error("Failed to create document", slog.String("collection", c.name), slog.Any("error", err))

		return "", domainerrors.NewRemoteError(err)
	}

	c.log(ctx).Info("Document created", slog.String("collection", c.name), slog.String("id", id))
	c.publish(ctx, id, service.CatalogActionCreated)

	return id, nil
}

// update reads the stored document, checks that the merged record still carries
// every required field, then writes only the patch.
func (c *documentCollection[T]) update(ctx context.Context, id string, patch map[string]any, required []string, message string) error {
	existing, err := c.fetch(ctx, id)
	if err != nil {
		return err
	}

	merged := make(map[string]any, len(existing.Fields)+len(patch))
	for k, v := range existing.Fields {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	if !hasRequired(merged, required) {
		return domainerrors.NewValidationError(message)
	}

	if err := c.store.Update(ctx, c.name, id, patch); err != nil {
		c.log(ctx).Error("Failed to update document", slog.String("collection", c.name), slog.String("id", id), slog.Any("error", err))

		return domainerrors.NewRemoteError(err)
	}

	c.log(ctx).Info("Document updated", slog.String("collection", c.name), slog.String("id", id))
	c.publish(ctx, id, service.CatalogActionUpdated)

	return nil
}

func (c *documentCollection[T]) delete(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, c.name, id); err != nil {
		c.log(ctx).Error("Failed to delete document", slog.String("collection", c.name), slog.String("id", id), slog.Any("error", err))

		return domainerrors.NewRemoteError(err)
	}

	c.log(ctx).Info("Document deleted", slog.String("collection", c.name), slog.String("id", id))
	c.publish(ctx, id, service.CatalogActionDeleted)

	return nil
}

// search fetches the whole collection and keeps items with a field containing query.
func (c *documentCollection[T]) search(ctx context.Context, query string, fields func(*T) []string) ([]*T, error) {
	items, err := c.list(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return items, nil
	}

	matched := make([]*T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), term) {
				matched = append(matched, item)

				break
			}
		}
	}
	c.log(ctx).Debug("Search completed", slog.String("collection", c.name), slog.String("query", query), slog.Int("matches", len(matched)))

	return matched, nil
}

// publish emits a catalog event. Failures are logged and never fail the mutation.
func (c *documentCollection[T]) publish(ctx context.Context, id string, action service.CatalogAction) {
	if c.publisher == nil {
		return
	}

	event := &service.CatalogEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Collection: c.name,
		DocumentID: id,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}
	if err := c.publisher.PublishCatalogEvent(ctx, event); err != nil {
		c.log(ctx).Warn("Failed to publish catalog event", slog.String("collection", c.name), slog.String("id", id), slog.Any("error", err))
	}
}

func (c *documentCollection[T]) decodeAll(docs []repository.Document) ([]*T, error) {
	items := make([]*T, 0, len(docs))
	for _, doc := range docs {
		item, err := c.decode(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (c *documentCollection[T]) decode(doc repository.Document) (*T, error) {
	item := new(T)
	if c.preset != nil {
		c.preset(item)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  item,
		TagName: "mapstructure",
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create document decoder")
	}
	if err := decoder.Decode(doc.Fields); err != nil {
		return nil, domainerrors.NewRemoteError(errors.Wrapf(err, "failed to decode %s %s", c.resource, doc.ID))
	}
	c.setID(item, doc.ID)

	return item, nil
}

// validateForm runs the struct tags of a typed form and reports failures with message.
func validateForm(form any, message string) error {
	if err := formValidator.Struct(form); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			return domainerrors.NewValidationError(message).WithDetails(invalid.Error())
		}

		return errors.Wrap(err, "failed to validate form")
	}

	return nil
}

func hasRequired(fields map[string]any, required []string) bool {
	for _, name := range required {
		switch v := fields[name].(type) {
		case nil:
			return false
		case string:
			if strings.TrimSpace(v) == "" {
				return false
			}
		}
	}

	return true
}

// coerceNumber parses a numeric input. Blank or unparsable input gives 0.
func coerceNumber(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	return value
}

// splitList turns a comma separated input into trimmed, non-empty items.
func splitList(raw string) []string {
	items := []string{}
	for _, part := range strings.Split(raw, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}

	return items
}

// trimList trims every item and drops the empty ones.
func trimList(values []string) []string {
	items := []string{}
	for _, v := range values {
		if item := strings.TrimSpace(v); item != "" {
			items = append(items, item)
		}
	}

	return items
}

// parseFormDate accepts an HTML date input or an RFC 3339 timestamp. Blank input gives nil.
func parseFormDate(raw, label string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range []string{inputDateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}

	return nil, domainerrors.NewValidationError(label + " is not a valid date")
}

// putString writes value when it is not blank.
func putString(fields map[string]any, key, value string) {
	if value != "" {
		fields[key] = value
	}
}

func boolOrDefault(value *bool) bool {
	if value == nil {
		return true
	}

	return *value
}
