package impl

import (
	"io"
	"log/slog"
	"testing"

	"mallconsole/internal/domain/repository"
	mockRepo "mallconsole/internal/mocks/repository"
	mockSvc "mallconsole/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// catalogFixtures holds the mocked dependencies shared by the catalog service tests.
type catalogFixtures struct {
	store     *mockRepo.MockDocumentStore
	publisher *mockSvc.MockEventPublisher
}

func newCatalogFixtures(t *testing.T) catalogFixtures {
	return catalogFixtures{
		store:     mockRepo.NewMockDocumentStore(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
}

func (f catalogFixtures) expectPublish() {
	f.publisher.EXPECT().
		PublishCatalogEvent(mock.Anything, mock.Anything).
		Return(nil).
		Once()
}

func doc(id string, fields map[string]any) repository.Document {
	return repository.Document{ID: id, Fields: fields}
}
