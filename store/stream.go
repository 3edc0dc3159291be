package store

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ChangeEvent is one document change observed on a watched collection.
// Deletes carry only the document id.
type ChangeEvent struct {
	Collection    string
	OperationType string
	DocumentID    string
	FullDocument  bson.M
}

// Watcher exposes the store's change streams, the push channel behind
// the live view projections.
type Watcher interface {
	WatchCollections(ctx context.Context, collections ...string) (<-chan ChangeEvent, error)
}

// WatchCollections opens one change stream per collection and funnels
// the events into a single channel. The channel closes when ctx is done
// or every underlying stream has ended.
func (m *mongoDB) WatchCollections(ctx context.Context, collections ...string) (<-chan ChangeEvent, error) {
	events := make(chan ChangeEvent, 16)

	streams := make([]*mongo.ChangeStream, 0, len(collections))
	for _, name := range collections {
		c := m.client.Database(m.database).Collection(name)
		stream, err := c.Watch(ctx, mongo.Pipeline{},
			options.ChangeStream().SetFullDocument(options.UpdateLookup))
		if err != nil {
			for _, s := range streams {
				_ = s.Close(ctx)
			}
			return nil, err
		}
		streams = append(streams, stream)
	}

	var wg sync.WaitGroup
	for i, stream := range streams {
		wg.Add(1)
		go m.pumpChanges(ctx, &wg, collections[i], stream, events)
	}

	go func() {
		wg.Wait()
		close(events)
	}()

	return events, nil
}

func (m *mongoDB) pumpChanges(ctx context.Context, wg *sync.WaitGroup, collection string, stream *mongo.ChangeStream, events chan<- ChangeEvent) {
	defer wg.Done()
	defer stream.Close(context.Background())

	for stream.Next(ctx) {
		var change struct {
			OperationType string `bson:"operationType"`
			DocumentKey   struct {
				ID string `bson:"_id"`
			} `bson:"documentKey"`
			FullDocument bson.M `bson:"fullDocument"`
		}
		if err := stream.Decode(&change); err != nil {
			log.WithField("prefix", mongoLogPrefix).
				WithField("collection", collection).
				WithError(err).Error("fail to decode change stream event")
			continue
		}

		event := ChangeEvent{
			Collection:    collection,
			OperationType: change.OperationType,
			DocumentID:    change.DocumentKey.ID,
			FullDocument:  change.FullDocument,
		}

		select {
		case events <- event:
		case <-ctx.Done():
			return
		}
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		log.WithField("prefix", mongoLogPrefix).
			WithField("collection", collection).
			WithError(err).Error("change stream ended with error")
	}
}
