package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// mockCollection provides a configurable mock for Collection.
type mockCollection struct {
	insertOneFn        func(ctx context.Context, document any) (*mongo.InsertOneResult, error)
	findOneFn          func(ctx context.Context, filter any) *mongo.SingleResult
	findFn             func(ctx context.Context, filter any) (*mongo.Cursor, error)
	findOneAndUpdateFn func(ctx context.Context, filter, update any) *mongo.SingleResult
	findOneAndDeleteFn func(ctx context.Context, filter any) *mongo.SingleResult
	updateOneFn        func(ctx context.Context, filter, update any) (*mongo.UpdateResult, error)
	updateManyFn       func(ctx context.Context, filter, update any) (*mongo.UpdateResult, error)
	deleteOneFn        func(ctx context.Context, filter any) (*mongo.DeleteResult, error)
	deleteManyFn       func(ctx context.Context, filter any) (*mongo.DeleteResult, error)
	countDocumentsFn   func(ctx context.Context, filter any) (int64, error)
	aggregateFn        func(ctx context.Context, pipeline any) (*mongo.Cursor, error)
}

func (m *mockCollection) InsertOne(ctx context.Context, document any, _ ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error) {
	if m.insertOneFn != nil {
		return m.insertOneFn(ctx, document)
	}
	return &mongo.InsertOneResult{}, nil
}

func (m *mockCollection) FindOne(ctx context.Context, filter any, _ ...options.Lister[options.FindOneOptions]) *mongo.SingleResult {
	if m.findOneFn != nil {
		return m.findOneFn(ctx, filter)
	}
	return noDocument()
}

func (m *mockCollection) Find(ctx context.Context, filter any, _ ...options.Lister[options.FindOptions]) (*mongo.Cursor, error) {
	if m.findFn != nil {
		return m.findFn(ctx, filter)
	}
	return cursorOf()
}

func (m *mockCollection) FindOneAndUpdate(ctx context.Context, filter any, update any, _ ...options.Lister[options.FindOneAndUpdateOptions]) *mongo.SingleResult {
	if m.findOneAndUpdateFn != nil {
		return m.findOneAndUpdateFn(ctx, filter, update)
	}
	return noDocument()
}

func (m *mockCollection) FindOneAndDelete(ctx context.Context, filter any, _ ...options.Lister[options.FindOneAndDeleteOptions]) *mongo.SingleResult {
	if m.findOneAndDeleteFn != nil {
		return m.findOneAndDeleteFn(ctx, filter)
	}
	return noDocument()
}

func (m *mockCollection) UpdateOne(ctx context.Context, filter any, update any, _ ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error) {
	if m.updateOneFn != nil {
		return m.updateOneFn(ctx, filter, update)
	}
	return &mongo.UpdateResult{}, nil
}

func (m *mockCollection) UpdateMany(ctx context.Context, filter any, update any, _ ...options.Lister[options.UpdateManyOptions]) (*mongo.UpdateResult, error) {
	if m.updateManyFn != nil {
		return m.updateManyFn(ctx, filter, update)
	}
	return &mongo.UpdateResult{}, nil
}

func (m *mockCollection) DeleteOne(ctx context.Context, filter any, _ ...options.Lister[options.DeleteOneOptions]) (*mongo.DeleteResult, error) {
	if m.deleteOneFn != nil {
		return m.deleteOneFn(ctx, filter)
	}
	return &mongo.DeleteResult{}, nil
}

func (m *mockCollection) DeleteMany(ctx context.Context, filter any, _ ...options.Lister[options.DeleteManyOptions]) (*mongo.DeleteResult, error) {
	if m.deleteManyFn != nil {
		return m.deleteManyFn(ctx, filter)
	}
	return &mongo.DeleteResult{}, nil
}

func (m *mockCollection) CountDocuments(ctx context.Context, filter any, _ ...options.Lister[options.CountOptions]) (int64, error) {
	if m.countDocumentsFn != nil {
		return m.countDocumentsFn(ctx, filter)
	}
	return 0, nil
}

func (m *mockCollection) Aggregate(ctx context.Context, pipeline any, _ ...options.Lister[options.AggregateOptions]) (*mongo.Cursor, error) {
	if m.aggregateFn != nil {
		return m.aggregateFn(ctx, pipeline)
	}
	return cursorOf()
}

// cursorOf builds a cursor over in-memory documents.
func cursorOf(docs ...any) (*mongo.Cursor, error) {
	if docs == nil {
		docs = []any{}
	}
	return mongo.NewCursorFromDocuments(docs, nil, nil)
}

func singleResult(doc any) *mongo.SingleResult {
	return mongo.NewSingleResultFromDocument(doc, nil, nil)
}

func noDocument() *mongo.SingleResult {
	return mongo.NewSingleResultFromDocument(struct{}{}, mongo.ErrNoDocuments, nil)
}

func duplicateKeyError() error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
}

// stageNames lists the operator of each pipeline stage.
func stageNames(p mongo.Pipeline) []string {
	names := make([]string, len(p))
	for i, s := range p {
		names[i] = s[0].Key
	}
	return names
}
