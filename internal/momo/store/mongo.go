package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/parse"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/usecase"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/pkg/pkgerror"
)

// Mongo keeps records in a MongoDB collection. Id assignment is not atomic
// across writers; the service assumes a single writer per collection, the
// same discipline the other drivers get from their process-local mutex.
type Mongo struct {
	coll *mongo.Collection
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// NewMongo connects, pings, and returns the store plus a disconnect closer.
func NewMongo(ctx context.Context, cfg MongoConfig) (*Mongo, func(context.Context) error, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := &Mongo{coll: client.Database(cfg.Database).Collection(cfg.Collection)}
	return s, client.Disconnect, nil
}

func (s *Mongo) ReplaceAll(ctx context.Context, txs []entity.Transaction) error {
	if _, err := s.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return pkgerror.NewServer(fmt.Errorf("clear collection: %w", err))
	}
	if len(txs) == 0 {
		return nil
	}

	docs := make([]any, 0, len(txs))
	for _, tx := range txs {
		docs = append(docs, tx)
	}
	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		return pkgerror.NewServer(fmt.Errorf("insert batch: %w", err))
	}

	return nil
}

func (s *Mongo) List(ctx context.Context, filter usecase.TxFilter, page, pageSize int) ([]entity.Transaction, int, error) {
	query := bson.M{}
	if len(filter.Types) > 0 {
		query["transaction_type"] = bson.M{"$in": filter.Types}
	}

	total, err := s.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, pkgerror.NewServer(fmt.Errorf("count: %w", err))
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "internal_id", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, pkgerror.NewServer(fmt.Errorf("find: %w", err))
	}
	defer cursor.Close(ctx) //nolint:errcheck // read cursor

	items := make([]entity.Transaction, 0, pageSize)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, pkgerror.NewServer(fmt.Errorf("decode: %w", err))
	}

	return items, int(total), nil
}

func (s *Mongo) Get(ctx context.Context, internalID int64) (entity.Transaction, error) {
	return s.findOne(ctx, bson.M{"internal_id": internalID})
}

func (s *Mongo) GetByTransactionID(ctx context.Context, transactionID string) (entity.Transaction, error) {
	return s.findOne(ctx, bson.M{"transaction_id": transactionID})
}

func (s *Mongo) Create(ctx context.Context, tx entity.Transaction) (entity.Transaction, error) {
	next, err := s.nextID(ctx)
	if err != nil {
		return entity.Transaction{}, err
	}

	tx.InternalID = next
	if tx.TransactionID == "" {
		tx.TransactionID = parse.LocalID(tx.InternalID)
	}

	if _, err := s.coll.InsertOne(ctx, tx); err != nil {
		return entity.Transaction{}, pkgerror.NewServer(fmt.Errorf("insert: %w", err))
	}

	return tx, nil
}

func (s *Mongo) Update(ctx context.Context, internalID int64, fn func(tx *entity.Transaction)) (entity.Transaction, error) {
	tx, err := s.Get(ctx, internalID)
	if err != nil {
		return entity.Transaction{}, err
	}

	fn(&tx)
	tx.InternalID = internalID

	if _, err := s.coll.ReplaceOne(ctx, bson.M{"internal_id": internalID}, tx); err != nil {
		return entity.Transaction{}, pkgerror.NewServer(fmt.Errorf("replace: %w", err))
	}

	return tx, nil
}

func (s *Mongo) Delete(ctx context.Context, internalID int64) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"internal_id": internalID})
	if err != nil {
		return pkgerror.NewServer(fmt.Errorf("delete: %w", err))
	}
	if result.DeletedCount == 0 {
		return pkgerror.ErrNotFound
	}
	return nil
}

func (s *Mongo) findOne(ctx context.Context, query bson.M) (entity.Transaction, error) {
	var tx entity.Transaction
	err := s.coll.FindOne(ctx, query).Decode(&tx)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity.Transaction{}, pkgerror.ErrNotFound
	}
	if err != nil {
		return entity.Transaction{}, pkgerror.NewServer(fmt.Errorf("find one: %w", err))
	}
	return tx, nil
}

func (s *Mongo) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "internal_id", Value: -1}})

	var last entity.Transaction
	err := s.coll.FindOne(ctx, bson.D{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, pkgerror.NewServer(fmt.Errorf("max id: %w", err))
	}

	return last.InternalID + 1, nil
}
