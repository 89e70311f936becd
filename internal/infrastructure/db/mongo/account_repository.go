package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hlaeja-ltd/account-registry/internal/core/domain"
)

const accountCollection = "accounts"

// MongoAccountRepository implements ports.AccountRepository. The unique index
// on username (see EnsureIndexes) is what surfaces domain.ErrUsernameTaken.
type MongoAccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *MongoAccountRepository {
	return &MongoAccountRepository{coll: db.Collection(accountCollection)}
}

// EnsureIndexes creates the unique username index. Call once at startup.
func (r *MongoAccountRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}
	return nil
}

type mongoAccount struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
	Enabled      bool               `bson:"enabled"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password_hash"`
	Roles        string             `bson:"roles"`
}

func (r *MongoAccountRepository) Save(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	doc := mongoAccount{
		CreatedAt:    account.CreatedAt.Unix(),
		UpdatedAt:    account.UpdatedAt.Unix(),
		Enabled:      account.Enabled,
		Username:     account.Username,
		PasswordHash: account.PasswordHash,
		Roles:        account.Roles,
	}

	if !account.Persisted() {
		res, err := r.coll.InsertOne(ctx, doc)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ErrUsernameTaken
			}
			return nil, fmt.Errorf("insert account: %w", err)
		}
		oid, ok := res.InsertedID.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("insert account: unexpected inserted id %T", res.InsertedID)
		}
		return r.FindByID(ctx, oid.Hex())
	}

	oid, err := primitive.ObjectIDFromHex(account.ID)
	if err != nil {
		return nil, fmt.Errorf("replace account: %w", err)
	}
	doc.ID = oid
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("replace account: %w", err)
	}
	return r.FindByID(ctx, account.ID)
}

func (r *MongoAccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a stored record.
		return nil, domain.ErrAccountNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoAccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoAccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	var ma mongoAccount
	if err := r.coll.FindOne(ctx, filter).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return toDomain(ma), nil
}

// List returns accounts in natural collection order; skip and limit are
// applied server-side by the cursor.
func (r *MongoAccountRepository) List(ctx context.Context, offset, limit int64) ([]*domain.Account, error) {
	opts := options.Find().SetSkip(offset).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer cursor.Close(ctx)

	accounts := make([]*domain.Account, 0, limit)
	for cursor.Next(ctx) {
		var ma mongoAccount
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		accounts = append(accounts, toDomain(ma))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func toDomain(ma mongoAccount) *domain.Account {
	return &domain.Account{
		ID:           ma.ID.Hex(),
		CreatedAt:    unixToTime(ma.CreatedAt),
		UpdatedAt:    unixToTime(ma.UpdatedAt),
		Enabled:      ma.Enabled,
		Username:     ma.Username,
		PasswordHash: ma.PasswordHash,
		Roles:        ma.Roles,
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
