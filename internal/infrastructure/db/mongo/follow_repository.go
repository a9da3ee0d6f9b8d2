package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/willsblog/microblog-api/internal/core/domain"
)

const followsCollection = "follows"

// FollowRepository implements ports.FollowRepository using MongoDB. The
// follow graph is an explicit edge collection with a compound unique
// index on (follower_id, followee_id); concurrent duplicate inserts
// collapse onto that constraint.
type FollowRepository struct {
	coll *mongo.Collection
}

func NewFollowRepository(db *mongo.Database) *FollowRepository {
	return &FollowRepository{coll: db.Collection(followsCollection)}
}

type mongoFollow struct {
	FollowerID int64     `bson:"follower_id"`
	FolloweeID int64     `bson:"followee_id"`
	CreatedAt  time.Time `bson:"created_at"`
}

// Create inserts the edge. A duplicate-key error means another writer
// already created it, which counts as success.
func (r *FollowRepository) Create(ctx context.Context, edge *domain.FollowEdge) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoFollow{
		FollowerID: edge.FollowerID,
		FolloweeID: edge.FolloweeID,
		CreatedAt:  edge.CreatedAt.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return wrapErr("insert follow", err)
	}
	return nil
}

func (r *FollowRepository) Delete(ctx context.Context, followerID, followeeID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.DeleteOne(ctx, bson.M{"follower_id": followerID, "followee_id": followeeID})
	if err != nil {
		return wrapErr("delete follow", err)
	}
	return nil
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"follower_id": followerID, "followee_id": followeeID}
	err := r.coll.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, wrapErr("find follow", err)
	}
	return true, nil
}

func (r *FollowRepository) FollowedIDs(ctx context.Context, followerID int64) ([]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"followee_id": 1})
	cur, err := r.coll.Find(ctx, bson.M{"follower_id": followerID}, opts)
	if err != nil {
		return nil, wrapErr("list followed", err)
	}
	defer cur.Close(ctx)

	var ids []int64
	for cur.Next(ctx) {
		var mf mongoFollow
		if err := cur.Decode(&mf); err != nil {
			return nil, wrapErr("decode follow", err)
		}
		ids = append(ids, mf.FolloweeID)
	}
	if err := cur.Err(); err != nil {
		return nil, wrapErr("list followed", err)
	}
	return ids, nil
}

func (r *FollowRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	return r.count(ctx, bson.M{"followee_id": userID})
}

func (r *FollowRepository) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	return r.count(ctx, bson.M{"follower_id": userID})
}

// EnsureIndexes creates the compound unique edge index plus the reverse
// lookup index by followee.
func (r *FollowRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "follower_id", Value: 1}, {Key: "followee_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "followee_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *FollowRepository) count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, wrapErr("count follows", err)
	}
	return n, nil
}
