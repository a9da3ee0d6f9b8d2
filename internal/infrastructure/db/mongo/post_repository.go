package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/willsblog/microblog-api/internal/core/domain"
)

const postsCollection = "posts"

// PostRepository implements ports.PostRepository using MongoDB.
type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

type mongoPost struct {
	ID        int64     `bson:"_id"`
	AuthorID  int64     `bson:"author_id"`
	Body      string    `bson:"body"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPost{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Body:      post.Body,
		CreatedAt: post.CreatedAt.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return wrapErr("insert post", err)
	}
	return nil
}

// ListByAuthors returns one page of posts by the given authors, newest
// first with id descending as the tie-break. It fetches limit+1 rows so
// the caller learns whether a further page exists without a count query,
// and never scans beyond the requested window.
func (r *PostRepository) ListByAuthors(ctx context.Context, authorIDs []int64, offset, limit int) ([]*domain.Post, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"author_id": bson.M{"$in": authorIDs}}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit) + 1)

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, false, wrapErr("list posts", err)
	}
	defer cur.Close(ctx)

	posts := make([]*domain.Post, 0, limit)
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, false, wrapErr("decode post", err)
		}
		posts = append(posts, &domain.Post{
			ID:        mp.ID,
			AuthorID:  mp.AuthorID,
			Body:      mp.Body,
			CreatedAt: mp.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, false, wrapErr("list posts", err)
	}

	hasNext := len(posts) > limit
	if hasNext {
		posts = posts[:limit]
	}
	return posts, hasNext, nil
}

func (r *PostRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"author_id": authorID})
	if err != nil {
		return 0, wrapErr("count posts", err)
	}
	return n, nil
}

// EnsureIndexes creates the compound index serving the feed query's
// filter and sort.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "author_id", Value: 1},
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
