// Package repository provides MongoDB-backed blog post persistence.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncobase/blogpost/logging/logger"
	"github.com/ncobase/blogpost/logging/observes"
	"github.com/ncobase/blogpost/structs"
	"github.com/ncobase/blogpost/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrNotFound is returned when no document matches a lookup.
	ErrNotFound = errors.New("blog post not found")
	// ErrInvalidID is returned for ids that are not ObjectID hex strings.
	ErrInvalidID = errors.New("invalid blog post id")
)

// BlogPostRepository defines the interface for blog post data operations.
type BlogPostRepository interface {
	List(ctx context.Context, limit int64) ([]*structs.BlogPost, error)
	FindByID(ctx context.Context, id string) (*structs.BlogPost, error)
	Create(ctx context.Context, post *structs.BlogPost) (*structs.BlogPost, error)
	CreateMany(ctx context.Context, posts []*structs.BlogPost) error
	Update(ctx context.Context, id string, body *structs.UpdateBlogPost) error
	Delete(ctx context.Context, id string) error
	Drop(ctx context.Context) error
}

type blogPostRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
	tracer     trace.Tracer
}

// NewBlogPostRepository creates a new blog post repository instance.
func NewBlogPostRepository(collection *mongo.Collection, logger *logger.Logger) BlogPostRepository {
	return &blogPostRepository{
		collection: collection,
		logger:     logger,
		tracer:     otel.Tracer(observes.TracerName),
	}
}

func (r *blogPostRepository) start(ctx context.Context, op string) (context.Context, trace.Span) {
	return r.tracer.Start(ctx, "BlogPostRepository."+op, trace.WithAttributes(
		observes.LayerKey.String(observes.LayerRepo.String()),
		attribute.String("db.system", "mongodb"),
		attribute.String("db.collection", r.collection.Name()),
	))
}

func finish(span trace.Span, err error) {
	if err != nil && !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return objectID, nil
}

// List returns up to limit documents in natural order.
func (r *blogPostRepository) List(ctx context.Context, limit int64) (posts []*structs.BlogPost, err error) {
	ctx, span := r.start(ctx, "List")
	defer func() { finish(span, err) }()

	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts = make([]*structs.BlogPost, 0)
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode blog posts: %w", err)
	}

	return posts, nil
}

// FindByID retrieves a blog post by ID.
func (r *blogPostRepository) FindByID(ctx context.Context, id string) (post *structs.BlogPost, err error) {
	ctx, span := r.start(ctx, "FindByID")
	defer func() { finish(span, err) }()

	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	post = &structs.BlogPost{}
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find blog post: %w", err)
	}

	return post, nil
}

// Create validates and inserts a new blog post, assigning its ID.
func (r *blogPostRepository) Create(ctx context.Context, post *structs.BlogPost) (_ *structs.BlogPost, err error) {
	ctx, span := r.start(ctx, "Create")
	defer func() { finish(span, err) }()

	if err = validator.Struct(post); err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	post.ID = primitive.NewObjectID()
	if _, err = r.collection.InsertOne(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	r.logger.Info(ctx, "blog post created", "id", post.ID.Hex())
	return post, nil
}

// CreateMany validates and inserts posts in one batch.
func (r *blogPostRepository) CreateMany(ctx context.Context, posts []*structs.BlogPost) (err error) {
	ctx, span := r.start(ctx, "CreateMany")
	defer func() { finish(span, err) }()

	if len(posts) == 0 {
		return nil
	}

	docs := make([]any, 0, len(posts))
	for _, post := range posts {
		if err = validator.Struct(post); err != nil {
			return fmt.Errorf("failed to create blog posts: %w", err)
		}
		post.ID = primitive.NewObjectID()
		docs = append(docs, post)
	}

	if _, err = r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to create blog posts: %w", err)
	}
	return nil
}

// Update applies the present fields with $set. Unknown ids are a no-op.
func (r *blogPostRepository) Update(ctx context.Context, id string, body *structs.UpdateBlogPost) (err error) {
	ctx, span := r.start(ctx, "Update")
	defer func() { finish(span, err) }()

	objectID, err := parseID(id)
	if err != nil {
		return err
	}

	set := updateSet(body)
	if len(set) == 0 {
		return nil
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}

	r.logger.Info(ctx, "blog post updated", "id", id, "matched", result.MatchedCount)
	return nil
}

// updateSet builds the $set document from the present fields.
func updateSet(body *structs.UpdateBlogPost) bson.M {
	set := bson.M{}
	if body.Title != nil {
		set["title"] = *body.Title
	}
	if body.Content != nil {
		set["content"] = *body.Content
	}
	if body.Author != nil {
		set["author"] = *body.Author
	}
	for _, field := range body.Null {
		set[field] = nil
	}
	return set
}

// Delete removes a blog post by ID. Unknown ids are a no-op.
func (r *blogPostRepository) Delete(ctx context.Context, id string) (err error) {
	ctx, span := r.start(ctx, "Delete")
	defer func() { finish(span, err) }()

	objectID, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}

	r.logger.Info(ctx, "blog post deleted", "id", id, "deleted", result.DeletedCount)
	return nil
}

// Drop removes the whole collection.
func (r *blogPostRepository) Drop(ctx context.Context) (err error) {
	ctx, span := r.start(ctx, "Drop")
	defer func() { finish(span, err) }()

	if err = r.collection.Drop(ctx); err != nil {
		return fmt.Errorf("failed to drop blog posts: %w", err)
	}
	return nil
}
