package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anything2image/gallery-api/internal/core/domain"
)

const galleryCollection = "gallery"

// GalleryRepository persists artwork entries as flat documents in the
// "gallery" collection, referencing users by id string.
type GalleryRepository struct {
	coll *mongo.Collection
}

func NewGalleryRepository(db *mongo.Database) *GalleryRepository {
	return &GalleryRepository{coll: db.Collection(galleryCollection)}
}

type artworkDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	UserID           string             `bson:"user_id"`
	ArtName          string             `bson:"art_name"`
	Description      string             `bson:"description"`
	Prompt           string             `bson:"prompt"`
	Animal           string             `bson:"animal"`
	OriginalImageURL string             `bson:"original_image_url"`
	MaskedImageURL   string             `bson:"masked_image_url"`
	FinalImageURL    string             `bson:"final_image_url"`
	CreatedAt        time.Time          `bson:"created_at"`
}

func (r *GalleryRepository) Insert(ctx context.Context, art *domain.Artwork) (*domain.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := artworkDoc{
		UserID:           art.UserID,
		ArtName:          art.ArtName,
		Description:      art.Description,
		Prompt:           art.Prompt,
		Animal:           art.Animal,
		OriginalImageURL: art.OriginalImageURL,
		MaskedImageURL:   art.MaskedImageURL,
		FinalImageURL:    art.FinalImageURL,
		CreatedAt:        art.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert artwork: %w", err)
	}

	stored := *art
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		stored.ID = oid.Hex()
	}
	return &stored, nil
}

func (r *GalleryRepository) ListByUser(ctx context.Context, userID string) ([]domain.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []artworkDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode artworks: %w", err)
	}

	artworks := make([]domain.Artwork, 0, len(docs))
	for _, d := range docs {
		artworks = append(artworks, domain.Artwork{
			ID:               d.ID.Hex(),
			UserID:           d.UserID,
			ArtName:          d.ArtName,
			Description:      d.Description,
			Prompt:           d.Prompt,
			Animal:           d.Animal,
			OriginalImageURL: d.OriginalImageURL,
			MaskedImageURL:   d.MaskedImageURL,
			FinalImageURL:    d.FinalImageURL,
			CreatedAt:        d.CreatedAt.UTC(),
		})
	}
	return artworks, nil
}

// EnsureIndexes creates the user_id lookup index used by ListByUser.
func (r *GalleryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
