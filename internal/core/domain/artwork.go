package domain

import "time"

// Artwork is an immutable gallery entry describing one generated piece.
// Entries reference their owner by id and are never mutated or deleted.
type Artwork struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	UserID           string    `json:"user_id" bson:"user_id"`
	ArtName          string    `json:"art_name" bson:"art_name"`
	Description      string    `json:"description" bson:"description"`
	Prompt           string    `json:"prompt" bson:"prompt"`
	Animal           string    `json:"animal" bson:"animal"`
	OriginalImageURL string    `json:"original_image_url" bson:"original_image_url"`
	MaskedImageURL   string    `json:"masked_image_url" bson:"masked_image_url"`
	FinalImageURL    string    `json:"final_image_url" bson:"final_image_url"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}
