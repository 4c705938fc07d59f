package domain

import "time"

// User models a registered account. PasswordHash never leaves the process:
// it is excluded from JSON and only compared inside the account service.
type User struct {
	ID           string        `json:"id"`
	FullName     string        `json:"full_name"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	Images       []ImageRecord `json:"images"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// ImageRecord describes one uploaded image embedded in its owner's user
// document. Records are append-only; there is no delete operation.
type ImageRecord struct {
	Fname       string    `json:"fname"`
	Description string    `json:"description"`
	SizeBytes   int64     `json:"size_bytes"`
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// FindImage returns the record whose filename matches fname, or nil.
func (u *User) FindImage(fname string) *ImageRecord {
	for i := range u.Images {
		if u.Images[i].Fname == fname {
			return &u.Images[i]
		}
	}
	return nil
}
