package entities

import "time"

// Memory is a photo+text keepsake record. Every memory owns exactly one
// stored photo once created; the (ImageURL, ImagePath) pair is replaced as a
// unit when a new photo is supplied on update, and the stored object is
// deleted together with the record.
type Memory struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Date      string     `json:"date"`
	ImageURL  string     `json:"image_url"`
	ImagePath string     `json:"image_path"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// NewMemory carries the fields for a memory insert. Identifier and
// timestamps are assigned by the store.
type NewMemory struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	ImageURL  string `json:"image_url"`
	ImagePath string `json:"image_path"`
}

// MemoryUpdate carries a partial update; nil fields are left untouched.
// Image is set only when a replacement photo was uploaded.
type MemoryUpdate struct {
	Title   *string
	Content *string
	Date    *string
	Image   *ImageRef
}

// ImageRef is the (public URL, storage path) pair owned by a memory.
type ImageRef struct {
	URL  string `json:"image_url"`
	Path string `json:"image_path"`
}
