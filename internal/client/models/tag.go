package models

// Tag is a flat, tenant-scoped label attachable to transactions.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateTagRequest is the payload for creating a tag.
type CreateTagRequest struct {
	Name string `json:"name"`
}

// UpdateTagRequest is the payload for updating a tag.
type UpdateTagRequest = CreateTagRequest
