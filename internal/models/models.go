package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypeVideo FileType = "video"
)

// ID is a backend identifier. The backend may send it as a JSON string (uuid)
// or a number.
type ID string

// PostID identifies a post.
type PostID = ID

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

type User struct {
	ID          ID     `json:"id"`
	Email       string `json:"email"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
	IsVerified  bool   `json:"is_verified"`
}

type Post struct {
	ID        PostID   `json:"id"`
	Email     string   `json:"email"`
	CreatedAt string   `json:"created_at"`
	FileType  FileType `json:"file_type"`
	URL       string   `json:"url"`
	Caption   string   `json:"caption"`
	IsOwner   bool     `json:"is_owner"`
}

// Date returns the calendar part of CreatedAt.
func (p Post) Date() string {
	if len(p.CreatedAt) < 10 {
		return p.CreatedAt
	}
	return p.CreatedAt[:10]
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
