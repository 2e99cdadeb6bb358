package model

import "time"

type ItemRequest struct {
	ID          int64
	UserID      int64
	Description string
	Created     time.Time
}

// RequestView is an item request together with the items fulfilling it.
type RequestView struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Created     LocalTime `json:"created"`
	Items       []Item    `json:"items"`
}
