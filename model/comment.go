package model

type Comment struct {
	ID         int64     `json:"id"`
	ItemID     int64     `json:"-"`
	UserID     int64     `json:"-"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    LocalTime `json:"created"`
}
