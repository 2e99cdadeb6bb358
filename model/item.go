// model/item.go
package model

type Item struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type ItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

func PatchItem(old Item, p ItemPatch) Item {
	if p.Name != nil {
		old.Name = *p.Name
	}
	if p.Description != nil {
		old.Description = *p.Description
	}
	if p.Available != nil {
		old.Available = *p.Available
	}
	return old
}

// BookingInfo is the owner-facing summary attached to an item view.
type BookingInfo struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// ItemView is an item enriched with comments and, for the owner,
// the last finished and next upcoming approved bookings.
type ItemView struct {
	Item
	LastBooking *BookingInfo `json:"lastBooking"`
	NextBooking *BookingInfo `json:"nextBooking"`
	Comments    []Comment    `json:"comments"`
}
