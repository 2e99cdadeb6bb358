package booking

import (
	"rentshare/model"
)

type CreateBookingReq struct {
	ItemID int64           `json:"itemId" validate:"required"`
	Start  model.LocalTime `json:"start"`
	End    model.LocalTime `json:"end"`
}

type bookerResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type itemResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingResp is the wire shape of a booking: the period, the decision
// state, and short references to the booker and the item.
type BookingResp struct {
	ID     int64           `json:"id"`
	Start  model.LocalTime `json:"start"`
	End    model.LocalTime `json:"end"`
	Status string          `json:"status"`
	Booker bookerResp      `json:"booker"`
	Item   itemResp        `json:"item"`
}

func toResp(b *model.Booking) BookingResp {
	return BookingResp{
		ID:     b.ID,
		Start:  model.NewLocalTime(b.Start),
		End:    model.NewLocalTime(b.End),
		Status: string(b.State),
		Booker: bookerResp{ID: b.UserID, Name: b.BookerName},
		Item:   itemResp{ID: b.ItemID, Name: b.ItemName},
	}
}

func toResps(bs []model.Booking) []BookingResp {
	out := make([]BookingResp, 0, len(bs))
	for i := range bs {
		out = append(out, toResp(&bs[i]))
	}
	return out
}
