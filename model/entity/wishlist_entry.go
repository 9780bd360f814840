package entity

import "time"

// WishlistEntry is a saved product snapshot. At most one entry per product ID.
type WishlistEntry struct {
	Product Product   `json:"product"`
	AddedAt time.Time `json:"addedAt"`
}
