package models

import (
	"testing"
	"time"
)

func TestFriendship_OtherParty(t *testing.T) {
	f := &Friendship{ID: 1, RequesterID: 10, RecipientID: 20, Status: FriendshipPending}

	if got := f.OtherParty(10); got != 20 {
		t.Errorf("OtherParty(10) = %d, want 20", got)
	}
	if got := f.OtherParty(20); got != 10 {
		t.Errorf("OtherParty(20) = %d, want 10", got)
	}
}

func TestFriendship_View(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := &Friendship{ID: 7, RequesterID: 10, RecipientID: 20, Status: FriendshipPending, CreatedAt: created}

	// From the recipient's perspective the request is incoming
	view := f.View(20)
	if view.UserID != 10 {
		t.Errorf("View(20).UserID = %d, want 10", view.UserID)
	}
	if !view.Incoming {
		t.Error("View(20).Incoming = false, want true")
	}
	if view.FriendshipID != 7 || view.Status != FriendshipPending || !view.Since.Equal(created) {
		t.Errorf("View(20) = %+v, unexpected fields", view)
	}

	// From the requester's perspective it is outgoing
	view = f.View(10)
	if view.UserID != 20 {
		t.Errorf("View(10).UserID = %d, want 20", view.UserID)
	}
	if view.Incoming {
		t.Error("View(10).Incoming = true, want false")
	}
}

func TestCartItem_Validate(t *testing.T) {
	valid := CartItem{EventID: 1, TicketTypeID: 2, UnitPrice: 25, Currency: "USD", Quantity: 1}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() on valid item returned %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*CartItem)
	}{
		{"missing event", func(i *CartItem) { i.EventID = 0 }},
		{"missing ticket type", func(i *CartItem) { i.TicketTypeID = 0 }},
		{"negative price", func(i *CartItem) { i.UnitPrice = -1 }},
		{"bad currency", func(i *CartItem) { i.Currency = "DOLLARS" }},
		{"zero quantity", func(i *CartItem) { i.Quantity = 0 }},
		{"negative quantity", func(i *CartItem) { i.Quantity = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid
			tt.mutate(&item)
			if err := item.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}
