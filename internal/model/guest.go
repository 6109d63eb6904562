package model

type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
)

type Guest struct {
	ID           string     `json:"id"`
	EventID      string     `json:"eventId"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone,omitempty"`
	Slug         string     `json:"slug"`
	PersonalLink string     `json:"personalLink"`
	RSVPStatus   RSVPStatus `json:"rsvpStatus"`
	GuestCount   int        `json:"guestCount"`
	Wishes       string     `json:"wishes,omitempty"`
	TableNumber  *int       `json:"tableNumber,omitempty"`
	ViewedAt     string     `json:"viewedAt,omitempty"`
	RespondedAt  string     `json:"respondedAt,omitempty"`
}

type RSVPStats struct {
	Confirmed   int `json:"confirmed"`
	Declined    int `json:"declined"`
	Pending     int `json:"pending"`
	TotalGuests int `json:"totalGuests"`
}

type DashboardData struct {
	Guests []Guest   `json:"guests"`
	Stats  RSVPStats `json:"stats"`
}
