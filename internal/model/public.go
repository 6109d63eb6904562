package model

// PublicEventResponse is the payload the persistence API returns for a
// published invitation. When Template is set the page renders through the
// template registry instead of the block list.
type PublicEventResponse struct {
	ID        string        `json:"id"`
	Slug      string        `json:"slug"`
	EventType EventType     `json:"eventType"`
	Data      EventData     `json:"data"`
	Theme     ThemeConfig   `json:"theme"`
	Blocks    []BlockConfig `json:"blocks"`
	Template  string        `json:"template,omitempty"`
}

// PublicGuestEventResponse is the personalized variant served under
// /i/{slug}/{guestSlug}.
type PublicGuestEventResponse struct {
	PublicEventResponse
	GuestName   string `json:"guestName"`
	TableNumber *int   `json:"tableNumber,omitempty"`
}
