package model

import "time"

type EventType string

const (
	EventWedding   EventType = "wedding"
	EventSundet    EventType = "sundet"
	EventTusau     EventType = "tusau"
	EventBirthday  EventType = "birthday"
	EventJubilee   EventType = "jubilee"
	EventCorporate EventType = "corporate"
)

// TwoPerson reports whether the event type carries two celebrated names
// (person1 and person2), e.g. a wedding.
func (t EventType) TwoPerson() bool {
	return t == EventWedding
}

type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusArchived  EventStatus = "archived"
)

type EventNames struct {
	Person1 string `json:"person1"`
	Person2 string `json:"person2,omitempty"`
}

// Combined returns "person1 & person2", or just person1 when there is no
// second name.
func (n EventNames) Combined() string {
	if n.Person2 == "" {
		return n.Person1
	}
	return n.Person1 + " & " + n.Person2
}

type Venue struct {
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	MapURL   string  `json:"mapUrl"`
	TwoGisID string  `json:"twoGisId,omitempty"`
}

type ProgramItem struct {
	Time  string `json:"time"`
	Title string `json:"title"`
	Desc  string `json:"desc,omitempty"`
}

type EventPhotos struct {
	Hero    string   `json:"hero,omitempty"`
	Gallery []string `json:"gallery,omitempty"`
}

// EventData is the content document of one invitation. Renderers treat it
// as immutable; the editor replaces it wholesale on every mutation.
type EventData struct {
	Names         EventNames    `json:"names"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	GatheringTime string        `json:"gatheringTime,omitempty"`
	Venue         Venue         `json:"venue"`
	GreetingKz    string        `json:"greetingKz,omitempty"`
	GreetingRu    string        `json:"greetingRu,omitempty"`
	DressCode     string        `json:"dressCode,omitempty"`
	Hashtag       string        `json:"hashtag,omitempty"`
	RSVPDeadline  string        `json:"rsvpDeadline,omitempty"`
	Program       []ProgramItem `json:"program,omitempty"`
	Photos        EventPhotos   `json:"photos,omitempty"`
}

type BlockType string

const (
	BlockHero      BlockType = "hero"
	BlockIntro     BlockType = "intro"
	BlockGreeting  BlockType = "greeting"
	BlockDetails   BlockType = "details"
	BlockCountdown BlockType = "countdown"
	BlockProgram   BlockType = "program"
	BlockLocation  BlockType = "location"
	BlockGallery   BlockType = "gallery"
	BlockRSVP      BlockType = "rsvp"
	BlockStory     BlockType = "story"
	BlockWishes    BlockType = "wishes"
	BlockDressCode BlockType = "dresscode"
	BlockBabyInfo  BlockType = "baby-info"
	BlockFooter    BlockType = "footer"
)

type BlockConfig struct {
	Type    BlockType `json:"type"`
	Variant string    `json:"variant"`
	Enabled bool      `json:"enabled"`
	Order   int       `json:"order"`
}

// EventThemeRef points an event at a theme by slug plus sparse color
// overrides keyed by ThemeColors field name.
type EventThemeRef struct {
	ID           string            `json:"id"`
	CustomColors map[string]string `json:"customColors,omitempty"`
}

type SeatingTable struct {
	TableNumber int      `json:"tableNumber"`
	TableName   string   `json:"tableName,omitempty"`
	GuestIDs    []string `json:"guestIds"`
}

type Event struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Slug      string         `json:"slug"`
	Status    EventStatus    `json:"status"`
	EventType EventType      `json:"eventType"`
	Data      EventData      `json:"data"`
	Theme     EventThemeRef  `json:"theme"`
	Blocks    []BlockConfig  `json:"blocks"`
	Template  string         `json:"template,omitempty"`
	Seating   []SeatingTable `json:"seating,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
