package entity

import "time"

type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

type Client struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Status           ClientStatus `json:"status"`
	AssignedIdeators []string     `json:"assigned_ideators"`
	Days             []Day        `json:"days,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

type Day struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	Sets      []Set     `json:"sets,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Set struct {
	ID          string      `json:"id"`
	DayID       string      `json:"day_id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	StartTime   string      `json:"start_time"`
	Location    string      `json:"location"`
	Props       []string    `json:"props"`
	Actors      []string    `json:"actors"`
	Videos      []VideoSlot `json:"videos,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type UploadedFile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	UploadedAt time.Time `json:"uploaded_at"`
	UploadedBy string    `json:"uploaded_by"`
	URL        string    `json:"url,omitempty"`
}

type Ideator struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	AssignedClients []string  `json:"assigned_clients"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Shoot struct {
	ID               string    `json:"id"`
	ClientID         string    `json:"client_id"`
	ClientName       string    `json:"client_name"`
	Date             string    `json:"date"`
	Description      string    `json:"description"`
	AssignedIdeators []string  `json:"assigned_ideators"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

var setTypes = []string{
	"beach",
	"house",
	"indoor",
	"hospital",
	"office",
	"restaurant",
	"park",
	"studio",
	"street",
	"car",
	"other",
}

func SetTypes() []string {
	out := make([]string, len(setTypes))
	copy(out, setTypes)
	return out
}

func ValidSetType(t string) bool {
	for _, st := range setTypes {
		if st == t {
			return true
		}
	}
	return false
}

const (
	MinVideosPerSet = 1
	MaxVideosPerSet = 10
)
