package entity

import "time"

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformFacebook  Platform = "facebook"
)

var platforms = []Platform{PlatformInstagram, PlatformTikTok, PlatformYouTube, PlatformFacebook}

func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}

func ValidPlatform(p Platform) bool {
	for _, known := range platforms {
		if known == p {
			return true
		}
	}
	return false
}

type PostingVideoStatus string

const (
	PostingVideoReady  PostingVideoStatus = "ready"
	PostingVideoPosted PostingVideoStatus = "posted"
)

// PostingVideo is one approved video booked into a folder, carrying the
// per-platform captions and hashtags chosen at posting time.
type PostingVideo struct {
	ID           string             `json:"id"`
	FolderID     string             `json:"folder_id"`
	SourceSlotID string             `json:"source_slot_id"`
	Position     int                `json:"position"`
	Name         string             `json:"name"`
	Size         int64              `json:"size"`
	ContentType  string             `json:"content_type"`
	UploadedBy   string             `json:"uploaded_by"`
	URL          string             `json:"url"`
	Status       PostingVideoStatus `json:"status"`
	PostedAt     *time.Time         `json:"posted_at,omitempty"`
	Platforms    []Platform         `json:"platforms,omitempty"`
	Caption      string             `json:"caption,omitempty"`
	Hashtags     string             `json:"hashtags,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// PostingFolder groups a client's approved videos under one posting date.
// Complete is advisory: it flags folders holding exactly the expected
// number of videos, it never blocks adding more videos or posting a
// partial folder.
type PostingFolder struct {
	ID        string         `json:"id"`
	ClientID  string         `json:"client_id"`
	Date      string         `json:"date"`
	Videos    []PostingVideo `json:"videos"`
	Complete  bool           `json:"complete"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
