package entity

// UploadSelection is the per-user state of an upload or posting flow: which
// client/day/set/video the user is currently pointing at. Setting any level
// clears everything below it so a stale descendant can never be referenced.
type UploadSelection struct {
	ClientID string `json:"client_id"`
	DayID    string `json:"day_id"`
	SetID    string `json:"set_id"`
	VideoID  string `json:"video_id"`
}

func (s *UploadSelection) SelectClient(clientID string) {
	s.ClientID = clientID
	s.DayID = ""
	s.SetID = ""
	s.VideoID = ""
}

func (s *UploadSelection) SelectDay(dayID string) {
	s.DayID = dayID
	s.SetID = ""
	s.VideoID = ""
}

func (s *UploadSelection) SelectSet(setID string) {
	s.SetID = setID
	s.VideoID = ""
}

func (s *UploadSelection) SelectVideo(videoID string) {
	s.VideoID = videoID
}

// Complete reports whether the selection addresses a full slot path.
func (s *UploadSelection) Complete() bool {
	return s.ClientID != "" && s.DayID != "" && s.SetID != "" && s.VideoID != ""
}
