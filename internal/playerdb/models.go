package playerdb

// PlayerResponse is the envelope returned by the PlayerDB lookup endpoint.
type PlayerResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Success bool   `json:"success"`
	Data    struct {
		Player *PlayerData `json:"player"`
	} `json:"data"`
}

// PlayerData is the nested player record inside a PlayerResponse.
type PlayerData struct {
	ID       string `json:"id"`
	RawID    string `json:"raw_id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Identity is a resolved player: the stable opaque id plus the canonical username.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
