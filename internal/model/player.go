package model

// Player identifies a seated or queued player.
type Player struct {
	ID    string
	Color Color
}

// ClientPlayer is the player view sent to clients. TimeUsed is think time
// in tenths of a second; nothing times out, it is display only.
type ClientPlayer struct {
	ID       string `json:"name"`
	Color    Color  `json:"color"`
	TimeUsed int    `json:"timeUsed"`
}
