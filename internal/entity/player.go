package entity

type Player struct {
	ID     string `json:"id"`
	Mark   string `json:"mark,omitempty"`
	GameID string `json:"game_id,omitempty"`
	Bot    bool   `json:"bot,omitempty"`
}

func NewBotPlayer(gameID string) *Player {
	return &Player{
		ID:     "bot:" + gameID,
		GameID: gameID,
		Bot:    true,
	}
}

func (that *Player) IsBot() bool {
	return that.Bot
}
