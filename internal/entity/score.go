package entity

// Score is the cumulative counter record for one mode key. Wins and losses
// are counted from player X's side: X won, X lost, or nobody won.
type Score struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}
