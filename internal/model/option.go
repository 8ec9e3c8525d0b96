package model

// Option is an id + display-label pair for relationship pickers.
type Option struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}
