package web

// Request bodies for the JSON API. Every command beyond create/join
// authenticates with the player token issued at seating time.

type createGameRequest struct {
	Mode string `json:"mode"`
	Name string `json:"name"`
	Team string `json:"team"`
}

type createGameResponse struct {
	GameID      string `json:"game_id"`
	PlayerToken string `json:"player_token"`
}

type joinGameRequest struct {
	GameID string `json:"game_id"`
	Name   string `json:"name"`
	Team   string `json:"team"`
}

type joinGameResponse struct {
	PlayerToken string `json:"player_token"`
}

type tokenRequest struct {
	PlayerToken string `json:"player_token"`
}

type actionRequest struct {
	PlayerToken string `json:"player_token"`
	Action      string `json:"action"`
	TargetID    string `json:"target_id"`
}

type blockRequest struct {
	PlayerToken string `json:"player_token"`
	BlockType   string `json:"block_type"`
}

type finishExchangeRequest struct {
	PlayerToken string `json:"player_token"`
	KeepIndices []int  `json:"keep_indices"`
}

type chooseLossRequest struct {
	PlayerToken string `json:"player_token"`
	CardIndex   int    `json:"card_index"`
}

type gameSummary struct {
	GameID     string `json:"game_id"`
	Mode       string `json:"mode"`
	NumPlayers int    `json:"num_players"`
}

type listGamesResponse struct {
	Games []gameSummary `json:"games"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
