package model

type TokenClaim struct {
	UserID   string `json:"userID"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}
