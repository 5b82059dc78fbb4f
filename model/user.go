package model

// User is the single record shape for both customers and admins. IsAdmin is
// the variant discriminator; CustomerType is only meaningful on customers
// and stays off the wire for admins.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	IsAdmin      bool   `json:"isAdmin"`
	CustomerType string `json:"customerType,omitempty"`
}

type Users []User

type RegisterInput struct {
	Username     string `json:"username" validate:"required,min=3,max=50"`
	Password     string `json:"password" validate:"required,min=6,max=50"`
	Email        string `json:"email" validate:"required,email"`
	FullName     string `json:"fullName" validate:"required"`
	CustomerType string `json:"customerType" validate:"omitempty,oneof=Adult Child Senior"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
