package model

type Review struct {
	ReviewID   string `json:"reviewID"`
	CustomerID string `json:"customerID"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type ReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=2000"`
}
