package dto

type CreateApartmentInput struct {
	UserID     *string `json:"user_id" binding:"omitempty,uuid"`
	Floor      string  `json:"floor" binding:"required"`
	UnitNumber string  `json:"unit_number" binding:"required,max=255"`
	Type       string  `json:"type" binding:"required,oneof=1 2 3 4 5"`
}

type CreateContractInput struct {
	Name        string  `json:"name" binding:"required,min=2,max=50"`
	Body        string  `json:"body"`
	ApartmentID uint    `json:"apartment_id" binding:"required"`
	UserID      string  `json:"user_id" binding:"required,uuid"`
	Deposit     float64 `json:"deposit" binding:"gte=0"`
}
