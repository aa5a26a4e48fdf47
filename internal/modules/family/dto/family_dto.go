package dto

import "anphu.vn/residencehub/internal/entity"

type RegisterFamilyInput struct {
	Name       string `json:"name" binding:"required,min=2,max=50"`
	NationalID string `json:"national_id" binding:"required,min=9,max=50"`
	Phone      string `json:"phone" binding:"required,min=9,max=15"`
}

type FamilyListResponse struct {
	Data []entity.ResidentFamily `json:"data"`
}
