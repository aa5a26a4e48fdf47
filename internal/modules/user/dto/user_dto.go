package dto

import (
	"anphu.vn/residencehub/internal/entity"
	commonDto "anphu.vn/residencehub/pkg/dto"
)

// UpdateCurrentUserInput carries the explicit set of patchable profile fields.
// Role and the superuser flag are not patchable.
type UpdateCurrentUserInput struct {
	Username *string `json:"username" form:"username"`
	Email    *string `json:"email" form:"email" binding:"omitempty,email"`
	Password *string `json:"password" form:"password" binding:"omitempty,min=8"`
}

type UserListResponse struct {
	Data []*entity.User           `json:"data"`
	Meta commonDto.PaginationMeta `json:"meta"`
}
