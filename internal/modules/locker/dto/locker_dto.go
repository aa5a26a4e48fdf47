package dto

import (
	"anphu.vn/residencehub/internal/entity"
	commonDto "anphu.vn/residencehub/pkg/dto"
)

type CreateLockerInput struct {
	Name   string  `json:"name" binding:"required,min=2,max=50"`
	UserID *string `json:"user_id" binding:"omitempty,uuid"`
}

type CreatePackageInput struct {
	Name string `json:"name" binding:"required,min=2,max=50"`
}

// UpdatePackageStatusInput accepts the status field and nothing else.
type UpdatePackageStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type PackageSearchQuery struct {
	Q        string `form:"q"`
	LockerID uint   `form:"locker_id"`
	Status   string `form:"status" binding:"omitempty,oneof=waiting received"`
	Page     int    `form:"page"`
}

type LockerListResponse struct {
	Data []entity.Locker          `json:"data"`
	Meta commonDto.PaginationMeta `json:"meta"`
}

type PackageListResponse struct {
	Data []entity.Package         `json:"data"`
	Meta commonDto.PaginationMeta `json:"meta"`
}
