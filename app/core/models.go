package core

import (
	"time"
)

// swagger:model
type ResponseData struct {
	Status  int         `json:"status,omitempty"`
	Message string      `json:"message,omitempty"`
	Detail  string      `json:"detail,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Paging  *Paging     `json:"paging,omitempty"`
}

// swagger:model
type Model struct {
	ID        uint       `json:"id" gorm:"primary_key"`
	CreatedAt time.Time  `json:"-" `
	UpdatedAt time.Time  `json:"-" `
	DeletedAt *time.Time `json:"-" sql:"index"`
}

type Paging struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalCount int `json:"total_count"`
	TotalPage  int `json:"total_page"`
	Offset     int `json:"offset"` // Helper
	Limit      int `json:"limit"`  // Helper
}

// swagger:model
type HandleErrorData struct {
	Status  int    `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}
