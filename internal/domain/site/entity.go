package site

import "time"

type Site struct {
	ID        string
	Name      string
	Location  *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
