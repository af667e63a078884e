package types

import (
	"github.com/devhive/backend/internal/models"
)

// DevSummary is the minimal projection returned by list and search
type DevSummary struct {
	ID         string `json:"id"`
	Firstname  string `json:"firstname"`
	Middlename string `json:"middlename"`
	Lastname   string `json:"lastname"`
}

// DevProfile is the richer projection returned by get-by-id
type DevProfile struct {
	ID         string             `json:"id"`
	Username   string             `json:"username"`
	Firstname  string             `json:"firstname"`
	Middlename string             `json:"middlename"`
	Lastname   string             `json:"lastname"`
	Bio        string             `json:"bio"`
	Stacks     models.StringArray `json:"stacks"`
	Links      models.LinkList    `json:"links"`
	AvatarURL  string             `json:"avatar_url"`
}
