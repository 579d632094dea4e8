package models

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"` // 'inspector', 'qc-lead', 'supervisor', 'manager', 'qa'
	Avatar string `json:"avatar"`
}

type Site struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type Line struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	SiteID string `json:"site_id"`
}
