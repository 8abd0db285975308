package model

type Calendar struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Slug   string `json:"slug"`
	Hidden bool   `json:"hidden"`
}
