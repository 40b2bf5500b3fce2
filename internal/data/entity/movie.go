package entity

type Movie struct {
	Base
	Title       string  `db:"title"`
	Genre       string  `db:"genre"`
	Description *string `db:"description"`
	ImageURL    *string `db:"image_url"`
}
