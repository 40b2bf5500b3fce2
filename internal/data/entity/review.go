package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	Content string     `db:"content"`
	Rating  float64    `db:"rating"` // 0-10
	MovieID *uuid.UUID `db:"movie_id"`
	UserID  uuid.UUID  `db:"user_id"`
}
