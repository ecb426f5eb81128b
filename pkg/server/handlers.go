package server

import (
	"Folio/handler"
)

type Handlers struct {
	Health   *handler.Health
	Auth     *handler.Auth
	User     *handler.User
	Book     *handler.Book
	Review   *handler.Review
	Like     *handler.Like
	Favorite *handler.Favorite
	Comment  *handler.Comment
	Admin    *handler.Admin
}
