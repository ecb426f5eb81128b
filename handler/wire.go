package handler

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(Auth), "*"),
	wire.Struct(new(User), "*"),
	wire.Struct(new(Book), "*"),
	wire.Struct(new(Review), "*"),
	wire.Struct(new(Like), "*"),
	wire.Struct(new(Favorite), "*"),
	wire.Struct(new(Comment), "*"),
	wire.Struct(new(Admin), "*"),
	wire.Struct(new(Health), "*"),
)
