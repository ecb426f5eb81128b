package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(CounterService), "*"),

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(ProfileService), "*"),
	wire.Bind(new(IProfileService), new(*ProfileService)),

	wire.Struct(new(BookService), "*"),
	wire.Bind(new(IBookService), new(*BookService)),

	wire.Struct(new(TagService), "*"),
	wire.Bind(new(ITagService), new(*TagService)),

	wire.Struct(new(ReviewService), "*"),
	wire.Bind(new(IReviewService), new(*ReviewService)),

	wire.Struct(new(ViewService), "*"),
	wire.Bind(new(IViewService), new(*ViewService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(FavoriteService), "*"),
	wire.Bind(new(IFavoriteService), new(*FavoriteService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	wire.Struct(new(AdminService), "*"),
	wire.Bind(new(IAdminService), new(*AdminService)),
)
