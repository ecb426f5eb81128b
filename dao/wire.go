package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUserDAO,
	NewBookDAO,
	NewTagDAO,
	NewReviewDAO,
	NewLikeDAO,
	NewFavoriteDAO,
	NewCommentDAO,
	NewSystemLogDAO,
	NewCounterDAO,
)
