package types

const MaxBatchReviewIDs = 50

type LikeStatus struct {
	LikesCount int64 `json:"likes_count"`
	IsLiked    bool  `json:"is_liked"`
}

type BatchLikeRequest struct {
	ReviewIDs []uint64 `json:"review_ids"`
}

type FavoriteStatus struct {
	FavoritesCount int64 `json:"favorites_count"`
	IsFavorited    bool  `json:"is_favorited"`
}

// ReviewFavoriteCount 收藏排行中的书评
type ReviewFavoriteCount struct {
	ReviewID       uint64 `json:"review_id"`
	Title          string `json:"title"`
	BookID         uint64 `json:"book_id"`
	UserID         uint64 `json:"user_id"`
	FavoritesCount int64  `json:"favorites_count"`
}

// UserFavoriteCount 收藏最活跃的用户
type UserFavoriteCount struct {
	UserID         uint64 `json:"user_id"`
	Username       string `json:"username"`
	FavoritesCount int64  `json:"favorites_count"`
}

type FavoriteStats struct {
	TopReviews []ReviewFavoriteCount `json:"top_reviews"`
	TopUsers   []UserFavoriteCount   `json:"top_users"`
}
