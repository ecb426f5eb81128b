package types

type BookListRequest struct {
	PageQuery
	Q    string `form:"q"`
	Tag  string `form:"tag"`
	Sort string `form:"sort"`
}

type CreateBookRequest struct {
	Title       string   `json:"title" binding:"required"`
	Author      string   `json:"author" binding:"required"`
	ISBN        string   `json:"isbn"`
	Publisher   string   `json:"publisher"`
	PublishYear int      `json:"publish_year"`
	Description string   `json:"description"`
	CoverURL    string   `json:"cover_url"`
	Tags        []string `json:"tags"`
}

// UpdateBookRequest nil 表示不修改；Tags 传空数组表示清空
type UpdateBookRequest struct {
	Title       *string   `json:"title"`
	Author      *string   `json:"author"`
	ISBN        *string   `json:"isbn"`
	Publisher   *string   `json:"publisher"`
	PublishYear *int      `json:"publish_year"`
	Description *string   `json:"description"`
	CoverURL    *string   `json:"cover_url"`
	Tags        *[]string `json:"tags"`
}

type TagListRequest struct {
	Limit int `form:"limit"`
}
