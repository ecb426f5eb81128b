package types

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage 限制 offset，避免超大 page 溢出
	MaxPage = 10000
)

// PageQuery 通用分页参数 ?page=1&limit=20
type PageQuery struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

// Normalize 非法值回落到默认值
func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Page > MaxPage {
		q.Page = MaxPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
}

func (q *PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
