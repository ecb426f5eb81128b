package service

import (
	"Folio/dao"
	"Folio/pkg/response"
	"Folio/types"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrUserNotFound    = response.NotFound(response.CodeNotFound, "user not found")
	ErrBookNotFound    = response.NotFound(response.CodeNotFound, "book not found")
	ErrReviewNotFound  = response.NotFound(response.CodeNotFound, "review not found")
	ErrCommentNotFound = response.NotFound(response.CodeNotFound, "comment not found")
)

func toPage(q *types.PageQuery) dao.Page {
	q.Normalize()
	return dao.Page{Offset: q.Offset(), Limit: q.Limit}
}

// cleanText 去掉首尾空白并按字符数校验长度
func cleanText(field, s string, min, max int) (string, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < min || n > max {
		return "", response.InvalidInput(fmt.Sprintf("%s must be %d-%d characters", field, min, max))
	}
	return s, nil
}

func nowOr(clock func() time.Time) time.Time {
	if clock != nil {
		return clock()
	}
	return time.Now()
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
