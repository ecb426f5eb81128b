package service

import (
	"Folio/models"
	"Folio/pkg/response"
	"Folio/types"
)

type Action string

const (
	ActionRead     Action = "read"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionModerate Action = "moderate"
)

type ResourceKind string

const (
	KindReview  ResourceKind = "review"
	KindComment ResourceKind = "comment"
	KindBook    ResourceKind = "book"
	KindUser    ResourceKind = "user"
)

// Resource 授权判断所需的最小信息
// Status 为空视为已通过审核（书籍、用户没有审核状态）
type Resource struct {
	Kind    ResourceKind
	OwnerID uint64
	Status  string
}

func ReviewResource(r *models.Review) Resource {
	return Resource{Kind: KindReview, OwnerID: r.UserID, Status: r.Status}
}

func CommentResource(c *models.ReviewComment) Resource {
	return Resource{Kind: KindComment, OwnerID: c.UserID, Status: c.Status}
}

func BookResource(b *models.Book) Resource {
	return Resource{Kind: KindBook, OwnerID: b.CreatedBy}
}

func UserResource(userID uint64) Resource {
	return Resource{Kind: KindUser, OwnerID: userID}
}

func (r Resource) approved() bool {
	return r.Status == "" || r.Status == models.ReviewStatusApproved
}

// Decision 拒绝时 Code 为 NOT_AUTHENTICATED / ACCESS_DENIED / INSUFFICIENT_PERMISSIONS
type Decision struct {
	Allowed bool
	Code    string
}

var allow = Decision{Allowed: true}

func deny(code string) Decision {
	return Decision{Code: code}
}

// Err 转成对应的业务错误，允许时返回 nil
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Code {
	case response.CodeNotAuthenticated:
		return response.Unauthenticated(d.Code, "authentication required")
	case response.CodeInsufficientPermissions:
		return response.Forbidden(d.Code, "insufficient permissions")
	default:
		return response.Forbidden(d.Code, "access denied")
	}
}

// CanPerform 纯函数，不访问存储
// 封禁用户在鉴权中间件就已被拒绝，不会走到这里
func CanPerform(actor *types.Actor, action Action, res Resource) Decision {
	if action == ActionRead {
		if res.approved() {
			return allow
		}
		if actor == nil {
			return deny(response.CodeNotAuthenticated)
		}
		if actor.ID == res.OwnerID || actor.IsAdmin() {
			return allow
		}
		return deny(response.CodeAccessDenied)
	}

	if actor == nil {
		return deny(response.CodeNotAuthenticated)
	}
	if action == ActionModerate {
		if actor.IsAdmin() {
			return allow
		}
		return deny(response.CodeInsufficientPermissions)
	}

	switch res.Kind {
	case KindBook:
		if action == ActionDelete && !actor.IsAdmin() {
			return deny(response.CodeInsufficientPermissions)
		}
		return allow
	case KindReview, KindComment, KindUser:
		if action == ActionCreate {
			return allow
		}
		if actor.ID == res.OwnerID || actor.IsAdmin() {
			return allow
		}
		return deny(response.CodeAccessDenied)
	}
	return deny(response.CodeAccessDenied)
}
