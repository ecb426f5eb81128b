package service

import (
	"Folio/models"
	"Folio/pkg/response"
	"Folio/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanPerform(t *testing.T) {
	owner := &types.Actor{ID: 1, Role: models.RoleUser}
	other := &types.Actor{ID: 2, Role: models.RoleUser}
	admin := &types.Actor{ID: 3, Role: models.RoleAdmin}

	approved := Resource{Kind: KindReview, OwnerID: 1, Status: models.ReviewStatusApproved}
	pending := Resource{Kind: KindReview, OwnerID: 1, Status: models.ReviewStatusPending}
	book := Resource{Kind: KindBook, OwnerID: 1}

	tests := []struct {
		name   string
		actor  *types.Actor
		action Action
		res    Resource
		want   Decision
	}{
		{"anonymous reads approved", nil, ActionRead, approved, allow},
		{"anonymous reads pending", nil, ActionRead, pending, deny(response.CodeNotAuthenticated)},
		{"owner reads pending", owner, ActionRead, pending, allow},
		{"other reads pending", other, ActionRead, pending, deny(response.CodeAccessDenied)},
		{"admin reads pending", admin, ActionRead, pending, allow},
		{"anonymous creates", nil, ActionCreate, Resource{Kind: KindReview}, deny(response.CodeNotAuthenticated)},
		{"user creates review", other, ActionCreate, Resource{Kind: KindReview}, allow},
		{"owner updates", owner, ActionUpdate, approved, allow},
		{"other updates", other, ActionUpdate, approved, deny(response.CodeAccessDenied)},
		{"admin deletes review", admin, ActionDelete, approved, allow},
		{"other deletes comment", other, ActionDelete, Resource{Kind: KindComment, OwnerID: 1}, deny(response.CodeAccessDenied)},
		{"user moderates", owner, ActionModerate, approved, deny(response.CodeInsufficientPermissions)},
		{"admin moderates", admin, ActionModerate, approved, allow},
		{"user updates book", other, ActionUpdate, book, allow},
		{"user deletes book", owner, ActionDelete, book, deny(response.CodeInsufficientPermissions)},
		{"admin deletes book", admin, ActionDelete, book, allow},
		{"user edits self", owner, ActionUpdate, UserResource(1), allow},
		{"user edits other", other, ActionUpdate, UserResource(1), deny(response.CodeAccessDenied)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPerform(tt.actor, tt.action, tt.res))
		})
	}
}

func TestDecision_Err(t *testing.T) {
	assert.NoError(t, allow.Err())

	var be *response.BizError
	assert.ErrorAs(t, deny(response.CodeNotAuthenticated).Err(), &be)
	assert.Equal(t, 401, be.Status)

	assert.ErrorAs(t, deny(response.CodeAccessDenied).Err(), &be)
	assert.Equal(t, 403, be.Status)
	assert.Equal(t, response.CodeAccessDenied, be.Code)

	assert.ErrorAs(t, deny(response.CodeInsufficientPermissions).Err(), &be)
	assert.Equal(t, 403, be.Status)
}
