package types

import "Folio/models"

// Actor 当前请求的身份，匿名请求为 nil
type Actor struct {
	ID       uint64
	Username string
	Role     string
	Status   string
}

func ActorFromUser(u *models.User) *Actor {
	return &Actor{ID: u.ID, Username: u.Username, Role: u.Role, Status: u.Status}
}

func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == models.RoleAdmin
}

// IDOrZero 匿名返回 0
func (a *Actor) IDOrZero() uint64 {
	if a == nil {
		return 0
	}
	return a.ID
}
