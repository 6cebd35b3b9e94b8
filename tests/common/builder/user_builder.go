//go:build unit || e2e

package builder

import (
	"resource-desk/internal/domain/user"
	"resource-desk/internal/usecase/queries"
	"resource-desk/internal/usecase/shared"
)

type UserBuilder struct {
	ID         int64
	Email      string
	Role       string
	FirstName  string
	LastName   string
	Department *string
	IsActive   bool
}

func NewUserBuilder() *UserBuilder {
	dept := "General Services"
	return &UserBuilder{
		ID:         1,
		Email:      "test@example.com",
		Role:       "admin",
		FirstName:  "Test",
		LastName:   "User",
		Department: &dept,
		IsActive:   true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:         u.ID,
		Email:      u.Email,
		Role:       u.Role,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Department: u.Department,
		IsActive:   u.IsActive,
	}
}

func (u *UserBuilder) BuildActor() shared.Actor {
	return shared.Actor{
		UserID: u.ID,
		Email:  u.Email,
		Role:   user.Role(u.Role),
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
