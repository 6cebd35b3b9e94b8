package readstore

import (
	"context"

	"resource-desk/internal/infra"
	"resource-desk/internal/infra/db"
	"resource-desk/internal/pkg/pgconv"
	"resource-desk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const findUserByIDSQL = `
SELECT id, email, role, first_name, last_name, department, status = 'Approved' AS is_active
FROM users
WHERE id = $1`

const findUserByEmailSQL = `
SELECT id, email, role, first_name, last_name, department, status = 'Approved' AS is_active, hashed_password
FROM users
WHERE email = $1`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.AuthorizedUserView, error) {
	var (
		view       queries.AuthorizedUserView
		department pgtype.Text
	)
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.FirstName, &view.LastName, &department, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	view.Department = pgconv.StringPtrFromPgtype(department)
	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view           queries.AuthorizedUserView
		department     pgtype.Text
		hashedPassword string
	)
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&view.ID, &view.Email, &view.Role, &view.FirstName, &view.LastName, &department, &view.IsActive, &hashedPassword,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	view.Department = pgconv.StringPtrFromPgtype(department)
	return &view, hashedPassword, nil
}
