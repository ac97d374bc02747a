package store

import (
	"context"

	"github.com/artpar/gardencenter/internal/core/domain"
)

// userRow is a user joined with its role.
type userRow struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Title    string `db:"title"`
	Email    string `db:"email"`
	Password string `db:"password"`
	RoleID   int64  `db:"role_id"`
	Admin    bool   `db:"admin"`
	Employee bool   `db:"employee"`
}

const userSelect = `
	SELECT u.id, u.name, u.title, u.email, u.password,
		COALESCE(r.id, 0) AS role_id,
		COALESCE(r.admin, 0) AS admin,
		COALESCE(r.employee, 0) AS employee
	FROM users u
	LEFT JOIN roles r ON r.user_id = u.id`

func userParams(user *domain.User) map[string]any {
	return map[string]any{
		"id":       user.ID,
		"name":     user.Name,
		"title":    user.Title,
		"email":    user.Email,
		"password": user.Password,
	}
}

func createUser(ctx context.Context, exec executor, user *domain.User) error {
	query := `
		INSERT INTO users (name, title, email, password)
		VALUES (:name, :title, :email, :password)`

	result, err := exec.NamedExecContext(ctx, query, userParams(user))
	if err != nil {
		return writeError("CreateUser", "user", 0, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return NewStoreError("CreateUser", "user", "", err.Error(), err)
	}

	roleID, err := putRole(ctx, exec, "CreateUser", id, user.Role)
	if err != nil {
		return err
	}

	user.ID = id
	user.Role.ID = roleID
	return nil
}

func getUser(ctx context.Context, exec executor, id int64) (*domain.User, error) {
	var row userRow
	if err := getOne(ctx, exec, &row, "GetUser", "user", userSelect+` WHERE u.id = ?`, id); err != nil {
		return nil, err
	}
	user := rowToUser(row)
	return &user, nil
}

func updateUser(ctx context.Context, exec executor, user *domain.User) error {
	query := `
		UPDATE users SET
			name = :name,
			title = :title,
			email = :email,
			password = :password
		WHERE id = :id`

	result, err := exec.NamedExecContext(ctx, query, userParams(user))
	if err != nil {
		return writeError("UpdateUser", "user", user.ID, err)
	}
	if err := updatedRow(result, "UpdateUser", "user", user.ID); err != nil {
		return err
	}

	roleID, err := putRole(ctx, exec, "UpdateUser", user.ID, user.Role)
	if err != nil {
		return err
	}
	user.Role.ID = roleID
	return nil
}

func deleteUser(ctx context.Context, exec executor, id int64) error {
	return deleteByID(ctx, exec, "DeleteUser", "user", "users", id)
}

func listUsers(ctx context.Context, exec executor) ([]domain.User, error) {
	var rows []userRow
	if err := exec.SelectContext(ctx, &rows, userSelect+` ORDER BY u.id`); err != nil {
		return nil, NewStoreError("ListUsers", "user", "", err.Error(), err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, rowToUser(row))
	}
	return users, nil
}

// putRole inserts or replaces the single role owned by userID and returns its id.
func putRole(ctx context.Context, exec executor, op string, userID int64, role domain.Role) (int64, error) {
	query := `
		INSERT INTO roles (user_id, admin, employee)
		VALUES (:user_id, :admin, :employee)
		ON CONFLICT(user_id) DO UPDATE SET
			admin = excluded.admin,
			employee = excluded.employee`

	_, err := exec.NamedExecContext(ctx, query, map[string]any{
		"user_id":  userID,
		"admin":    role.Admin,
		"employee": role.Employee,
	})
	if err != nil {
		return 0, writeError(op, "role", userID, err)
	}

	var id int64
	if err := exec.GetContext(ctx, &id, `SELECT id FROM roles WHERE user_id = ?`, userID); err != nil {
		return 0, NewStoreError(op, "role", idString(userID), err.Error(), err)
	}
	return id, nil
}

func rowToUser(row userRow) domain.User {
	return domain.User{
		ID:       row.ID,
		Name:     row.Name,
		Title:    row.Title,
		Email:    row.Email,
		Password: row.Password,
		Role: domain.Role{
			ID:       row.RoleID,
			Admin:    row.Admin,
			Employee: row.Employee,
		},
	}
}
