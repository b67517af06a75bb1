package repositories

import (
	"context"
	"database/sql"

	"jambanganBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	query := `SELECT iduser, username, password, level, aktif FROM tbluser`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Password, &user.Level, &user.Aktif); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser checks username uniqueness and inserts in a single transaction,
// so two concurrent registrations cannot both pass the check.
func (r *UserRepository) CreateUser(ctx context.Context, user models.User) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var existing int
	err = tx.QueryRowContext(ctx, `SELECT iduser FROM tbluser WHERE username = ?`, user.Username).Scan(&existing)
	if err == nil {
		return models.ErrDuplicateUsername
	}
	if err != sql.ErrNoRows {
		return err
	}

	query := `INSERT INTO tbluser (username, password, level, aktif) VALUES (?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query, user.Username, user.Password, user.Level, user.Aktif)
	if err != nil {
		if isDuplicateEntryError(err) {
			return models.ErrDuplicateUsername
		}
		return err
	}

	return tx.Commit()
}

// UpdateUser renames an account and, when hashedPassword is non-empty, also
// replaces the stored hash. Uniqueness is checked excluding the account
// itself, inside the same transaction as the update.
func (r *UserRepository) UpdateUser(ctx context.Context, id int, username, hashedPassword string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var existing int
	err = tx.QueryRowContext(ctx, `SELECT iduser FROM tbluser WHERE username = ? AND iduser <> ?`, username, id).Scan(&existing)
	if err == nil {
		return models.ErrDuplicateUsername
	}
	if err != sql.ErrNoRows {
		return err
	}

	if hashedPassword != "" {
		_, err = tx.ExecContext(ctx, `UPDATE tbluser SET username = ?, password = ? WHERE iduser = ?`, username, hashedPassword, id)
	} else {
		_, err = tx.ExecContext(ctx, `UPDATE tbluser SET username = ? WHERE iduser = ?`, username, id)
	}
	if err != nil {
		if isDuplicateEntryError(err) {
			return models.ErrDuplicateUsername
		}
		return err
	}

	return tx.Commit()
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM tbluser WHERE iduser = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// GetUserByUsername matches case-sensitively, the same way the login flow
// always has.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	query := `SELECT iduser, username, password, level, aktif FROM tbluser WHERE BINARY username = ?`
	err := r.DB.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.Level, &user.Aktif,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// SetAktif toggles the online flag that login/logout maintain. The driver
// reports changed rows rather than matched rows, so a no-op update is
// distinguished from a missing account with a follow-up existence check.
func (r *UserRepository) SetAktif(ctx context.Context, id, aktif int) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE tbluser SET aktif = ? WHERE iduser = ?`, aktif, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		var existing int
		err = r.DB.QueryRowContext(ctx, `SELECT iduser FROM tbluser WHERE iduser = ?`, id).Scan(&existing)
		if err == sql.ErrNoRows {
			return models.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (r *UserRepository) HasPosts(ctx context.Context, userID int) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM tblcomplaints WHERE iduser = ?`, userID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
