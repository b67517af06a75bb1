package repositories

import (
	"context"
	"database/sql"

	"jambanganBack/internal/models"
)

type UmkmRepository struct {
	DB *sql.DB
}

func (r *UmkmRepository) CreatePost(ctx context.Context, post models.UmkmPost) error {
	query := `
        INSERT INTO tblumkm (content, kategori, judul, alamat, image, isApproved)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err := r.DB.ExecContext(ctx, query,
		post.Content, post.Kategori, post.Judul, post.Alamat, post.Image, post.IsApproved,
	)
	return err
}

func (r *UmkmRepository) GetAllPosts(ctx context.Context) ([]models.UmkmPost, error) {
	query := `SELECT id, content, kategori, judul, alamat, image, isApproved FROM tblumkm`
	return r.queryPosts(ctx, query)
}

func (r *UmkmRepository) GetApprovedPosts(ctx context.Context) ([]models.UmkmPost, error) {
	query := `SELECT id, content, kategori, judul, alamat, image, isApproved FROM tblumkm WHERE isApproved = ?`
	return r.queryPosts(ctx, query, true)
}

func (r *UmkmRepository) queryPosts(ctx context.Context, query string, args ...any) ([]models.UmkmPost, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.UmkmPost
	for rows.Next() {
		var post models.UmkmPost
		if err := rows.Scan(&post.ID, &post.Content, &post.Kategori, &post.Judul, &post.Alamat, &post.Image, &post.IsApproved); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *UmkmRepository) GetPostByID(ctx context.Context, id int) (models.UmkmPost, error) {
	query := `SELECT id, content, kategori, judul, alamat, image, isApproved FROM tblumkm WHERE id = ?`
	return r.scanPost(r.DB.QueryRowContext(ctx, query, id))
}

func (r *UmkmRepository) GetApprovedPostByID(ctx context.Context, id int) (models.UmkmPost, error) {
	query := `SELECT id, content, kategori, judul, alamat, image, isApproved FROM tblumkm WHERE id = ? AND isApproved = ?`
	return r.scanPost(r.DB.QueryRowContext(ctx, query, id, true))
}

func (r *UmkmRepository) scanPost(row *sql.Row) (models.UmkmPost, error) {
	var post models.UmkmPost
	err := row.Scan(&post.ID, &post.Content, &post.Kategori, &post.Judul, &post.Alamat, &post.Image, &post.IsApproved)
	if err == sql.ErrNoRows {
		return models.UmkmPost{}, models.ErrPostNotFound
	}
	if err != nil {
		return models.UmkmPost{}, err
	}
	return post, nil
}

// UpdatePost replaces the editable fields; the stored image is kept unless a
// new reference is supplied.
func (r *UmkmRepository) UpdatePost(ctx context.Context, post models.UmkmPost, withImage bool) error {
	var err error
	if withImage {
		_, err = r.DB.ExecContext(ctx,
			`UPDATE tblumkm SET judul = ?, content = ?, alamat = ?, kategori = ?, image = ? WHERE id = ?`,
			post.Judul, post.Content, post.Alamat, post.Kategori, post.Image, post.ID,
		)
	} else {
		_, err = r.DB.ExecContext(ctx,
			`UPDATE tblumkm SET judul = ?, content = ?, alamat = ?, kategori = ? WHERE id = ?`,
			post.Judul, post.Content, post.Alamat, post.Kategori, post.ID,
		)
	}
	return err
}

// SetApproval flips the moderation flag. Re-applying the same state is a
// no-op and not an error.
func (r *UmkmRepository) SetApproval(ctx context.Context, id int, approved bool) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE tblumkm SET isApproved = ? WHERE id = ?`, approved, id)
	return err
}

func (r *UmkmRepository) DeletePost(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM tblumkm WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrPostNotFound
	}
	return nil
}
