package repositories

import (
	"context"
	"database/sql"

	"jambanganBack/internal/models"
)

type ComplaintRepository struct {
	DB *sql.DB
}

// CreateComplaintWithMap inserts the complaint row and its map annotation in
// one transaction, so a failed map insert can never leave an orphaned
// complaint behind. Returns the generated complaint id.
func (r *ComplaintRepository) CreateComplaintWithMap(ctx context.Context, c models.Complaint, popupContent string, coordinates []byte) (int, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO tblcomplaints (text, alamat, image_url, type, status, date, keterangan, iduser)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `
	result, err := tx.ExecContext(ctx, query,
		c.Text, c.Alamat, c.ImageURL, c.Type, c.Status, c.Date, c.Keterangan, c.UserID,
	)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO tblmaps (complaint_id, popup_content, coordinates) VALUES (?, ?, ?)`,
		id, popupContent, coordinates,
	)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(id), nil
}

func (r *ComplaintRepository) GetAllComplaints(ctx context.Context) ([]models.Complaint, error) {
	query := `
        SELECT c.idcomplaint, c.type, c.text, c.alamat, c.image_url, c.date, c.status, u.iduser, u.username
        FROM tblcomplaints c
        JOIN tbluser u ON c.iduser = u.iduser
    `
	return r.queryComplaints(ctx, query)
}

func (r *ComplaintRepository) GetComplaintsByUserID(ctx context.Context, userID int) ([]models.Complaint, error) {
	query := `
        SELECT c.idcomplaint, c.type, c.text, c.alamat, c.image_url, c.date, c.status, u.iduser, u.username
        FROM tblcomplaints c
        JOIN tbluser u ON c.iduser = u.iduser
        WHERE c.iduser = ?
    `
	return r.queryComplaints(ctx, query, userID)
}

func (r *ComplaintRepository) queryComplaints(ctx context.Context, query string, args ...any) ([]models.Complaint, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []models.Complaint
	for rows.Next() {
		var c models.Complaint
		if err := rows.Scan(&c.ID, &c.Type, &c.Text, &c.Alamat, &c.ImageURL, &c.Date, &c.Status, &c.UserID, &c.Username); err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *ComplaintRepository) GetComplaintByID(ctx context.Context, id int) (models.Complaint, error) {
	var c models.Complaint
	var keterangan sql.NullString
	query := `
        SELECT idcomplaint, text, alamat, image_url, type, status, date, keterangan, iduser
        FROM tblcomplaints
        WHERE idcomplaint = ?
    `
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Text, &c.Alamat, &c.ImageURL, &c.Type, &c.Status, &c.Date, &keterangan, &c.UserID,
	)
	if err == sql.ErrNoRows {
		return models.Complaint{}, models.ErrComplaintNotFound
	}
	if err != nil {
		return models.Complaint{}, err
	}
	c.Keterangan = keterangan.String
	return c, nil
}

// GetReportData counts all complaints and those no longer awaiting a
// response. A nil userID aggregates over every account.
func (r *ComplaintRepository) GetReportData(ctx context.Context, userID *int) (models.ReportData, error) {
	var data models.ReportData

	totalQuery := `SELECT COUNT(*) FROM tblcomplaints`
	respondedQuery := `SELECT COUNT(*) FROM tblcomplaints WHERE status != ?`
	args := []any{}
	if userID != nil {
		totalQuery += ` WHERE iduser = ?`
		respondedQuery += ` AND iduser = ?`
		args = append(args, *userID)
	}

	if err := r.DB.QueryRowContext(ctx, totalQuery, args...).Scan(&data.TotalReports); err != nil {
		return models.ReportData{}, err
	}

	respondedArgs := append([]any{models.StatusAwaitingResponse}, args...)
	if err := r.DB.QueryRowContext(ctx, respondedQuery, respondedArgs...).Scan(&data.RespondedReports); err != nil {
		return models.ReportData{}, err
	}

	return data, nil
}
