package repositories

import (
	"context"
	"database/sql"

	"jambanganBack/internal/models"
)

type ResponseRepository struct {
	DB *sql.DB
}

// CreateResponse inserts the response and, when status is non-empty, updates
// the parent complaint's workflow status in the same transaction.
func (r *ResponseRepository) CreateResponse(ctx context.Context, resp models.ComplaintResponse, status string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO tblcomplaint_responses (complaint_id, text, image_url, date_responses)
        VALUES (?, ?, ?, ?)
    `
	_, err = tx.ExecContext(ctx, query, resp.ComplaintID, resp.Text, resp.ImageURL, resp.DateResponses)
	if err != nil {
		if isForeignKeyConstraintError(err) {
			return models.ErrComplaintNotFound
		}
		return err
	}

	if status != "" {
		result, err := tx.ExecContext(ctx,
			`UPDATE tblcomplaints SET status = ? WHERE idcomplaint = ?`, status, resp.ComplaintID)
		if err != nil {
			return err
		}
		if _, err := result.RowsAffected(); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *ResponseRepository) GetResponsesByComplaintID(ctx context.Context, complaintID int) ([]models.ComplaintResponse, error) {
	query := `
        SELECT idresponse, complaint_id, text, image_url, date_responses
        FROM tblcomplaint_responses
        WHERE complaint_id = ?
    `
	return r.queryResponses(ctx, query, complaintID)
}

func (r *ResponseRepository) GetAllResponses(ctx context.Context) ([]models.ComplaintResponse, error) {
	query := `
        SELECT idresponse, complaint_id, text, image_url, date_responses
        FROM tblcomplaint_responses
    `
	return r.queryResponses(ctx, query)
}

func (r *ResponseRepository) queryResponses(ctx context.Context, query string, args ...any) ([]models.ComplaintResponse, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var responses []models.ComplaintResponse
	for rows.Next() {
		var resp models.ComplaintResponse
		var imageURL sql.NullString
		if err := rows.Scan(&resp.ID, &resp.ComplaintID, &resp.Text, &imageURL, &resp.DateResponses); err != nil {
			return nil, err
		}
		resp.ImageURL = imageURL.String
		responses = append(responses, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return responses, nil
}
