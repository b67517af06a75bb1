package repositories

import (
	"context"
	"database/sql"
	"encoding/json"

	"jambanganBack/internal/models"
)

type MapRepository struct {
	DB *sql.DB
}

func (r *MapRepository) GetAllAnnotations(ctx context.Context) ([]models.MapAnnotation, error) {
	query := `SELECT idmap, complaint_id, popup_content, coordinates FROM tblmaps`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var annotations []models.MapAnnotation
	for rows.Next() {
		var a models.MapAnnotation
		var coordinates sql.NullString
		if err := rows.Scan(&a.ID, &a.ComplaintID, &a.PopupContent, &coordinates); err != nil {
			return nil, err
		}
		if coordinates.Valid {
			a.Coordinates = json.RawMessage(coordinates.String)
		}
		annotations = append(annotations, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return annotations, nil
}

func (r *MapRepository) GetAnnotationsForRender(ctx context.Context) ([]models.MapAnnotation, error) {
	query := `SELECT coordinates, popup_content FROM tblmaps`
	return r.queryRenderRows(ctx, query)
}

func (r *MapRepository) GetAnnotationsByUserID(ctx context.Context, userID int) ([]models.MapAnnotation, error) {
	query := `
        SELECT m.coordinates, m.popup_content
        FROM tblmaps m
        JOIN tblcomplaints c ON m.complaint_id = c.idcomplaint
        WHERE c.iduser = ?
    `
	return r.queryRenderRows(ctx, query, userID)
}

func (r *MapRepository) queryRenderRows(ctx context.Context, query string, args ...any) ([]models.MapAnnotation, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var annotations []models.MapAnnotation
	for rows.Next() {
		var a models.MapAnnotation
		var coordinates sql.NullString
		if err := rows.Scan(&coordinates, &a.PopupContent); err != nil {
			return nil, err
		}
		if coordinates.Valid {
			a.Coordinates = json.RawMessage(coordinates.String)
		}
		annotations = append(annotations, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return annotations, nil
}
