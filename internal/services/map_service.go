package services

import (
	"context"
	"encoding/json"

	"jambanganBack/internal/models"
	"jambanganBack/internal/repositories"
)

type MapService struct {
	MapRepo *repositories.MapRepository
}

func (s *MapService) GetAllAnnotations(ctx context.Context) ([]models.MapAnnotation, error) {
	return s.MapRepo.GetAllAnnotations(ctx)
}

func (s *MapService) GetMapPoints(ctx context.Context) ([]models.MapPoint, error) {
	annotations, err := s.MapRepo.GetAnnotationsForRender(ctx)
	if err != nil {
		return nil, err
	}
	return buildMapPoints(annotations), nil
}

func (s *MapService) GetMapPointsByUserID(ctx context.Context, userID int) ([]models.MapPoint, error) {
	annotations, err := s.MapRepo.GetAnnotationsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildMapPoints(annotations), nil
}

// buildMapPoints turns stored annotations into render payloads, dropping
// rows whose geometry is absent or not valid JSON.
func buildMapPoints(annotations []models.MapAnnotation) []models.MapPoint {
	points := make([]models.MapPoint, 0, len(annotations))
	for _, a := range annotations {
		if len(a.Coordinates) == 0 || !json.Valid(a.Coordinates) {
			continue
		}
		points = append(points, models.MapPoint{
			Coordinates:  a.Coordinates,
			PopupContent: a.PopupContent,
		})
	}
	return points
}
