package services

import (
	"context"
	"log"
	"time"

	"jambanganBack/internal/models"
	"jambanganBack/internal/repositories"
)

type ResponseService struct {
	ResponseRepo  *repositories.ResponseRepository
	ComplaintRepo *repositories.ComplaintRepository
	Notify        *NotifyService
}

// CreateResponse stores an administrative reply and optionally moves the
// parent complaint to the supplied status. The submitter of the complaint is
// notified on their registered devices; notification failures do not fail
// the request.
func (s *ResponseService) CreateResponse(ctx context.Context, complaintID int, text, status, imageURL string) error {
	resp := models.ComplaintResponse{
		ComplaintID:   complaintID,
		Text:          text,
		ImageURL:      imageURL,
		DateResponses: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.ResponseRepo.CreateResponse(ctx, resp, status); err != nil {
		return err
	}

	if s.Notify != nil {
		complaint, err := s.ComplaintRepo.GetComplaintByID(ctx, complaintID)
		if err != nil {
			log.Printf("notify: complaint %d lookup failed: %v", complaintID, err)
			return nil
		}
		if err := s.Notify.SendToUser(ctx, complaint.UserID, "Aduan Anda mendapat respon", text); err != nil {
			log.Printf("notify: push to user %d failed: %v", complaint.UserID, err)
		}
	}

	return nil
}

func (s *ResponseService) GetResponsesByComplaintID(ctx context.Context, complaintID int) ([]models.ComplaintResponse, error) {
	return s.ResponseRepo.GetResponsesByComplaintID(ctx, complaintID)
}

func (s *ResponseService) GetAllResponses(ctx context.Context) ([]models.ComplaintResponse, error) {
	return s.ResponseRepo.GetAllResponses(ctx)
}
