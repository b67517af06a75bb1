package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"jambanganBack/internal/models"
	"jambanganBack/internal/repositories"
)

type ComplaintService struct {
	ComplaintRepo *repositories.ComplaintRepository
	Cache         *redis.Client
}

const reportCacheTTL = 30 * time.Second

// normalizeComplaintStatus fills in the waiting-state sentinel when a client
// omits the status on submission, so report counters never see empty values.
func normalizeComplaintStatus(status string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return models.StatusAwaitingResponse
	}
	return status
}

func jakartaNow() string {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.FixedZone("WIB", 7*60*60)
	}
	return time.Now().In(loc).Format("2006-01-02 15:04:05")
}

// CreateComplaint stamps the submission server-side and stores the complaint
// together with its map annotation. Returns the generated complaint id.
func (s *ComplaintService) CreateComplaint(ctx context.Context, c models.Complaint, popupContent string, coordinates []byte) (int, error) {
	c.Status = normalizeComplaintStatus(c.Status)
	c.Date = jakartaNow()
	return s.ComplaintRepo.CreateComplaintWithMap(ctx, c, popupContent, coordinates)
}

func (s *ComplaintService) GetAllComplaints(ctx context.Context) ([]models.Complaint, error) {
	return s.ComplaintRepo.GetAllComplaints(ctx)
}

func (s *ComplaintService) GetComplaintByID(ctx context.Context, id int) (models.Complaint, error) {
	return s.ComplaintRepo.GetComplaintByID(ctx, id)
}

func (s *ComplaintService) GetComplaintsByUserID(ctx context.Context, userID int) ([]models.Complaint, error) {
	return s.ComplaintRepo.GetComplaintsByUserID(ctx, userID)
}

// GetReportData returns the total/responded counters, served from a short
// redis cache when one is configured. A nil userID aggregates platform-wide.
func (s *ComplaintService) GetReportData(ctx context.Context, userID *int) (models.ReportData, error) {
	key := "reportData:all"
	if userID != nil {
		key = fmt.Sprintf("reportData:user:%d", *userID)
	}

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key).Result()
		if err == nil {
			var data models.ReportData
			if err := json.Unmarshal([]byte(cached), &data); err == nil {
				return data, nil
			}
		} else if err != redis.Nil {
			log.Printf("report cache read failed: %v", err)
		}
	}

	data, err := s.ComplaintRepo.GetReportData(ctx, userID)
	if err != nil {
		return models.ReportData{}, err
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(data); err == nil {
			if err := s.Cache.Set(ctx, key, payload, reportCacheTTL).Err(); err != nil {
				log.Printf("report cache write failed: %v", err)
			}
		}
	}

	return data, nil
}
