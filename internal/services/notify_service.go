package services

import (
	"context"
	"log"

	"firebase.google.com/go/messaging"

	"jambanganBack/internal/repositories"
)

// NotifyService pushes FCM notifications to every device registered for an
// account.
type NotifyService struct {
	Client     *messaging.Client
	NotifyRepo *repositories.NotifyTokenRepository
}

func (s *NotifyService) RegisterToken(ctx context.Context, userID int, token string) error {
	return s.NotifyRepo.InsertToken(ctx, userID, token)
}

func (s *NotifyService) RemoveToken(ctx context.Context, token string) error {
	return s.NotifyRepo.DeleteToken(ctx, token)
}

func (s *NotifyService) SendToUser(ctx context.Context, userID int, title, body string) error {
	if s.Client == nil {
		return nil
	}

	tokens, err := s.NotifyRepo.GetTokensByUserID(ctx, userID)
	if err != nil {
		return err
	}

	for _, token := range tokens {
		message := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Android: &messaging.AndroidConfig{
				Priority: "high",
			},
			APNS: &messaging.APNSConfig{
				Headers: map[string]string{
					"apns-priority": "10",
				},
				Payload: &messaging.APNSPayload{
					Aps: &messaging.Aps{
						Alert: &messaging.ApsAlert{
							Title: title,
							Body:  body,
						},
						Sound: "default",
					},
				},
			},
		}

		if _, err := s.Client.Send(ctx, message); err != nil {
			log.Printf("Error sending notification to token %s: %v", token, err)
		}
	}

	return nil
}
