package services

import (
	"context"

	"jambanganBack/internal/models"
	"jambanganBack/internal/repositories"
)

type UmkmService struct {
	UmkmRepo *repositories.UmkmRepository
}

// CreatePost stores a listing for moderation; new posts are never approved
// on creation regardless of what the client sends.
func (s *UmkmService) CreatePost(ctx context.Context, post models.UmkmPost) error {
	post.IsApproved = false
	return s.UmkmRepo.CreatePost(ctx, post)
}

func (s *UmkmService) GetAllPosts(ctx context.Context) ([]models.UmkmPost, error) {
	return s.UmkmRepo.GetAllPosts(ctx)
}

func (s *UmkmService) GetPostByID(ctx context.Context, id int) (models.UmkmPost, error) {
	return s.UmkmRepo.GetPostByID(ctx, id)
}

func (s *UmkmService) UpdatePost(ctx context.Context, post models.UmkmPost, withImage bool) error {
	return s.UmkmRepo.UpdatePost(ctx, post, withImage)
}

func (s *UmkmService) SetApproval(ctx context.Context, id int, approved bool) error {
	return s.UmkmRepo.SetApproval(ctx, id, approved)
}

func (s *UmkmService) DeletePost(ctx context.Context, id int) error {
	return s.UmkmRepo.DeletePost(ctx, id)
}

func (s *UmkmService) GetApprovedPosts(ctx context.Context) ([]models.UmkmPost, error) {
	return s.UmkmRepo.GetApprovedPosts(ctx)
}

func (s *UmkmService) GetApprovedPostByID(ctx context.Context, id int) (models.UmkmPost, error) {
	return s.UmkmRepo.GetApprovedPostByID(ctx, id)
}
