package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"simplesocial/internal/config"
	"simplesocial/internal/models"
	"simplesocial/internal/repository"
	"simplesocial/internal/storage"
	"simplesocial/internal/transform"
)

// FeedItem is a post prepared for display. It is rebuilt on every load.
type FeedItem struct {
	Post       models.Post
	DisplayURL string
	CanDelete  bool
	URLError   error
}

type PostService interface {
	Feed(ctx context.Context) ([]FeedItem, error)
	Upload(ctx context.Context, path, caption string) error
	Delete(ctx context.Context, postID models.PostID) error
}

type postService struct {
	postRepo repository.PostRepository
	cfg      *config.Config
	logger   *zap.Logger
}

func NewPostService(postRepo repository.PostRepository, cfg *config.Config, logger *zap.Logger) PostService {
	return &postService{
		postRepo: postRepo,
		cfg:      cfg,
		logger:   logger,
	}
}

// BuildFeedItems keeps the server order. Images are shown untouched and videos
// letterboxed; the caption becomes an overlay for both.
func BuildFeedItems(posts []models.Post) []FeedItem {
	items := make([]FeedItem, 0, len(posts))
	for _, post := range posts {
		item := FeedItem{
			Post:      post,
			CanDelete: post.IsOwner,
		}

		displayURL, err := transform.BuildURL(post.URL, transform.ParamsFor(post.FileType), post.Caption)
		if err != nil {
			item.DisplayURL = post.URL
			item.URLError = err
		} else {
			item.DisplayURL = displayURL
		}

		items = append(items, item)
	}
	return items
}

func (p *postService) Feed(ctx context.Context) ([]FeedItem, error) {
	posts, err := p.postRepo.Feed(ctx)
	if err != nil {
		return nil, err
	}

	items := BuildFeedItems(posts)
	for _, item := range items {
		if item.URLError != nil {
			p.logger.Warn("cannot transform media url", zap.String("post_id", item.Post.ID.String()), zap.Error(item.URLError))
		}
	}

	return items, nil
}

func (p *postService) Upload(ctx context.Context, path, caption string) error {
	media, err := storage.LoadMedia(path, p.cfg.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("preparing upload: %w", err)
	}

	return p.postRepo.Upload(ctx, media, caption)
}

func (p *postService) Delete(ctx context.Context, postID models.PostID) error {
	if err := p.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	p.logger.Info("post deleted", zap.String("post_id", postID.String()))
	return nil
}
