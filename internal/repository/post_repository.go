package repository

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"simplesocial/internal/models"
	"simplesocial/internal/storage"
)

type postRepository struct {
	client *Client
}

func NewPostRepository(client *Client) PostRepository {
	return &postRepository{client: client}
}

// Feed returns the posts in the order the backend sent them.
func (r *postRepository) Feed(ctx context.Context) ([]models.Post, error) {
	req, err := r.client.newRequest(ctx, http.MethodGet, "/feed", nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.do(req)
	if err != nil {
		return nil, &NetworkError{Op: "feed", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		drain(resp)
		return nil, &NetworkError{Op: "feed", StatusCode: resp.StatusCode}
	}

	var posts []models.Post
	if err := decodeJSON(resp, &posts); err != nil {
		return nil, &NetworkError{Op: "feed", Err: err}
	}
	if posts == nil {
		posts = []models.Post{}
	}

	return posts, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (r *postRepository) Upload(ctx context.Context, media *storage.Media, caption string) error {
	if media == nil {
		return fmt.Errorf("upload: no media")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	// CreateFormFile would force application/octet-stream
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(media.Name)))
	header.Set("Content-Type", media.ContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("upload: creating file part: %w", err)
	}
	if _, err := part.Write(media.Data); err != nil {
		return fmt.Errorf("upload: writing file part: %w", err)
	}
	if err := writer.WriteField("caption", caption); err != nil {
		return fmt.Errorf("upload: writing caption: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("upload: closing form: %w", err)
	}

	req, err := r.client.newRequest(ctx, http.MethodPost, "/upload", &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := r.client.do(req)
	if err != nil {
		return &NetworkError{Op: "upload", Err: err}
	}
	drain(resp)

	if resp.StatusCode != http.StatusOK {
		return &NetworkError{Op: "upload", StatusCode: resp.StatusCode}
	}

	r.client.logger.Info("media uploaded",
		zap.String("file", media.Name),
		zap.String("content_type", media.ContentType),
		zap.Int64("size", media.Size))
	return nil
}

func (r *postRepository) Delete(ctx context.Context, postID models.PostID) error {
	if postID == "" {
		return fmt.Errorf("delete: empty post id")
	}

	req, err := r.client.newRequest(ctx, http.MethodDelete, "/posts/"+url.PathEscape(postID.String()), nil)
	if err != nil {
		return err
	}

	resp, err := r.client.do(req)
	if err != nil {
		return &NetworkError{Op: "delete", Err: err}
	}
	drain(resp)

	if resp.StatusCode != http.StatusOK {
		return &NetworkError{Op: "delete", StatusCode: resp.StatusCode}
	}

	return nil
}
