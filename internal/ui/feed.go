package ui

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"simplesocial/internal/models"
	"simplesocial/internal/service"
)

const (
	emptyFeedText  = "No posts yet! Be the first to share something."
	deleteHint     = "[d] delete"
	separatorWidth = 48
)

var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

type FeedView struct {
	items    []service.FeedItem
	loaded   bool
	selected int
}

func (v FeedView) Loaded() bool { return v.loaded }

func (v FeedView) Items() []service.FeedItem { return v.items }

// SetItems replaces the posts and keeps the cursor in range.
func (v FeedView) SetItems(items []service.FeedItem) FeedView {
	v.items = items
	v.loaded = true
	if v.selected >= len(items) {
		v.selected = len(items) - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}
	return v
}

func (v FeedView) MoveUp() FeedView {
	if v.selected > 0 {
		v.selected--
	}
	return v
}

func (v FeedView) MoveDown() FeedView {
	if v.selected < len(v.items)-1 {
		v.selected++
	}
	return v
}

// Selected returns the post under the cursor.
func (v FeedView) Selected() (service.FeedItem, bool) {
	if !v.loaded || len(v.items) == 0 {
		return service.FeedItem{}, false
	}
	return v.items[v.selected], true
}

func postAge(p models.Post, now time.Time) string {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, p.CreatedAt); err == nil {
			return humanize.RelTime(t, now, "ago", "from now")
		}
	}
	return ""
}

func (v FeedView) View(s Styles, busy bool, now time.Time) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("Feed"))
	b.WriteString("\n")

	if !v.loaded {
		if busy {
			b.WriteString(s.Info.Render("Loading feed..."))
		}
		return b.String()
	}

	if len(v.items) == 0 {
		b.WriteString(s.Info.Render(emptyFeedText))
		return b.String()
	}

	for i, item := range v.items {
		b.WriteString(s.Separator.Render(strings.Repeat("─", separatorWidth)))
		b.WriteString("\n")

		cursor := "  "
		if i == v.selected {
			cursor = s.Selected.Render("> ")
		}
		b.WriteString(cursor)
		b.WriteString(s.Author.Render(item.Post.Email))
		b.WriteString(" • ")
		b.WriteString(item.Post.Date())
		if age := postAge(item.Post, now); age != "" {
			b.WriteString(s.Muted.Render(" (" + age + ")"))
		}
		if item.CanDelete {
			b.WriteString("  ")
			b.WriteString(s.Delete.Render(deleteHint))
		}
		b.WriteString("\n")

		b.WriteString("  ")
		b.WriteString(string(item.Post.FileType))
		b.WriteString(": ")
		b.WriteString(item.DisplayURL)
		b.WriteString("\n")

		if item.Post.Caption != "" {
			b.WriteString("  ")
			b.WriteString(s.Muted.Render(item.Post.Caption))
			b.WriteString("\n")
		}
	}
	return b.String()
}
