package ui

import (
	"simplesocial/internal/models"
	"simplesocial/internal/service"
)

// Results of backend actions. Each one arrives exactly once per action and
// clears the busy flag.

type loginResultMsg struct {
	user *models.User
	err  error
}

type registerResultMsg struct {
	err error
}

type feedLoadedMsg struct {
	items []service.FeedItem
	err   error
}

type uploadResultMsg struct {
	err error
}

type deleteResultMsg struct {
	postID models.PostID
	err    error
}

type flashKind int

const (
	flashNone flashKind = iota
	flashInfo
	flashSuccess
	flashError
)

// flash is the inline status line under the current view.
type flash struct {
	kind flashKind
	text string
}

func (f flash) render(s Styles) string {
	switch f.kind {
	case flashInfo:
		return s.Info.Render(f.text)
	case flashSuccess:
		return s.Success.Render(f.text)
	case flashError:
		return s.Error.Render(f.text)
	}
	return ""
}
