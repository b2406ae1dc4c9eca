package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"simplesocial/internal/storage"
)

type UploadView struct {
	path    textinput.Model
	caption textinput.Model
	focus   int
}

func NewUploadView() UploadView {
	path := textinput.New()
	path.Prompt = "Choose media: "
	path.Placeholder = "path/to/photo.jpg"
	path.Focus()

	caption := textinput.New()
	caption.Prompt = "Caption:      "
	caption.Placeholder = "What's on your mind?"
	caption.CharLimit = 500

	return UploadView{path: path, caption: caption}
}

func (v UploadView) Path() string {
	return strings.TrimSpace(v.path.Value())
}

func (v UploadView) Caption() string {
	return v.caption.Value()
}

func (v UploadView) Update(msg tea.Msg) (UploadView, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab":
			v.focus = (v.focus + 1) % 2
			if v.focus == 0 {
				v.caption.Blur()
				return v, v.path.Focus()
			}
			v.path.Blur()
			return v, v.caption.Focus()
		}
	}

	var cmd tea.Cmd
	if v.focus == 0 {
		v.path, cmd = v.path.Update(msg)
	} else {
		v.caption, cmd = v.caption.Update(msg)
	}
	return v, cmd
}

func (v UploadView) View(s Styles, busy bool) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("Share Something"))
	b.WriteString("\n")
	b.WriteString(v.path.View())
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("  allowed: " + strings.Join(storage.AllowedExtensions, " ")))
	b.WriteString("\n")
	b.WriteString(v.caption.View())
	b.WriteString("\n\n")

	switch {
	case busy:
		b.WriteString(s.Info.Render("Uploading..."))
	case v.Path() != "":
		b.WriteString(s.Selected.Render("[enter] Share"))
	}
	return b.String()
}
