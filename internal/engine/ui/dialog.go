package ui

import (
	"errors"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/sphere-explorer/internal/logger"
)

// SaveDialog asks for a save path without blocking the render loop. The
// channel yields one path, or closes empty if the user cancels. Poll it from
// the main thread.
func SaveDialog(title, filterDesc string, extensions ...string) <-chan string {
	out := make(chan string, 1)
	go func() {
		defer close(out)
		path, err := dialog.File().
			Filter(filterDesc, extensions...).
			Filter("All Files", "*").
			Title(title).
			Save()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				logger.Warn("file dialog failed", zap.String("title", title), zap.Error(err))
			}
			return
		}
		out <- path
	}()
	return out
}

// PollPath returns the chosen path once the dialog is done. ok is false
// while the dialog is still open; the channel is set to nil when it finishes.
func PollPath(ch *<-chan string) (path string, ok bool) {
	if *ch == nil {
		return "", false
	}
	select {
	case p := <-*ch:
		*ch = nil
		return p, p != ""
	default:
		return "", false
	}
}
