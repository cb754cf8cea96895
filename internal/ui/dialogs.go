package ui

import "github.com/maxence-charriere/go-app/v10/pkg/app"

// browserDialogs implements view.Dialogs on the browser's native blocking
// prompts.
type browserDialogs struct{}

func (browserDialogs) Confirm(msg string) bool {
	return app.Window().Call("confirm", msg).Bool()
}

func (browserDialogs) Alert(msg string) {
	app.Window().Call("alert", msg)
}
