// Package ui holds the go-app components of the single-page interface. All
// booking and registry behavior lives in internal/view; the components here
// only render state and forward events.
package ui

import (
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"futmanager/internal/gateway"
)

// RegisterRoutes binds the page components to their paths. Must run in both
// build targets before the app or the server starts.
func RegisterRoutes() {
	app.Route("/", func() app.Composer { return &HomePage{} })
	app.Route("/clientes", func() app.Composer { return &ClientsPage{} })
	app.Route("/alugueis", func() app.Composer { return &BookingsPage{} })
}

// newAPI builds a gateway client against the serving origin. The native
// server proxies /cliente and /Aluguel to the backend, so the UI always
// talks same-origin.
func newAPI() *gateway.Client {
	u := app.Window().URL()
	return gateway.New(u.Scheme+"://"+u.Host, 15*time.Second)
}

// shell wraps page content with the navigation header.
func shell(content app.UI) app.UI {
	return app.Div().Class("app-container").Body(
		&NavBar{},
		app.Main().Body(
			app.Div().Class("content").Body(content),
		),
	)
}
