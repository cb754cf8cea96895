package ui

import "github.com/maxence-charriere/go-app/v10/pkg/app"

// NavBar is the stateless navigation header shared by every page.
type NavBar struct {
	app.Compo
}

func (n *NavBar) Render() app.UI {
	return app.Nav().Class("navbar").Body(
		app.H1().Text("⚽ FutManager"),
		app.Div().Class("nav-links").Body(
			app.A().Href("/").Text("Início"),
			app.A().Href("/clientes").Text("Clientes"),
			app.A().Href("/alugueis").Text("Aluguéis"),
		),
	)
}
