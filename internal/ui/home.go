package ui

import "github.com/maxence-charriere/go-app/v10/pkg/app"

// HomePage is the welcome view.
type HomePage struct {
	app.Compo
}

func (h *HomePage) Render() app.UI {
	return shell(
		app.Div().Class("welcome-hero").Body(
			app.H1().Body(
				app.Text("Bem-vindo ao "),
				app.Span().Text("FutManager"),
			),
			app.P().Text("O sistema definitivo para gerenciar suas quadras de futebol."),
			app.Div().Class("hero-actions").Body(
				app.Button().
					Class("btn btn-primary").
					Text("Gerenciar Clientes").
					OnClick(func(ctx app.Context, e app.Event) {
						ctx.Navigate("/clientes")
					}),
				app.Button().
					Class("btn btn-primary").
					Text("Novo Aluguel").
					OnClick(func(ctx app.Context, e app.Event) {
						ctx.Navigate("/alugueis")
					}),
			),
		),
	)
}
