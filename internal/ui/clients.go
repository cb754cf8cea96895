package ui

import (
	"strconv"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"futmanager/internal/view"
)

// ClientsPage is the client registry view: a registration form and the
// client table.
type ClientsPage struct {
	app.Compo

	registry *view.ClientRegistry
}

func (p *ClientsPage) reg() *view.ClientRegistry {
	if p.registry == nil {
		p.registry = view.NewClientRegistry(newAPI(), browserDialogs{})
	}
	return p.registry
}

func (p *ClientsPage) OnMount(ctx app.Context) {
	reg := p.reg()
	ctx.Async(func() {
		reg.Load(ctx)
		ctx.Dispatch(func(app.Context) {})
	})
}

func (p *ClientsPage) Render() app.UI {
	reg := p.reg()

	return shell(
		app.Div().Class("container").Body(
			app.Div().Class("card").Body(
				app.H2().Text("Cadastrar Cliente"),
				app.Form().OnSubmit(p.onSubmit).Body(
					app.Div().Class("form-group").Body(
						app.Label().Text("Nome Completo:"),
						app.Input().
							Type("text").
							Name("nome").
							Required(true).
							Placeholder("Ex: João Silva").
							Value(reg.Form.Nome).
							OnChange(func(ctx app.Context, e app.Event) {
								reg.SetNome(ctx.JSSrc().Get("value").String())
							}),
					),
					app.Div().Class("form-group").Body(
						app.Label().Text("Telefone:"),
						app.Input().
							Type("text").
							Name("telefone").
							Required(true).
							Placeholder("Ex: (11) 99999-9999").
							Value(reg.Form.Telefone).
							OnChange(func(ctx app.Context, e app.Event) {
								reg.SetTelefone(ctx.JSSrc().Get("value").String())
							}),
					),
					app.Button().Type("submit").Class("btn btn-primary").Text("Salvar Cliente"),
				),
			),
			app.Div().Class("card").Body(
				app.H2().Text("Lista de Clientes"),
				app.Table().Body(
					app.THead().Body(
						app.Tr().Body(
							app.Th().Text("ID"),
							app.Th().Text("Nome"),
							app.Th().Text("Telefone"),
							app.Th().Text("Ações"),
						),
					),
					app.TBody().Body(
						app.Range(reg.Clients).Slice(func(i int) app.UI {
							client := reg.Clients[i]
							return app.Tr().Body(
								app.Td().Text(strconv.FormatInt(client.ID, 10)),
								app.Td().Text(client.Nome),
								app.Td().Text(client.Telefone),
								app.Td().Body(
									app.Button().
										Class("btn btn-danger").
										Text("Excluir").
										OnClick(p.onDelete(client.ID)),
								),
							)
						}),
					),
				),
			),
		),
	)
}

func (p *ClientsPage) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	reg := p.reg()
	ctx.Async(func() {
		reg.Submit(ctx)
		ctx.Dispatch(func(app.Context) {})
	})
}

func (p *ClientsPage) onDelete(id int64) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		reg := p.reg()
		ctx.Async(func() {
			reg.Delete(ctx, id)
			ctx.Dispatch(func(app.Context) {})
		})
	}
}
