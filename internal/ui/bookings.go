package ui

import (
	"fmt"
	"strconv"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"futmanager/internal/courts"
	"futmanager/internal/domain"
	"futmanager/internal/view"
)

// BookingsPage is the booking view: the rental form and the active-rentals
// table.
type BookingsPage struct {
	app.Compo

	booking *view.BookingForm
}

func (p *BookingsPage) form() *view.BookingForm {
	if p.booking == nil {
		p.booking = view.NewBookingForm(newAPI(), browserDialogs{})
	}
	return p.booking
}

func (p *BookingsPage) OnMount(ctx app.Context) {
	form := p.form()
	ctx.Async(func() {
		form.LoadData(ctx)
		ctx.Dispatch(func(app.Context) {})
	})
}

func (p *BookingsPage) Render() app.UI {
	form := p.form()

	title := "Novo Aluguel"
	if form.Editing() {
		title = fmt.Sprintf("Editar Reserva: %d", form.EditingID())
	}

	return shell(
		app.Div().Class("container").Body(
			app.Div().Class("card").Body(
				app.H2().Text(title),
				app.Form().OnSubmit(p.onSubmit).Body(
					p.renderClientSelect(form),
					p.renderCourtSelect(form),
					app.Div().Class("form-group").Body(
						app.Label().Text("Data da Locação:"),
						app.Input().
							Type("date").
							Name("dataLocacao").
							Required(true).
							Min(view.MinDate).
							Value(form.Form.DataLocacao).
							OnChange(p.onFieldChange("dataLocacao")),
					),
					app.Div().Class("form-group").Body(
						app.Label().Text("Valor Final da Locação (R$):"),
						app.Input().
							Type("number").
							Name("preco").
							Required(true).
							Step(0.01).
							Value(form.Form.Preco).
							OnChange(p.onFieldChange("preco")),
						app.If(form.SurchargeHint(), func() app.UI {
							return app.Small().Class("surcharge-hint").
								Text(fmt.Sprintf("Acréscimo de R$ %s por mudança de data.", view.DateChangeSurcharge))
						}),
					),
					app.Button().Type("submit").Class("btn btn-primary").Text(p.submitLabel(form)),
					app.If(form.Editing(), func() app.UI {
						return app.Button().
							Type("button").
							Class("btn btn-secondary").
							Text("Cancelar Edição").
							OnClick(func(ctx app.Context, e app.Event) {
								form.CancelEdit()
							})
					}),
				),
			),
			app.Div().Class("card").Body(
				app.H2().Text("Reservas Ativas"),
				p.renderRentals(form),
			),
		),
	)
}

func (p *BookingsPage) submitLabel(form *view.BookingForm) string {
	if form.Editing() {
		return "Atualizar Reserva"
	}
	return "Confirmar Reserva"
}

func (p *BookingsPage) renderClientSelect(form *view.BookingForm) app.UI {
	return app.Div().Class("form-group").Body(
		app.Label().Text("Cliente:"),
		app.Select().
			Name("idCliente").
			Required(true).
			Disabled(form.ClientSelectorDisabled()).
			OnChange(p.onFieldChange("idCliente")).
			Body(
				app.Option().Value("").Text("Selecione um cliente...").
					Selected(form.Form.IDCliente == ""),
				app.Range(form.Clients).Slice(func(i int) app.UI {
					client := form.Clients[i]
					value := strconv.FormatInt(client.ID, 10)
					return app.Option().
						Value(value).
						Selected(form.Form.IDCliente == value).
						Text(fmt.Sprintf("%s (ID: %d)", client.Nome, client.ID))
				}),
			),
	)
}

func (p *BookingsPage) renderCourtSelect(form *view.BookingForm) app.UI {
	courtTypes := courts.All()
	return app.Div().Class("form-group").Body(
		app.Label().Text("Tipo de Quadra:"),
		app.Select().
			Name("idQuadra").
			Required(true).
			OnChange(p.onCourtChange).
			Body(
				app.Option().Value("").Text("Selecione a quadra...").
					Selected(form.Form.IDQuadra == ""),
				app.Range(courtTypes).Slice(func(i int) app.UI {
					ct := courtTypes[i]
					value := strconv.FormatInt(ct.ID, 10)
					return app.Option().
						Value(value).
						Selected(form.Form.IDQuadra == value).
						Text(ct.OptionLabel())
				}),
			),
	)
}

func (p *BookingsPage) renderRentals(form *view.BookingForm) app.UI {
	return app.Table().Body(
		app.THead().Body(
			app.Tr().Body(
				app.Th().Text("ID Locação"),
				app.Th().Text("Cliente (ID)"),
				app.Th().Text("Quadra"),
				app.Th().Text("Data"),
				app.Th().Text("Preço"),
				app.Th().Text("Ações"),
			),
		),
		app.TBody().Body(
			app.Range(form.Rentals).Slice(func(i int) app.UI {
				rental := form.Rentals[i]
				return app.Tr().Body(
					app.Td().Text(strconv.FormatInt(rental.ID, 10)),
					app.Td().Text(strconv.FormatInt(rental.IDCliente, 10)),
					app.Td().Text(courts.Label(rental.IDQuadra)),
					app.Td().Text(domain.FormatDisplayDate(rental.DataLocacao)),
					app.Td().Text("R$ "+rental.Preco.String()),
					app.Td().Body(
						app.Button().
							Class("btn btn-info").
							Text("Editar").
							OnClick(p.onEdit(rental)),
						app.Button().
							Class("btn btn-danger").
							Text("Cancelar").
							OnClick(p.onCancelRental(rental.ID)),
					),
				)
			}),
		),
	)
}

func (p *BookingsPage) onFieldChange(name string) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		p.form().FieldChange(name, ctx.JSSrc().Get("value").String())
	}
}

func (p *BookingsPage) onCourtChange(ctx app.Context, e app.Event) {
	p.form().CourtChange(ctx.JSSrc().Get("value").String())
}

func (p *BookingsPage) onEdit(rental domain.Rental) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		p.form().SelectForEdit(rental)
	}
}

func (p *BookingsPage) onCancelRental(id int64) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		form := p.form()
		ctx.Async(func() {
			form.CancelRental(ctx, id)
			ctx.Dispatch(func(app.Context) {})
		})
	}
}

func (p *BookingsPage) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	form := p.form()
	ctx.Async(func() {
		form.Submit(ctx)
		ctx.Dispatch(func(app.Context) {})
	})
}
