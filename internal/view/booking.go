package view

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"futmanager/internal/courts"
	"futmanager/internal/domain"
	"futmanager/internal/gateway"
	"futmanager/internal/logger"
)

const (
	// MinDate is the earliest date a court may be rented for.
	MinDate = "2025-12-16"

	// DateChangeSurcharge is added once when an existing rental's date is
	// moved away from its original value.
	DateChangeSurcharge = domain.Preco(5000)
)

// BookingForm owns the state of the booking view: the reference lists, the
// rental form and the edit-mode snapshot. It runs in two modes, create (no
// rental selected) and edit (an existing rental loaded into the form).
type BookingForm struct {
	api     gateway.API
	dialogs Dialogs
	log     *slog.Logger

	Clients []domain.Client
	Rentals []domain.Rental

	Form RentalForm

	editing       *domain.Rental
	precoOriginal domain.Preco
}

// RentalForm is the booking form state. Selections and the price are kept as
// the input text; the price always carries two decimals once touched by the
// pricing rules.
type RentalForm struct {
	IDCliente   string
	IDQuadra    string
	DataLocacao string
	Preco       string
}

func defaultRentalForm() RentalForm {
	return RentalForm{DataLocacao: MinDate, Preco: domain.Preco(0).String()}
}

// NewBookingForm creates the booking view state in create mode.
func NewBookingForm(api gateway.API, dialogs Dialogs) *BookingForm {
	return &BookingForm{
		api:     api,
		dialogs: dialogs,
		log:     logger.WithView("alugueis"),
		Form:    defaultRentalForm(),
	}
}

// Editing reports whether a rental is loaded for modification.
func (v *BookingForm) Editing() bool {
	return v.editing != nil
}

// EditingID returns the id of the rental being edited, or zero in create mode.
func (v *BookingForm) EditingID() int64 {
	if v.editing == nil {
		return 0
	}
	return v.editing.ID
}

// PrecoOriginal returns the price snapshot taken when edit mode was entered.
func (v *BookingForm) PrecoOriginal() domain.Preco {
	return v.precoOriginal
}

// LoadData fetches clients and rentals in parallel and replaces both lists
// together. When no rental is being edited the form is reset to its defaults.
// On failure both lists are cleared so a partial display never shows up.
func (v *BookingForm) LoadData(ctx context.Context) {
	clients, rentals, err := v.api.ListAll(ctx)
	if err != nil {
		v.log.Error("failed to load view data", "error", err)
		v.Clients = nil
		v.Rentals = nil
		return
	}

	v.Clients = clients
	v.Rentals = rentals

	if v.editing == nil {
		v.Form = defaultRentalForm()
	}
}

// SelectForEdit enters edit mode for the given rental, snapshotting its
// current price as the reference for the surcharge rule.
func (v *BookingForm) SelectForEdit(r domain.Rental) {
	rental := r
	v.editing = &rental
	v.precoOriginal = r.Preco

	v.Form = RentalForm{
		IDCliente:   strconv.FormatInt(r.IDCliente, 10),
		IDQuadra:    strconv.FormatInt(r.IDQuadra, 10),
		DataLocacao: domain.DateForInput(r.DataLocacao),
		Preco:       r.Preco.String(),
	}
}

// CancelEdit leaves edit mode and resets the form and the price snapshot.
func (v *BookingForm) CancelEdit() {
	v.editing = nil
	v.precoOriginal = 0
	v.Form = defaultRentalForm()
}

// CourtChange handles a court-type selection. In create mode the price
// follows the selected court's base price, falling back to zero when the
// selection is cleared. In edit mode a failed lookup keeps the snapshotted
// original price instead, so clearing the selector cannot clobber the price.
func (v *BookingForm) CourtChange(raw string) {
	v.Form.IDQuadra = raw

	id, err := strconv.ParseInt(raw, 10, 64)
	ct, ok := courts.Lookup(id)
	if err != nil {
		ok = false
	}

	if v.editing != nil {
		if ok {
			v.Form.Preco = ct.Preco.String()
		} else {
			v.Form.Preco = v.precoOriginal.String()
		}
		return
	}

	if ok {
		v.Form.Preco = ct.Preco.String()
	} else {
		v.Form.Preco = domain.Preco(0).String()
	}
}

// FieldChange applies a generic form field update. While editing, a change
// to the date field runs the surcharge rule:
//
//   - date moved away from the rental's original date while the price still
//     equals the snapshot: add the surcharge once and notify the user;
//   - date back to the original value: restore the snapshotted price;
//   - price already altered by hand: leave it alone.
//
// The guard on "price still equals the snapshot" makes the rule depend on
// the order fields are touched in; that behavior is kept as-is.
func (v *BookingForm) FieldChange(name, value string) {
	switch name {
	case "idCliente":
		v.Form.IDCliente = value
	case "idQuadra":
		v.Form.IDQuadra = value
	case "dataLocacao":
		v.Form.DataLocacao = value
	case "preco":
		v.Form.Preco = value
	}

	if v.editing == nil || name != "dataLocacao" {
		return
	}

	originalDate := domain.DateForInput(v.editing.DataLocacao)
	if value == originalDate {
		v.Form.Preco = v.precoOriginal.String()
		return
	}

	current, err := domain.ParsePreco(v.Form.Preco)
	if err != nil {
		return
	}
	if current == v.precoOriginal {
		surcharged := v.precoOriginal.Add(DateChangeSurcharge)
		v.Form.Preco = surcharged.String()
		v.dialogs.Alert(fmt.Sprintf("Data alterada! Acréscimo de R$ %s aplicado ao preço.", DateChangeSurcharge))
		return
	}
	// Normalize manually entered price text to two decimals.
	v.Form.Preco = current.String()
}

// Submit validates the form and sends the rental to the API, as an update
// keyed by the edited rental's id or as a new booking. Reports whether the
// rental was saved.
func (v *BookingForm) Submit(ctx context.Context) bool {
	// Defensive re-check; the date input already enforces the same bound.
	if v.Form.DataLocacao < MinDate {
		v.dialogs.Alert(fmt.Sprintf("A data mínima permitida é %s. Por favor, selecione uma data válida.", domain.FormatDisplayDate(MinDate)))
		return false
	}

	idQuadra, _ := strconv.ParseInt(v.Form.IDQuadra, 10, 64)
	idCliente, _ := strconv.ParseInt(v.Form.IDCliente, 10, 64)
	preco, _ := domain.ParsePreco(v.Form.Preco)

	payload := domain.RentalPayload{
		IDQuadra:    idQuadra,
		IDCliente:   idCliente,
		DataLocacao: v.Form.DataLocacao,
		Preco:       preco,
	}

	if v.editing != nil {
		id := v.editing.ID
		if err := v.api.UpdateRental(ctx, id, payload); err != nil {
			v.log.Error("failed to update rental", "rental_id", id, "error", err)
			v.dialogs.Alert(gateway.MessageOr(err, "Erro ao salvar locação."))
			return false
		}
		v.dialogs.Alert(fmt.Sprintf("Reserva %d atualizada com sucesso!", id))
	} else {
		if err := v.api.CreateRental(ctx, payload); err != nil {
			v.log.Error("failed to create rental", "error", err)
			v.dialogs.Alert(gateway.MessageOr(err, "Erro ao salvar locação."))
			return false
		}
		v.dialogs.Alert("Reserva realizada com sucesso!")
	}

	v.CancelEdit()
	v.LoadData(ctx)
	return true
}

// CancelRental cancels a rental after user confirmation. The list reloads
// only when the delete succeeded.
func (v *BookingForm) CancelRental(ctx context.Context, id int64) {
	if !v.dialogs.Confirm("Cancelar esta reserva?") {
		return
	}

	if err := v.api.DeleteRental(ctx, id); err != nil {
		v.log.Error("failed to cancel rental", "rental_id", id, "error", err)
		v.dialogs.Alert("Erro ao cancelar reserva.")
		return
	}
	v.LoadData(ctx)
}

// ClientSelectorDisabled reports whether the client selector is locked. A
// rental's client cannot be reassigned once the rental exists.
func (v *BookingForm) ClientSelectorDisabled() bool {
	return v.editing != nil
}

// SurchargeHint reports whether the form should hint that the current price
// exceeds the snapshotted original, i.e. the surcharge likely applied.
func (v *BookingForm) SurchargeHint() bool {
	if v.editing == nil {
		return false
	}
	current, err := domain.ParsePreco(v.Form.Preco)
	if err != nil {
		return false
	}
	return current > v.precoOriginal
}
