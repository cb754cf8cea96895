package view

import (
	"context"
	"log/slog"

	"futmanager/internal/domain"
	"futmanager/internal/gateway"
	"futmanager/internal/logger"
)

// ClientRegistry owns the state of the client registry view: the listed
// clients and the registration form. Dependencies are injected; the struct
// holds no ambient state.
type ClientRegistry struct {
	api     gateway.API
	dialogs Dialogs
	log     *slog.Logger

	Clients []domain.Client
	Form    ClientForm
}

// ClientForm is the registration form state.
type ClientForm struct {
	Nome     string
	Telefone string
}

// NewClientRegistry creates the registry view state.
func NewClientRegistry(api gateway.API, dialogs Dialogs) *ClientRegistry {
	return &ClientRegistry{
		api:     api,
		dialogs: dialogs,
		log:     logger.WithView("clientes"),
	}
}

// Load replaces the client list from the API. On failure the previous list
// is kept and the error is only logged; there is no user-facing banner for
// read failures.
func (v *ClientRegistry) Load(ctx context.Context) {
	clients, err := v.api.ListClients(ctx)
	if err != nil {
		v.log.Error("failed to load clients", "error", err)
		return
	}
	v.Clients = clients
}

// SetNome updates the name field.
func (v *ClientRegistry) SetNome(value string) {
	v.Form.Nome = value
}

// SetTelefone updates the phone field.
func (v *ClientRegistry) SetTelefone(value string) {
	v.Form.Telefone = value
}

// Submit registers the client on the form. Both fields are required; an
// incomplete form is refused before any network call. On success the form is
// cleared and the list reloaded. Reports whether the client was created.
func (v *ClientRegistry) Submit(ctx context.Context) bool {
	if v.Form.Nome == "" || v.Form.Telefone == "" {
		return false
	}

	payload := domain.NewClientPayload{Nome: v.Form.Nome, Telefone: v.Form.Telefone}
	if err := v.api.CreateClient(ctx, payload); err != nil {
		v.log.Error("failed to create client", "error", err)
		v.dialogs.Alert("Erro ao cadastrar cliente.")
		return false
	}

	v.dialogs.Alert("Cliente cadastrado com sucesso!")
	v.Form = ClientForm{}
	v.Load(ctx)
	return true
}

// Delete removes a client after user confirmation. The backend refuses the
// delete while rentals reference the client; the alert does not distinguish
// that from other failures. The list only refreshes on success.
func (v *ClientRegistry) Delete(ctx context.Context, id int64) {
	if !v.dialogs.Confirm("Tem certeza que deseja excluir?") {
		return
	}

	if err := v.api.DeleteClient(ctx, id); err != nil {
		v.log.Error("failed to delete client", "client_id", id, "error", err)
		v.dialogs.Alert("Erro ao deletar (Cliente pode ter alugueis vinculados).")
		return
	}
	v.Load(ctx)
}
