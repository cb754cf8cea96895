package view

// Dialogs abstracts the blocking confirmation and notification prompts the
// views raise. The browser implementation maps onto window.confirm and
// window.alert; tests plug in a recording fake.
type Dialogs interface {
	// Confirm asks the user a yes/no question and blocks for the answer.
	Confirm(msg string) bool
	// Alert shows a message and blocks until dismissed.
	Alert(msg string)
}
