package domain

// ShellState represents the current step of an interactive dialog
type ShellState string

const (
	StateIdle               ShellState = "idle"
	StateWaitingWord        ShellState = "waiting_word"
	StateWaitingTranslation ShellState = "waiting_translation"
)

// StateData holds temporary data for the current dialog step
type StateData struct {
	State       ShellState
	CurrentWord string
}
