// Package ui contains the Bubble Tea program that powers the editor.
// The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own input translation, rendering,
// and dialog handling.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update forwards input to the active dialog first (open-file browser or
//     save-as form). When no dialog is on screen, the message is routed
//     through a typed handler registry so each tea.Msg is handled by a
//     focused function (key presses, resizes, session results, clipboard
//     outcomes).
//   - Key handling (internal/ui/input.go) translates presses into session
//     intents; the controller decides what, if anything, needs file I/O and
//     answers with an effect that dispatchEffect turns into a tea.Cmd.
//
// State ownership:
//   - Document state (buffer, current path, last error, in-flight count)
//     lives in internal/session.Controller. The model never mutates it
//     directly; it applies intents and resolves results.
//   - Open-dialog list state lives in internal/ui/state.List, which tracks
//     entries, fuzzy filtering, selection, and viewport calculations.
//
// File dialogs:
//   - Gateway operations that need an interactive pick park on a
//     dialog.Bridge. waitForDialogRequest surfaces each parked pick as a
//     dialogRequestMsg; the model shows the matching dialog and resolves or
//     cancels the pick when the user commits or dismisses it. The gateway
//     goroutine stays blocked for the whole exchange, so the pick, the read
//     or write, and the final session result remain one unit of work.
//
// This separation keeps Model.Update compact and makes it easier to test
// independent concerns (editing, dialogs, async results) without needing to
// reason about the entire TUI at once.
package ui
