package ui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"sprig/internal/driver"
)

// Run drives work under a progress view written to out. The ProgressFunc
// handed to work feeds the view; the view closes when work returns.
func Run[T any](ctx context.Context, out io.Writer, title string, files []string, work func(driver.ProgressFunc) (T, error)) (T, error) {
	events := make(chan driver.ProgressEvent, 256)
	type outcome struct {
		value T
		err   error
	}
	outcomeCh := make(chan outcome, 1)

	go func() {
		v, err := work(func(ev driver.ProgressEvent) { events <- ev })
		outcomeCh <- outcome{value: v, err: err}
		close(events)
	}()

	program := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(out), tea.WithContext(ctx), tea.WithInput(nil))
	_, uiErr := program.Run()
	if uiErr != nil {
		// вью могла выйти раньше, не даём воркерам заблокироваться на канале
		go func() {
			for range events {
			}
		}()
	}
	res := <-outcomeCh
	if uiErr != nil && res.err == nil {
		return res.value, uiErr
	}
	return res.value, res.err
}
