package ui

import (
	"github.com/charmbracelet/huh"
)

// PickTheme shows an interactive selector over the given theme names and
// returns the chosen one. Blocks until the user confirms or cancels;
// cancellation surfaces as huh.ErrUserAborted.
func PickTheme(names []string) (string, error) {
	if len(names) == 0 {
		return "", nil
	}

	selected := names[0]
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick a theme").
				Options(huh.NewOptions(names...)...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}
