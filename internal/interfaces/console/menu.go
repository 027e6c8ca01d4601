package console

import (
	"fmt"
	"io"
)

// Choice is a menu option number.
type Choice int

const (
	ChoiceAdd Choice = iota + 1
	ChoiceRemove
	ChoiceUpdate
	ChoiceTopRated
	ChoiceCut
	ChoiceOutput
	ChoiceQuit
)

const (
	title      = "Team Roster Manager"
	menuHeader = "Choose from the following options:"
)

var menuItems = []struct {
	choice Choice
	label  string
}{
	{ChoiceAdd, "Add player"},
	{ChoiceRemove, "Remove player"},
	{ChoiceUpdate, "Update player rating"},
	{ChoiceTopRated, "Output top rated player"},
	{ChoiceCut, "Cut roster"},
	{ChoiceOutput, "Output roster"},
	{ChoiceQuit, "Quit"},
}

func writeMenu(w io.Writer) {
	_, _ = fmt.Fprintln(w, menuHeader)
	for _, item := range menuItems {
		_, _ = fmt.Fprintf(w, "%d  %s\n", item.choice, item.label)
	}
	_, _ = fmt.Fprintln(w)
}
