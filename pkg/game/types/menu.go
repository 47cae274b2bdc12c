package types

type MenuOption int

const (
	MenuOptionStartGame MenuOption = iota
	MenuOptionOptions
	MenuOptionExit

	menuOptionCount
)

// MenuOptions lists the title menu entries in display order.
var MenuOptions = []MenuOption{MenuOptionStartGame, MenuOptionOptions, MenuOptionExit}

func (o MenuOption) String() string {
	switch o {
	case MenuOptionStartGame:
		return "Start Game"
	case MenuOptionOptions:
		return "Options"
	case MenuOptionExit:
		return "Exit"
	}
	return "Unknown"
}

func (o MenuOption) Next() MenuOption {
	return (o + 1) % menuOptionCount
}

func (o MenuOption) Prev() MenuOption {
	return (o + menuOptionCount - 1) % menuOptionCount
}
