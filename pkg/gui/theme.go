package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for coloring the board and the panels around it
type Theme struct {
	Name        string
	MoveLabelBg tcell.Color // status line
	MoveLabelFg tcell.Color
	SquareDark  tcell.Color
	SquareLight tcell.Color
	SquareHigh  tcell.Color // selected piece
	SquareHint  tcell.Color // legal destinations
	SquareLast  tcell.Color // last move
	SquareCheck tcell.Color
	White       tcell.Color
	Black       tcell.Color
	Msg         tcell.Color // key help
	Rank        tcell.Color
	File        tcell.Color
	PlayerNames tcell.Color
	MoveBox     tcell.Color
}

// ThemeHex is the config file form of a Theme. Colors are names or #rrggbb.
type ThemeHex struct {
	Name        string `yaml:"name"`
	MoveLabelBg string `yaml:"moveLabelBg"`
	MoveLabelFg string `yaml:"moveLabelFg"`
	SquareDark  string `yaml:"squareDark"`
	SquareLight string `yaml:"squareLight"`
	SquareHigh  string `yaml:"squareHigh"`
	SquareHint  string `yaml:"squareHint"`
	SquareLast  string `yaml:"squareLast"`
	SquareCheck string `yaml:"squareCheck"`
	White       string `yaml:"white"`
	Black       string `yaml:"black"`
	Msg         string `yaml:"msg"`
	Rank        string `yaml:"rank"`
	File        string `yaml:"file"`
	PlayerNames string `yaml:"playerNames"`
	MoveBox     string `yaml:"moveBox"`
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		Name:        t.Name,
		MoveLabelBg: tcell.GetColor(t.MoveLabelBg),
		MoveLabelFg: tcell.GetColor(t.MoveLabelFg),
		SquareDark:  tcell.GetColor(t.SquareDark),
		SquareLight: tcell.GetColor(t.SquareLight),
		SquareHigh:  tcell.GetColor(t.SquareHigh),
		SquareHint:  tcell.GetColor(t.SquareHint),
		SquareLast:  tcell.GetColor(t.SquareLast),
		SquareCheck: tcell.GetColor(t.SquareCheck),
		White:       tcell.GetColor(t.White),
		Black:       tcell.GetColor(t.Black),
		Msg:         tcell.GetColor(t.Msg),
		Rank:        tcell.GetColor(t.Rank),
		File:        tcell.GetColor(t.File),
		PlayerNames: tcell.GetColor(t.PlayerNames),
		MoveBox:     tcell.GetColor(t.MoveBox),
	}
}

var ErrUnknownTheme = errors.New("theme: no theme found")

// LookupTheme returns the theme called want, checking custom themes before
// the built in ones
func LookupTheme(want string, custom []ThemeHex) (Theme, error) {
	for _, t := range custom {
		if t.Name == want {
			return t.Theme(), nil
		}
	}
	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, want)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name:        "basic",
	MoveLabelBg: tcell.Color252,
	MoveLabelFg: tcell.ColorBlack,
	SquareDark:  tcell.Color188,
	SquareLight: tcell.Color230,
	SquareHigh:  tcell.Color226,
	SquareHint:  tcell.Color223,
	SquareLast:  tcell.Color187,
	SquareCheck: tcell.Color218,
	White:       tcell.Color232,
	Black:       tcell.Color232,
	Msg:         tcell.Color160,
	Rank:        tcell.Color247,
	File:        tcell.Color247,
	PlayerNames: tcell.ColorDefault,
	MoveBox:     tcell.ColorDefault,
}

// ThemeGreen mimics the board most online sites ship with
var ThemeGreen = Theme{
	Name:        "green",
	MoveLabelBg: tcell.Color65,
	MoveLabelFg: tcell.ColorWhite,
	SquareDark:  tcell.Color65,
	SquareLight: tcell.Color230,
	SquareHigh:  tcell.Color185,
	SquareHint:  tcell.Color151,
	SquareLast:  tcell.Color143,
	SquareCheck: tcell.Color167,
	White:       tcell.Color232,
	Black:       tcell.Color232,
	Msg:         tcell.Color167,
	Rank:        tcell.Color247,
	File:        tcell.Color247,
	PlayerNames: tcell.ColorDefault,
	MoveBox:     tcell.ColorDefault,
}

var Themes = []Theme{ThemeBasic, ThemeGreen}
