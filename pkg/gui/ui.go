package gui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/netchess/pkg/engine"
	"github.com/qnkhuat/netchess/pkg/game"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

type UI struct {
	App    *tview.Application
	Board  *tview.Table
	Status *tview.TextView
	Moves  *tview.TextView
	Top    *tview.TextView
	Bottom *tview.TextView
	Layout *tview.Grid

	theme     Theme
	players   Players
	frameRate int
	log       *zap.Logger

	// view is the orientation of the last render, used to map clicks back.
	view engine.Side
	// pending inputs, touched only from the tview event goroutine
	pending []game.Input
	failed  bool
}

func NewUI(theme Theme, players Players, frameRate int, log *zap.Logger) *UI {
	if log == nil {
		log = zap.NewNop()
	}
	if frameRate < 1 {
		frameRate = 30
	}
	app := tview.NewApplication()
	board := tview.NewTable()
	status := tview.NewTextView().SetTextColor(theme.MoveLabelFg)
	status.SetBackgroundColor(theme.MoveLabelBg)
	moves := tview.NewTextView().SetTextColor(theme.MoveBox)
	moves.SetBorder(true).SetTitle(" Moves ")
	top := tview.NewTextView().SetTextColor(theme.PlayerNames)
	bottom := tview.NewTextView().SetTextColor(theme.PlayerNames)
	help := tview.NewTextView().
		SetText("enter: select  n: new game  q/esc: quit").
		SetTextColor(theme.Msg)

	side := tview.NewGrid().
		SetRows(2, movePairs+2, -1).
		SetColumns(-1).
		AddItem(status, 0, 0, 1, 1, 0, 0, false).
		AddItem(moves, 1, 0, 1, 1, 0, 0, false).
		AddItem(help, 2, 0, 1, 1, 0, 0, false)

	layout := tview.NewGrid().
		SetRows(-1, 1, numrows+1, 1, -1).
		SetColumns(-1, 3*numcols+4, 26, -1).
		AddItem(top, 1, 1, 1, 1, 0, 0, false).
		AddItem(board, 2, 1, 1, 1, 0, 0, true).
		AddItem(bottom, 3, 1, 1, 1, 0, 0, false).
		AddItem(side, 2, 2, 1, 1, 0, 0, false)

	ui := &UI{
		App:       app,
		Board:     board,
		Status:    status,
		Moves:     moves,
		Top:       top,
		Bottom:    bottom,
		Layout:    layout,
		theme:     theme,
		players:   players,
		frameRate: frameRate,
		log:       log,
	}
	ui.initTable()
	return ui
}

func (ui *UI) initTable() {
	ui.Board.SetSelectable(true, true)
	ui.Board.Select(numrows-1, 1).SetSelectedFunc(func(row, col int) {
		if sq, ok := posToSquare(row, col, ui.view); ok {
			ui.push(game.ClickAt(sq))
		}
	})
	ui.App.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
			ui.App.Stop()
			return nil
		case ev.Rune() == 'n':
			ui.push(game.Input{Reset: true})
			return nil
		}
		return ev
	})
}

func (ui *UI) push(in game.Input) {
	ui.pending = append(ui.pending, in)
}

func (ui *UI) drain() []game.Input {
	in := ui.pending
	ui.pending = nil
	return in
}

// Render draws one frame. It must run on the tview event goroutine once the
// application is running.
func (ui *UI) Render(snap game.Snapshot) {
	ui.view = snap.View
	renderBoard(ui.Board, snap, ui.theme)
	ui.Status.SetText(statusText(snap))
	ui.Moves.SetText(moveList(snap.History))
	ui.Top.SetText(playerLine(ui.players, snap.View.Other(), snap.Turn))
	ui.Bottom.SetText(playerLine(ui.players, snap.View, snap.Turn))
}

// frame drains input, steps the game once per queued input (or once with no
// input) and renders the result.
func (ui *UI) frame(s Stepper) error {
	inputs := ui.drain()
	if len(inputs) == 0 {
		inputs = []game.Input{{}}
	}
	for _, in := range inputs {
		if err := s.Step(in); err != nil {
			return err
		}
	}
	ui.Render(s.Snapshot())
	return nil
}

// Run shows the board and drives s at the configured frame rate until the
// player quits, ctx ends or a step fails. The step error is returned.
func (ui *UI) Run(ctx context.Context, s Stepper) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	ui.Render(s.Snapshot())
	go ui.loop(ctx, s, errc)

	if err := ui.App.SetRoot(ui.Layout, true).SetFocus(ui.Board).Run(); err != nil {
		return err
	}
	select {
	case err := <-errc:
		return err
	default:
		return nil
	}
}

func (ui *UI) loop(ctx context.Context, s Stepper, errc chan<- error) {
	t := time.NewTicker(time.Second / time.Duration(ui.frameRate))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			ui.App.Stop()
			return
		case <-t.C:
			ui.App.QueueUpdateDraw(func() {
				if ui.failed {
					return
				}
				if err := ui.frame(s); err != nil {
					ui.failed = true
					ui.log.Info("game loop stopped", zap.Error(err))
					errc <- err
					ui.App.Stop()
				}
			})
		}
	}
}
