// Package teaui hosts the Bubble Tea program for the remap TUI.
package teaui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/remap/pkg/app"
	"tableflip.dev/remap/pkg/codec"
	"tableflip.dev/remap/pkg/mindmap"
	"tableflip.dev/remap/pkg/nav"
	"tableflip.dev/remap/pkg/search"
	"tableflip.dev/remap/pkg/store"
	"tableflip.dev/remap/pkg/tui/components/help"
	"tableflip.dev/remap/pkg/tui/components/toast"
	"tableflip.dev/remap/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modePrompt
	modeConfirm
	modeSearch
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionCreate
	actionRename
)

const (
	maxSearchResults = 10
	maxDigitKeys     = 9
	helpLine         = "c create · r rename · d delete · f find · n/p select · N/P sibling · enter/esc in/out · ? help · q quit"
)

// Model contains UI state
type Model struct {
	svc    *app.Service
	ctx    context.Context
	cancel context.CancelFunc
	mode   mode
	action action

	input   textinput.Model
	pending *nav.DeleteRequest
	results []search.Match

	toasts  toast.Model
	toastCh []tea.Cmd
	help    *help.Model

	// copyText puts text on the system clipboard.
	copyText func(string) error

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	termWidth  int
	termHeight int

	theme theme.Theme
}

// New creates a new UI model backed by the Service. The model becomes the
// service's notifier.
func New(svc *app.Service, notifyDelay time.Duration) *Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Prompt = ""

	th := theme.Default()
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		svc:      svc,
		ctx:      ctx,
		cancel:   cancel,
		mode:     modeNormal,
		input:    ti,
		toasts:   toast.New(th.Toast, notifyDelay),
		theme:    th,
		copyText: clipboard.WriteAll,
	}
	if svc != nil {
		svc.SetNotifier(m)
	}
	return m
}

// Show queues a notification; its expiry command is flushed on the next
// Update.
func (m *Model) Show(message string) {
	m.toastCh = append(m.toastCh, m.toasts.Push(message))
}

// Init starts watching storage for outside edits.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.svc)
}

type errMsg struct {
	err error
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) handleWatchEvent(ev store.Event) {
	if ev.Type == store.EventWatchError {
		m.Show("Watching the store failed")
		return
	}
	replaced, err := m.svc.Reload()
	if codec.IsMalformed(err) {
		m.Show("Stored tree is malformed, keeping this one")
		return
	}
	if err != nil {
		m.Show("ERR: " + err.Error())
		return
	}
	if replaced {
		m.resetMode()
		m.Show("Reloaded from disk")
	}
}

// Update handles one message at a time; every controller call completes,
// including its write, before the next message is read.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.input.SetWidth(max(10, msg.Width-16))
		if m.help != nil {
			m.help.SetSize(msg.Width, msg.Height-2)
		}
	case errMsg:
		m.Show("ERR: " + msg.err.Error())
	case toast.ExpiredMsg:
		m.toasts.Update(msg)
	case watchStartedMsg:
		if msg.err != nil {
			m.Show("watch unavailable: " + msg.err.Error())
			break
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		m.handleWatchEvent(msg.event)
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.watchCh = nil
	case tea.KeyPressMsg:
		if m.handleKeyPress(msg, &cmds) {
			m.stopWatch()
			m.cancel()
			return m, tea.Quit
		}
	}

	cmds = append(cmds, m.toastCh...)
	m.toastCh = nil
	return m, tea.Batch(cmds...)
}

// handleKeyPress routes a key by mode and reports whether to quit.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch m.mode {
	case modePrompt:
		m.handlePromptKey(msg, cmds)
	case modeConfirm:
		m.handleConfirmKey(msg, cmds)
	case modeSearch:
		m.handleSearchKey(msg, cmds)
	case modeHelp:
		m.handleHelpKey(msg, cmds)
	default:
		return m.handleNormalKey(msg, cmds)
	}
	return false
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return true
	case "c":
		m.beginPrompt(actionCreate, "", cmds)
	case "r":
		view := m.svc.View()
		target := view.Selected
		if target == nil {
			target = view.Focused
		}
		m.beginPrompt(actionRename, target.Name(), cmds)
	case "d":
		m.beginDelete(cmds)
	case "t":
		m.do(func(c *nav.Controller) error {
			c.CreateSampleChildren()
			return nil
		})
	case "esc":
		m.do(func(c *nav.Controller) error {
			c.FocusParent()
			return nil
		})
	case "enter":
		m.do(func(c *nav.Controller) error {
			c.FocusSelected()
			return nil
		})
	case "n", "j", "down":
		m.do(func(c *nav.Controller) error {
			c.SelectNext()
			return nil
		})
	case "p", "k", "up":
		m.do(func(c *nav.Controller) error {
			c.SelectPrevious()
			return nil
		})
	case "N", "J":
		m.do(ignoreNavError((*nav.Controller).FocusNextSibling))
	case "P", "K":
		m.do(ignoreNavError((*nav.Controller).FocusPreviousSibling))
	case "f":
		m.beginSearch(cmds)
	case "y":
		m.copySelectedPath()
	case "?":
		m.openHelp()
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= maxDigitKeys {
			m.focusNth(n - 1)
		}
	}
	return false
}

// ignoreNavError drops the errors the controller has already surfaced as a
// notification.
func ignoreNavError(fn func(*nav.Controller) error) func(*nav.Controller) error {
	return func(c *nav.Controller) error {
		if err := fn(c); err != nil && !mindmap.IsNoSiblings(err) {
			return err
		}
		return nil
	}
}

// focusNth focuses the nth visible child, the keyboard stand-in for a click.
func (m *Model) focusNth(i int) {
	m.do(func(c *nav.Controller) error {
		node := c.Focused().Child(i)
		if node == nil {
			return nil
		}
		return c.FocusNode(node)
	})
}

func (m *Model) do(fn func(*nav.Controller) error) {
	if m.svc == nil {
		return
	}
	if err := m.svc.Do(fn); err != nil {
		m.Show("ERR: " + err.Error())
	}
}

func (m *Model) beginPrompt(a action, value string, cmds *[]tea.Cmd) {
	m.mode = modePrompt
	m.action = a
	m.input.Reset()
	m.input.Placeholder = "name"
	m.input.SetValue(value)
	m.input.CursorEnd()
	*cmds = append(*cmds, m.input.Focus(), textinput.Blink)
}

func (m *Model) handlePromptKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		a := m.action
		m.resetMode()
		switch a {
		case actionCreate:
			m.do(func(c *nav.Controller) error {
				c.CreateChild(value)
				return nil
			})
		case actionRename:
			m.do(func(c *nav.Controller) error {
				c.RenameTarget(value)
				return nil
			})
		}
	case "esc":
		m.resetMode()
	default:
		m.updateInput(msg, cmds)
	}
}

func (m *Model) beginDelete(cmds *[]tea.Cmd) {
	var req *nav.DeleteRequest
	err := m.svc.Do(func(c *nav.Controller) error {
		var err error
		req, err = c.DeleteFocused()
		return err
	})
	if err != nil {
		// Refusals are already shown by the controller.
		if !mindmap.IsRootDeletion(err) {
			m.Show("ERR: " + err.Error())
		}
		return
	}
	m.pending = req
	m.mode = modeConfirm
	m.input.Reset()
	m.input.Placeholder = "type yes"
	*cmds = append(*cmds, m.input.Focus(), textinput.Blink)
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		approved := strings.EqualFold(strings.TrimSpace(m.input.Value()), "yes")
		m.resolveDelete(approved)
	case "esc":
		m.resolveDelete(false)
	default:
		m.updateInput(msg, cmds)
	}
}

func (m *Model) resolveDelete(approved bool) {
	req := m.pending
	m.pending = nil
	m.resetMode()
	if req == nil {
		return
	}
	m.do(func(*nav.Controller) error {
		return req.Resolve(approved)
	})
	if !approved {
		m.Show("Delete cancelled")
	}
}

func (m *Model) beginSearch(cmds *[]tea.Cmd) {
	m.mode = modeSearch
	m.input.Reset()
	m.input.Placeholder = "find"
	m.results = m.svc.Find("", maxSearchResults)
	*cmds = append(*cmds, m.input.Focus(), textinput.Blink)
}

func (m *Model) handleSearchKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		results := m.results
		m.resetMode()
		if len(results) == 0 {
			m.Show("No matches")
			return
		}
		m.do(func(c *nav.Controller) error {
			return c.FocusNode(results[0].Node)
		})
	case "esc":
		m.resetMode()
	default:
		m.updateInput(msg, cmds)
		m.results = m.svc.Find(m.input.Value(), maxSearchResults)
	}
}

func (m *Model) copySelectedPath() {
	view := m.svc.View()
	target := view.Selected
	if target == nil {
		target = view.Focused
	}
	if m.copyText == nil {
		return
	}
	if err := m.copyText(target.Path()); err != nil {
		m.Show("ERR: " + err.Error())
		return
	}
	m.Show("Copied " + target.Path())
}

func (m *Model) openHelp() {
	width, height := m.termWidth, m.termHeight-2
	if m.help == nil {
		m.help = help.New(width, height)
	} else {
		m.help.SetSize(width, height)
	}
	m.mode = modeHelp
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		m.resetMode()
	default:
		if cmd := m.help.Update(msg); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	}
}

func (m *Model) updateInput(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) resetMode() {
	m.mode = modeNormal
	m.action = actionNone
	m.results = nil
	m.input.Blur()
	m.input.Reset()
	if m.pending != nil {
		_ = m.svc.Do(func(*nav.Controller) error {
			return m.pending.Resolve(false)
		})
		m.pending = nil
	}
}

// View renders the breadcrumb, the focused node and its children, then the
// active prompt and any toasts.
func (m *Model) View() string {
	if m.svc == nil {
		return "no session\n"
	}
	if m.mode == modeHelp && m.help != nil {
		return m.help.View() + "\n" + m.theme.Footer.Help.Render("? or esc to close")
	}
	view := m.svc.View()
	sections := []string{
		m.renderBreadcrumb(view.Focused),
		m.theme.Outline.Focused.Render(m.fit(view.Focused.Name(), 0)),
		m.renderChildren(view),
		"",
		m.renderFooter(),
	}
	if t := m.toasts.View(); t != "" {
		sections = append(sections, t)
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderBreadcrumb(focused *mindmap.Node) string {
	chain := focused.Ancestors()
	if len(chain) <= 1 {
		return m.theme.Outline.Breadcrumb.Render("·")
	}
	parts := make([]string, 0, len(chain)-1)
	for _, n := range chain[:len(chain)-1] {
		parts = append(parts, m.theme.Outline.Breadcrumb.Render(n.Name()))
	}
	sep := m.theme.Outline.Separator.Render(" " + mindmap.PathSeparator + " ")
	return m.fit(strings.Join(parts, sep), 0)
}

func (m *Model) renderChildren(view nav.View) string {
	if len(view.Children) == 0 {
		return m.theme.Outline.Empty.Render("  (no children, press c to add one)")
	}
	depth := view.Focused.Depth() + 1
	limit := len(view.Children)
	if m.termHeight > 0 {
		if room := m.termHeight - 8; room > 0 && room < limit {
			limit = room
		}
	}
	lines := make([]string, 0, limit+1)
	for i, child := range view.Children[:limit] {
		idx := "  "
		if i < maxDigitKeys {
			idx = strconv.Itoa(i+1) + " "
		}
		marker := "  "
		style := m.theme.Depth(depth)
		if child == view.Selected {
			marker = "→ "
			style = m.theme.Outline.Selected
		}
		name := m.fit(child.Name(), 6)
		if n := child.Len(); n > 0 {
			name += m.theme.Outline.Index.Render(fmt.Sprintf(" (%d)", n))
		}
		lines = append(lines, marker+m.theme.Outline.Index.Render(idx)+style.Render(name))
	}
	if rest := len(view.Children) - limit; rest > 0 {
		lines = append(lines, m.theme.Outline.Empty.Render(fmt.Sprintf("  … %d more", rest)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	switch m.mode {
	case modePrompt:
		label := "New child: "
		if m.action == actionRename {
			label = "Rename: "
		}
		return m.theme.Prompt.Label.Render(label) + m.input.View() +
			"\n" + m.theme.Prompt.Hint.Render("enter to accept · esc to cancel")
	case modeConfirm:
		name := ""
		if m.pending != nil {
			name = m.pending.Target().Name()
		}
		return m.theme.Prompt.Label.Render(fmt.Sprintf("Delete %q and its children? ", name)) + m.input.View() +
			"\n" + m.theme.Prompt.Hint.Render("type yes and enter · esc to cancel")
	case modeSearch:
		lines := []string{m.theme.Prompt.Label.Render("Find: ") + m.input.View()}
		for i, r := range m.results {
			line := m.theme.Prompt.Result.Render(r.Name()) + "  " + m.theme.Prompt.Path.Render(r.Path)
			if i == 0 {
				line = "→ " + line
			} else {
				line = "  " + line
			}
			lines = append(lines, m.fit(line, 0))
		}
		if m.input.Value() != "" && len(m.results) == 0 {
			lines = append(lines, m.theme.Prompt.Hint.Render("  no matches"))
		}
		return strings.Join(lines, "\n")
	default:
		return m.theme.Footer.Help.Render(m.fit(helpLine, 0))
	}
}

// fit truncates s to the terminal width minus reserve columns.
func (m *Model) fit(s string, reserve int) string {
	if m.termWidth <= 0 {
		return s
	}
	width := m.termWidth - reserve
	if width < 4 {
		width = 4
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// Run launches the program and blocks until the user quits.
func Run(svc *app.Service, notifyDelay time.Duration) error {
	p := tea.NewProgram(New(svc, notifyDelay), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
