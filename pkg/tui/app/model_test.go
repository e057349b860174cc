package teaui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/remap/pkg/app"
	"tableflip.dev/remap/pkg/logging"
	"tableflip.dev/remap/pkg/store"
)

type fakePersistence struct {
	data   map[string]string
	writes int
}

func (f *fakePersistence) Get(key string) (string, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakePersistence) Set(key, value string) error {
	f.writes++
	f.data[key] = value
	return nil
}

func (f *fakePersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, nil
}

func (f *fakePersistence) BasePath() string { return "fake" }

const seeded = `{"name":"root","children":[{"name":"A","children":[]},{"name":"B","children":[]},{"name":"C","children":[{"name":"C1","children":[]}]}]}`

func newTestModel(t *testing.T) (*Model, *fakePersistence) {
	t.Helper()
	fp := &fakePersistence{data: map[string]string{store.DefaultKey: seeded}}
	repo := &store.Repository{KV: fp, Key: store.DefaultKey, Log: logging.Discard()}
	svc, err := app.New(repo, app.Options{Log: logging.Discard()})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	m := New(svc, time.Second)
	m.termWidth = 80
	m.termHeight = 24
	return m, fp
}

func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	}
	r := []rune(key)[0]
	return tea.KeyPressMsg{Text: key, Code: r}
}

func press(m *Model, keys ...string) tea.Cmd {
	var last tea.Cmd
	for _, k := range keys {
		_, last = m.Update(keyMsg(k))
	}
	return last
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(keyMsg(string(r)))
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestViewRendersFocusedChildrenAndSelection(t *testing.T) {
	m, _ := newTestModel(t)
	view := stripANSI(m.View())
	for _, want := range []string{"root", "→ 1 A", "  2 B", "  3 C (1)", "c create"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view=%q", want, view)
		}
	}
}

func TestCreateChildThroughPrompt(t *testing.T) {
	m, fp := newTestModel(t)
	press(m, "c")
	if m.mode != modePrompt {
		t.Fatalf("expected prompt mode")
	}
	typeText(m, "D")
	press(m, "enter")

	v := m.svc.View()
	if len(v.Children) != 4 || v.Selected == nil || v.Selected.Name() != "D" {
		t.Fatalf("expected D created and selected, got %+v", v)
	}
	if fp.writes != 1 {
		t.Fatalf("expected one write, got %d", fp.writes)
	}
	if m.mode != modeNormal {
		t.Fatalf("expected normal mode after enter")
	}
}

func TestCancelledPromptCreatesNothing(t *testing.T) {
	m, fp := newTestModel(t)
	press(m, "c")
	typeText(m, "zzz")
	press(m, "esc")
	press(m, "c", "enter")
	if len(m.svc.View().Children) != 3 || fp.writes != 0 {
		t.Fatalf("cancelled or empty prompt changed the tree")
	}
}

func TestRenameSelected(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "r")
	if m.input.Value() != "A" {
		t.Fatalf("expected prompt prefilled with A, got %q", m.input.Value())
	}
	m.input.SetValue("")
	typeText(m, "alpha")
	press(m, "enter")
	if m.svc.View().Selected.Name() != "alpha" {
		t.Fatalf("rename not applied")
	}
}

func TestNavigationKeys(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "p")
	if m.svc.View().Selected.Name() != "C" {
		t.Fatalf("expected wrap to C")
	}
	press(m, "enter")
	if v := m.svc.View(); v.Focused.Name() != "C" || v.Selected.Name() != "C1" {
		t.Fatalf("expected focus C/C1, got %v/%v", v.Focused, v.Selected)
	}
	if !strings.Contains(stripANSI(m.View()), "root") {
		t.Fatalf("expected breadcrumb to show root")
	}
	press(m, "P")
	if m.svc.View().Focused.Name() != "B" {
		t.Fatalf("expected previous sibling B, got %v", m.svc.View().Focused)
	}
	press(m, "esc")
	if m.svc.View().Focused.Name() != "root" {
		t.Fatalf("expected focus back at root")
	}
	press(m, "3")
	if m.svc.View().Focused.Name() != "C" {
		t.Fatalf("expected digit 3 to focus C")
	}
	press(m, "9")
	if m.svc.View().Focused.Name() != "C" {
		t.Fatalf("digit past the children must be ignored")
	}
}

func TestNoSiblingsToast(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := press(m, "N")
	got := m.toasts.Messages()
	if len(got) != 1 || got[0] != "No siblings" {
		t.Fatalf("expected no-siblings toast, got %v", got)
	}
	if cmd == nil {
		t.Fatalf("expected an expiry command for the toast")
	}
}

func TestDeleteRootRefused(t *testing.T) {
	m, fp := newTestModel(t)
	press(m, "d")
	if m.mode != modeNormal {
		t.Fatalf("root delete must not ask for confirmation")
	}
	got := m.toasts.Messages()
	if len(got) != 1 || got[0] != "Cannot delete root" {
		t.Fatalf("expected refusal toast, got %v", got)
	}
	if fp.writes != 0 || len(m.svc.View().Children) != 3 {
		t.Fatalf("root delete changed state")
	}
}

func TestDeleteConfirmed(t *testing.T) {
	m, fp := newTestModel(t)
	press(m, "3", "d")
	if m.mode != modeConfirm {
		t.Fatalf("expected confirmation mode")
	}
	if !strings.Contains(stripANSI(m.View()), `Delete "C"`) {
		t.Fatalf("expected confirmation prompt for C")
	}
	typeText(m, "yes")
	press(m, "enter")

	v := m.svc.View()
	if v.Focused.Name() != "root" || len(v.Children) != 2 {
		t.Fatalf("expected C removed and focus on root, got %v with %d children", v.Focused, len(v.Children))
	}
	if fp.writes != 1 {
		t.Fatalf("expected one write, got %d", fp.writes)
	}
}

func TestDeleteDeclined(t *testing.T) {
	m, fp := newTestModel(t)
	press(m, "2", "d")
	typeText(m, "no")
	press(m, "enter")
	if m.svc.View().Focused.Name() != "B" || fp.writes != 0 {
		t.Fatalf("declined delete changed state")
	}
	press(m, "d", "esc")
	if m.svc.View().Focused.Name() != "B" || fp.writes != 0 {
		t.Fatalf("cancelled delete changed state")
	}
	if got := m.toasts.Messages(); len(got) != 2 || got[1] != "Delete cancelled" {
		t.Fatalf("expected cancel toasts, got %v", got)
	}
}

func TestSearchFocusesFirstResult(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "f")
	typeText(m, "C1")
	if len(m.results) != 1 {
		t.Fatalf("expected one result, got %d", len(m.results))
	}
	if !strings.Contains(stripANSI(m.View()), "root / C / C1") {
		t.Fatalf("expected result path in view")
	}
	press(m, "enter")
	if m.svc.View().Focused.Name() != "C1" {
		t.Fatalf("expected focus on C1")
	}
}

func TestSearchNoMatches(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "f")
	typeText(m, "zz")
	press(m, "enter")
	if got := m.toasts.Messages(); len(got) != 1 || got[0] != "No matches" {
		t.Fatalf("expected no-matches toast, got %v", got)
	}
}

func TestSampleChildren(t *testing.T) {
	m, fp := newTestModel(t)
	press(m, "t")
	v := m.svc.View()
	if len(v.Children) != 6 || v.Selected.Name() != "fake 3" {
		t.Fatalf("expected samples appended, got %d children", len(v.Children))
	}
	if fp.writes != 3 {
		t.Fatalf("expected one write per sample, got %d", fp.writes)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := press(m, "q")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestReloadOnWatchEvent(t *testing.T) {
	m, fp := newTestModel(t)
	fp.data[store.DefaultKey] = `{"name":"elsewhere","children":[]}`
	m.Update(watchEventMsg{event: store.Event{Type: store.EventTreeChanged}})
	if m.svc.View().Focused.Name() != "elsewhere" {
		t.Fatalf("expected reload from storage")
	}
	if got := m.toasts.Messages(); len(got) != 1 || got[0] != "Reloaded from disk" {
		t.Fatalf("expected reload toast, got %v", got)
	}
}

func TestCopySelectedPath(t *testing.T) {
	m, _ := newTestModel(t)
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}
	press(m, "p", "y")
	if copied != "root / C" {
		t.Fatalf("expected the selected path copied, got %q", copied)
	}
	if got := m.toasts.Messages(); len(got) != 1 || got[0] != "Copied root / C" {
		t.Fatalf("expected copy toast, got %v", got)
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "?")
	if m.mode != modeHelp {
		t.Fatalf("expected help mode")
	}
	if !strings.Contains(stripANSI(m.View()), "Navigate") {
		t.Fatalf("expected key reference in help view")
	}
	press(m, "n")
	if m.svc.View().Selected.Name() != "A" {
		t.Fatalf("keys must not reach the tree while help is open")
	}
	press(m, "esc")
	if m.mode != modeNormal {
		t.Fatalf("expected esc to close help")
	}
}

func TestSearchWithoutTypingFocusesFirstNode(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "f")
	if len(m.results) != 4 {
		t.Fatalf("expected every node below the root, got %d", len(m.results))
	}
	press(m, "enter")
	if m.svc.View().Focused.Name() != "A" {
		t.Fatalf("expected focus on A, got %v", m.svc.View().Focused)
	}
	if got := m.toasts.Messages(); len(got) != 0 {
		t.Fatalf("unexpected toasts %v", got)
	}
}

func TestMalformedReloadKeepsTree(t *testing.T) {
	m, fp := newTestModel(t)
	fp.data[store.DefaultKey] = `{"name":"root","chil`
	m.Update(watchEventMsg{event: store.Event{Type: store.EventTreeChanged}})
	if v := m.svc.View(); v.Focused.Name() != "root" || len(v.Children) != 3 {
		t.Fatalf("session tree replaced by malformed data")
	}
	if got := m.toasts.Messages(); len(got) != 1 || got[0] != "Stored tree is malformed, keeping this one" {
		t.Fatalf("expected malformed toast, got %v", got)
	}
}
