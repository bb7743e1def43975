package calculator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calc "github.com/msto63/mCalc/internal/calculator"
	"github.com/msto63/mCalc/pkg/core/config"
	"github.com/msto63/mCalc/pkg/core/logging"
)

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated
}

// click sends a left click on the center of the button with label
func click(t *testing.T, m Model, label string) Model {
	t.Helper()
	idx := indexOf(label)
	require.GreaterOrEqual(t, idx, 0, "no button %q", label)

	b := Keypad[idx]
	x := PaddingX + b.Col*(ButtonWidth+ButtonGap) + b.width()/2
	y := KeypadTop + b.Row*(ButtonHeight+RowGap) + ButtonHeight/2

	return update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func keyPress(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, k)
	}
	return m
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNew(t *testing.T) {
	m := New(nil, nil)

	assert.Equal(t, calc.NewState(), m.State())
	assert.Equal(t, "0", m.Display())
	assert.Equal(t, "5", m.Focused())
	assert.Nil(t, m.Init())
}

func TestMouse_ChainedEvaluation(t *testing.T) {
	m := New(nil, nil)
	for _, label := range []string{"AC", "3", "+", "4", "×", "5", "="} {
		m = click(t, m, label)
	}

	assert.Equal(t, "35", m.State().Entry)
	assert.Equal(t, "35", m.Display())
	assert.Equal(t, "=", m.Focused())
}

func TestMouse_WideZeroButton(t *testing.T) {
	m := New(nil, nil)
	b := Keypad[indexOf("0")]
	y := KeypadTop + b.Row*(ButtonHeight+RowGap)

	m = click(t, m, "7")
	// both halves of the zero key
	m = update(t, m, tea.MouseMsg{X: PaddingX, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: PaddingX + b.width() - 1, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.Equal(t, "700", m.State().Entry)
}

func TestMouse_IgnoredEvents(t *testing.T) {
	m := New(nil, nil)

	m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: PaddingX + 1, Y: KeypadTop + 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: PaddingX + 1, Y: KeypadTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})

	assert.Equal(t, calc.NewState(), m.State())
	assert.Equal(t, "5", m.Focused())
}

func TestButtonAt(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		label string
	}{
		{"top left corner of AC", PaddingX, KeypadTop, "AC"},
		{"bottom right of divide", PaddingX + GridWidth - 1, KeypadTop + ButtonHeight - 1, "÷"},
		{"seven", PaddingX + 3, KeypadTop + ButtonHeight + RowGap + 1, "7"},
		{"equals", PaddingX + GridWidth - 1, KeypadTop + 4*(ButtonHeight+RowGap), "="},
		{"column gap", PaddingX + ButtonWidth, KeypadTop, ""},
		{"row gap", PaddingX, KeypadTop + ButtonHeight, ""},
		{"display", PaddingX + 5, PaddingY + 1, ""},
		{"right of keypad", PaddingX + GridWidth, KeypadTop, ""},
		{"below keypad", PaddingX, KeypadTop + Rows*(ButtonHeight+RowGap), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := buttonAt(tt.x, tt.y)
			if tt.label == "" {
				assert.Equal(t, -1, idx)
				return
			}
			require.GreaterOrEqual(t, idx, 0)
			assert.Equal(t, tt.label, Keypad[idx].Label)
		})
	}
}

func TestKeyboardNavigation(t *testing.T) {
	m := New(nil, nil)

	m = keyPress(t, m, keyEnter)
	assert.Equal(t, "5", m.State().Entry)

	m = keyPress(t, m, keyRight, keyUp, keyRight)
	assert.Equal(t, "×", m.Focused())

	m = keyPress(t, m, keyEnter)
	assert.True(t, m.State().IsActive(calc.Multiply))

	m = keyPress(t, m, runeKey('h'), runeKey('h'), runeKey('j'), runeKey('j'), runeKey('j'))
	assert.Equal(t, "0", m.Focused())

	m = keyPress(t, m, runeKey(' '))
	assert.Equal(t, "0", m.State().Entry)
	assert.False(t, m.State().IsActive(calc.Multiply))
}

func TestMove(t *testing.T) {
	tests := []struct {
		from   string
		dir    Direction
		expect string
	}{
		{"AC", Left, "AC"},
		{"AC", Up, "AC"},
		{"÷", Right, "÷"},
		{"=", Down, "="},
		{"0", Right, "."},
		{".", Left, "0"},
		{"1", Down, "0"},
		{"2", Down, "0"},
		{"0", Up, "1"},
		{"3", Down, "."},
		{"+", Down, "="},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			assert.Equal(t, tt.expect, Keypad[move(indexOf(tt.from), tt.dir)].Label)
		})
	}
}

func TestKeypadCoversGrid(t *testing.T) {
	seen := make(map[string]bool)
	for _, b := range Keypad {
		assert.False(t, seen[b.Label], "duplicate label %q", b.Label)
		seen[b.Label] = true

		e, err := calc.ParseKey(b.Label)
		require.NoError(t, err)
		assert.Equal(t, b.Event, e, "button %q", b.Label)
	}
	assert.Len(t, Keypad, 19)
}

func TestQuit(t *testing.T) {
	m := New(nil, nil)

	for _, k := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestView(t *testing.T) {
	m := New(nil, nil)
	for _, label := range []string{"4", "2"} {
		m = click(t, m, label)
	}

	lines := strings.Split(m.View(), "\n")
	require.Greater(t, len(lines), KeypadTop+Rows*(ButtonHeight+RowGap))

	assert.Contains(t, lines[PaddingY+1], "42")
	assert.Contains(t, lines[KeypadTop+1], "AC")
	assert.Contains(t, lines[KeypadTop+1], "÷")
	assert.Contains(t, lines[KeypadTop+4*(ButtonHeight+RowGap)+1], "=")
	assert.Contains(t, m.View(), "press")
}

func TestView_HelpToggle(t *testing.T) {
	m := New(nil, nil)
	assert.NotContains(t, m.View(), "left")

	m = keyPress(t, m, runeKey('?'))
	assert.Contains(t, m.View(), "left")
}

func TestView_LongEntryIsClipped(t *testing.T) {
	m := New(nil, nil)
	for i := 0; i < 40; i++ {
		m = click(t, m, "9")
	}
	m = click(t, m, ".")

	assert.Len(t, m.Display(), 41)
	assert.NotContains(t, m.View(), m.Display())
	assert.Contains(t, m.View(), "…")
}

func TestConfigReload(t *testing.T) {
	m := New(nil, nil)
	for _, label := range []string{"1", "2", "3", "4", "5", ".", "6", "7", "8", "9"} {
		m = click(t, m, label)
	}
	assert.Equal(t, "12345.7", m.Display())

	cfg := config.Default()
	cfg.Display.MaxLength = 12
	m = update(t, m, configReloadedMsg{cfg: cfg})

	assert.Equal(t, "12345.6789", m.State().Entry)
	assert.Equal(t, "12345.6789", m.Display())
}

func TestConfigReloadError(t *testing.T) {
	m := New(nil, nil)

	m = update(t, m, configErrorMsg{err: errors.New("bad precision")})
	assert.Contains(t, m.View(), "config: bad precision")

	m = update(t, m, configReloadedMsg{cfg: config.Default()})
	assert.NotContains(t, m.View(), "bad precision")
}

func TestPressIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.LoggerConfig{Level: "debug", Format: logging.FormatText, Output: &buf})

	m := New(config.Default(), logger)
	m = click(t, m, "8")

	out := buf.String()
	assert.Contains(t, out, "Key pressed")
	assert.Contains(t, out, "kind=digit")
	assert.Contains(t, out, "event=digit(8)")
	assert.Contains(t, out, "entry=8")
	assert.Equal(t, "8", m.State().Entry)
}

func TestFitDisplay(t *testing.T) {
	assert.Equal(t, "123", fitDisplay("123", 5))
	assert.Equal(t, "…345", fitDisplay("12345", 4))
}
