package tui

import "testing"

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want KeyEvent
	}{
		{"empty", nil, KeyEvent{}},
		{"rune", []byte{'x'}, KeyEvent{Key: 'x'}},
		{"tab", []byte{9}, KeyEvent{IsSpecial: true, Special: "Tab"}},
		{"enter", []byte{13}, KeyEvent{IsSpecial: true, Special: "Enter"}},
		{"backspace", []byte{127}, KeyEvent{IsSpecial: true, Special: "Backspace"}},
		{"escape", []byte{27}, KeyEvent{IsSpecial: true, Special: "Escape"}},
		{"arrow up", []byte{27, '[', 'A'}, KeyEvent{IsSpecial: true, Special: "Up"}},
		{"arrow down", []byte{27, '[', 'B'}, KeyEvent{IsSpecial: true, Special: "Down"}},
		{"ctrl-c", []byte{3}, KeyEvent{Key: 'c', Ctrl: true}},
		{"ctrl-s", []byte{19}, KeyEvent{Key: 's', Ctrl: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseKey(tt.buf); got != tt.want {
				t.Errorf("ParseKey(%v) = %+v, want %+v", tt.buf, got, tt.want)
			}
		})
	}
}
