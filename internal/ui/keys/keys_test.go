package keys

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

func TestChoiceIndex(t *testing.T) {
	tests := []struct {
		msg  tea.KeyPressMsg
		want int
	}{
		{tea.KeyPressMsg{Code: '1', Text: "1"}, 0},
		{tea.KeyPressMsg{Code: 'b', Text: "b"}, 1},
		{tea.KeyPressMsg{Code: '3', Text: "3"}, 2},
		{tea.KeyPressMsg{Code: 'd', Text: "d"}, 3},
		{tea.KeyPressMsg{Code: '5', Text: "5"}, -1},
		{tea.KeyPressMsg{Code: tea.KeyEnter}, -1},
	}
	for _, tt := range tests {
		if got := ChoiceIndex(tt.msg); got != tt.want {
			t.Errorf("ChoiceIndex(%q) = %d, want %d", tt.msg.String(), got, tt.want)
		}
	}
}

func TestSpecialKeys(t *testing.T) {
	if !key.Matches(tea.KeyPressMsg{Code: tea.KeyEnter}, Select) {
		t.Error("Enter should match Select")
	}
	if !key.Matches(tea.KeyPressMsg{Code: tea.KeyEscape}, Back) {
		t.Error("Esc should match Back")
	}
	if !key.Matches(tea.KeyPressMsg{Code: tea.KeyUp}, Up) {
		t.Error("Up arrow should match Up")
	}
}
