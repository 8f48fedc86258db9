package home

import (
	"charm.land/lipgloss/v2"

	"github.com/glassquiz/glassquiz/internal/quiz"
	"github.com/glassquiz/glassquiz/internal/ui/theme"
)

// CrystalVariant selects the decorative crystal shown above the menu.
type CrystalVariant int

const (
	CrystalIdle    CrystalVariant = iota // Nothing played yet
	CrystalShining                       // Last run was a perfect score
	CrystalCracked                       // Last run had wrong answers
)

const crystalIdle = `  ◢◣
 ◢██◣
 ◥██◤
  ◥◤`

const crystalShining = `✧ ◢◣ ✧
 ◢██◣
 ◥██◤
✧ ◥◤ ✧`

const crystalCracked = `  ◢◣
 ◢╱█◣
 ◥█╲◤
  ◥◤`

// crystalFor picks the crystal for the session's last completed run.
func crystalFor(ctrl *quiz.Controller) CrystalVariant {
	res, ok := ctrl.LastResult()
	switch {
	case !ok:
		return CrystalIdle
	case res.Score == res.Total:
		return CrystalShining
	default:
		return CrystalCracked
	}
}

// RenderCrystal returns the crystal art for the given variant.
func RenderCrystal(v CrystalVariant) string {
	switch v {
	case CrystalShining:
		return lipgloss.NewStyle().Foreground(theme.Gold).Render(crystalShining)
	case CrystalCracked:
		return lipgloss.NewStyle().Foreground(theme.Accent).Render(crystalCracked)
	default:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render(crystalIdle)
	}
}
