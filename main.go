// Minimal demo: run the celebration preset once and exit when it
// completes. The full interactive playground lives in cmd/confetti.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/confetti/pkg/effects"
)

type runner struct {
	celebration *effects.Celebration
	done        bool
}

func (r *runner) Update() error {
	if r.done {
		return ebiten.Termination
	}
	return r.celebration.Update()
}

func (r *runner) Draw(screen *ebiten.Image) {
	r.celebration.Draw(screen)
}

func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.celebration.Layout(outsideWidth, outsideHeight)
}

func main() {
	r := &runner{}
	r.celebration = effects.NewCelebration(effects.CelebrationConfig{
		Width:      800,
		Height:     600,
		PixelRatio: 1,
		OnComplete: func() { r.done = true },
	})
	r.celebration.SetActive(true)

	ebiten.SetWindowSize(800, 600)
	ebiten.SetWindowTitle("Celebration")

	if err := ebiten.RunGame(r); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
