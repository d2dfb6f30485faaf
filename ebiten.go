// This file is part of retroinput.
//
// retroinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// retroinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with retroinput.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/spf13/cobra"

	"github.com/jetsetilly/retroinput/logger"
	"github.com/jetsetilly/retroinput/platform/ebitenqueue"
	"github.com/jetsetilly/retroinput/version"
	"github.com/jetsetilly/retroinput/viewport"
)

var ebitenCmd = &cobra.Command{
	Use:   "ebiten",
	Short: "Read input from an ebiten window",
	Args:  cobra.NoArgs,
	RunE:  runEbiten,
}

func init() {
	rootCmd.AddCommand(ebitenCmd)
}

// game implements the ebiten.Game interface. Input is polled once per tick.
type game struct {
	s  *session
	q  *ebitenqueue.Queue
	vp *viewport.Viewport

	dot *ebiten.Image

	status string
}

func (g *game) Update() error {
	g.q.Apply(ebitenqueue.ReadFrame())
	if g.s.poll(g.q) {
		return ebiten.Termination
	}
	if st, changed := g.s.update(); changed {
		g.status = st
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	rect := g.vp.Rect()
	if rect.Width > 0 && rect.Height > 0 {
		area := screen.SubImage(imageRect(rect)).(*ebiten.Image)
		area.Fill(color.RGBA{R: 32, G: 32, B: 48, A: 255})
	}

	if g.dot == nil {
		g.dot = ebiten.NewImage(marker, marker)
		g.dot.Fill(color.White)
	}

	for _, c := range g.s.drv.Pointers() {
		x, y, ok := contactPosition(rect, c)
		if !ok {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x-marker/2), float64(y-marker/2))
		screen.DrawImage(g.dot, op)
	}

	ebitenutil.DebugPrint(screen, g.status)
}

// the window is drawn at its actual size. the viewport follows the window
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	rect := g.vp.Rect()
	if rect.FullWidth != outsideWidth || rect.FullHeight != outsideHeight {
		g.vp.Set(viewport.Centred(outsideWidth, outsideHeight, aspectRatio))
		logger.Logf(logger.Allow, "retroinput", "resize %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func runEbiten(cmd *cobra.Command, _ []string) error {
	vp := viewport.New(viewport.Centred(windowWidth, windowHeight, aspectRatio))

	s, err := newSession(cmd.OutOrStdout(), vp)
	if err != nil {
		return err
	}
	defer s.end()

	g := &game{
		s:  s,
		q:  ebitenqueue.New(logger.Allow),
		vp: vp,
	}

	ebiten.SetWindowTitle(version.ApplicationName)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.rate)

	err = ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}
