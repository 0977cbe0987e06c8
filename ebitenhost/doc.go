// Package ebitenhost runs the aerolabel overlay inside an [Ebitengine] game.
//
// A [Host] adapts an [aerolabel.Camera] and a TTF [Font] to the interfaces
// the label [aerolabel.Controller] consumes. Call [Host.Draw] at the end of
// your Game.Draw, after the world has been drawn:
//
//	host := ebitenhost.New(cam, font)
//	ctl := aerolabel.New(aerolabel.Config{
//		Host: host, Labels: registry, Measurer: host, Surface: host,
//		Settings: aerolabel.DefaultSettings(),
//	})
//	ctl.Init()
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.drawWorld(screen)
//		g.host.Draw(screen)
//	}
//
// Label coordinates use a bottom-left origin; the host flips them to
// Ebitengine's top-left origin when drawing.
//
// [Host.Screenshot] captures the frame after the overlays ran, and a
// [Script] loaded with [LoadScript] drives label settings, zoom and
// screenshots frame by frame for visual checks.
//
// [Ebitengine]: https://ebitengine.org
package ebitenhost
