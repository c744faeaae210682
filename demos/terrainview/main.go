// terrainview renders a live ROAM terrain mesh over a procedural
// heightmap, refining and coarsening as a scripted camera path flies
// across the domain.
package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/roamterrain"
)

const (
	screenW  = 1024
	screenH  = 768
	gridSize = 256
)

type game struct {
	engine *roamterrain.Engine
	path   *roamterrain.CameraPath
	sink   *roamterrain.EbitenVertexSink
	triImg *ebiten.Image
	frame  int
}

func newGame() *game {
	grid := roamterrain.NewGrid(gridSize)
	grid.Fill(func(x, y int) uint8 {
		dx := float64(x - gridSize/2)
		dy := float64(y - gridSize/2)
		dist := dx*dx + dy*dy
		ridge := 120 + 80*float64((x^y)%32)/32
		falloff := 1.0 / (1.0 + dist/40000)
		v := ridge * falloff
		if v > 255 {
			v = 255
		}
		return uint8(v) + uint8(rand.IntN(8))
	})

	pool := roamterrain.NewBinTriPool(20000)
	engine, err := roamterrain.New(gridSize, pool, roamterrain.Config{
		TargetPolygonCount: 3000,
		PoolCapacity:       20000,
	})
	if err != nil {
		log.Fatalf("New: %v", err)
	}

	path := roamterrain.NewCameraPath(gridSize/4, gridSize/4, 60)
	path.AddLeg(float64(gridSize)*3/4, float64(gridSize)*3/4, 40, 6, ease.OutCubic)
	path.AddLeg(float64(gridSize)/4, float64(gridSize)*3/4, 80, 6, ease.OutCubic)
	path.AddLeg(float64(gridSize)/4, float64(gridSize)/4, 60, 6, ease.OutCubic)

	sink := roamterrain.NewEbitenVertexSink()
	sink.Transform = roamterrain.ScreenTransform{Scale: float64(screenW) / float64(gridSize)}
	sink.Color.R, sink.Color.G, sink.Color.B, sink.Color.A = 0.3, 0.6, 0.35, 1

	frustum := roamterrain.NewRectFrustum(-gridSize, -gridSize, float64(2*gridSize), float64(2*gridSize))

	engine.RegisterCallbacks(roamterrain.Callbacks{
		GetHeight:       grid.Sample,
		DistToCamera:    path.DistToCamera,
		SphereInFrustum: frustum.SphereInFrustum,
		ClassifySphere:  frustum.ClassifySphere,
		SendVertex:      sink.SendVertex,
	})
	if err := engine.Init(); err != nil {
		log.Fatalf("Init: %v", err)
	}

	triImg := ebiten.NewImage(3, 3)
	triImg.Fill(color.White)

	return &game{engine: engine, path: path, sink: sink, triImg: triImg}
}

func (g *game) Update() error {
	g.frame++
	g.path.Advance(1.0 / 60.0)
	// A slow, continuous rotation about the grid center, to exercise
	// ScreenTransform's rotation support rather than only its flat scale.
	g.sink.Transform.OriginX = gridSize / 2
	g.sink.Transform.OriginY = gridSize / 2
	g.sink.Transform.ScreenX = screenW / 2
	g.sink.Transform.ScreenY = screenH / 2
	g.sink.Transform.Rotation = float64(g.frame) * 0.0015
	if _, err := g.engine.Update(); err != nil {
		return err
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.sink.Reset()
	if err := g.engine.Draw(); err != nil {
		log.Fatalf("Draw: %v", err)
	}
	screen.DrawTriangles(g.sink.Vertices(), g.sink.Indices(), g.triImg, nil)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("leaves rendered this frame: %d", g.sink.TriangleCount()), 4, 4)

	gx, gy := g.sink.Transform.ScreenToGrid(screenW/2, screenH/2)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("grid coord at screen center: (%.1f, %.1f)", gx, gy), 4, 16)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("roamterrain — terrainview")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
