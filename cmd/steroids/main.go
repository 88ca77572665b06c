package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/profile"

	"github.com/mmays/steroids"
	"github.com/mmays/steroids/gm"
	"github.com/mmays/steroids/sat"
)

const (
	screenWidth  = 800
	screenHeight = 600

	// ebiten runs Update at a fixed 60 ticks per second
	tickDt = 1.0 / 60
)

func main() {
	profileFlag := flag.Bool("profile", false, "write a cpu profile")
	difficulty := flag.String("difficulty", "normal", "difficulty: easy, normal or hard")
	flag.Parse()

	if *profileFlag {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	catalog, err := steroids.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}

	rules, err := steroids.LoadRules(*difficulty)
	if err != nil {
		log.Fatal(err)
	}

	bounds := gm.RectWithSize(gm.Vec{X: screenWidth, Y: screenHeight})
	world := steroids.NewWorld(catalog, rules, bounds, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Steroids")

	if err := ebiten.RunGame(&game{world: world}); err != nil {
		log.Fatal(err)
	}
}

type game struct {
	world *steroids.World
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	in := steroids.Input{
		Thrust: ebiten.IsKeyPressed(ebiten.KeyW),
		Left:   ebiten.IsKeyPressed(ebiten.KeyA),
		Right:  ebiten.IsKeyPressed(ebiten.KeyD),
		Shoot:  ebiten.IsKeyPressed(ebiten.KeySpace),
	}

	g.world.Update(in, tickDt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	player := g.world.Player

	if !player.Dead() && !player.GameOver {
		g.strokeShape(screen, player.Ship.Shape)
	}

	for _, bullet := range player.Ship.Bullets {
		g.strokeShape(screen, bullet.Shape)
	}

	for _, asteroid := range g.world.Spawner.Asteroids {
		g.strokeShape(screen, asteroid.Shape)
	}

	for _, animation := range g.world.Effects.Active() {
		for _, particle := range animation.Particles {
			g.strokeShape(screen, particle.Shape)
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Lives: %d", player.Score, player.Lives), 4, 4)

	if player.GameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", screenWidth/2-30, screenHeight/2)
	}
}

// strokeShape draws the outline of a shape from its world-space vertices.
// The game world is y-up while the screen is y-down, so y is flipped here.
func (g *game) strokeShape(screen *ebiten.Image, shape *sat.Shape) {
	verts := shape.WorldVertices()

	for i, vert := range verts {
		next := verts[(i+1)%len(verts)]

		vector.StrokeLine(screen,
			float32(vert.X), float32(screenHeight-vert.Y),
			float32(next.X), float32(screenHeight-next.Y),
			1, color.White, true)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
