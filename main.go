package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossworks/burrow/assets"
	"github.com/mossworks/burrow/config"
	"github.com/mossworks/burrow/systems"
	"github.com/mossworks/burrow/systems/factory"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "burrow"})

type Game struct {
	ecs *ecs.ECS
}

func NewGame() *Game {
	g := &Game{
		ecs: ecs.NewECS(donburi.NewWorld()),
	}

	// Simulation order matters: input first, then the flag reset, then
	// everything that moves or queries, with room switching last so a
	// recompile never lands mid-frame.
	g.ecs.AddSystem(systems.UpdateInput)
	g.ecs.AddSystem(systems.UpdateReset)
	g.ecs.AddSystem(systems.UpdatePlatforms)
	g.ecs.AddSystem(systems.UpdatePhysics)
	g.ecs.AddSystem(systems.UpdateCollisions)
	g.ecs.AddSystem(systems.UpdateSettings)
	g.ecs.AddSystem(systems.UpdateRoom)

	g.ecs.AddRenderer(config.Default, systems.DrawDebug)
	g.ecs.AddRenderer(config.Default, systems.DrawHUD)

	reg := config.DefaultBehaviors()
	factory.CreateRoom(g.ecs, assets.MustLoadLayouts(reg), reg)
	systems.ActivateRoom(g.ecs, 0)

	settings := systems.GetOrCreateSettings(g.ecs)
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(settings, saved)
	}

	return g
}

func (g *Game) Update() error {
	g.ecs.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Clear()
	g.ecs.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)

	if err := systems.InitPersistence(); err != nil {
		logger.Warn("persistence unavailable", "err", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		logger.Fatal("run game", "err", err)
	}
}
