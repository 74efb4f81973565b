package main

import (
	"github.com/AllenDang/giu"
	"go.uber.org/zap"

	"genomestudio/editor/config"
	"genomestudio/editor/genome"
	"genomestudio/editor/gui"
	"genomestudio/editor/scene"
)

const configPath = "config.yaml"

func main() {
	cfg, err := config.Load(configPath)
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger(cfg.Log)
	defer logger.Sync()

	g := genome.NewGenome()
	if !cfg.AngleSnapping {
		for i := range g.Modes {
			g.Modes[i].EnableParentAngleSnapping = false
			g.Modes[i].ChildA.EnableAngleSnapping = false
			g.Modes[i].ChildB.EnableAngleSnapping = false
		}
	}

	layoutState, err := gui.LoadLayoutState(cfg.LayoutPath)
	if err != nil {
		logger.Warn("layout state unreadable, using defaults", zap.Error(err))
		layoutState = gui.DefaultLayoutState()
	}
	saver := gui.NewLayoutSaver(cfg.LayoutPath)

	ui := gui.NewGui(g, layoutState, logger)
	sc := scene.New()

	logger.Info("starting editor",
		zap.String("title", cfg.WindowTitle),
		zap.Int("width", cfg.WindowWidth),
		zap.Int("height", cfg.WindowHeight))

	wnd := giu.NewMasterWindow(cfg.WindowTitle, cfg.WindowWidth, cfg.WindowHeight,
		giu.MasterWindowFlagsNotResizable)

	sceneReady := false
	wnd.Run(func() {
		giu.SingleWindow().Layout(giu.Custom(func() {
			if !sceneReady {
				if err := sc.Init(); err != nil {
					logger.Fatal("scene init", zap.Error(err))
				}
				sceneReady = true
			}

			mode := &g.Modes[ui.State().SelectedMode]
			sc.Draw(ui.Viewport(), cfg.WindowHeight, mode.Color, mode.Opacity)

			pos := giu.GetMousePos()
			pressed := giu.IsMouseDown(giu.MouseButtonLeft)
			if sc.Drag.Active() || !ui.PointerOverUI() {
				sc.HandlePointer(float32(pos.X), float32(pos.Y), pressed, ui.Viewport())
			}

			ui.Update()

			if err := saver.Tick(layoutState); err != nil {
				logger.Warn("layout autosave", zap.Error(err))
			}
		}))
	})

	if err := layoutState.Save(cfg.LayoutPath); err != nil {
		logger.Warn("layout save on exit", zap.Error(err))
	}
}
