package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/google/uuid"
	"github.com/oomph-ac/ghostplay/ghost"
	"github.com/oomph-ac/ghostplay/oerror"
	"github.com/oomph-ac/ghostplay/replay/sqlstore"
	"github.com/oomph-ac/ghostplay/scheduler"
	"github.com/oomph-ac/ghostplay/settings"
	"github.com/oomph-ac/ghostplay/view"
	"github.com/sirupsen/logrus"
)

// The following program plays a recording from the archive back in the console, printing the HUD of a
// first person viewer. A demo recording is generated if the archive does not hold the recording asked for.
func main() {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	log.Level = logrus.DebugLevel

	path := "ghostplay.toml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if err := settings.SaveDefault(path); err == nil {
		log.Infof("created default settings at %s", path)
	}
	conf, err := settings.Load(path)
	if err != nil {
		log.Fatalf("error loading settings: %v", err)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	archive, err := sqlstore.Open(conf.Archive.Path, log)
	if err != nil {
		log.Fatalf("error opening archive: %v", err)
	}
	defer archive.Close()

	name := conf.Archive.Recording
	if name == "" {
		name = "demo"
	}
	store, err := archive.Load(name)
	if errors.Is(err, oerror.ErrNoRecording) {
		log.Infof("recording %q not found, generating a demo recording", name)
		if store, err = demoRecording(conf.LiveTickInterval()); err == nil {
			err = archive.Save(name, store)
		}
	}
	if err != nil {
		log.Fatalf("error loading recording %q: %v", name, err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	sched := scheduler.New(log, conf.LiveTickInterval())
	local := &consoleViewer{id: uuid.New(), log: log, mode: view.ObserverChase, done: cancel}

	floor := view.StaticWorld{Solids: []cube.BBox{cube.Box(-1e5, -16, -1e5, 1e5, 0, 1e5)}}
	g, err := ghost.New(ghost.Opts{
		Log:          log,
		TickInterval: conf.LiveTickInterval(),
		Collision:    floor,
		Ground:       floor,
		Timer:        consoleTimer{log: log},
		Remover:      sched,
		LocalViewer:  local,
	})
	if err != nil {
		log.Fatalf("error creating ghost: %v", err)
	}
	local.g = g
	if err := conf.Apply(g); err != nil {
		log.Warnf("error applying settings: %v", err)
	}
	sched.Add(g)

	if err := g.StartRun(store, true); err != nil {
		return
	}
	g.StartTimer(0)

	if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Errorf("scheduler stopped: %v", err)
	}
	log.Infof("final stats: %s", g.Stats().Summary())
	log.Infof("average jump velocity: %.0f u/s", g.AverageJumpVelocity())
}
