// Command pathbot decodes a level string, searches for a path across it,
// and writes a replay, optionally serving a live progress viewer over
// websocket while it runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samuelfneumann/progressbar"

	"github.com/corvid-run/pathbot/catalog"
	"github.com/corvid-run/pathbot/config"
	"github.com/corvid-run/pathbot/geometry"
	"github.com/corvid-run/pathbot/leveldecoder"
	"github.com/corvid-run/pathbot/liveview"
	"github.com/corvid-run/pathbot/pathfinder"
	"github.com/corvid-run/pathbot/pathlog"
	"github.com/corvid-run/pathbot/replay"
	"github.com/corvid-run/pathbot/state"
	"github.com/corvid-run/pathbot/telemetry"
)

// batchSize is how many nodes step_single expands between progress
// publishes, balancing viewer responsiveness against publish overhead.
const batchSize = 2000

func main() {
	levelPath := flag.String("level", "", "path to a file containing the gzip+base64 level string")
	goalX := flag.Float64("goal-x", 0, "target x coordinate to reach")
	startX := flag.Float64("start-x", 0, "starting x coordinate")
	startY := flag.Float64("start-y", 105, "starting y coordinate")
	configPath := flag.String("config", "", "optional config YAML overriding embedded defaults")
	outPath := flag.String("out", "replay.bin", "path to write the binary replay")
	outputDir := flag.String("output", "", "optional directory for progress.csv telemetry")
	serve := flag.String("serve", "", "optional host:port to serve a live progress viewer on")
	showBar := flag.Bool("bar", true, "show a terminal progress bar")
	flag.Parse()

	if *levelPath == "" {
		log.Fatal("-level is required")
	}
	if *goalX <= 0 {
		log.Fatal("-goal-x must be a positive x coordinate")
	}

	config.MustInit(*configPath)
	cfg := config.Cfg()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	raw, err := os.ReadFile(*levelPath)
	if err != nil {
		log.Fatalf("reading level file: %v", err)
	}

	rawObjects, err := leveldecoder.DecodeObjects(strings.TrimSpace(string(raw)))
	if err != nil {
		log.Fatalf("decoding level: %v", err)
	}

	objects := make([]catalog.GameObject, len(rawObjects))
	for i, ro := range rawObjects {
		objects[i] = catalog.FromRaw(ro)
	}
	pathlog.Logf("decoded %d objects", len(objects))

	pf := pathfinder.WithConfig(objects, cfg)

	start := state.State{Position: geometry.Vec2{X: float32(*startX), Y: float32(*startY)}}
	session := pf.StartSearch(start, float32(*goalX))

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		log.Fatalf("setting up telemetry output: %v", err)
	}
	defer om.Close()

	var viewer *liveview.Server
	if *serve != "" {
		viewer = liveview.NewServer()
		mux := http.NewServeMux()
		viewer.RegisterRoutes(mux)
		go func() {
			if err := http.ListenAndServe(*serve, mux); err != nil {
				logger.Error("progress viewer exited", slog.String("error", err.Error()))
			}
		}()
		pathlog.Logf("serving live progress at http://%s/snapshot", *serve)
	}

	var bar *progressbar.ProgressBar
	if *showBar {
		bar = progressbar.New(cfg.Run.ProgressBarWidth, 1000, time.Duration(cfg.Run.ProgressBarUpdate)*time.Millisecond, true)
		bar.Display()
	}

	start0 := time.Now()
	done := false
	for !done {
		for i := 0; i < batchSize; i++ {
			if pf.StepSingle(session, float32(*goalX)) {
				done = true
				break
			}
		}

		if bar != nil {
			bar.Increment()
		}

		rec := telemetry.ProgressRecord{
			NodesExpanded: session.NodesExpanded,
			BestX:         float64(session.BestX),
			OpenLen:       session.OpenLen(),
			ElapsedMs:     time.Since(start0).Milliseconds(),
		}
		if err := om.WriteProgress(rec); err != nil {
			logger.Warn("writing progress record failed", slog.String("error", err.Error()))
		}

		if viewer != nil {
			viewer.Publish(liveview.Snapshot{
				BestX:         session.BestX,
				NodesExpanded: session.NodesExpanded,
				OpenLen:       session.OpenLen(),
				Done:          done,
			})
		}
	}

	if bar != nil {
		bar.Close()
	}

	if session.GoalReachedIndex < 0 {
		log.Fatal("search terminated without a path")
	}

	path := pf.ReconstructPath(session, session.GoalReachedIndex)
	pathlog.Logf("reconstructed path with %d segments after expanding %d nodes", len(path), session.NodesExpanded)

	outFile, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("creating replay file: %v", err)
	}
	defer outFile.Close()

	if err := replay.Write(outFile, path); err != nil {
		log.Fatalf("writing replay: %v", err)
	}

	pathlog.Logf("wrote replay to %s (best x reached: %s)", *outPath, strconv.FormatFloat(float64(session.BestX), 'f', 2, 32))
	fmt.Println("done")
}
