package main

import (
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/engine"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/logging"
	"github.com/lixenwraith/corridor/parameter"
	"github.com/lixenwraith/corridor/telemetry"
	"github.com/lixenwraith/corridor/vmath"
)

const (
	// autopilotPamphletEvery spaces pamphlet throws in ticks
	autopilotPamphletEvery = 45
	// autopilotDoorEvery spaces door requests in ticks
	autopilotDoorEvery = 30
	// autopilotPamphletRange is the distance within which a target draws a pamphlet
	autopilotPamphletRange = 10.0
)

var simTicks int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless scripted session and print a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, closer, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer closer.Close()

		world, _ := newWorld(cfg, logger)
		world.AddListener(logging.NewEventLogger(logger))

		sum, err := simulate(world, cfg.TickInterval(), simTicks, logger)
		if err != nil {
			return err
		}
		sum.Print(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	simulateCmd.Flags().IntVar(&simTicks, "ticks", 3600, "number of ticks to simulate")
}

// Summary is the outcome of a headless run
type Summary struct {
	Ticks    uint64
	Room     int
	Health   int
	Ammo     int
	GameOver bool
	Events   map[string]uint64
}

// Print writes the summary in a stable order
func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "ticks:     %d\n", s.Ticks)
	fmt.Fprintf(w, "room:      %d\n", s.Room+1)
	fmt.Fprintf(w, "health:    %d\n", s.Health)
	fmt.Fprintf(w, "ammo:      %d\n", s.Ammo)
	fmt.Fprintf(w, "game over: %t\n", s.GameOver)

	names := make([]string, 0, len(s.Events))
	for name := range s.Events {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-18s %d\n", name, s.Events[name])
	}
}

// simulate populates world and ticks it n times under the autopilot
func simulate(world *engine.World, dt time.Duration, n int, logger zerolog.Logger) (Summary, error) {
	if n <= 0 {
		return Summary{}, fmt.Errorf("ticks must be positive, got %d", n)
	}

	recorder, err := telemetry.NewRecorder(nil)
	if err != nil {
		return Summary{}, err
	}
	world.AddListener(recorder)
	world.InitSession()

	if dt <= 0 {
		dt = parameter.TickInterval
	}

	// Face down the corridor, then hold forward
	world.PushEvent(event.EventTurnRequest, &event.TurnPayload{Delta: math.Pi})
	world.PushEvent(event.EventMoveKeysRequest, &event.MoveKeysPayload{
		Keys: event.MoveKeys(0).With(event.MoveForward),
	})

	for i := 0; i < n; i++ {
		autopilot(world, i)
		world.Tick(dt)
		recorder.RecordTick()
	}

	snap := world.Snapshot()
	logger.Info().Uint64("ticks", snap.Tick).Uint64("events", recorder.Total()).Msg("simulation finished")

	return Summary{
		Ticks:    snap.Tick,
		Room:     snap.Room,
		Health:   snap.HUD.Health,
		Ammo:     snap.HUD.Ammo,
		GameOver: snap.HUD.GameOver,
		Events:   recorder.Summary(),
	}, nil
}

// autopilot issues intents from the current state: zap anything in reach,
// throw pamphlets at targets ahead, keep asking for doors
func autopilot(world *engine.World, i int) {
	snap := world.Snapshot()
	if snap.HUD.GameOver {
		return
	}

	nearest := -1.0
	for _, a := range snap.Actors {
		if a.State == core.StateDying || a.Converted {
			continue
		}
		d := vmath.Dist(snap.Player, vmath.V2(a.X, a.Z))
		if nearest < 0 || d < nearest {
			nearest = d
		}
	}

	if nearest >= 0 && nearest < parameter.ZapRange && snap.HUD.Ready {
		world.PushEvent(event.EventZapRequest, nil)
	}
	if nearest >= 0 && nearest < autopilotPamphletRange && snap.HUD.Ammo > 0 && i%autopilotPamphletEvery == 0 {
		world.PushEvent(event.EventPamphletRequest, nil)
	}
	if i%autopilotDoorEvery == 0 {
		world.PushEvent(event.EventDoorOpenRequest, nil)
	}
}
