package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"cluegame/pkg/engine/input"
	"cluegame/pkg/game/devtools"
	"cluegame/pkg/game/gameplay"
	"cluegame/pkg/game/renderer"
	"cluegame/pkg/game/renderer/tui"
	"cluegame/pkg/game/setup"
)

// autoTurnLimit caps computer-only games when -turns is not given
const autoTurnLimit = 1000

func initLocale(dir, lang string) {
	gotext.Configure(dir, lang, "default")
}

func initLogging(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithError(err).Warn("unknown log level, using warn")
		lvl = logrus.WarnLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

func main() {
	legendPath := flag.String("legend", "data/ClueSetup.txt", "legend file (rooms, players, weapons)")
	layoutPath := flag.String("layout", "data/ClueLayout.csv", "layout file (comma-separated grid)")
	auto := flag.Bool("auto", false, "computer players only, print the game as it runs")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	turns := flag.Int("turns", 0, "stop after this many turns (0 = no limit)")
	dump := flag.Bool("dump", false, "print the loaded board and adjacency, then exit")
	lang := flag.String("lang", "en", "message language")
	locales := flag.String("locales", "locales", "directory holding <lang>/LC_MESSAGES/default.po")
	logLevel := flag.String("log-level", "warn", "diagnostics level (debug, info, warn, error)")
	flag.Parse()

	initLocale(*locales, *lang)
	initLogging(*logLevel)

	cfg, err := setup.Load(*legendPath, *layoutPath, setup.WithLogger(logrus.StandardLogger()))
	if err != nil {
		logrus.WithError(err).Fatal("cannot load map")
	}
	logrus.Info(cfg.Describe())

	if *dump {
		if err := devtools.WriteMapDump(os.Stdout, cfg.Board, nil); err != nil {
			logrus.WithError(err).Fatal("map dump failed")
		}
		return
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logrus.WithField("seed", *seed).Debug("random seed")

	if !input.IsInteractive(os.Stdout) {
		color.Enable = false
	}
	r := tui.New()
	renderer.SetRenderer(r)
	renderer.Init()

	opts := []gameplay.Option{
		gameplay.WithRand(rand.New(rand.NewSource(*seed))),
		gameplay.WithLogger(logrus.StandardLogger()),
	}
	if *auto {
		opts = append(opts, gameplay.WithAllComputers(), gameplay.WithMessageHandler(renderer.ShowMessage))
	}

	g, err := gameplay.NewGame(cfg, opts...)
	if err != nil {
		logrus.WithError(err).Fatal("cannot start game")
	}

	if *auto {
		limit := *turns
		if limit <= 0 {
			limit = autoTurnLimit
		}
		runAuto(g, limit)
		return
	}
	mainLoop(g, r, input.NewReader(os.Stdin), *turns)
}

// runAuto plays a computer-only game; the message handler prints each event.
func runAuto(g *gameplay.Game, limit int) {
	g.Start()
	for !g.IsOver() && g.Turn() < limit {
		if !g.NextPlayer() {
			break
		}
	}
	if !g.IsOver() {
		renderer.ShowMessage(fmt.Sprintf("%s %d. %s", gotext.Get("No accusation after turn"), g.Turn(), g.Solution().String()))
	}
}

func mainLoop(g *gameplay.Game, r *tui.TUIRenderer, in *input.Reader, maxTurns int) {
	interactive := input.IsInteractive(os.Stdin)
	redraw := true

	for {
		g.Run(maxTurns)

		if redraw && interactive {
			renderer.Clear()
		}
		redraw = true
		renderer.RenderFrame(g)

		if g.IsOver() {
			fmt.Println()
			return
		}
		if !g.CurrentPlayer().IsHuman() {
			renderer.ShowMessage(fmt.Sprintf("\n%s", gotext.Get("Turn limit reached")))
			return
		}

		raw, err := in.ReadRaw()
		if err != nil {
			fmt.Println()
			return
		}

		switch gameplay.ProcessIntent(g, input.MapToIntent(input.NewDebouncedInput(raw))) {
		case gameplay.ResponseQuit:
			fmt.Println(gotext.Get("Goodbye"))
			return
		case gameplay.ResponseShowCards:
			r.PrintCardList(g)
			redraw = false
		case gameplay.ResponseShowHelp:
			printHelp()
			redraw = false
		}
	}
}

func printHelp() {
	bindings := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(bindings))
	for act := range bindings {
		actions = append(actions, act)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	for _, act := range actions {
		renderer.ShowMessage(fmt.Sprintf("ACTION{%s}: %s", input.ActionName(act), strings.Join(bindings[act], ", ")))
	}
	renderer.ShowMessage(gotext.Get("A bare number picks a listed target; two numbers are a row and column."))
}
