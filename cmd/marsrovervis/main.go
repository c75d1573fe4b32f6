// Command marsrovervis replays a rover mission in a GUI window.
package main

import (
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/elektrokombinacija/mars-rover/internal/rover"
	"github.com/elektrokombinacija/mars-rover/internal/scenario"
	"github.com/elektrokombinacija/mars-rover/internal/script"
	"github.com/elektrokombinacija/mars-rover/internal/vis"
)

func main() {
	scenarioPath := flag.String("scenario", "", "scenario file (default: built-in reference grid)")
	sequence := flag.String("sequence", "", "command letters to replay (default: the scenario's sequence)")
	scriptPath := flag.String("script", "", "mission script file")
	flag.Parse()

	sc := scenario.Reference()
	if *scenarioPath != "" {
		loaded, err := scenario.Load(*scenarioPath)
		if err != nil {
			log.Fatalf("load scenario: %v", err)
		}
		sc = loaded
	}

	var verbs []rover.Verb
	switch {
	case *scriptPath != "":
		parsed, err := script.LoadFile(*scriptPath)
		if err != nil {
			log.Fatalf("load script: %v", err)
		}
		verbs = parsed
	case *sequence != "":
		var skipped []rune
		verbs, skipped = script.ParseLetters(*sequence)
		if len(skipped) > 0 {
			log.Printf("ignoring %d unknown command letter(s)", len(skipped))
		}
	default:
		verbs, _ = script.ParseLetters(sc.Script)
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("Mars Rover Playback"),
			app.Size(unit.Dp(1100), unit.Dp(800)),
		)

		application, err := vis.NewApp(sc, verbs, nil)
		if err != nil {
			log.Fatalf("prepare playback: %v", err)
		}
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
