// Command gunshot renders an anechoic gunshot from a scene record and a
// ballistics record, writes it as a normalized WAV file, and can play it
// through the default audio device.
//
// Usage:
//
//	gunshot --scene Geometry/Range50m.json --gun Guns/BrowningBDA380.json \
//	        --out shot.wav --duration 0.5 --rate 96000 [--play]
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/metu-sparg/gunshot/gunshot"
	"github.com/metu-sparg/gunshot/wavio"
)

var version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	Version  bool    `short:"v" help:"Show version information"`
	Scene    string  `short:"s" type:"existingfile" help:"Scene record (JSON)"`
	Gun      string  `short:"g" type:"existingfile" help:"Ballistics record (JSON)"`
	Out      string  `short:"o" default:"gunshot.wav" help:"Output WAV path"`
	Duration float64 `short:"d" default:"0.5" help:"Render duration in seconds"`
	Rate     float64 `short:"r" default:"96000" help:"Sample rate in Hz"`
	Play     bool    `help:"Play the rendered shot on the default audio device"`
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("gunshot"),
		kong.Description("Anechoic gunshot sound synthesizer"),
		kong.UsageOnError(),
	)

	if cli.Version {
		printVersion(version)
		os.Exit(0)
	}

	if cli.Scene == "" || cli.Gun == "" {
		printError("A scene record (--scene) and a ballistics record (--gun) are required")
		ctx.PrintUsage(false)
		os.Exit(1)
	}

	scene, err := gunshot.LoadScene(cli.Scene)
	if err != nil {
		fatal(err)
	}
	ball, err := gunshot.LoadBallistics(cli.Gun)
	if err != nil {
		fatal(err)
	}

	res, err := gunshot.Synthesize(scene, ball, cli.Duration, cli.Rate)
	if err != nil {
		fatal(err)
	}

	if err = wavio.WriteFile(cli.Out, res.Total, int(cli.Rate)); err != nil {
		fatal(err)
	}
	printResult(scene, ball, res, cli.Out)

	if cli.Play {
		if err = play(res.Total, int(cli.Rate)); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	printError(err.Error())
	os.Exit(1)
}

func countNonZero(sig []float64) int {
	n := 0
	for _, s := range sig {
		if s != 0 {
			n++
		}
	}

	return n
}

func printResult(scene gunshot.Scene, ball gunshot.Ballistics, res gunshot.Result, out string) {
	boom := "no (muzzle blast only)"
	if countNonZero(res.NWave) > 0 {
		boom = "yes"
	}
	fmt.Printf("%s %s\n", keyStyle.Render("Scene:"), valueStyle.Render(scene.Label))
	fmt.Printf("%s %s / %s\n", keyStyle.Render("Load:"),
		valueStyle.Render(ball.GunLabel), valueStyle.Render(ball.AmmoLabel))
	fmt.Printf("%s %s\n", keyStyle.Render("Sonic boom:"), valueStyle.Render(boom))
	fmt.Printf("%s %s\n", keyStyle.Render("Wrote:"), valueStyle.Render(out))
}
