package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"golang.org/x/term"

	"github.com/esimov/pixl"
	"github.com/esimov/pixl/utils"
)

const HelpBanner = `
┌─┐┬─┐ ┬┬
├─┘│┌┴┬┘│
┴  ┴┴ └─┴─┘

Frame-based pixel art drawing tool.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	width  = flag.Int("width", pixl.DefaultWidth, "Canvas width in pixels")
	height = flag.Int("height", pixl.DefaultHeight, "Canvas height in pixels")
	frames = flag.Int("frames", pixl.DefaultMaxFrames, "Timeline slots per layer")
	onion  = flag.Float64("onion", pixl.DefaultOnionFactor, "Onion skin translucency factor")
	hex    = flag.String("color", "#000000", "Initial primary color (hex)")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatal(utils.DecorateText("The canvas width and height must be positive!", utils.ErrorMessage))
	}
	if *frames <= 0 {
		log.Fatal(utils.DecorateText("The timeline needs at least one frame slot!", utils.ErrorMessage))
	}
	if *onion <= 0 || *onion > 1 {
		log.Fatal(utils.DecorateText("The onion skin factor must be in the (0, 1] interval!", utils.ErrorMessage))
	}

	gui := pixl.NewGui(pixl.Config{
		Width:       *width,
		Height:      *height,
		MaxFrames:   *frames,
		OnionFactor: *onion,
	})
	gui.Engine().SetColor(*hex)

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ PIXL", utils.StatusMessage),
		utils.DecorateText("editing session in progress...", utils.DefaultMessage))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*200, true)

	// The spinner and the colored summary only make sense on a real
	// terminal, not when the output is redirected.
	isTerm := term.IsTerminal(int(os.Stderr.Fd()))
	if isTerm {
		spinner.Start()
	}

	now := time.Now()
	go func() {
		err := gui.Run()
		if isTerm {
			spinner.Stop()
			spinner.RestoreCursor()
		}
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Error running the editor session: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		fmt.Fprintf(os.Stderr, "\nSession time: %s\n",
			utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
		os.Exit(0)
	}()

	app.Main()
}
