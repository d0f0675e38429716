/*
Package pixl implements the core of a frame-based pixel art drawing tool:
a fixed-size pixel grid, multiple independently visible layers, each holding
a short animation timeline of pixel frames, edited with pointer-driven
drawing tools and displayed through a compositing renderer with an
onion-skin preview of the previous frame.

The package is split into a small number of cooperating pieces: Buffer is
the raster drawing surface, Document owns the layer stack and the editing
cursor, Engine translates pointer gestures into buffer mutations and
Composite flattens the visible layers into the displayed image. Presentation
code subscribes to the core through the Notifier interface and redraws when
it is told to.

A minimal headless session looks like this:

	package main

	import (
		"fmt"

		"github.com/esimov/pixl"
	)

	func main() {
		doc := pixl.NewDocument(pixl.Config{}, nil)
		eng := pixl.NewEngine(doc, nil)

		eng.SetColor("#e91e63")
		eng.PointerDown(4, 4)
		eng.PointerMove(27, 27)
		eng.PointerUp()

		frame := pixl.Composite(doc, 0, false)
		fmt.Println(frame.Width(), frame.Height())
	}

The interactive editor lives in cmd/pixl and presents the composite through
a Gio window.
*/
package pixl
