/*
Package scrollbox provides a horizontal scroll box: a fixed-size viewport
over a row of equally sized items that scrolls on drag and wheel input,
coasts after a fast release and can wrap around as an endless ring.

# Overview

A ScrollBox owns a container node holding its items. The horizontal
position of that container is the scroll offset, and every change to it
passes through one clamp so the offset is always inside the valid range.
Items are scene graph nodes (Sprite, Shape, Label and Group) so a box can
be drawn by any backend that implements Canvas.

A Stage hosts boxes for a window or terminal. It hit-tests pointer input,
advances inertia once per frame and paints every box with its viewport
mask.

# Quick Start

	renderer, _ := opengl.NewRenderer(800, 620)
	stage := scrollbox.NewStage(renderer, 800, 620,
	    scrollbox.WithBackground(scrollbox.HexColor(0x1099BB)))

	box := stage.NewScrollBox(scrollbox.Config{Margin: 10, Height: 300})
	if err := box.SetChild(scrollbox.NumberedItems(100, 100, 100, scrollbox.ColorGreen)); err != nil {
	    return err
	}

	opengl.NewGLFWInputAdapter(window, stage)
	for !window.ShouldClose() {
	    glfw.PollEvents()
	    stage.Tick(1)
	    stage.Render()
	    window.SwapBuffers()
	}

# Scrolling

Offsets are zero or negative: an offset of -50 shows the row moved 50
pixels to the left. Outside loop mode the offset stays in

	[-(contentWidth - viewportWidth), 0]

and content no wider than the viewport never moves.

Dragging scrolls by the pointer delta of every move event. On release the
last delta becomes the inertia velocity; Animation then keeps scrolling,
each frame by the velocity scaled down along a quartic ease-out curve,
until the remaining budget runs out. Faster releases get a longer budget.
Wheel input scrolls directly and never starts inertia. A new press leaves
a running inertia alone unless Config.CancelInertiaOnPress is set.

# Loop Mode

With Config.Loop set, SetChild lays out enough copies of the items to
cover twice the viewport width. The first copy is the given nodes and the
others are clones made with CloneNode. When the offset passes the middle
of the tiled row it jumps back by one period, and an offset at or right of
zero jumps to the middle, so the row appears to repeat forever. Resizing
re-tiles the row when the new width needs a different number of copies.

# Configuration

Config holds the settings of one box. StageConfig describes a window and
its boxes in TOML and is read with LoadStageConfig:

	title = "scrollbox scene"
	width = 800
	height = 620
	background = 0x1099BB

	[[box]]
	margin = 10.0
	height = 300.0
	loop = true
	items = 3
	item_width = 100.0
	item_height = 100.0
	item_color = 0x00FF00

# Logging

The package logs layout changes, loop wraps and inertia through log/slog
at debug level. SetVerbose turns them on; SetLogger redirects them.

# Backends

backend/opengl renders DrawLists with OpenGL 4.1 and adapts GLFW input.
backend/terminal draws on a tcell screen and adapts terminal mouse input.
*/
package scrollbox
