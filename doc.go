// Package cellbloom turns a photo into colored particles and walks them
// through a short animated sequence on [Ebitengine]: a gentle idle drift, a
// wavy line, a line of text, a pulsing heart, and finally Conway's Game of
// Life seeded from where the particles ended up.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you and decodes the image in the background:
//
//	scene := cellbloom.NewScene(cellbloom.DefaultConfig())
//	scene.SetScript(cellbloom.ProposalScript())
//	cellbloom.Run(scene, cellbloom.RunConfig{
//		Title: "Proposal", Width: 1024, Height: 768,
//		Image: cellbloom.LoadImageFileAsync("photo.jpg"),
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update], [Scene.Draw] and [Scene.OnResize] directly.
//
// # States
//
// A [Scene] is always in exactly one [State]. Transitions are explicit calls:
// [Scene.BeginLineMorph], [Scene.MorphToText], [Scene.BeginHeart],
// [Scene.BeginLifeFromHeart] and [Scene.BeginLifeDirect]. The particle
// collection is created once by [Scene.Initialize]; transitions only
// retarget and recolor it, so the particle count never changes.
//
// [Scene.Tick] advances the simulation by one frame without touching input
// or presentation, which makes it the entry point for tests and headless
// frontends. [Scene.Step] adds scripted steps, injected pointer events and
// caption animation.
//
// # Game of Life
//
// [LifeGrid] is a toroidal double-buffered automaton. In the life state the
// scene steps it every Config.LifeStepInterval ticks, and pointer presses or
// drags paint live cells through [Scene.OnPointerPaint].
//
// # Scripts
//
// A [Script] is a JSON list of steps (captions, transitions, waits, clicks,
// drags, prompts and screenshots) executed one per frame. [ProposalScript]
// is the built-in sequence; [LoadScript] parses custom ones.
//
// # Events
//
// [Scene.SetEventSink] forwards state changes, heartbeats, paints and
// generations. The cellbloom/ecs package bridges them into a [Donburi]
// world; cellbloom/audio plays a synthesized heartbeat; cellbloom/term
// renders the scene in a terminal.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package cellbloom
