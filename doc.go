// Package storeshots renders App Store marketing images.
//
// # Overview
//
// storeshots composites smooth gradients, soft decorative shapes, device
// mockups and text onto fixed-size canvases. Drawing goes through the
// github.com/gogpu/gg immediate-mode API; resampling and rotation use
// golang.org/x/image/draw.
//
// # Quick Start
//
//	bg, _ := storeshots.VerticalGradient(1284, 2778, []storeshots.RGB{
//	    {255, 230, 240}, {255, 190, 215}, {250, 150, 190},
//	})
//	storeshots.OrganicOverlay(bg, storeshots.RGB{255, 190, 215})
//
//	frame, _ := storeshots.BuildDeviceFrame(screenshot, 706, storeshots.Phone)
//	tilted := storeshots.Rotate(frame, 3)
//
// # Architecture
//
// The package is organized into:
//   - Backdrops: VerticalGradient, SteppedGradient, SoftCircle, OrganicOverlay
//   - Mockups: ComputeGeometry, BuildDeviceFrame, RenderShadow
//   - Charts: GrowthCurve, GrowthChart, WeeklyBreakdown
//   - Image helpers: Resize, Rotate, RoundedMask, ApplyMask, Flatten
//
// Scene assembly lives in the marketing package; synthetic app screens in
// appscreens; font lookup in fonts.
//
// # Coordinate System
//
// Origin (0,0) is top-left, X increases right, Y increases down. Integer box
// helpers such as FillRoundedBox treat both corners as inclusive pixels.
//
// # Determinism
//
// Every routine that scatters decorative elements draws from a PRNG seeded
// with DefaultSeed in a fixed order, so repeated runs produce identical
// images.
package storeshots
