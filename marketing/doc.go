// Package marketing assembles App Store marketing images.
//
// Each image combines a screen descriptor (headline, subtitle, gradient
// stops, tilt) with a target canvas class: a vertical gradient backdrop with
// organic bubbles, the screenshot in a tilted device mockup with a soft
// shadow, and centred headline and subtitle text above it.
//
// A Generator renders one image at a time with Generate, or a whole Batch
// with Run using a bounded worker pool. Missing screenshots are skipped with
// a warning; any other failure aborts the batch.
package marketing
