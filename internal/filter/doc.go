// Package filter provides the raster effects used to build backdrops and
// device shadows:
//   - Gaussian blur (exact separable kernel for small radii, three-pass box
//     approximation for large ones, O(n) per pixel regardless of radius)
//   - Drop shadow (alpha extract + colorize + offset + blur)
//
// All filters work on premultiplied *image.RGBA buffers anchored at the
// origin and extend edge pixels outward when sampling past the border.
package filter
