package filter

import (
	"image"
)

// ExactBlurLimit is the largest sigma blurred with a true Gaussian kernel.
// Larger radii use three box passes, whose cost does not grow with radius.
const ExactBlurLimit = 4.0

// Blur applies a Gaussian blur with standard deviation sigma to img in place.
// A sigma <= 0 leaves the image untouched.
func Blur(img *image.RGBA, sigma float64) {
	if img == nil || sigma <= 0 {
		return
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}

	if sigma <= ExactBlurLimit {
		gaussianBlur(img, w, h, CachedGaussianKernel(sigma))
		return
	}

	tmp := make([]uint8, len(img.Pix))
	for _, size := range BoxSizes(sigma, 3) {
		r := (size - 1) / 2
		// Horizontal pass: img -> tmp.
		for y := 0; y < h; y++ {
			boxLine(img.Pix, tmp, y*img.Stride, 4, w, r)
		}
		// Vertical pass: tmp -> img.
		for x := 0; x < w; x++ {
			boxLine(tmp, img.Pix, x*4, img.Stride, h, r)
		}
	}
}

// boxLine box-filters n pixels of src starting at offset start, stepping by
// stride bytes, into the same positions of dst. Samples past either end
// repeat the edge pixel.
func boxLine(src, dst []uint8, start, stride, n, r int) {
	if r <= 0 {
		for i := 0; i < n; i++ {
			o := start + i*stride
			copy(dst[o:o+4], src[o:o+4])
		}
		return
	}

	size := 2*r + 1
	half := size / 2
	at := func(i int) int {
		if i < 0 {
			i = 0
		} else if i >= n {
			i = n - 1
		}
		return start + i*stride
	}

	var sum [4]int
	for i := -r; i <= r; i++ {
		o := at(i)
		for c := 0; c < 4; c++ {
			sum[c] += int(src[o+c])
		}
	}

	for i := 0; i < n; i++ {
		o := start + i*stride
		for c := 0; c < 4; c++ {
			dst[o+c] = uint8((sum[c] + half) / size)
		}
		in, out := at(i+r+1), at(i-r)
		for c := 0; c < 4; c++ {
			sum[c] += int(src[in+c]) - int(src[out+c])
		}
	}
}

// gaussianBlur runs the separable kernel horizontally into a float buffer
// and vertically back into img.
func gaussianBlur(img *image.RGBA, w, h int, kernel []float32) {
	half := len(kernel) / 2
	temp := make([]float32, w*h*4)

	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			var acc [4]float32
			for k, weight := range kernel {
				kx := clampInt(x+k-half, 0, w-1)
				o := row + kx*4
				for c := 0; c < 4; c++ {
					acc[c] += float32(img.Pix[o+c]) * weight
				}
			}
			copy(temp[(y*w+x)*4:], acc[:])
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc [4]float32
			for k, weight := range kernel {
				ky := clampInt(y+k-half, 0, h-1)
				t := (ky*w + x) * 4
				for c := 0; c < 4; c++ {
					acc[c] += temp[t+c] * weight
				}
			}
			o := y*img.Stride + x*4
			for c := 0; c < 4; c++ {
				img.Pix[o+c] = clampUint8(acc[c])
			}
		}
	}
}

// clampInt clamps v to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float32 to [0, 255] and rounds to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
