package ui

// weightTint writes premultiplied RGBA pixels for a weight mask: a blue tint
// whose opacity follows the weight, capped below full opacity so the board
// stays visible.
func weightTint(buf []byte, mask []float32) {
	const maxAlpha = 150
	for i, w := range mask {
		if w < 0 {
			w = 0
		}
		if w > 1 {
			w = 1
		}
		a := float32(maxAlpha) * w
		base := i * 4
		buf[base+0] = uint8(40 * a / 255)
		buf[base+1] = uint8(110 * a / 255)
		buf[base+2] = uint8(255 * a / 255)
		buf[base+3] = uint8(a)
	}
}
