package raster

// InterpolateFloat32 performs perspective-correct barycentric interpolation
// of a single attribute given the three vertices' 1/w values and their
// barycentric weights.
func InterpolateFloat32(v0, v1, v2, b0, b1, b2, w0, w1, w2 float32) float32 {
	oneOverW := b0*w0 + b1*w1 + b2*w2
	if oneOverW == 0 {
		return b0*v0 + b1*v1 + b2*v2
	}
	return (b0*v0*w0 + b1*v1*w1 + b2*v2*w2) / oneOverW
}

// InterpolateVaryings perspective-interpolates an entire varyings vector.
func InterpolateVaryings(v0, v1, v2 []float32, b0, b1, b2, w0, w1, w2 float32, out []float32) {
	n := len(v0)
	if len(v1) < n {
		n = len(v1)
	}
	if len(v2) < n {
		n = len(v2)
	}
	for i := 0; i < n; i++ {
		out[i] = InterpolateFloat32(v0[i], v1[i], v2[i], b0, b1, b2, w0, w1, w2)
	}
}
