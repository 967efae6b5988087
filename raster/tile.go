package raster

import "github.com/chewxy/math32"

// TileSplit computes the optimal horizontal/vertical tile subdivision for
// numThreads workers: t = ceil(sqrt(numThreads)), bumped by one when it
// does not divide numThreads; cols = gcd(numThreads, t),
// rows = numThreads / cols. This favors more horizontal tiles than
// vertical ones, matching the scanline-major traversal the fragment
// stage uses.
func TileSplit(numThreads int) (cols, rows int) {
	if numThreads <= 0 {
		return 1, 1
	}
	tileCount := int(math32.Ceil(math32.Sqrt(float32(numThreads))))
	if tileCount == 0 {
		tileCount = 1
	}
	if numThreads%tileCount != 0 {
		tileCount++
	}
	cols = gcd(numThreads, tileCount)
	if cols == 0 {
		cols = 1
	}
	rows = numThreads / cols
	return cols, rows
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Subregion subdivides a w x h rectangle into the tile assigned to
// threadId under TileSplit(numThreads), returning [x0,x1) x [y0,y1).
func Subregion(w, h, numThreads, threadId int) (x0, x1, y0, y1 int) {
	cols, rows := TileSplit(numThreads)
	tw := w / cols
	th := h / rows
	x0 = tw * (threadId % cols)
	y0 = th * ((threadId / cols) % rows)
	x1 = tw + x0
	y1 = th + y0
	return x0, x1, y0, y1
}

// ScanlineOffset returns the offset in [0, numThreads) from fragmentY to
// the first scanline, at or after fragmentY, that threadId is responsible
// for, guaranteeing every scanline has exactly one owning thread:
// numThreads - 1 - ((fragmentY + threadId) % numThreads).
func ScanlineOffset(numThreads, threadId, fragmentY int) int {
	if numThreads <= 0 {
		return 0
	}
	return numThreads - 1 - ((fragmentY + threadId) % numThreads)
}

// PartitionIndices splits a total vertex/index count into the [begin,end)
// range owned by threadId, in whole primitives of vertsPerPrim vertices
// each. The last thread absorbs any remainder left by integer division.
func PartitionIndices(totalVerts, numThreads, threadId, vertsPerPrim int) (begin, end int) {
	if vertsPerPrim <= 0 {
		vertsPerPrim = 1
	}
	totalPrims := totalVerts / vertsPerPrim
	activeThreads := numThreads
	if totalPrims < activeThreads {
		activeThreads = totalPrims
	}
	if activeThreads <= 0 {
		return 0, 0
	}
	if threadId >= activeThreads {
		return totalVerts, totalVerts
	}

	chunkSize := totalVerts / activeThreads
	remainder := chunkSize % vertsPerPrim
	chunkSize -= remainder

	begin = threadId * chunkSize
	end = begin + chunkSize
	if threadId == numThreads-1 {
		end += totalVerts - (chunkSize * activeThreads)
	}
	if end > totalVerts {
		end = totalVerts
	}
	return begin, end
}
