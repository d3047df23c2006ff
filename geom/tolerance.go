package geom

// Numerical tolerances shared by flattening, boolean operations and
// serialization. Coordinates are in document units (millimeters).
const (
	// FlattenTolerance is the maximum distance between a curve and the
	// polyline that replaces it.
	FlattenTolerance = 0.005

	// AreaEpsilon is the smallest absolute contour area kept after a
	// boolean operation. Smaller contours are slivers.
	AreaEpsilon = 1e-6

	// PointEpsilon is the distance below which consecutive vertices are
	// merged.
	PointEpsilon = 1e-9

	// DocumentPrecision is the number of decimals written for outline
	// coordinates in the final document.
	DocumentPrecision = 3

	// maxFlattenDepth bounds curve subdivision.
	maxFlattenDepth = 16
)
