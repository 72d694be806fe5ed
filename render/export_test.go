package render

// Segments exposes the polyline segment count to tests.
var Segments = segments
