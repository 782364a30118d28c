package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Cell addresses a single grid position by column (X) and row (Y).
type Cell struct {
	X int
	Y int
}
