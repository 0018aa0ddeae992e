// Package gridkit is a toolkit for character-grid puzzles: maps read from
// text, measured region by region, and searched for routes.
//
// What is in the box?
//
//	position/  directions, bounded moves and peeks, location-only keys
//	grid/      the 2D byte map: parsing, access, geometry helpers,
//	           scanline flood fill and region pricing
//	pathfind/  round-based branching search with turn-weighted costs,
//	           persistent per-branch histories and four search modes
//	cmd/       the gridkit command: regions, paths and show
//
// Quick example, the 4×4 reference map:
//
//	AAAA
//	BBCD      5 regions, price 140 (area × perimeter),
//	BBCC      bulk price 80 (area × sides)
//	EEEC
//
//	go install github.com/katalvlaran/gridkit/cmd/gridkit@latest
//	gridkit regions map.txt
package gridkit
