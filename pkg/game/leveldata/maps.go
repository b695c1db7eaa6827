package leveldata

// Easy: two rooms. One key, one door, the ship right behind it.
var Easy = []string{
	"...............#................",
	"...............#................",
	"...............#................",
	"...............#................",
	"...............#................",
	"...............#................",
	"...............#................",
	"...............#................",
	"...............#................",
	"...............#................",
	"...............#................",
	"....1..........#................",
	"...###.........#................",
	"...............A....[]..........",
	".S.............a....{}..........",
	"################################",
}

// Normal: three rooms. A second key behind a fire pit.
var Normal = []string{
	"...............#...............#................",
	"...............#...............#................",
	"...............#...............#................",
	"...............#...............#................",
	"...............#...............#................",
	"...............#...............#................",
	"...............#...............#................",
	"...............#...............#................",
	"...............#...............#................",
	"...............#...............#................",
	"...............#...............#................",
	"....1..........#..........2....#................",
	"...###.........#.........###...#................",
	"...............A...............B....[]..........",
	".S.............a...FF..........b....{}..........",
	"################################################",
}

// Hard: three rooms. The first door is button-held, the second is keyed
// past a fire pit.
var Hard = []string{
	"...............#...............#................",
	"...............#...............#................",
	"...............#...............#................",
	"...............#...............#................",
	"...............#...............#................",
	"...............#...............#................",
	"...............#...............#................",
	"...............#...............#................",
	"...............#...............#................",
	"...........z...#...............#................",
	"..........###..#...............#................",
	"...............#......3........#................",
	"...............#.....###.......#................",
	"...............C...............C....[]..........",
	".S.............c...FF..........c....{}..........",
	"################################################",
}

// Lunatic: four rooms. Button sprint, fire pits, and a platform climb.
var Lunatic = []string{
	"...............#...............#...............#................",
	"...............#...............#...............#................",
	"...............#...............#...............#................",
	"...............#...............#...............#................",
	"...............#...............#...............#................",
	"...............#...............#...............#................",
	"...............#...............#...............#................",
	"...............#...............#...............#................",
	"...............#...............#...............#................",
	"...........z...#...............#.......2.......#................",
	"..........###..#...............#......###......#................",
	"...............#......1........#...............#................",
	"...............#.....###.......#..###..........#................",
	"...............C...............A...............B....[]..........",
	".S.............c...FF..........a.FFFF..........b....{}..........",
	"################################################################",
}
