// meta/meta.go
package meta

// DefaultDepth is the number of plies searched below the root.
const DefaultDepth = 2

// DefaultTargets is the number of nearest prey each token is searched against.
const DefaultTargets = 2

// DefaultThreats is the number of nearest predators each token is searched against.
const DefaultThreats = 2

// DefaultHistory is the number of recent moves an agent avoids repeating.
const DefaultHistory = 5

// MaxTurns ends a game in a draw.
const MaxTurns = 360

// ThrowsPerKind is each side's starting reserve of every kind.
const ThrowsPerKind = 3

// BoardRadius is the radius of the standard board.
const BoardRadius = 4
