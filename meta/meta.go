// meta/meta.go
package meta

// DefaultBoardSize defines the side length of the board.
const DefaultBoardSize = 11

// DefaultRunLength defines how many stones in a row win.
const DefaultRunLength = 5

// DefaultDepth defines the number of plies searched per move.
const DefaultDepth = 1

// DefaultGoroutines defines the number of goroutines searching root moves.
const DefaultGoroutines = 1

// MaxDepth caps the depth an agent server request may ask for.
const MaxDepth = 3

// MaxBoardSize caps the side length of a board sent to the agent server.
const MaxBoardSize = 15

// MaxRequestBytes caps the size of an agent server request body.
const MaxRequestBytes = 1 << 16

// DefaultAddr defines the agent server listen address.
const DefaultAddr = ":8080"
