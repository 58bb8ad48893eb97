package game

// Move is a column index on the board, 0 through Columns-1.
type Move int

// Player identifies one of the two sides. Nobody doubles as the winner value
// for positions that are undecided or drawn; IsTerminal disambiguates.
type Player int8

const (
	Nobody Player = iota
	PlayerA
	PlayerB
)

func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	return Nobody
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "PlayerA"
	case PlayerB:
		return "PlayerB"
	}
	return "Nobody"
}

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Player
	LegalMoves() []Move
	Play(Move) State
	IsTerminal() bool
	Winner() Player
	Hash() StateHash
}
