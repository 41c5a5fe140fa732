// Package piece catalogues the fortress structure pieces: their kinds,
// fixed dimensions and placement offsets, and the two weighted selection
// tables (bridge and castle) that drive the generator.
package piece

import "fmt"

// Kind enumerates every structure piece the generator can place.
type Kind int

const (
	BridgeStraight Kind = iota
	BridgeCrossing
	RoomCrossing
	StairsRoom
	MonsterThrone
	CastleEntrance
	BridgeEndFiller // terminating filler; never drawn by weighted selection

	CastleSmallCorridor
	CastleSmallCorridorCrossing
	CastleSmallCorridorRightTurn
	CastleSmallCorridorLeftTurn
	CastleCorridorStairs
	CastleCorridorTBalcony
	CastleStalkRoom

	StartPiece
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case BridgeStraight:
		return "BridgeStraight"
	case BridgeCrossing:
		return "BridgeCrossing"
	case RoomCrossing:
		return "RoomCrossing"
	case StairsRoom:
		return "StairsRoom"
	case MonsterThrone:
		return "MonsterThrone"
	case CastleEntrance:
		return "CastleEntrance"
	case BridgeEndFiller:
		return "BridgeEndFiller"
	case CastleSmallCorridor:
		return "CastleSmallCorridor"
	case CastleSmallCorridorCrossing:
		return "CastleSmallCorridorCrossing"
	case CastleSmallCorridorRightTurn:
		return "CastleSmallCorridorRightTurn"
	case CastleSmallCorridorLeftTurn:
		return "CastleSmallCorridorLeftTurn"
	case CastleCorridorStairs:
		return "CastleCorridorStairs"
	case CastleCorridorTBalcony:
		return "CastleCorridorTBalcony"
	case CastleStalkRoom:
		return "CastleStalkRoom"
	case StartPiece:
		return "StartPiece"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Dims is a piece's fixed (width, height, depth) footprint.
type Dims struct {
	W, H, D int32
}

// Offset is a piece's fixed bounding-box placement offset.
type Offset struct {
	X, Y, Z int32
}

// dims and offsets hold the fixed table of piece geometry. Every Kind is
// present, StartPiece included, although the start piece's box is built by
// geom.MakeStart rather than from this table.
var dims = map[Kind]Dims{
	BridgeStraight:               {5, 10, 19},
	BridgeCrossing:               {19, 10, 19},
	RoomCrossing:                 {7, 9, 7},
	StairsRoom:                   {7, 11, 7},
	MonsterThrone:                {7, 8, 9},
	CastleEntrance:               {13, 14, 13},
	BridgeEndFiller:              {5, 10, 8},
	CastleSmallCorridor:          {5, 7, 5},
	CastleSmallCorridorCrossing:  {5, 7, 5},
	CastleSmallCorridorRightTurn: {5, 7, 5},
	CastleSmallCorridorLeftTurn:  {5, 7, 5},
	CastleCorridorStairs:         {5, 14, 10},
	CastleCorridorTBalcony:       {9, 7, 9},
	CastleStalkRoom:              {13, 14, 13},
	StartPiece:                   {19, 10, 19},
}

var offsets = map[Kind]Offset{
	BridgeStraight:               {-1, -3, 0},
	BridgeCrossing:               {-8, -3, 0},
	RoomCrossing:                 {-2, 0, 0},
	StairsRoom:                   {-2, 0, 0},
	MonsterThrone:                {-2, 0, 0},
	CastleEntrance:               {-5, -3, 0},
	BridgeEndFiller:              {-1, -3, 0},
	CastleSmallCorridor:          {-1, 0, 0},
	CastleSmallCorridorCrossing:  {-1, 0, 0},
	CastleSmallCorridorRightTurn: {-1, 0, 0},
	CastleSmallCorridorLeftTurn:  {-1, 0, 0},
	CastleCorridorStairs:         {-1, -7, 0},
	CastleCorridorTBalcony:       {-3, 0, 0},
	CastleStalkRoom:              {-5, -3, 0},
	StartPiece:                   {-8, -3, 0},
}

// Dimensions returns k's fixed (width, height, depth).
func Dimensions(k Kind) Dims {
	d, ok := dims[k]
	if !ok {
		panic(fmt.Sprintf("piece: no dimensions registered for %v", k))
	}
	return d
}

// PlacementOffset returns k's fixed bounding-box offset.
func PlacementOffset(k Kind) Offset {
	o, ok := offsets[k]
	if !ok {
		panic(fmt.Sprintf("piece: no offset registered for %v", k))
	}
	return o
}

// IsCrossing reports whether k shares the 19x10x19 crossing footprint that
// the quad detector looks for (BridgeCrossing and the interchangeable
// StartPiece).
func IsCrossing(k Kind) bool {
	return k == BridgeCrossing || k == StartPiece
}
