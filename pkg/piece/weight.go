package piece

// Weight is one entry in a weighted selection table. PlaceCount is mutable
// state that advances as the generator places pieces; every generator run
// must start from a fresh copy (see BridgeWeights/CastleWeights), never a
// shared table.
type Weight struct {
	Kind          Kind
	Amount        int32 // selection weight
	MaxPlaceCount int32 // 0 means unlimited
	AllowInRow    bool
	PlaceCount    int32
}

// CanPlace reports whether this entry may still be selected: either it has
// no cap, or it hasn't hit its cap yet.
func (w *Weight) CanPlace() bool {
	return w.MaxPlaceCount == 0 || w.PlaceCount < w.MaxPlaceCount
}

// bridgeTemplate and castleTemplate are the fixed initial weight tables.
// BridgeWeights/CastleWeights return fresh copies so that per-run mutation
// (PlaceCount, and removal on cap) never leaks between generator runs.
var bridgeTemplate = []Weight{
	{Kind: BridgeStraight, Amount: 30, MaxPlaceCount: 0, AllowInRow: true},
	{Kind: BridgeCrossing, Amount: 10, MaxPlaceCount: 4},
	{Kind: RoomCrossing, Amount: 10, MaxPlaceCount: 4},
	{Kind: StairsRoom, Amount: 10, MaxPlaceCount: 3},
	{Kind: MonsterThrone, Amount: 5, MaxPlaceCount: 2},
	{Kind: CastleEntrance, Amount: 5, MaxPlaceCount: 1},
}

var castleTemplate = []Weight{
	{Kind: CastleSmallCorridor, Amount: 25, MaxPlaceCount: 0, AllowInRow: true},
	{Kind: CastleSmallCorridorCrossing, Amount: 15, MaxPlaceCount: 5},
	{Kind: CastleSmallCorridorRightTurn, Amount: 5, MaxPlaceCount: 10},
	{Kind: CastleSmallCorridorLeftTurn, Amount: 5, MaxPlaceCount: 10},
	{Kind: CastleCorridorStairs, Amount: 10, MaxPlaceCount: 3, AllowInRow: true},
	{Kind: CastleCorridorTBalcony, Amount: 7, MaxPlaceCount: 2},
	{Kind: CastleStalkRoom, Amount: 5, MaxPlaceCount: 2},
}

// BridgeWeights returns a fresh copy of the bridge selection table.
func BridgeWeights() []Weight {
	return append([]Weight(nil), bridgeTemplate...)
}

// CastleWeights returns a fresh copy of the castle selection table.
func CastleWeights() []Weight {
	return append([]Weight(nil), castleTemplate...)
}
