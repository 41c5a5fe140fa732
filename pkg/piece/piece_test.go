package piece

import "testing"

func TestDimensionsTable(t *testing.T) {
	cases := map[Kind]Dims{
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
	for k, want := range cases {
		if got := Dimensions(k); got != want {
			t.Errorf("Dimensions(%v) = %+v, want %+v", k, got, want)
		}
	}
}

func TestOffsetsTable(t *testing.T) {
	cases := map[Kind]Offset{
		BridgeStraight:  {-1, -3, 0},
		BridgeCrossing:  {-8, -3, 0},
		RoomCrossing:    {-2, 0, 0},
		CastleEntrance:  {-5, -3, 0},
		BridgeEndFiller: {-1, -3, 0},
		StartPiece:      {-8, -3, 0},
	}
	for k, want := range cases {
		if got := PlacementOffset(k); got != want {
			t.Errorf("PlacementOffset(%v) = %+v, want %+v", k, got, want)
		}
	}
}

func TestWeightTablesIndependentCopies(t *testing.T) {
	a := BridgeWeights()
	b := BridgeWeights()
	a[0].PlaceCount = 99
	if b[0].PlaceCount == 99 {
		t.Fatal("BridgeWeights returned aliased slices")
	}
}

func TestBridgeWeightsTotals(t *testing.T) {
	w := BridgeWeights()
	if len(w) != 6 {
		t.Fatalf("len = %d, want 6", len(w))
	}
	var total int32
	for _, e := range w {
		total += e.Amount
	}
	if total != 70 {
		t.Fatalf("total bridge weight = %d, want 70", total)
	}
}

func TestCastleWeightsTotals(t *testing.T) {
	w := CastleWeights()
	if len(w) != 7 {
		t.Fatalf("len = %d, want 7", len(w))
	}
	var total int32
	for _, e := range w {
		total += e.Amount
	}
	if total != 72 {
		t.Fatalf("total castle weight = %d, want 72", total)
	}
}

func TestIsCrossing(t *testing.T) {
	if !IsCrossing(BridgeCrossing) || !IsCrossing(StartPiece) {
		t.Fatal("BridgeCrossing and StartPiece must both be crossings")
	}
	if IsCrossing(RoomCrossing) {
		t.Fatal("RoomCrossing is not a crossing")
	}
}

func TestCanPlace(t *testing.T) {
	unlimited := Weight{MaxPlaceCount: 0, PlaceCount: 1000}
	if !unlimited.CanPlace() {
		t.Fatal("unlimited entry should always be placeable")
	}

	capped := Weight{MaxPlaceCount: 2, PlaceCount: 2}
	if capped.CanPlace() {
		t.Fatal("capped entry at its cap should not be placeable")
	}
}
