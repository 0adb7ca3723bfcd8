package depthchart

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{in: "QB", want: PositionQuarterback},
		{in: " qb ", want: PositionQuarterback},
		{in: "lwr", want: PositionLeftWideReceiver},
		{in: "C", want: PositionCenter},
		{in: "GK", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePosition(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParsePosition(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePosition(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParsePosition(%q)=%s want=%s", tt.in, got, tt.want)
		}
	}
}

func TestOrderedPositionsMatchesAllPositions(t *testing.T) {
	if len(OrderedPositions) != len(AllPositions) {
		t.Fatalf("ordered positions=%d all positions=%d", len(OrderedPositions), len(AllPositions))
	}
	for _, p := range OrderedPositions {
		if !p.Valid() {
			t.Fatalf("position %s missing from AllPositions", p)
		}
	}
}

func TestPlayer_Validate(t *testing.T) {
	if err := (Player{Number: 0, Name: "Tom"}).Validate(); err != nil {
		t.Fatalf("expected valid player, got %v", err)
	}
	if err := (Player{Number: 1, Name: "  "}).Validate(); err == nil {
		t.Fatalf("expected error for blank name")
	}
	if err := (Player{Number: -1, Name: "Tom"}).Validate(); err == nil {
		t.Fatalf("expected error for negative number")
	}
}

func TestRejected_AlwaysCarriesDetail(t *testing.T) {
	r := Rejected()
	if r.IsValid || r.IsSuccess {
		t.Fatalf("rejected result must not be valid or successful: %+v", r)
	}
	if len(r.ErrorDetails) == 0 {
		t.Fatalf("rejected result must carry at least one detail")
	}

	ok := Succeeded()
	if !ok.IsValid || !ok.IsSuccess || len(ok.ErrorDetails) != 0 {
		t.Fatalf("unexpected success result: %+v", ok)
	}
}
