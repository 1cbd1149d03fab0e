package cpu

import "testing"

func TestALUADCSetsOverflowAndNegative(t *testing.T) {
	r := Compute(0x7F, 0x01, false, OpADC)
	if !r.Overflow || !r.Negative {
		t.Fatalf("ADC(0x7F,0x01,c=0) = %+v, want overflow and negative set", r)
	}
}

func TestALUADCCarryAndZero(t *testing.T) {
	r := Compute(0xFF, 0x01, false, OpADC)
	if !r.Carry || !r.Zero {
		t.Fatalf("ADC(0xFF,0x01,c=0) = %+v, want carry and zero set", r)
	}
}

func TestALUASLThenLSRRoundTrips(t *testing.T) {
	for v := 0; v < 256; v++ {
		b := byte(v)
		asl := Compute(b, 0, false, OpASL)
		lsr := Compute(asl.Value, 0, false, OpLSR)
		wantRoundTrip := b&0x80 == 0
		gotRoundTrip := lsr.Value == b
		if gotRoundTrip != wantRoundTrip {
			t.Fatalf("ASL;LSR on %#02x round-trips=%v, want %v", b, gotRoundTrip, wantRoundTrip)
		}
	}
}

func TestALURolThenRorRoundTripsWithCarryZero(t *testing.T) {
	for v := 0; v < 256; v++ {
		b := byte(v)
		rol := Compute(b, 0, false, OpROL)
		ror := Compute(rol.Value, 0, false, OpROR)
		wantRoundTrip := b&0x80 == 0
		gotRoundTrip := ror.Value == b
		if gotRoundTrip != wantRoundTrip {
			t.Fatalf("ROL;ROR(c=0) on %#02x round-trips=%v, want %v", b, gotRoundTrip, wantRoundTrip)
		}
	}
}

func TestALUCompareDiscardsResultSemanticsViaFlags(t *testing.T) {
	r := Compute(0x10, 0x10, true, OpCMP)
	if !r.Zero || !r.Carry {
		t.Fatalf("CMP(0x10,0x10) = %+v, want zero and carry set (equal, no borrow)", r)
	}
}

func TestALUZeroPageXWrapNotALUsJob(t *testing.T) {
	// Documents that wrap-around addressing belongs to the Sequencer,
	// not the ALU: ALU only ever sees bytes already in range.
	r := Compute(0xFF, 0x02, false, OpADC)
	if r.Value != 0x01 {
		t.Fatalf("ADC(0xFF,0x02) = %#02x, want 0x01", r.Value)
	}
}

func TestALUOpFlagApplicability(t *testing.T) {
	if !OpADC.UpdatesCarry() || !OpADC.UpdatesOverflow() {
		t.Fatal("ADC should update both carry and overflow")
	}
	if OpAND.UpdatesCarry() || OpAND.UpdatesOverflow() {
		t.Fatal("AND should update neither carry nor overflow")
	}
	if !OpASL.UpdatesCarry() || OpASL.UpdatesOverflow() {
		t.Fatal("ASL should update carry but not overflow")
	}
	if !OpCMP.UpdatesCarry() || OpCMP.UpdatesOverflow() {
		t.Fatal("CMP should update carry but not overflow")
	}
}
