package catalog

import "testing"

func TestFromRawBasicBlock(t *testing.T) {
	raw := RawObject{Properties: []KV{
		{"1", "1"}, {"2", "100"}, {"3", "15"},
	}}
	obj := FromRaw(raw)
	if obj.ID != 1 {
		t.Fatalf("id = %d, want 1", obj.ID)
	}
	if obj.Category != Solid {
		t.Fatalf("category = %v, want Solid", obj.Category)
	}
	if obj.Width != 30 || obj.Height != 30 {
		t.Fatalf("dims = %v x %v, want 30x30", obj.Width, obj.Height)
	}
	if obj.OBB == nil {
		t.Fatal("expected precomputed OBB for rectangle hitbox")
	}
}

func TestFromRawScaledSpike(t *testing.T) {
	raw := RawObject{Properties: []KV{
		{"1", "8"}, {"2", "200"}, {"3", "6"}, {"32", "2"},
	}}
	obj := FromRaw(raw)
	if obj.Category != Hazard {
		t.Fatalf("category = %v, want Hazard", obj.Category)
	}
	if obj.Width != 12 || obj.Height != 24 {
		t.Fatalf("scaled dims = %v x %v, want 12x24", obj.Width, obj.Height)
	}
}

func TestFromRawSawbladeIsCircleNoOBB(t *testing.T) {
	raw := RawObject{Properties: []KV{{"1", "88"}, {"2", "0"}, {"3", "0"}}}
	obj := FromRaw(raw)
	if obj.Category != Sawblade {
		t.Fatalf("category = %v, want Sawblade", obj.Category)
	}
	if obj.HitboxShape != Circle {
		t.Fatal("expected circle hitbox")
	}
	if obj.OBB != nil {
		t.Fatal("expected no OBB for circle hitbox")
	}
}

func TestFromRawUnknownIDDefaults(t *testing.T) {
	raw := RawObject{Properties: []KV{{"1", "999999"}}}
	obj := FromRaw(raw)
	if obj.Category != Unknown {
		t.Fatalf("category = %v, want Unknown", obj.Category)
	}
	if obj.Width != 30 || obj.Height != 30 {
		t.Fatalf("dims = %v x %v, want 30x30 default", obj.Width, obj.Height)
	}
}

func TestFromRawIgnoresGarbageValues(t *testing.T) {
	raw := RawObject{Properties: []KV{{"1", "not-a-number"}, {"2", "also-bad"}, {"99", "ignored"}}}
	obj := FromRaw(raw)
	if obj.ID != 0 {
		t.Fatalf("id = %d, want 0 (fallback)", obj.ID)
	}
	if obj.Position.X != 0 {
		t.Fatalf("x = %v, want 0 (fallback)", obj.Position.X)
	}
}

func TestFromRawInverseGravityPortal(t *testing.T) {
	raw := RawObject{Properties: []KV{{"1", "11"}, {"2", "50"}, {"3", "50"}}}
	obj := FromRaw(raw)
	if obj.Category != InverseGravityPortal {
		t.Fatalf("category = %v, want InverseGravityPortal", obj.Category)
	}
}
