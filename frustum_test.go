package roamterrain

import "testing"

func TestBoxFrustumClassifyOutside(t *testing.T) {
	f := NewRectFrustum(0, 0, 100, 100)
	if f.ClassifySphere(-50, -50, 1) != FrustumOutside {
		t.Fatal("expected a far sphere to classify as outside")
	}
	if f.SphereInFrustum(-50, -50, 1) {
		t.Fatal("SphereInFrustum should be false when fully outside")
	}
}

func TestBoxFrustumClassifyInside(t *testing.T) {
	f := NewRectFrustum(0, 0, 100, 100)
	if f.ClassifySphere(50, 50, 1) != FrustumInside {
		t.Fatal("expected a small centered sphere to classify as fully inside")
	}
	if !f.SphereInFrustum(50, 50, 1) {
		t.Fatal("SphereInFrustum should be true when inside")
	}
}

func TestBoxFrustumClassifyIntersecting(t *testing.T) {
	f := NewRectFrustum(0, 0, 100, 100)
	class := f.ClassifySphere(0, 50, 10)
	if class != FrustumIntersecting {
		t.Fatalf("expected a boundary-straddling sphere to classify as intersecting, got %v", class)
	}
}

func TestCallbacksClassifyFallsBackToBoolean(t *testing.T) {
	cb := Callbacks{
		SphereInFrustum: func(x, y, r float64) bool { return x > 0 },
	}
	if got := cb.classify(1, 0, 1); got != FrustumIntersecting {
		t.Fatalf("classify = %v, want Intersecting (conservative, never promotes to Inside)", got)
	}
	if got := cb.classify(-1, 0, 1); got != FrustumOutside {
		t.Fatalf("classify = %v, want Outside", got)
	}
}

func TestCallbacksClassifyUsesRicherCallbackWhenPresent(t *testing.T) {
	cb := Callbacks{
		SphereInFrustum: func(x, y, r float64) bool { return true },
		ClassifySphere:  func(x, y, r float64) FrustumClass { return FrustumInside },
	}
	if got := cb.classify(0, 0, 1); got != FrustumInside {
		t.Fatalf("classify = %v, want Inside from the registered ClassifySphere", got)
	}
}
