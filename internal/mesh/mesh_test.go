// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import "testing"

func TestLoadLobbyRoom(t *testing.T) {
	m, err := LoadLobbyRoom()
	if err != nil {
		t.Fatalf("LoadLobbyRoom() = %v", err)
	}
	if len(m.Positions) == 0 {
		t.Fatal("model has no vertices")
	}
	if m.TriangleCount() == 0 {
		t.Fatal("model has no triangles")
	}
	if len(m.Indices)%3 != 0 {
		t.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			t.Fatalf("index %d references vertex %d, only %d vertices", i, idx, len(m.Positions))
		}
	}
}

func TestLobbyRoomShape(t *testing.T) {
	m, err := LoadLobbyRoom()
	if err != nil {
		t.Fatalf("LoadLobbyRoom() = %v", err)
	}

	// The room must enclose the viewer: floor at or below y = 0 and
	// geometry extending above head height on all sides.
	var minY, maxY float32 = m.Positions[0][1], m.Positions[0][1]
	var maxAbsX, maxAbsZ float32
	for _, p := range m.Positions {
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
		if x := abs32(p[0]); x > maxAbsX {
			maxAbsX = x
		}
		if z := abs32(p[2]); z > maxAbsZ {
			maxAbsZ = z
		}
	}
	if minY > 0 {
		t.Errorf("floor at y = %v, want <= 0", minY)
	}
	if maxY < 2 {
		t.Errorf("ceiling at y = %v, want >= 2", maxY)
	}
	if maxAbsX < 1 || maxAbsZ < 1 {
		t.Errorf("room extent (%v, %v) too small to surround the viewer", maxAbsX, maxAbsZ)
	}
}

func TestLoadLobbyRoomIsRepeatable(t *testing.T) {
	a, err := LoadLobbyRoom()
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	b, err := LoadLobbyRoom()
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(a.Positions) != len(b.Positions) || len(a.Indices) != len(b.Indices) {
		t.Error("repeated loads produced different models")
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
