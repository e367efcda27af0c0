// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mesh loads the embedded lobby room model.
//
// The asset is a glTF document plus its binary buffer, fixed at build
// time via go:embed. It is parsed at most once; the parsed model is
// immutable and shared read-only by both eyes.
package mesh

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

//go:embed assets/lobby_room.gltf assets/lobby_room.bin
var assetFS embed.FS

// Model is an immutable indexed triangle mesh.
type Model struct {
	Positions [][3]float32
	Indices   []uint32
}

// TriangleCount returns the number of triangles in the model.
func (m *Model) TriangleCount() int { return len(m.Indices) / 3 }

// LoadLobbyRoom parses the embedded lobby room asset.
//
// A failure here means the embedded asset is corrupt, which is a
// build-time defect, not a per-frame condition; callers treat the
// error as fatal for the lobby renderer.
func LoadLobbyRoom() (*Model, error) {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		return nil, fmt.Errorf("mesh: embedded assets unavailable: %w", err)
	}

	raw, err := fs.ReadFile(sub, "lobby_room.gltf")
	if err != nil {
		return nil, fmt.Errorf("mesh: embedded lobby_room.gltf unavailable: %w", err)
	}

	doc := new(gltf.Document)
	if err := gltf.NewDecoderFS(bytes.NewReader(raw), sub).Decode(doc); err != nil {
		return nil, fmt.Errorf("mesh: lobby room parse failed: %w", err)
	}

	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, fmt.Errorf("mesh: lobby room has no mesh primitives")
	}
	prim := doc.Meshes[0].Primitives[0]

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("mesh: lobby room primitive has no POSITION attribute")
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[int(posIdx)], nil)
	if err != nil {
		return nil, fmt.Errorf("mesh: reading lobby room positions: %w", err)
	}

	if prim.Indices == nil {
		return nil, fmt.Errorf("mesh: lobby room primitive is not indexed")
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[int(*prim.Indices)], nil)
	if err != nil {
		return nil, fmt.Errorf("mesh: reading lobby room indices: %w", err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("mesh: lobby room index count %d is not a multiple of 3", len(indices))
	}

	return &Model{Positions: positions, Indices: indices}, nil
}
