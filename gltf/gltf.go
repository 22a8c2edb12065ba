// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package gltf implements glTF 2.0 serialization of
// scene hierarchies.
//
// Only the objects needed to describe node transforms
// and what they reference are modeled. Unknown members
// are ignored when decoding.
package gltf

import (
	"encoding/json"
	"io"
)

// Root glTF object.
type GLTF struct {
	ExtensionsUsed     []string `json:"extensionsUsed,omitempty"`
	ExtensionsRequired []string `json:"extensionsRequired,omitempty"`
	Asset              struct {
		Copyright  string `json:"copyright,omitempty"`
		Generator  string `json:"generator,omitempty"`
		Version    string `json:"version"`
		MinVersion string `json:"minVersion,omitempty"`
		Extensions any    `json:"extensions,omitempty"`
		Extras     any    `json:"extras,omitempty"`
	} `json:"asset"`
	Cameras    []Camera `json:"cameras,omitempty"`
	Meshes     []Mesh   `json:"meshes,omitempty"`
	Nodes      []Node   `json:"nodes,omitempty"`
	Scene      *int64   `json:"scene,omitempty"`
	Scenes     []Scene  `json:"scenes,omitempty"`
	Extensions any      `json:"extensions,omitempty"`
	Extras     any      `json:"extras,omitempty"`
}

// glTF.cameras' element.
// Projection parameters are not decoded.
type Camera struct {
	Type       string `json:"type"`
	Name       string `json:"name,omitempty"`
	Extensions any    `json:"extensions,omitempty"`
	Extras     any    `json:"extras,omitempty"`
}

const (
	Tperspective  = "perspective"
	Torthographic = "orthographic"
)

// glTF.meshes' element.
// Primitives are kept undecoded.
type Mesh struct {
	Primitives json.RawMessage `json:"primitives"`
	Weights    []float32       `json:"weights,omitempty"`
	Name       string          `json:"name,omitempty"`
	Extensions any             `json:"extensions,omitempty"`
	Extras     any             `json:"extras,omitempty"`
}

// glTF.nodes' element.
// Matrix is column-major. Rotation is a quaternion
// in (x, y, z, w) order.
type Node struct {
	Camera      *int64       `json:"camera,omitempty"`
	Children    []int64      `json:"children,omitempty"`
	Skin        *int64       `json:"skin,omitempty"`
	Matrix      *[16]float32 `json:"matrix,omitempty"` // Default is identity.
	Mesh        *int64       `json:"mesh,omitempty"`
	Rotation    *[4]float32  `json:"rotation,omitempty"`    // Default is [0, 0, 0, 1].
	Scale       *[3]float32  `json:"scale,omitempty"`       // Default is [1, 1, 1].
	Translation *[3]float32  `json:"translation,omitempty"` // Default is [0, 0, 0].
	Weights     []float32    `json:"weights,omitempty"`
	Name        string       `json:"name,omitempty"`
	Extensions  any          `json:"extensions,omitempty"`
	Extras      any          `json:"extras,omitempty"`
}

// glTF.scenes' element.
type Scene struct {
	Nodes      []int64 `json:"nodes,omitempty"`
	Name       string  `json:"name,omitempty"`
	Extensions any     `json:"extensions,omitempty"`
	Extras     any     `json:"extras,omitempty"`
}

// Encode encodes gltf into w.
func Encode(w io.Writer, gltf *GLTF) error {
	enc := json.NewEncoder(w)
	err := enc.Encode(gltf)
	if err != nil {
		return err
	}
	return nil
}

// Decode decodes r into a new GLTF instance.
func Decode(r io.Reader) (*GLTF, error) {
	var gltf GLTF
	dec := json.NewDecoder(r)
	err := dec.Decode(&gltf)
	if err != nil {
		return nil, err
	}
	return &gltf, nil
}
