// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gltf

import (
	"errors"
	"strings"
)

func newErr(reason string) error {
	return errors.New("gltf: " + reason)
}

func inRange(idx int64, n int) bool { return idx >= 0 && idx < int64(n) }

// Check checks that f is valid glTF.
// Only the objects modeled by this package are
// checked.
func (f *GLTF) Check() error {
	if !strings.HasPrefix(f.Asset.Version, "2.") {
		return newErr("unsupported GLTF.Asset.Version")
	}
	if s := f.Scene; s != nil && !inRange(*s, len(f.Scenes)) {
		return newErr("invalid GLTF.Scene index")
	}
	for i := range f.Scenes {
		for _, n := range f.Scenes[i].Nodes {
			if !inRange(n, len(f.Nodes)) {
				return newErr("invalid Scene.Nodes index")
			}
		}
	}
	for i := range f.Cameras {
		switch f.Cameras[i].Type {
		case Tperspective, Torthographic:
		default:
			return newErr("invalid Camera.Type")
		}
	}
	for i := range f.Nodes {
		if err := f.Nodes[i].Check(f); err != nil {
			return err
		}
	}
	return nil
}

// Check checks that n is valid glTF.nodes' element.
// It does not check that the node hierarchy is a
// forest.
func (n *Node) Check(gltf *GLTF) error {
	if n.Camera != nil && !inRange(*n.Camera, len(gltf.Cameras)) {
		return newErr("invalid Node.Camera index")
	}
	if n.Mesh != nil && !inRange(*n.Mesh, len(gltf.Meshes)) {
		return newErr("invalid Node.Mesh index")
	}
	for _, c := range n.Children {
		if !inRange(c, len(gltf.Nodes)) {
			return newErr("invalid Node.Children index")
		}
	}
	if n.Matrix != nil && (n.Rotation != nil || n.Scale != nil || n.Translation != nil) {
		return newErr("Node.Matrix and Node TRS are mutually exclusive")
	}
	if r := n.Rotation; r != nil && r[0] == 0 && r[1] == 0 && r[2] == 0 && r[3] == 0 {
		return newErr("invalid Node.Rotation value")
	}
	return nil
}
