// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package asset imports scene hierarchies from glTF
// files into node graphs.
package asset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gviegas/scenemath/gltf"
	"github.com/gviegas/scenemath/internal/bitvec"
	"github.com/gviegas/scenemath/linear"
	"github.com/gviegas/scenemath/node"
)

var (
	// ErrFormat means that the data is neither glTF
	// JSON nor a GLB blob.
	ErrFormat = errors.New("asset: unrecognized format")

	// ErrNodeReuse means that a glTF node is reached
	// more than once while building the hierarchy,
	// either because it has multiple parents or
	// because the hierarchy has a cycle.
	ErrNodeReuse = errors.New("asset: node reused or cyclic")
)

// Importer imports assets.
// The zero value is ready for use.
type Importer struct {
	// Log receives import diagnostics.
	// If nil, nothing is logged.
	Log *zap.Logger

	// Limit is the maximum number of concurrent
	// imports in ImportAll.
	// If not positive, there is no limit.
	Limit int
}

// Default is the Importer used by the package-level
// functions.
var Default Importer

// Import calls Default.Import.
func Import(path string) (*node.Node, error) { return Default.Import(path) }

// ImportAsync calls Default.ImportAsync.
func ImportAsync(path string, done func(*node.Node, error)) { Default.ImportAsync(path, done) }

// ImportAll calls Default.ImportAll.
func ImportAll(ctx context.Context, paths ...string) ([]*node.Node, error) {
	return Default.ImportAll(ctx, paths...)
}

func (im *Importer) log() *zap.Logger {
	if im.Log == nil {
		return zap.NewNop()
	}
	return im.Log
}

// Import imports the file at path.
// It returns a root node named after the file whose
// descendants are the nodes of the default scene.
func (im *Importer) Import(path string) (*node.Node, error) {
	start := time.Now()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("asset: %w", err)
	}
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	root, err := im.Read(bytes.NewReader(b), name)
	if err != nil {
		im.log().Error("import failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	im.log().Info("imported",
		zap.String("path", path),
		zap.Int("nodes", root.Len()),
		zap.Duration("elapsed", time.Since(start)))
	return root, nil
}

// ImportAsync imports the file at path in a new
// goroutine and calls done with the result.
// done runs on that goroutine.
func (im *Importer) ImportAsync(path string, done func(*node.Node, error)) {
	go func() { done(im.Import(path)) }()
}

// ImportAll imports every file in paths concurrently.
// The nodes are returned in the order of paths.
// It stops at the first error or when ctx is done.
func (im *Importer) ImportAll(ctx context.Context, paths ...string) ([]*node.Node, error) {
	g, ctx := errgroup.WithContext(ctx)
	if im.Limit > 0 {
		g.SetLimit(im.Limit)
	}
	nodes := make([]*node.Node, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := im.Import(path)
			if err != nil {
				return err
			}
			nodes[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return nodes, nil
}

// Read decodes glTF JSON or GLB data from r and builds
// its hierarchy under a new node with the given name.
// Errors are prefixed with "asset: ".
func (im *Importer) Read(r io.Reader, name string) (*node.Node, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("asset: %w", err)
	}
	var doc *gltf.GLTF
	switch {
	case gltf.IsGLB(bytes.NewReader(b)):
		doc, err = gltf.DecodeGLB(bytes.NewReader(b))
	case bytes.HasPrefix(bytes.TrimSpace(b), []byte("{")):
		doc, err = gltf.Decode(bytes.NewReader(b))
	default:
		return nil, ErrFormat
	}
	if err == nil {
		err = doc.Check()
	}
	if err != nil {
		return nil, fmt.Errorf("asset: %w", err)
	}
	root := node.New()
	root.Name = name
	if err = im.build(doc, root); err != nil {
		return nil, err
	}
	return root, nil
}

// roots marks in child every node that is some other
// node's child and returns the indices of the nodes at
// the top of the hierarchy of doc.
// scene reports whether the indices come from a scene.
func roots(doc *gltf.GLTF, child *bitvec.V[uint32]) (idx []int64, scene bool) {
	switch {
	case doc.Scene != nil:
		return doc.Scenes[*doc.Scene].Nodes, true
	case len(doc.Scenes) > 0:
		return doc.Scenes[0].Nodes, true
	}
	for i := range doc.Nodes {
		for _, c := range doc.Nodes[i].Children {
			child.Set(int(c))
		}
	}
	for i := range doc.Nodes {
		if !child.IsSet(i) {
			idx = append(idx, int64(i))
		}
	}
	return idx, false
}

func (im *Importer) build(doc *gltf.GLTF, root *node.Node) error {
	var seen bitvec.V[uint32]
	seen.Fit(len(doc.Nodes))
	idx, scene := roots(doc, &seen)
	seen.Clear()

	var visit func(idx int64, parent *node.Node) error
	visit = func(idx int64, parent *node.Node) error {
		if !seen.Set(int(idx)) {
			im.log().Warn("node reached twice", zap.Int64("index", idx))
			return ErrNodeReuse
		}
		gn := &doc.Nodes[idx]
		n := im.convert(gn)
		parent.Insert(n)
		// Insert prepends.
		for i := len(gn.Children) - 1; i >= 0; i-- {
			if err := visit(gn.Children[i], n); err != nil {
				return err
			}
		}
		return nil
	}
	for i := len(idx) - 1; i >= 0; i-- {
		if err := visit(idx[i], root); err != nil {
			return err
		}
	}
	if scene {
		return nil
	}

	// Without a scene, a node that no root reaches
	// lies on a cycle.
	for i := len(doc.Nodes); i < seen.Len(); i++ {
		seen.Set(i)
	}
	if i, ok := seen.Search(); ok {
		im.log().Warn("node unreachable", zap.Int("index", i))
		return ErrNodeReuse
	}
	return nil
}

// rotTol is how far from unit length a glTF rotation
// may be before a warning is logged.
const rotTol = 1e-3

func (im *Importer) convert(gn *gltf.Node) *node.Node {
	n := node.New()
	n.Name = gn.Name
	if m := gn.Matrix; m != nil {
		var mat linear.M4f
		for i := range mat {
			copy(mat[i][:], m[4*i:])
		}
		n.SetMatrix(&mat)
		im.log().Debug("node", zap.String("name", gn.Name), zap.Bool("matrix", true))
		return n
	}
	if t := gn.Translation; t != nil {
		*n.Translation() = linear.V3f(*t)
	}
	if r := gn.Rotation; r != nil {
		q := n.Rotation()
		q.Load(r[:], 0)
		if l := q.Len(); l < 1-rotTol || l > 1+rotTol {
			im.log().Warn("normalizing rotation",
				zap.String("name", gn.Name),
				zap.Float32("length", l))
		}
		q.Norm(q)
	}
	if s := gn.Scale; s != nil {
		*n.Scale() = linear.V3f(*s)
	}
	im.log().Debug("node", zap.String("name", gn.Name), zap.Stringer("rotation", n.Rotation()))
	return n
}
