// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package gltf

import (
	"bytes"
	"encoding/binary"
	"io"
)

// GLB header.
type glbHeader [3]uint32

// Indices in glbHeader.
const (
	headerMagic   = 0
	headerVersion = 1
	headerLength  = 2
)

// GLB chunk.
type glbChunk [2]uint32

// Indices in glbChunk.
const (
	chunkLength = 0
	chunkType   = 1
	// Then payload.
)

const (
	// glbHeader[headerMagic].
	magic = 0x46546c67

	// glbChunk[chunkType].
	typeJSON = 0x4e4f534a
)

// IsGLB returns whether r refers to a binary glTF (version 2).
// It assumes that r was positioned accordingly.
func IsGLB(r io.Reader) bool {
	var h glbHeader
	err := binary.Read(r, binary.LittleEndian, h[:])
	switch {
	case err != nil, h[headerMagic] != magic, h[headerVersion] != 2:
		return false
	default:
		return true
	}
}

// SeekJSON seeks into r until it finds the beginning
// of the JSON string.
// If successful, it returns the length of the chunk.
// r must refer to an unread GLB blob.
func SeekJSON(r io.Reader) (n int, err error) {
	if !IsGLB(r) {
		err = newErr("not a GLB blob")
		return
	}
	var c glbChunk
	err = binary.Read(r, binary.LittleEndian, c[:])
	switch {
	case err != nil:
	case c[chunkLength] == 0 || c[chunkType] != typeJSON:
		err = newErr("invalid GLB chunk")
	default:
		n = int(c[chunkLength])
	}
	return
}

// DecodeGLB decodes the JSON chunk of the GLB blob r
// into a new GLTF instance.
// The BIN chunk, if any, is not read.
func DecodeGLB(r io.Reader) (*GLTF, error) {
	n, err := SeekJSON(r)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if _, err = io.CopyN(&b, r, int64(n)); err != nil {
		return nil, newErr("truncated GLB chunk")
	}
	return Decode(&b)
}

// EncodeGLB encodes gltf into w as a GLB blob with a
// single JSON chunk.
func EncodeGLB(w io.Writer, gltf *GLTF) error {
	var b bytes.Buffer
	if err := Encode(&b, gltf); err != nil {
		return err
	}
	// Chunks are 4-byte aligned and the JSON chunk
	// is padded with spaces.
	for b.Len()%4 != 0 {
		b.WriteByte(' ')
	}
	var h glbHeader
	var c glbChunk
	h[headerMagic] = magic
	h[headerVersion] = 2
	h[headerLength] = uint32(len(h)*4 + len(c)*4 + b.Len())
	c[chunkLength] = uint32(b.Len())
	c[chunkType] = typeJSON
	if err := binary.Write(w, binary.LittleEndian, h[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, c[:]); err != nil {
		return err
	}
	_, err := w.Write(b.Bytes())
	return err
}
