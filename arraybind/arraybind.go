// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package arraybind binds the core to a host that passes flat, tightly
// packed numerical arrays whose per-row layout matches the C++ value types
// byte-for-byte (Point3F as 3 little-endian float32s, Face as 3 uint32s,
// and so on). It reinterprets those buffers in place instead of copying
// element-by-element, and brackets each core call with
// runtime.LockOSThread/UnlockOSThread so the calling goroutine's OS thread
// is pinned only for the duration of the core call, letting the Go
// scheduler run other host-originated goroutines on it the rest of the
// time — the closest analogue this runtime has to releasing a host
// interpreter's global lock around a foreign call.
package arraybind

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ultimaker/uvula-go/geom"
	"github.com/ultimaker/uvula-go/mesh"
	"github.com/ultimaker/uvula-go/project"
	"github.com/ultimaker/uvula-go/unwrap"
)

// Vertices reinterprets a flat, XYZ-interleaved float32 buffer as a
// []geom.Point3F without copying. buf's length must be a multiple of 3
// float32s; the returned slice aliases buf's backing array, so the caller
// must not mutate buf while the slice is in use.
func Vertices(buf []float32) ([]geom.Point3F, error) {
	if len(buf)%3 != 0 {
		return nil, fmt.Errorf("arraybind: vertex buffer length %d is not a multiple of 3", len(buf))
	}
	if len(buf) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*geom.Point3F)(unsafe.Pointer(&buf[0])), len(buf)/3), nil
}

// Points2F reinterprets a flat, XY-interleaved float32 buffer as a
// []geom.Point2F without copying.
func Points2F(buf []float32) ([]geom.Point2F, error) {
	if len(buf)%2 != 0 {
		return nil, fmt.Errorf("arraybind: point buffer length %d is not a multiple of 2", len(buf))
	}
	if len(buf) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*geom.Point2F)(unsafe.Pointer(&buf[0])), len(buf)/2), nil
}

// Faces reinterprets a flat, (i1,i2,i3)-interleaved uint32 buffer as a
// []mesh.Face without copying.
func Faces(buf []uint32) ([]mesh.Face, error) {
	if len(buf)%3 != 0 {
		return nil, fmt.Errorf("arraybind: face buffer length %d is not a multiple of 3", len(buf))
	}
	if len(buf) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*mesh.Face)(unsafe.Pointer(&buf[0])), len(buf)/3), nil
}

// Adjacency reinterprets a flat, (i1,i2,i3)-interleaved int32 buffer as a
// []mesh.FaceSigned without copying.
func Adjacency(buf []int32) ([]mesh.FaceSigned, error) {
	if len(buf)%3 != 0 {
		return nil, fmt.Errorf("arraybind: adjacency buffer length %d is not a multiple of 3", len(buf))
	}
	if len(buf) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*mesh.FaceSigned)(unsafe.Pointer(&buf[0])), len(buf)/3), nil
}

// Unwrap reinterprets vertexBuf and indexBuf in place and runs the core
// Unwrap over them, yielding its UVs as a freshly allocated flat XY buffer
// (the core never aliases its output with caller-owned memory).
func Unwrap(vertexBuf []float32, indexBuf []uint32) (uvBuf []float32, textureWidth, textureHeight uint32, err error) {
	vertices, err := Vertices(vertexBuf)
	if err != nil {
		return nil, 0, 0, err
	}
	faces, err := Faces(indexBuf)
	if err != nil {
		return nil, 0, 0, err
	}

	runtime.LockOSThread()
	uvs, texW, texH, ok := unwrap.Unwrap(vertices, faces)
	runtime.UnlockOSThread()

	if !ok {
		return nil, 0, 0, fmt.Errorf("Couldn't unwrap UVs!")
	}

	uvBuf = make([]float32, len(uvs)*2)
	for i, uv := range uvs {
		uvBuf[2*i] = uv.X
		uvBuf[2*i+1] = uv.Y
	}
	return uvBuf, texW, texH, nil
}

// Project reinterprets its flat buffer arguments in place and runs the
// core Project over them, returning each resulting polygon as a freshly
// allocated flat XY buffer. Unlike Unwrap, Project has no failure mode:
// pathological input yields a zero-length result slice.
func Project(
	strokeBuf []float32,
	vertexBuf []float32,
	indexBuf []uint32,
	uvBuf []float32,
	adjacencyBuf []int32,
	textureWidth, textureHeight uint32,
	camera project.Camera,
	seedFace uint32,
) ([][]float32, error) {
	stroke, err := Points2F(strokeBuf)
	if err != nil {
		return nil, err
	}
	vertices, err := Vertices(vertexBuf)
	if err != nil {
		return nil, err
	}
	faces, err := Faces(indexBuf)
	if err != nil {
		return nil, err
	}
	uvs, err := Points2F(uvBuf)
	if err != nil {
		return nil, err
	}
	adjacency, err := Adjacency(adjacencyBuf)
	if err != nil {
		return nil, err
	}

	m := mesh.Mesh{Vertices: vertices, Faces: faces, UV: uvs, Adjacency: adjacency}

	runtime.LockOSThread()
	polygons := project.Project(stroke, m, textureWidth, textureHeight, camera, seedFace)
	runtime.UnlockOSThread()

	out := make([][]float32, len(polygons))
	for i, polygon := range polygons {
		flat := make([]float32, len(polygon)*2)
		for j, pt := range polygon {
			flat[2*j] = pt.X
			flat[2*j+1] = pt.Y
		}
		out[i] = flat
	}
	return out, nil
}
