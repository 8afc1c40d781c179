// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build js && wasm

// Package wasmbind exposes the unwrap and project core operations to a
// JavaScript host running this program compiled as a WebAssembly module.
// It only marshals flat JS arrays into and out of the core's value types;
// it adds no algorithmic behavior of its own.
package wasmbind

import (
	"syscall/js"

	"github.com/ultimaker/uvula-go/clipping"
	"github.com/ultimaker/uvula-go/geom"
	"github.com/ultimaker/uvula-go/mesh"
	"github.com/ultimaker/uvula-go/project"
	"github.com/ultimaker/uvula-go/unwrap"
)

// version is the compile-time version string returned by uvula_info. It is
// the only piece of global state the core exposes.
const version = "0.1.0"

// Register installs the module's exported functions on the JS global
// object. Call it once from main and then block, e.g. with select{}, so
// the compiled module stays alive to serve callbacks.
func Register() {
	js.Global().Set("unwrap", js.FuncOf(jsUnwrap))
	js.Global().Set("project", js.FuncOf(jsProject))
	js.Global().Set("uvula_info", js.FuncOf(jsInfo))
}

func jsInfo(this js.Value, args []js.Value) any {
	return version
}

// jsUnwrap implements unwrap(Float32Array vertices, Uint32Array indices).
// vertices is XYZ-interleaved; indices is (i1,i2,i3)-interleaved. Failure
// is surfaced as a thrown JS exception, per the binding contract, rather
// than a return value.
func jsUnwrap(this js.Value, args []js.Value) any {
	if len(args) != 2 {
		panic(js.Global().Get("Error").New("unwrap expects (vertices, indices)"))
	}
	vertices, err := decodeVertices(args[0])
	if err != nil {
		panic(js.Global().Get("Error").New(err.Error()))
	}
	faces, err := decodeFaces(args[1])
	if err != nil {
		panic(js.Global().Get("Error").New(err.Error()))
	}

	uvs, texW, texH, ok := unwrap.Unwrap(vertices, faces)
	if !ok {
		panic(js.Global().Get("Error").New("Couldn't unwrap UVs!"))
	}

	result := js.Global().Get("Object").New()
	result.Set("uvCoordinates", encodeUVs(uvs))
	result.Set("textureWidth", texW)
	result.Set("textureHeight", texH)
	return result
}

// jsProject implements project(ProjectParams) → number[][], where
// ProjectParams is a plain JS object carrying every project.Project
// argument as flat typed arrays and scalars. Unlike unwrap, project has no
// failure mode: pathological inputs simply yield an empty array.
func jsProject(this js.Value, args []js.Value) any {
	if len(args) != 1 {
		panic(js.Global().Get("Error").New("project expects a single params object"))
	}
	p := args[0]

	vertices, err := decodeVertices(p.Get("vertices"))
	if err != nil {
		panic(js.Global().Get("Error").New(err.Error()))
	}
	faces, err := decodeFaces(p.Get("faces"))
	if err != nil {
		panic(js.Global().Get("Error").New(err.Error()))
	}
	uvs, err := decodeUVs(p.Get("uvs"))
	if err != nil {
		panic(js.Global().Get("Error").New(err.Error()))
	}
	adjacency, err := decodeAdjacency(p.Get("adjacency"))
	if err != nil {
		panic(js.Global().Get("Error").New(err.Error()))
	}
	stroke, err := decodePoints2F(p.Get("stroke"))
	if err != nil {
		panic(js.Global().Get("Error").New(err.Error()))
	}

	m := mesh.Mesh{Vertices: vertices, Faces: faces, UV: uvs, Adjacency: adjacency}
	camera := project.Camera{
		Projection:     decodeMatrix44F(p.Get("cameraProjection")),
		Perspective:    p.Get("perspective").Bool(),
		ViewportWidth:  uint32(p.Get("viewportWidth").Int()),
		ViewportHeight: uint32(p.Get("viewportHeight").Int()),
		Normal:         decodeVector3F(p.Get("cameraNormal")),
	}
	textureWidth := uint32(p.Get("textureWidth").Int())
	textureHeight := uint32(p.Get("textureHeight").Int())
	seedFace := uint32(p.Get("seedFace").Int())

	polygons := project.Project(stroke, m, textureWidth, textureHeight, camera, seedFace)
	return encodePolygons(polygons)
}

func decodeVertices(v js.Value) ([]geom.Point3F, error) {
	flat, err := float32Slice(v)
	if err != nil {
		return nil, err
	}
	if len(flat)%3 != 0 {
		return nil, errInvalidShape("vertices array length is not a multiple of 3")
	}
	out := make([]geom.Point3F, len(flat)/3)
	for i := range out {
		out[i] = geom.Point3F{X: flat[3*i], Y: flat[3*i+1], Z: flat[3*i+2]}
	}
	return out, nil
}

func decodePoints2F(v js.Value) ([]geom.Point2F, error) {
	flat, err := float32Slice(v)
	if err != nil {
		return nil, err
	}
	if len(flat)%2 != 0 {
		return nil, errInvalidShape("point array length is not a multiple of 2")
	}
	out := make([]geom.Point2F, len(flat)/2)
	for i := range out {
		out[i] = geom.Point2F{X: flat[2*i], Y: flat[2*i+1]}
	}
	return out, nil
}

func decodeUVs(v js.Value) ([]geom.Point2F, error) {
	if v.IsUndefined() || v.IsNull() {
		return nil, nil
	}
	return decodePoints2F(v)
}

func decodeFaces(v js.Value) ([]mesh.Face, error) {
	if v.IsUndefined() || v.IsNull() {
		return nil, nil
	}
	flat, err := uint32Slice(v)
	if err != nil {
		return nil, err
	}
	if len(flat)%3 != 0 {
		return nil, errInvalidShape("face index array length is not a multiple of 3")
	}
	out := make([]mesh.Face, len(flat)/3)
	for i := range out {
		out[i] = mesh.Face{I1: flat[3*i], I2: flat[3*i+1], I3: flat[3*i+2]}
	}
	return out, nil
}

func decodeAdjacency(v js.Value) ([]mesh.FaceSigned, error) {
	if v.IsUndefined() || v.IsNull() {
		return nil, nil
	}
	length := v.Length()
	if length%3 != 0 {
		return nil, errInvalidShape("adjacency array length is not a multiple of 3")
	}
	out := make([]mesh.FaceSigned, length/3)
	for i := range out {
		out[i] = mesh.FaceSigned{
			I1: int32(v.Index(3 * i).Int()),
			I2: int32(v.Index(3*i + 1).Int()),
			I3: int32(v.Index(3*i + 2).Int()),
		}
	}
	return out, nil
}

func decodeVector3F(v js.Value) geom.Vector3F {
	return geom.Vector3F{
		X: float32(v.Index(0).Float()),
		Y: float32(v.Index(1).Float()),
		Z: float32(v.Index(2).Float()),
	}
}

func decodeMatrix44F(v js.Value) geom.Matrix44F {
	var m geom.Matrix44F
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m.M[row][col] = float32(v.Index(row*4 + col).Float())
		}
	}
	return m
}

// encodeUVs flattens uvs into an XY-interleaved Float32Array.
func encodeUVs(uvs []geom.Point2F) js.Value {
	array := js.Global().Get("Float32Array").New(len(uvs) * 2)
	for i, uv := range uvs {
		array.SetIndex(2*i, uv.X)
		array.SetIndex(2*i+1, uv.Y)
	}
	return array
}

// encodePolygons turns project's polygon output into number[][], one
// (x,y)-interleaved plain JS array per polygon.
func encodePolygons(polygons []clipping.Polygon) js.Value {
	result := js.Global().Get("Array").New(len(polygons))
	for i, polygon := range polygons {
		flat := js.Global().Get("Array").New(len(polygon) * 2)
		for j, pt := range polygon {
			flat.SetIndex(2*j, pt.X)
			flat.SetIndex(2*j+1, pt.Y)
		}
		result.SetIndex(i, flat)
	}
	return result
}

func errInvalidShape(msg string) error { return invalidShapeError(msg) }

type invalidShapeError string

func (e invalidShapeError) Error() string { return string(e) }

func float32Slice(v js.Value) ([]float32, error) {
	if v.IsUndefined() || v.IsNull() {
		return nil, nil
	}
	length := v.Length()
	out := make([]float32, length)
	for i := 0; i < length; i++ {
		out[i] = float32(v.Index(i).Float())
	}
	return out, nil
}

func uint32Slice(v js.Value) ([]uint32, error) {
	length := v.Length()
	out := make([]uint32, length)
	for i := 0; i < length; i++ {
		out[i] = uint32(v.Index(i).Int())
	}
	return out, nil
}
