package render

// fillShaderSrc is the Kage program behind RenderMaskedGrid. The grid
// stencil arrives as src0; the ramp and field parameters arrive as
// uniforms, with the ramp unrolled to MaxStops stops. Dead texels resolve
// to fully transparent output so the backdrop shows through.
var fillShaderSrc = []byte(`//kage:unit pixels

package main

var Dir vec2
var Wavelength float
var Phase float
var Alpha float
var StopPos vec4
var Col0 vec4
var Col1 vec4
var Col2 vec4
var Col3 vec4

func local(t, lo, hi float) float {
	d := hi - lo
	if d <= 0 {
		return 0.0
	}
	return clamp((t-lo)/d, 0.0, 1.0)
}

func ramp(t float) vec4 {
	if t <= StopPos.x {
		return Col0
	}
	if t <= StopPos.y {
		return mix(Col0, Col1, local(t, StopPos.x, StopPos.y))
	}
	if t <= StopPos.z {
		return mix(Col1, Col2, local(t, StopPos.y, StopPos.z))
	}
	if t <= StopPos.w {
		return mix(Col2, Col3, local(t, StopPos.z, StopPos.w))
	}
	return Col3
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	mask := imageSrc0At(srcPos)
	if mask.a < 0.5 {
		return vec4(0.0)
	}
	t := fract(dot(dstPos.xy, Dir)/Wavelength + Phase)
	return ramp(t) * Alpha
}
`)
