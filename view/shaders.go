// Copyright (c) 2025, Hdrview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// The vertex stage emits a full-viewport quad directly in clip space
// and remaps clip coordinates [-1,1] to unit texture coordinates [0,1].
const vertexSource = `#version 330 core
layout (location = 0) in vec2 vertices;
out vec2 coords;

void main() {
    gl_Position = vec4(vertices, 0, 1);
    coords = vertices * 0.5 + 0.5;
}
`

// The fragment stage samples the image at (coords - position) / scale
// and applies the gamma exponent channel-wise, leaving alpha untouched.
// Samples outside [0,1] return the texture border color.
const fragmentSource = `#version 330 core
uniform sampler2D tex;
uniform vec2 position;
uniform vec2 scale;
uniform float gamma;
in vec2 coords;
out vec4 fragColor;

void main() {
    vec4 texel = texture(tex, (coords - position) / scale);
    fragColor = vec4(pow(texel.xyz, vec3(gamma)), texel.w);
}
`

// compileProgram compiles and links the vertex/fragment pair,
// returning the program handle.
func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", infoLog)
	}
	return program, nil
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", infoLog)
	}
	return shader, nil
}
