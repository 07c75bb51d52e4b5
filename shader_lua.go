// shader_lua.go - Lua-scripted per-pixel color functions for RasterForge

/*
(c) 2026 Zayn Otley
https://github.com/IntuitionAmiga/RasterForge
License: GPLv3 or later
*/

package main

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// LuaShader evaluates a Lua `shade(x, y, width, height)` function for each
// pixel. One interpreter state is held for the shader's lifetime, so a
// LuaShader is only usable with sequential renders; for
// RenderFrameParallel create one shader per worker.
type LuaShader struct {
	state *lua.LState
	fn    lua.LValue
}

// NewLuaShader compiles a Lua script that defines a global function
// shade(x, y, width, height) returning r, g, b in [0,255].
func NewLuaShader(script string) (*LuaShader, error) {
	state := lua.NewState()
	if err := state.DoString(script); err != nil {
		state.Close()
		return nil, fmt.Errorf("lua shader: %w", err)
	}
	fn := state.GetGlobal("shade")
	if fn.Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("lua shader: script does not define a shade function")
	}
	return &LuaShader{state: state, fn: fn}, nil
}

// NewLuaShaderFile compiles a shader from a script file.
func NewLuaShaderFile(path string) (*LuaShader, error) {
	state := lua.NewState()
	if err := state.DoFile(path); err != nil {
		state.Close()
		return nil, fmt.Errorf("lua shader: %w", err)
	}
	fn := state.GetGlobal("shade")
	if fn.Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("lua shader: script does not define a shade function")
	}
	return &LuaShader{state: state, fn: fn}, nil
}

// Close releases the interpreter state.
func (s *LuaShader) Close() {
	s.state.Close()
}

// ColorFunc adapts the shader to the render driver's contract.
func (s *LuaShader) ColorFunc() ColorFunc {
	return s.shade
}

func (s *LuaShader) shade(x, y, width, height int) (uint8, uint8, uint8, error) {
	err := s.state.CallByParam(lua.P{
		Fn:      s.fn,
		NRet:    3,
		Protect: true,
	}, lua.LNumber(x), lua.LNumber(y), lua.LNumber(width), lua.LNumber(height))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("lua shade call: %w", err)
	}

	top := s.state.GetTop()
	rv := s.state.Get(top - 2)
	gv := s.state.Get(top - 1)
	bv := s.state.Get(top)
	s.state.Pop(3)

	r, ok := channelValue(rv)
	if !ok {
		return 0, 0, 0, fmt.Errorf("lua shade returned non-numeric red channel")
	}
	g, ok := channelValue(gv)
	if !ok {
		return 0, 0, 0, fmt.Errorf("lua shade returned non-numeric green channel")
	}
	b, ok := channelValue(bv)
	if !ok {
		return 0, 0, 0, fmt.Errorf("lua shade returned non-numeric blue channel")
	}
	return r, g, b, nil
}

func channelValue(v lua.LValue) (uint8, bool) {
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, false
	}
	switch {
	case n < 0:
		return 0, true
	case n > 255:
		return 255, true
	default:
		return uint8(n), true
	}
}
