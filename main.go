// main.go - Viewer entry point for RasterForge

/*
(c) 2026 Zayn Otley
https://github.com/IntuitionAmiga/RasterForge
License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sync"
)

func boilerPlate() {
	fmt.Println("RasterForge - framebuffer surface and scanline render driver")
	fmt.Println("(c) 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/RasterForge")
	fmt.Println("License: GPLv3 or later")
}

// keyHandlerCapable is implemented by backends that can route key input
// back to the host (the windowed backend).
type keyHandlerCapable interface {
	SetKeyHandler(fn func(byte))
}

// doneCapable is implemented by backends that own their own lifetime.
type doneCapable interface {
	Done() <-chan struct{}
}

func main() {
	boilerPlate()

	var (
		width       int
		height      int
		ratio       int
		scale       int
		workers     int
		backendName string
		shaderName  string
		scriptPath  string
		outPath     string
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.IntVar(&width, "width", 640, "Logical surface width in pixels")
	flagSet.IntVar(&height, "height", 480, "Logical surface height in pixels")
	flagSet.IntVar(&ratio, "ratio", 1, "Device pixel ratio (physical pixels per logical pixel)")
	flagSet.IntVar(&scale, "scale", 1, "Integer window zoom for the ebiten backend")
	flagSet.IntVar(&workers, "workers", 1, "Row-parallel render workers (built-in shaders only)")
	flagSet.StringVar(&backendName, "backend", "ebiten", "Display backend: ebiten, terminal or memory")
	flagSet.StringVar(&shaderName, "shader", "gradient", "Built-in shader: gradient or sky")
	flagSet.StringVar(&scriptPath, "script", "", "Lua shader script defining shade(x, y, w, h)")
	flagSet.StringVar(&outPath, "out", "frame.png", "PNG path for saved frames")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./raster_forge [-backend ebiten|terminal|memory] [-shader gradient|sky] [-script shade.lua] [-width N] [-height N] [-ratio N] [-out frame.png]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	backend := DISPLAY_BACKEND_EBITEN
	switch backendName {
	case "ebiten":
		backend = DISPLAY_BACKEND_EBITEN
	case "terminal":
		backend = DISPLAY_BACKEND_TERMINAL
	case "memory":
		backend = DISPLAY_BACKEND_MEMORY
	default:
		fmt.Printf("Error: unknown backend %q\n", backendName)
		os.Exit(1)
	}

	colorFn, cleanup, err := selectShader(shaderName, scriptPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()
	if scriptPath != "" && workers > 1 {
		// A Lua shader holds one interpreter state.
		workers = 1
	}

	output, err := NewDisplayOutput(backend)
	if err != nil {
		fmt.Printf("Failed to initialize display: %v\n", err)
		os.Exit(1)
	}

	surface, err := NewSurface(output, width, height, ratio)
	if err != nil {
		fmt.Printf("Failed to initialize surface: %v\n", err)
		os.Exit(1)
	}
	if scale > 1 {
		cfg := output.GetDisplayConfig()
		cfg.Scale = scale
		if err := output.SetDisplayConfig(cfg); err != nil {
			fmt.Printf("Failed to apply window scale: %v\n", err)
			os.Exit(1)
		}
	}

	driver := NewRenderDriver(surface)

	var renderMutex sync.Mutex
	renderFrame := func() error {
		// Overlapping render calls against one surface are undefined;
		// serialize the triggers here.
		renderMutex.Lock()
		defer renderMutex.Unlock()
		if workers > 1 {
			return driver.RenderFrameParallel(colorFn, workers)
		}
		return driver.RenderFrame(colorFn)
	}

	if err := output.Start(); err != nil {
		fmt.Printf("Failed to start display: %v\n", err)
		os.Exit(1)
	}

	if err := renderFrame(); err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}

	switch backend {
	case DISPLAY_BACKEND_MEMORY:
		if err := surface.AcquirePixelBuffer().SavePNG(outPath); err != nil {
			fmt.Printf("Failed to save %s: %v\n", outPath, err)
			os.Exit(1)
		}
		fmt.Printf("Saved %s\n", outPath)
		_ = output.Close()
	case DISPLAY_BACKEND_TERMINAL:
		_ = output.Close()
	default:
		if kh, ok := output.(keyHandlerCapable); ok {
			kh.SetKeyHandler(func(b byte) {
				switch b {
				case 'r', 'R':
					if err := renderFrame(); err != nil {
						fmt.Printf("Render failed: %v\n", err)
					}
				case 's', 'S':
					if err := surface.AcquirePixelBuffer().SavePNG(outPath); err != nil {
						fmt.Printf("Failed to save %s: %v\n", outPath, err)
					} else {
						fmt.Printf("Saved %s\n", outPath)
					}
				}
			})
		}
		if dc, ok := output.(doneCapable); ok {
			<-dc.Done()
		}
		_ = output.Close()
	}
}

func selectShader(name, scriptPath string) (ColorFunc, func(), error) {
	if scriptPath != "" {
		shader, err := NewLuaShaderFile(scriptPath)
		if err != nil {
			return nil, func() {}, err
		}
		return shader.ColorFunc(), shader.Close, nil
	}
	switch name {
	case "gradient":
		return GradientShader, func() {}, nil
	case "sky":
		return SkyShader, func() {}, nil
	}
	return nil, func() {}, fmt.Errorf("unknown shader %q", name)
}
