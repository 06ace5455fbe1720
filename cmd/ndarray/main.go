// Package main provides the ndarray CLI.
package main

import (
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"slices"

	"github.com/born-ml/ndarray"
	"github.com/born-ml/ndarray/internal/render"
	"github.com/born-ml/ndarray/internal/serialization"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("ndarray: ")

	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "version":
		fmt.Printf("ndarray %s\n", version)
	case "inspect":
		err = inspect(os.Stdout, args)
	case "heatmap":
		err = heatmap(args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Println("ndarray - dense vectors and matrices for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                                Show version")
	fmt.Println("  inspect <file.safetensors> [name]      Print arrays stored in a file")
	fmt.Println("  heatmap <file.safetensors> <name> <out> Render an array as an image (png, svg, pdf)")
}

func inspect(w io.Writer, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("inspect: missing file")
	}
	f, err := serialization.LoadFile(args[0])
	if err != nil {
		return err
	}

	names := f.Names()
	if len(args) > 1 {
		names = args[1:]
	}
	for _, k := range slices.Sorted(maps.Keys(f.Metadata)) {
		fmt.Fprintf(w, "# %s: %s\n", k, f.Metadata[k])
	}
	for _, name := range names {
		raw, ok := f.Arrays[name]
		if !ok {
			return fmt.Errorf("inspect: no array %q in %s", name, args[0])
		}
		if err := dispatch(raw, printArray(w, name)); err != nil {
			return err
		}
	}
	return nil
}

func heatmap(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("heatmap: want <file.safetensors> <name> <out>, got %d arguments", len(args))
	}
	f, err := serialization.LoadFile(args[0])
	if err != nil {
		return err
	}
	raw, ok := f.Arrays[args[1]]
	if !ok {
		return fmt.Errorf("heatmap: no array %q in %s", args[1], args[0])
	}

	opts := render.DefaultOptions()
	opts.Format = ""
	opts.Title = args[1]
	if err := dispatch(raw, drawArray(args[2], opts)); err != nil {
		return err
	}
	log.Printf("wrote %s", args[2])
	return nil
}

// visitor receives a decoded array; one method per element type keeps the
// generic calls concrete.
type visitor struct {
	f32 func(*ndarray.Array[float32]) error
	f64 func(*ndarray.Array[float64]) error
	i32 func(*ndarray.Array[int32]) error
	i64 func(*ndarray.Array[int64]) error
	u8  func(*ndarray.Array[uint8]) error
}

func dispatch(raw *ndarray.Raw, v visitor) error {
	switch raw.DType {
	case ndarray.Float32:
		return visit(raw, v.f32)
	case ndarray.Float64:
		return visit(raw, v.f64)
	case ndarray.Int32:
		return visit(raw, v.i32)
	case ndarray.Int64:
		return visit(raw, v.i64)
	case ndarray.Uint8:
		return visit(raw, v.u8)
	default:
		return fmt.Errorf("unsupported dtype %s", raw.DType)
	}
}

func visit[T ndarray.DType](raw *ndarray.Raw, f func(*ndarray.Array[T]) error) error {
	a, err := ndarray.FromRaw[T](raw)
	if err != nil {
		return err
	}
	return f(a)
}

func printArray(w io.Writer, name string) visitor {
	return visitor{
		f32: printer[float32](w, name),
		f64: printer[float64](w, name),
		i32: printer[int32](w, name),
		i64: printer[int64](w, name),
		u8:  printer[uint8](w, name),
	}
}

func printer[T ndarray.DType](w io.Writer, name string) func(*ndarray.Array[T]) error {
	return func(a *ndarray.Array[T]) error {
		s, err := a.Render()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s\n%s\n\n", name, a.Describe(), s)
		return nil
	}
}

func drawArray(path string, opts render.Options) visitor {
	return visitor{
		f32: drawer[float32](path, opts),
		f64: drawer[float64](path, opts),
		i32: drawer[int32](path, opts),
		i64: drawer[int64](path, opts),
		u8:  drawer[uint8](path, opts),
	}
}

func drawer[T ndarray.DType](path string, opts render.Options) func(*ndarray.Array[T]) error {
	return func(a *ndarray.Array[T]) error {
		return render.HeatmapFile(path, a, opts)
	}
}
