// Package serialization saves and loads named arrays in the SafeTensors format.
//
//	Format Structure:
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON object, name -> {dtype, shape, data_offsets}]
//	  [Array data: raw little-endian bytes, in header order]
//
// The optional "__metadata__" header entry holds string metadata. The writer
// stores a SHA-256 checksum of the data section there, and the reader
// verifies it when present.
//
// Example usage:
//
//	arrays := map[string]*ndarray.Raw{"weights": w.Raw()}
//	if err := serialization.SaveFile("arrays.safetensors", arrays, nil); err != nil {
//	    log.Fatal(err)
//	}
//
//	f, err := serialization.LoadFile("arrays.safetensors")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w, err := ndarray.FromRaw[float32](f.Arrays["weights"])
package serialization
