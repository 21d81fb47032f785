package bytealg

import "golang.org/x/sys/cpu"

// Features returns the SIMD extensions available to the runtime's byte kernels.
func Features() []string {
	var f []string
	if cpu.X86.HasSSE41 {
		f = append(f, "sse4.1")
	}
	if cpu.X86.HasAVX2 {
		f = append(f, "avx2")
	}
	if cpu.X86.HasAVX512BW {
		f = append(f, "avx512bw")
	}
	if cpu.X86.HasPOPCNT {
		f = append(f, "popcnt")
	}
	return f
}
