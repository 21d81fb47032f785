package bytealg

import "golang.org/x/sys/cpu"

// Features returns the SIMD extensions available to the runtime's byte kernels.
func Features() []string {
	var f []string
	if cpu.ARM64.HasASIMD {
		f = append(f, "asimd")
	}
	if cpu.ARM64.HasSVE {
		f = append(f, "sve")
	}
	if cpu.ARM64.HasSVE2 {
		f = append(f, "sve2")
	}
	return f
}
