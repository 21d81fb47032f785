//go:build !amd64 && !arm64

package bytealg

// Features returns nil on architectures without dedicated byte kernels.
func Features() []string {
	return nil
}
