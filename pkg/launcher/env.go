package launcher

import "strings"

// gpuVisibilityVar disables GPU device visibility in the child when set to
// the empty string, forcing the combiner onto the CPU.
const gpuVisibilityVar = "CUDA_VISIBLE_DEVICES"

// childEnv returns a copy of base with GPU visibility disabled. Any existing
// GPU visibility entries are dropped first so the empty value wins. base is
// never modified; the parent environment keeps whatever it had.
func childEnv(base []string) []string {
	env := make([]string, 0, len(base)+1)
	for _, kv := range base {
		if strings.HasPrefix(kv, gpuVisibilityVar+"=") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, gpuVisibilityVar+"=")
}
