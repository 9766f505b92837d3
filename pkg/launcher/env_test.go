package launcher

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildEnvAppendsEmptyGPUVisibility(t *testing.T) {
	env := childEnv([]string{"HOME=/home/user", "PATH=/usr/bin"})

	require.Len(t, env, 3)
	assert.Equal(t, "CUDA_VISIBLE_DEVICES=", env[len(env)-1])
}

func TestChildEnvDropsExistingGPUEntries(t *testing.T) {
	env := childEnv([]string{
		"CUDA_VISIBLE_DEVICES=0,1",
		"HOME=/home/user",
		"CUDA_VISIBLE_DEVICES=2",
	})

	require.Equal(t, []string{"HOME=/home/user", "CUDA_VISIBLE_DEVICES="}, env)
}

func TestChildEnvLeavesBaseUntouched(t *testing.T) {
	base := []string{"CUDA_VISIBLE_DEVICES=0", "HOME=/home/user"}

	childEnv(base)

	assert.Equal(t, []string{"CUDA_VISIBLE_DEVICES=0", "HOME=/home/user"}, base)
}

func TestChildEnvDoesNotTouchParentProcess(t *testing.T) {
	t.Setenv("CUDA_VISIBLE_DEVICES", "0")

	childEnv(os.Environ())

	assert.Equal(t, "0", os.Getenv("CUDA_VISIBLE_DEVICES"))
}
