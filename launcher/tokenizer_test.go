package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizer_Split(t *testing.T) {
	tok, err := NewTokenizer(0)
	require.NoError(t, err)

	tests := []struct {
		name    string
		command string
		want    []string
	}{
		{"simple", "echo hi", []string{"echo", "hi"}},
		{"single quotes", "notify-send 'hello world'", []string{"notify-send", "hello world"}},
		{"double quotes", `sh -c "xdotool key super"`, []string{"sh", "-c", "xdotool key super"}},
		{"escaped space", `open my\ file`, []string{"open", "my file"}},
		{"embedded commas", "notify-send a,b", []string{"notify-send", "a,b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tok.Split(tt.command)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizer_Failures(t *testing.T) {
	tok, err := NewTokenizer(4)
	require.NoError(t, err)

	_, err = tok.Split("'unterminated")
	assert.Error(t, err)

	// cached failures are reported again
	_, err = tok.Split("'unterminated")
	assert.Error(t, err)

	_, err = tok.Split("   ")
	assert.ErrorContains(t, err, "empty command")
}

func TestTokenizer_ReturnsCopies(t *testing.T) {
	tok, err := NewTokenizer(4)
	require.NoError(t, err)

	first, err := tok.Split("echo hi")
	require.NoError(t, err)
	first[0] = "rm"

	second, err := tok.Split("echo hi")
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "hi"}, second)
}
