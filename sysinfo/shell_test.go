package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellName(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{path: "/bin/zsh", want: "zsh"},
		{path: "/bin/bash", want: "bash"},
		{path: "/usr/bin/zsh", wantErr: true},
		{path: "zsh", wantErr: true},
		{path: "", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ShellName(tc.path)
		if tc.wantErr {
			assert.Error(t, err, "ShellName(%q)", tc.path)
			continue
		}
		require.NoError(t, err, "ShellName(%q)", tc.path)
		assert.Equal(t, tc.want, got)
	}
}

func TestShell(t *testing.T) {
	h := &fakeHost{env: map[string]string{"SHELL": "/bin/zsh"}}
	got, err := h.source().Shell()
	require.NoError(t, err)
	assert.Equal(t, " \x1b[36m\uf489\x1b[0m zsh", got)
}

func TestShellUnavailable(t *testing.T) {
	_, err := (&fakeHost{}).source().Shell()
	assert.EqualError(t, err, "SHELL is not set")

	h := &fakeHost{env: map[string]string{"SHELL": "/usr/bin/zsh"}}
	_, err = h.source().Shell()
	assert.Error(t, err)
}
