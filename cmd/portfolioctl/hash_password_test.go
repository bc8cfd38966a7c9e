package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/app"
)

func TestHashPasswordCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"hash-password", "qweasd123"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, app.HashPassword("qweasd123"), strings.TrimSpace(out.String()))
}

func TestHashPasswordCommandRequiresInput(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"hash-password"})

	assert.Error(t, cmd.Execute())
}
