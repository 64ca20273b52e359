package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/GriffinCanCode/termweb/internal/client"
	"github.com/GriffinCanCode/termweb/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeConsole(t *testing.T) {
	var out, errOut bytes.Buffer
	con := newPipeConsole(strings.NewReader("ls\npwd\n"), &out, &errOut)

	line, err := con.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "ls", line)

	line, err = con.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "pwd", line)

	_, err = con.ReadLine()
	assert.ErrorIs(t, err, io.EOF)

	client.Render(con, types.CommandResponse{Output: "a/  b", Status: "ok"})
	client.Render(con, types.CommandResponse{Output: "Path not found", Status: "error"})
	client.Render(con, types.CommandResponse{Status: "ok", Clear: true})

	assert.Equal(t, "a/  b\n", out.String())
	assert.Equal(t, "Path not found\n", errOut.String())
}
