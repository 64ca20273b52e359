package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name    string
		command string
		wantErr bool
	}{
		{name: "empty", command: "", wantErr: false},
		{name: "plain", command: `echo "hi" > f`, wantErr: false},
		{name: "at limit", command: strings.Repeat("a", MaxCommandSize), wantErr: false},
		{name: "over limit", command: strings.Repeat("a", MaxCommandSize+1), wantErr: true},
		{name: "invalid utf8", command: "echo \xff", wantErr: true},
		{name: "nul byte", command: "echo a\x00b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCommand(tt.command)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
