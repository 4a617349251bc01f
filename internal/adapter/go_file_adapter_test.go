package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalGoFileAdapter_Supports(t *testing.T) {
	adapter := NewLocalGoFileAdapter()

	assert.True(t, adapter.Supports("cmd/main.go"))
	assert.False(t, adapter.Supports("lib.rs"))
	assert.False(t, adapter.Supports("go"))
}

func TestLocalGoFileAdapter_Check(t *testing.T) {
	adapter := NewLocalGoFileAdapter()

	require.NoError(t, adapter.Check("main.go", []byte("package main\n\n/*! v */\nfunc main() {}\n")))
}

func TestLocalGoFileAdapter_Check_InvalidSource(t *testing.T) {
	adapter := NewLocalGoFileAdapter()

	if err := adapter.Check("broken.go", []byte("package foo\n func")); err == nil {
		t.Fatalf("Check() expected error for invalid source")
	}
}
