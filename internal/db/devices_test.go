package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProvisionalDeviceCodeIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := provisionalDeviceCode()
		assert.NotEmpty(t, code)
		assert.True(t, strings.HasPrefix(code, "prov-"))
		assert.False(t, seen[code], "device_code is unique in the schema, so placeholders must never collide")
		seen[code] = true
	}
}
