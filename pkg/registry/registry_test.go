// pkg/registry/registry_test.go
package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry("../../api/registry/activity-registry.json")

	assert.NoError(t, err)
	assert.Equal(t, "1.0.0", reg.Version)
	assert.Len(t, reg.Activities, 4)

	taskTypes := make(map[string]Activity)
	for _, a := range reg.Activities {
		taskTypes[a.TaskType] = a
	}

	for _, tt := range []string{
		"process-scholarship-archive",
		"select-scholars",
		"build-selection-report",
		"notify-scholars",
	} {
		a, ok := taskTypes[tt]
		assert.True(t, ok, "missing activity %s", tt)
		assert.Equal(t, "implemented", a.ImplementationStatus)
		assert.NotEmpty(t, a.InputSchema)
		assert.NotEmpty(t, a.OutputSchema)
		assert.Contains(t, a.ErrorCodes, "PARSE_ERROR")
	}
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry("does-not-exist.json")
	assert.Error(t, err)
}

func TestActivityLookup(t *testing.T) {
	reg, err := LoadRegistry("../../api/registry/activity-registry.json")
	assert.NoError(t, err)

	activity, ok := reg.Activity("build-selection-report")
	assert.True(t, ok)

	stats, ok := activity.OutputProperty("statistics")
	assert.True(t, ok)
	assert.Contains(t, stats["required"], "selectionRate")

	_, ok = reg.Activity("no-such-task")
	assert.False(t, ok)
}
