package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModule struct {
	name     string
	priority int
	initErr  error
	order    *[]string
}

func (m *fakeModule) Name() string  { return m.name }
func (m *fakeModule) Priority() int { return m.priority }
func (m *fakeModule) Init(ctx *ModuleContext) error {
	*m.order = append(*m.order, m.name)
	return m.initErr
}

func TestInitModulesRunsInPriorityOrder(t *testing.T) {
	saved := moduleRegistry
	moduleRegistry = make(map[string]Module)
	t.Cleanup(func() { moduleRegistry = saved })

	var order []string
	Register(&fakeModule{name: "late", priority: 30, order: &order})
	Register(&fakeModule{name: "early", priority: 1, order: &order})
	Register(&fakeModule{name: "mid", priority: 10, order: &order})

	require.NoError(t, InitModules(&ModuleContext{}))
	assert.Equal(t, []string{"early", "mid", "late"}, order)
}

func TestInitModulesStopsOnError(t *testing.T) {
	saved := moduleRegistry
	moduleRegistry = make(map[string]Module)
	t.Cleanup(func() { moduleRegistry = saved })

	var order []string
	boom := errors.New("init failed")
	Register(&fakeModule{name: "first", priority: 1, initErr: boom, order: &order})
	Register(&fakeModule{name: "second", priority: 2, order: &order})

	err := InitModules(&ModuleContext{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first"}, order)
}
