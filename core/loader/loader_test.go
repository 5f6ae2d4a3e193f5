package loader_test

import (
	"errors"
	"testing"

	"cheevo-checker/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loads   int
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loads++
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	a := &stubFeature{name: "report", enabled: true}
	b := &stubFeature{name: "disabled"}
	c := &stubFeature{name: "other", enabled: true}

	m := loader.NewManager()
	m.Register(a)
	m.Register(b)
	m.Register(c)

	loaded, err := m.LoadAll(fiber.New())
	require.NoError(t, err)
	assert.Equal(t, []string{"report", "other"}, loaded)
	assert.Equal(t, 1, a.loads)
	assert.Zero(t, b.loads)
}

func TestManager_LoadAllError(t *testing.T) {
	m := loader.NewManager()
	m.Register(&stubFeature{name: "broken", enabled: true, err: errors.New("no db")})
	after := &stubFeature{name: "after", enabled: true}
	m.Register(after)

	_, err := m.LoadAll(fiber.New())
	assert.ErrorContains(t, err, "load feature broken: no db")
	assert.Zero(t, after.loads)
}
